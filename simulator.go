package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/olekukonko/tablewriter"

	"github.com/jimmyyyly/CPU-Scheduler-Simulation/cmd/api"
	"github.com/jimmyyyly/CPU-Scheduler-Simulation/internal"
	"github.com/jimmyyyly/CPU-Scheduler-Simulation/pkg/collector"
	"github.com/jimmyyyly/CPU-Scheduler-Simulation/utils/log"
)

const configFilePath = "./configs/config.json"

func main() {
	strategyFlag := flag.String("s", "", "scheduling strategy: fcfs or rr")
	quantumFlag := flag.Int("q", 0, "time quantum for round-robin")
	configFlag := flag.String("c", configFilePath, "path to the config file")
	flag.Parse()

	h := api.NewHandler(*configFlag)

	// With a bursts file the binary is a one-shot CLI simulator; without
	// one it serves the HTTP API.
	if flag.NArg() == 0 {
		serve(h)
		return
	}
	runFile(h, flag.Arg(0), *strategyFlag, *quantumFlag)
}

func serve(h *api.Handler) {
	r := chi.NewRouter()
	r.Get("/ping", h.Ping)
	r.Post("/simulations", h.CreateSimulation)

	addr := fmt.Sprintf("%s:%d", h.Config.IP, h.Config.Port)
	h.Log.Info("simulator API listening", log.StringAttr("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		h.Log.Error("Error starting server", log.ErrAttr(err))
		panic(err)
	}
}

func runFile(h *api.Handler, path, strategyName string, quantum int) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Unable to open <%s>\n", path)
		os.Exit(1)
	}
	defer func() {
		_ = f.Close()
	}()

	lines, err := internal.ReadBurstLines(f)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if strategyName == "" {
		strategyName = h.Config.DefaultStrategy
	}
	strategy := internal.ParseStrategy(strategyName)

	if quantum == 0 {
		quantum = h.Config.DefaultQuantum
	}
	if strategy == internal.StrategyRoundRobin && quantum <= 0 {
		fmt.Println("Time quantum must be a number and bigger than 0")
		os.Exit(1)
	}

	recorder := internal.NewRecorder()
	sink := internal.MultiSink{consoleSink{w: os.Stdout}, recorder}
	sim := internal.NewSimulation(strategy, quantum, lines, sink, h.Log)

	// One-shot completion channel: the simulation runs on its own
	// goroutine and delivers the statistics exactly once.
	stats := <-sim.Start()
	outputStats(os.Stdout, stats)

	if h.Config.CollectorURL != "" {
		c := collector.NewCollector(h.Config.CollectorURL, h.Log)
		report := collector.Report{
			Strategy:  string(strategy),
			Quantum:   quantum,
			TotalTime: sim.Clock(),
			Stats:     stats,
		}
		if err := c.Publish(report); err != nil {
			h.Log.Error("failed to publish report", log.ErrAttr(err))
		}
	}
}

// consoleSink prints the human-readable event lines: the input readback
// before the run and one line per CPU segment as the run progresses.
type consoleSink struct {
	w io.Writer
}

func (c consoleSink) ProcessLoaded(pid int, bursts []int) {
	parts := make([]string, len(bursts))
	for i, b := range bursts {
		kind := "CPU"
		if i%2 == 1 {
			kind = "IO"
		}
		parts[i] = fmt.Sprintf("%dms (%s)", b, kind)
	}
	_, _ = fmt.Fprintf(c.w, "P%d: %s\n", pid, strings.Join(parts, ", "))
}

func (c consoleSink) BurstExecuted(ev internal.BurstExecution) {
	_, _ = fmt.Fprintf(c.w, "P%d: executed %dms of CPU and %dms of IO at %dms (%s)\n",
		ev.PID, ev.ExecutedCPU, ev.ExecutedIO, ev.Clock, ev.Reason)
}

func (c consoleSink) ProcessCompleted(internal.ProcessStats) {
	// final statistics are rendered as a table after the run
}

func outputStats(w io.Writer, stats []internal.ProcessStats) {
	rows := make([][]string, len(stats))
	var totalTurnaround, totalWait float64
	for i, st := range stats {
		rows[i] = []string{
			fmt.Sprintf("P%d", st.PID),
			fmt.Sprint(st.Turnaround),
			fmt.Sprint(st.Wait),
		}
		totalTurnaround += float64(st.Turnaround)
		totalWait += float64(st.Wait)
	}

	count := float64(len(stats))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Turnaround", "Wait"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"",
		fmt.Sprintf("Average\n%.2f", totalTurnaround/count),
		fmt.Sprintf("Average\n%.2f", totalWait/count),
	})
	table.Render()
}
