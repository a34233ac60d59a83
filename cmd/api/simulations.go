package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jimmyyyly/CPU-Scheduler-Simulation/internal"
	"github.com/jimmyyyly/CPU-Scheduler-Simulation/utils/log"
)

// CreateSimulation runs one simulation over the submitted burst sequences
// and responds with the execution event stream plus the final statistics.
// Strategy and quantum default from the config when the body omits them.
func (h *Handler) CreateSimulation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	request := SimulationRequest{}

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&request); err != nil {
		h.Log.ErrorContext(ctx, "failed to decode simulation request",
			log.ErrAttr(err),
		)
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(request.Processes) == 0 {
		h.writeError(w, http.StatusBadRequest, "at least one process is required")
		return
	}
	for i, bursts := range request.Processes {
		if err := internal.ValidateBurstLine(bursts); err != nil {
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("process %d: %v", i, err))
			return
		}
	}

	strategyName := request.Strategy
	if strategyName == "" {
		strategyName = h.Config.DefaultStrategy
	}
	strategy := internal.ParseStrategy(strategyName)

	quantum := request.Quantum
	if quantum == 0 {
		quantum = h.Config.DefaultQuantum
	}
	if strategy == internal.StrategyRoundRobin && quantum <= 0 {
		h.writeError(w, http.StatusBadRequest, "time quantum must be a number and bigger than 0")
		return
	}

	recorder := internal.NewRecorder()
	sim := internal.NewSimulation(strategy, quantum, request.Processes, recorder, h.Log)
	stats := <-sim.Start()

	h.Log.Debug("simulation finished",
		log.StringAttr("strategy", string(strategy)),
		log.IntAttr("processes", len(request.Processes)),
		log.IntAttr("total_time", sim.Clock()),
	)

	response := SimulationResponse{
		Strategy:   string(strategy),
		Quantum:    quantum,
		TotalTime:  sim.Clock(),
		Executions: recorder.Executions,
		Stats:      stats,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.Log.ErrorContext(ctx, "failed to encode simulation response",
			log.ErrAttr(err),
		)
	}
}

// Ping is a liveness probe.
func (h *Handler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("simulator"))
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
