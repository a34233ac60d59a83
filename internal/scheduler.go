package internal

import (
	"fmt"
	"log/slog"

	"github.com/jimmyyyly/CPU-Scheduler-Simulation/utils/log"
)

// Simulation runs one scheduling simulation to completion over an integer
// clock. It is single-threaded: the dispatch loop advances CPU execution and
// IO progress in lockstep, so no locking is needed anywhere in the core.
type Simulation struct {
	Log      *slog.Logger
	Strategy Strategy
	Quantum  int

	sink      EventSink
	clock     int
	ready     []*Process
	blocked   *BlockedSet
	procs     []*Process
	completed []completionRecord
}

// NewSimulation builds the process records from the loaded burst lines and
// seeds the ready queue in file order. Burst lines are assumed validated by
// the loader; a round-robin quantum that is not positive is a defect.
func NewSimulation(strategy Strategy, quantum int, lines [][]int, sink EventSink, logger *slog.Logger) *Simulation {
	if strategy == StrategyRoundRobin && quantum <= 0 {
		panic(fmt.Sprintf("round-robin needs a positive quantum, got %d", quantum))
	}
	s := &Simulation{
		Log:      logger,
		Strategy: strategy,
		Quantum:  quantum,
		sink:     sink,
		blocked:  NewBlockedSet(),
	}
	for i, bursts := range lines {
		p := NewProcess(i, bursts)
		s.procs = append(s.procs, p)
		s.ready = append(s.ready, p)
		sink.ProcessLoaded(p.PID, bursts)
	}
	return s
}

// Run executes the dispatch loop until both the ready queue and the blocked
// set are empty, then reports the per-process statistics in completion order.
func (s *Simulation) Run() []ProcessStats {
	s.Log.Debug("simulation starting",
		log.StringAttr("strategy", string(s.Strategy)),
		log.IntAttr("quantum", s.Quantum),
		log.IntAttr("processes", len(s.procs)),
	)
	for {
		switch {
		case len(s.ready) > 0:
			s.dispatch()
		case s.blocked.Len() > 0:
			// CPU idle: jump the clock to the earliest IO completion.
			step := s.blocked.NextCompletion()
			s.clock += step
			s.moveToReady(s.blocked.Advance(step))
		default:
			return s.report()
		}
	}
}

// Start runs the simulation on its own goroutine and returns a one-shot
// channel that delivers the final statistics exactly once.
func (s *Simulation) Start() <-chan []ProcessStats {
	done := make(chan []ProcessStats, 1)
	go func() {
		done <- s.Run()
		close(done)
	}()
	return done
}

// Clock returns the current simulated time.
func (s *Simulation) Clock() int {
	return s.clock
}

// dispatch pulls the head of the ready queue and runs one CPU segment: the
// whole remaining burst under FCFS, at most one quantum under round-robin.
func (s *Simulation) dispatch() {
	p := s.ready[0]
	s.ready = s.ready[1:]
	if len(p.Bursts) == 0 {
		panic(fmt.Sprintf("process %d reached dispatch with no bursts left", p.PID))
	}

	segment := p.Bursts[0]
	if s.Strategy == StrategyRoundRobin && s.Quantum < segment {
		segment = s.Quantum
	}

	s.Log.Info(fmt.Sprintf("## (%d) READY to EXEC", p.PID),
		log.IntAttr("clock", s.clock),
		log.IntAttr("segment", segment),
	)

	// Execute the segment in sub-steps bounded by the next IO completion,
	// so blocked processes rejoin the ready queue at the right instant.
	remaining := segment
	for remaining > 0 {
		step := remaining
		if s.blocked.Len() > 0 {
			if soonest := s.blocked.NextCompletion(); soonest < step {
				step = soonest
			}
		}
		p.ExecutedCPU += step
		s.clock += step
		p.Bursts[0] -= step
		// Completions during the segment go to the back of the ready
		// queue; they do not preempt the running process.
		s.moveToReady(s.blocked.Advance(step))
		remaining -= step
	}

	if p.Bursts[0] == 0 {
		p.Bursts = p.Bursts[1:]
		if len(p.Bursts) == 0 {
			p.CompletionTime = s.clock
			s.completed = append(s.completed, completionRecord{time: s.clock, pid: p.PID})
			s.Log.Info(fmt.Sprintf("## (%d) EXEC to EXIT", p.PID), log.IntAttr("clock", s.clock))
			s.emitExecution(p, ReasonCompleted)
		} else {
			s.Log.Info(fmt.Sprintf("## (%d) EXEC to BLOCKED", p.PID),
				log.IntAttr("clock", s.clock),
				log.IntAttr("io_burst", p.Bursts[0]),
			)
			s.emitExecution(p, ReasonEnteredIO)
			s.blocked.Add(p)
		}
	} else {
		s.Log.Info(fmt.Sprintf("## (%d) EXEC to READY", p.PID), log.IntAttr("clock", s.clock))
		s.emitExecution(p, ReasonQuantumExpired)
		s.ready = append(s.ready, p)
	}
}

func (s *Simulation) moveToReady(procs []*Process) {
	for _, p := range procs {
		s.Log.Info(fmt.Sprintf("## (%d) BLOCKED to READY", p.PID), log.IntAttr("clock", s.clock))
		s.ready = append(s.ready, p)
	}
}

func (s *Simulation) emitExecution(p *Process, reason Reason) {
	s.sink.BurstExecuted(BurstExecution{
		PID:         p.PID,
		ExecutedCPU: p.ExecutedCPU,
		ExecutedIO:  p.ExecutedIO,
		Clock:       s.clock,
		Reason:      reason,
	})
}
