package internal

type Strategy string

const (
	StrategyFCFS       Strategy = "fcfs"
	StrategyRoundRobin Strategy = "rr"
)

// ParseStrategy maps a user-supplied strategy name to a Strategy.
// Unknown names fall back to FCFS.
func ParseStrategy(name string) Strategy {
	if Strategy(name) == StrategyRoundRobin {
		return StrategyRoundRobin
	}
	return StrategyFCFS
}

// Reason says why a CPU segment ended.
type Reason string

const (
	ReasonEnteredIO      Reason = "entered IO"
	ReasonQuantumExpired Reason = "quantum expired"
	ReasonCompleted      Reason = "completed"
)

// Process is the record for one simulated process. It is created once at
// simulation start and never deleted; the ready queue and blocked set only
// hold references to it.
type Process struct {
	PID    int
	Bursts []int // remaining bursts, alternating CPU/IO, front is the active one

	ExecutedCPU int
	ExecutedIO  int

	// Totals over the original burst list, fixed at load time.
	TotalCPU int
	TotalIO  int

	// CompletionTime is -1 until the last burst is consumed, then set once.
	CompletionTime int
}

func NewProcess(pid int, bursts []int) *Process {
	p := &Process{
		PID:            pid,
		Bursts:         append([]int(nil), bursts...),
		CompletionTime: -1,
	}
	for i, b := range bursts {
		if i%2 == 0 {
			p.TotalCPU += b
		} else {
			p.TotalIO += b
		}
	}
	return p
}

// BurstExecution is emitted every time a process leaves the CPU.
type BurstExecution struct {
	PID         int    `json:"pid"`
	ExecutedCPU int    `json:"executed_cpu"`
	ExecutedIO  int    `json:"executed_io"`
	Clock       int    `json:"clock"`
	Reason      Reason `json:"reason"`
}

// ProcessStats is emitted once per process after the simulation finishes,
// in completion order.
type ProcessStats struct {
	PID        int `json:"pid"`
	Turnaround int `json:"turnaround"`
	Wait       int `json:"wait"`
}

type completionRecord struct {
	time int
	pid  int
}
