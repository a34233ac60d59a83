package internal

// EventSink receives the simulation's event stream in dispatch order.
// Calls happen synchronously from the dispatch loop.
type EventSink interface {
	ProcessLoaded(pid int, bursts []int)
	BurstExecuted(ev BurstExecution)
	ProcessCompleted(st ProcessStats)
}

// Recorder collects the event stream in memory. Used by the API handler to
// build responses and by tests to assert on the stream.
type Recorder struct {
	Loaded     [][]int
	Executions []BurstExecution
	Stats      []ProcessStats
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// ProcessLoaded records the original burst list; pids are assigned in load
// order, so the slice index matches the pid.
func (r *Recorder) ProcessLoaded(pid int, bursts []int) {
	r.Loaded = append(r.Loaded, append([]int(nil), bursts...))
}

func (r *Recorder) BurstExecuted(ev BurstExecution) {
	r.Executions = append(r.Executions, ev)
}

func (r *Recorder) ProcessCompleted(st ProcessStats) {
	r.Stats = append(r.Stats, st)
}

// MultiSink fans events out to every sink, in order.
type MultiSink []EventSink

func (m MultiSink) ProcessLoaded(pid int, bursts []int) {
	for _, s := range m {
		s.ProcessLoaded(pid, bursts)
	}
}

func (m MultiSink) BurstExecuted(ev BurstExecution) {
	for _, s := range m {
		s.BurstExecuted(ev)
	}
}

func (m MultiSink) ProcessCompleted(st ProcessStats) {
	for _, s := range m {
		s.ProcessCompleted(st)
	}
}
