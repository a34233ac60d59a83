package internal

import (
	"fmt"
	"sort"

	"github.com/jimmyyyly/CPU-Scheduler-Simulation/utils/log"
)

// report sorts the completion records by completion time (stable, so
// same-instant completions keep their append order) and emits one statistics
// event per process. All processes are admitted at time 0, so turnaround is
// the completion time and wait is whatever part of it was spent neither
// executing nor performing IO.
func (s *Simulation) report() []ProcessStats {
	recs := append([]completionRecord(nil), s.completed...)
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].time < recs[j].time
	})

	stats := make([]ProcessStats, 0, len(recs))
	for _, rec := range recs {
		p := s.procs[rec.pid]
		turnaround := p.CompletionTime
		wait := turnaround - (p.TotalCPU + p.TotalIO)
		st := ProcessStats{
			PID:        p.PID,
			Turnaround: turnaround,
			Wait:       wait,
		}
		stats = append(stats, st)
		s.Log.Info(fmt.Sprintf("## (%d) completed", p.PID),
			log.IntAttr("turnaround", turnaround),
			log.IntAttr("wait", wait),
		)
		s.sink.ProcessCompleted(st)
	}
	return stats
}
