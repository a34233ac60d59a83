package internal

import (
	"fmt"
	"sort"

	uniqueid "github.com/jimmyyyly/CPU-Scheduler-Simulation/utils/unique-id"
)

type blockedEntry struct {
	proc      *Process
	remaining int
	seq       int
}

// BlockedSet holds the processes currently performing IO. Entries are kept
// ordered by (remaining IO ascending, entry sequence ascending), so ties
// leave the set first-blocked-first-served.
type BlockedSet struct {
	entries []blockedEntry
	seq     *uniqueid.Sequence
}

func NewBlockedSet() *BlockedSet {
	return &BlockedSet{
		seq: uniqueid.Init(),
	}
}

func (b *BlockedSet) Len() int {
	return len(b.entries)
}

// Add inserts a process whose front burst is the IO burst it is about to
// perform. The burst stays on the process until the IO completes.
func (b *BlockedSet) Add(p *Process) {
	if len(p.Bursts) == 0 {
		panic(fmt.Sprintf("process %d entered the blocked set with no bursts left", p.PID))
	}
	if p.Bursts[0] <= 0 {
		panic(fmt.Sprintf("process %d entered the blocked set with a non-positive IO burst %d", p.PID, p.Bursts[0]))
	}
	b.entries = append(b.entries, blockedEntry{
		proc:      p,
		remaining: p.Bursts[0],
		seq:       b.seq.Next(),
	})
	b.sortEntries()
}

// NextCompletion returns the remaining time until the earliest IO finishes.
func (b *BlockedSet) NextCompletion() int {
	if len(b.entries) == 0 {
		panic("NextCompletion on an empty blocked set")
	}
	b.sortEntries()
	return b.entries[0].remaining
}

// Advance moves every blocked process forward by dt of simulated time,
// clamping each entry at zero. Processes whose IO finishes have the IO burst
// consumed and are returned in (remaining, entry order). The walk is done in
// sub-steps bounded by the next completion, so a dt spanning several
// completions never skips or double-counts one.
func (b *BlockedSet) Advance(dt int) []*Process {
	if dt < 0 {
		panic(fmt.Sprintf("blocked set advanced by negative time %d", dt))
	}
	var finished []*Process
	t := dt
	for t > 0 && len(b.entries) > 0 {
		b.sortEntries()
		step := b.entries[0].remaining
		if t < step {
			step = t
		}
		for i := range b.entries {
			dec := step
			if b.entries[i].remaining < dec {
				dec = b.entries[i].remaining
			}
			b.entries[i].remaining -= dec
			b.entries[i].proc.ExecutedIO += dec
		}
		t -= step

		remaining := make([]blockedEntry, 0, len(b.entries))
		for _, e := range b.entries {
			if e.remaining == 0 {
				e.proc.Bursts = e.proc.Bursts[1:]
				finished = append(finished, e.proc)
			} else {
				remaining = append(remaining, e)
			}
		}
		b.entries = remaining
	}
	return finished
}

func (b *BlockedSet) sortEntries() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		if b.entries[i].remaining != b.entries[j].remaining {
			return b.entries[i].remaining < b.entries[j].remaining
		}
		return b.entries[i].seq < b.entries[j].seq
	})
}
