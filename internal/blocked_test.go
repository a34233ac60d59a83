package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// blockedProc builds a process whose CPU burst was already consumed, so the
// front burst is the IO burst the blocked set will track.
func blockedProc(pid int, bursts ...int) *Process {
	return &Process{PID: pid, Bursts: bursts, CompletionTime: -1}
}

func TestBlockedSet_AdvancePartial(t *testing.T) {
	ass := assert.New(t)
	b := NewBlockedSet()

	p := blockedProc(0, 5, 3)
	b.Add(p)

	ass.Equal(1, b.Len())
	ass.Equal(5, b.NextCompletion())

	finished := b.Advance(2)
	ass.Empty(finished)
	ass.Equal(3, b.NextCompletion())
	ass.Equal(2, p.ExecutedIO)

	finished = b.Advance(3)
	ass.Len(finished, 1)
	ass.Same(p, finished[0])
	ass.Equal(0, b.Len())
	ass.Equal(5, p.ExecutedIO)
	// the finished IO burst is consumed, the next CPU burst is active
	ass.Equal([]int{3}, p.Bursts)
}

func TestBlockedSet_TieBreakEntryOrder(t *testing.T) {
	ass := assert.New(t)
	b := NewBlockedSet()

	first := blockedProc(0, 4, 1)
	second := blockedProc(1, 4, 1)
	b.Add(first)
	b.Add(second)

	finished := b.Advance(4)
	ass.Len(finished, 2)
	ass.Same(first, finished[0])
	ass.Same(second, finished[1])
}

func TestBlockedSet_OrderedByRemaining(t *testing.T) {
	ass := assert.New(t)
	b := NewBlockedSet()

	slow := blockedProc(0, 7, 1)
	fast := blockedProc(1, 2, 1)
	b.Add(slow)
	b.Add(fast)

	ass.Equal(2, b.NextCompletion())

	finished := b.Advance(2)
	ass.Len(finished, 1)
	ass.Same(fast, finished[0])
	ass.Equal(5, b.NextCompletion())
}

func TestBlockedSet_AdvanceSpanningSeveralCompletions(t *testing.T) {
	ass := assert.New(t)
	b := NewBlockedSet()

	a := blockedProc(0, 2, 1)
	c := blockedProc(1, 5, 1)
	d := blockedProc(2, 9, 1)
	b.Add(a)
	b.Add(c)
	b.Add(d)

	// one coarse advance must release completions in remaining-time order
	// without skipping or double-counting any of them
	finished := b.Advance(6)
	ass.Len(finished, 2)
	ass.Same(a, finished[0])
	ass.Same(c, finished[1])
	ass.Equal(2, a.ExecutedIO)
	ass.Equal(5, c.ExecutedIO)
	ass.Equal(6, d.ExecutedIO)
	ass.Equal(3, b.NextCompletion())
}

func TestBlockedSet_ContractViolations(t *testing.T) {
	ass := assert.New(t)

	b := NewBlockedSet()
	ass.Panics(func() { b.Advance(-1) })
	ass.Panics(func() { b.NextCompletion() })
	ass.Panics(func() { b.Add(blockedProc(0)) })
	ass.Panics(func() { b.Add(blockedProc(0, 0, 1)) })
}
