package uniqueid

import "sync"

// Sequence hands out monotonically increasing integers, starting at 0.
type Sequence struct {
	mu   sync.Mutex
	next int
}

func Init() *Sequence {
	return &Sequence{
		mu: sync.Mutex{},
	}
}

func (s *Sequence) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	return id
}
