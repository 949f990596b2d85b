package dice

import "sync"

// Sequence is a deterministic Roller that replays fixed values in order.
// When a list runs out it keeps returning its last value; an empty list
// returns zero.
type Sequence struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
}

// NewSequence creates a Sequence replaying floats for Float64 and ints for Intn
func NewSequence(floats []float64, ints []int) *Sequence {
	return &Sequence{
		floats: append([]float64(nil), floats...),
		ints:   append([]int(nil), ints...),
	}
}

// Float64 returns the next queued float
func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	if len(s.floats) > 1 {
		s.floats = s.floats[1:]
	}
	return v
}

// Intn returns the next queued int reduced modulo n
func (s *Sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 || len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	if len(s.ints) > 1 {
		s.ints = s.ints[1:]
	}
	if v < 0 {
		v = -v
	}
	return v % n
}
