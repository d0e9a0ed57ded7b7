package random

// Script is a deterministic Source that replays queued values in order.
// Once a queue runs dry it falls back to neutral defaults: Float64 yields
// 0.99 so probability rolls fail, Intn yields 0, Between yields lo and
// Shuffle leaves the order untouched.
type Script struct {
	Floats []float64 // consumed by Float64
	Ints   []int     // consumed by Intn
	Ranges []int     // consumed by Between
}

func (s *Script) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0.99
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

func (s *Script) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return v % n
}

func (s *Script) Between(lo, hi int) int {
	if len(s.Ranges) == 0 {
		return lo
	}
	v := s.Ranges[0]
	s.Ranges = s.Ranges[1:]
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *Script) Shuffle(n int, swap func(i, j int)) {}
