package stargen

import "math/rand/v2"

// scriptedSource replays fixed draws and falls back to neutral values once a
// queue is exhausted.
type scriptedSource struct {
	floats []float32
	uints  []uint32
	ints   []int
}

func (s *scriptedSource) Float32() float32 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Uint32() uint32 {
	if len(s.uints) == 0 {
		return 0
	}
	v := s.uints[0]
	s.uints = s.uints[1:]
	return v
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// byteDraw makes Uint32 yield b from randomByte.
func byteDraw(b uint8) uint32 {
	return uint32(b) << 24
}
