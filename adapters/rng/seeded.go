package rng

import (
	"math/rand"
	"time"
)

// StreamFactory implements ports.RNGPort with per-operation seeded streams
type StreamFactory struct{}

// NewStreamFactory creates a stream factory
func NewStreamFactory() *StreamFactory {
	return &StreamFactory{}
}

// Stream creates a random number generator for a named operation. A
// non-zero seed is combined with a hash of the name so distinct operations
// sharing one configured seed still get distinct streams; seed 0 yields a
// time-seeded stream.
func (f *StreamFactory) Stream(name string, seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(int64(hashString(name)) + seed))
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}
