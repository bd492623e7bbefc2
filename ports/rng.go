package ports

import "math/rand"

// RNGPort provides seeded random number generation for deterministic sampling
type RNGPort interface {
	// Stream creates a random number generator for a named operation.
	// The same name and a non-zero seed always yield the same stream;
	// seed 0 asks the adapter for a time-seeded stream.
	Stream(name string, seed int64) *rand.Rand
}
