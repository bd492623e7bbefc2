package app

import (
	"math/rand"

	"sheetpick/domain/record"
	"sheetpick/internal"
	"sheetpick/ports"
)

// Sampler draws uniform random subsets of records without replacement
type Sampler struct {
	rng    *rand.Rand
	logger *internal.Logger
}

// NewSampler creates a sampler drawing from a stream of the given port.
// Seed 0 means a time-seeded stream, anything else replays exactly.
func NewSampler(rngPort ports.RNGPort, seed int64) *Sampler {
	return &Sampler{
		rng:    rngPort.Stream("record-sampling", seed),
		logger: internal.NewDefaultLogger(),
	}
}

// SampleRandom returns exactly n distinct records chosen uniformly at
// random, in draw order. Out-of-range requests degrade predictably: an
// empty collection or n <= 0 give an empty sample, and n >= len gives a
// copy of the whole collection in its original order. The input slice is
// never reordered.
func (s *Sampler) SampleRandom(records []record.Record, n int) []record.Record {
	if len(records) == 0 {
		s.logger.Warn("No records available, returning empty sample")
		return []record.Record{}
	}
	if n <= 0 {
		s.logger.Warn("Requested sample size %d is not positive, returning empty sample", n)
		return []record.Record{}
	}
	if n >= len(records) {
		s.logger.Warn("Requested sample size %d covers all %d records, returning every record", n, len(records))
		out := make([]record.Record, len(records))
		copy(out, records)
		return out
	}

	// Partial Fisher-Yates over an index permutation: after n swaps the
	// leading n indices are a uniform n-subset in uniform draw order.
	indices := make([]int, len(records))
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(len(indices)-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	out := make([]record.Record, n)
	for i := 0; i < n; i++ {
		out[i] = records[indices[i]]
	}
	return out
}
