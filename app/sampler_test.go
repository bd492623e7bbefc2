package app

import (
	"testing"

	"sheetpick/domain/record"
	"sheetpick/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func makeRecords(n int) []record.Record {
	records := make([]record.Record, n)
	for i := range records {
		records[i] = record.Record{ID: i + 1, Data: map[string]record.Value{"value": record.Int(int64(i + 1))}}
	}
	return records
}

func TestSampleRandomEmptyCollection(t *testing.T) {
	sampler := NewSampler(&testkit.RNGAdapter{Seed: 42}, 42)
	assert.Empty(t, sampler.SampleRandom(nil, 3))
	assert.Empty(t, sampler.SampleRandom([]record.Record{}, 3))
}

func TestSampleRandomNonPositiveSize(t *testing.T) {
	sampler := NewSampler(&testkit.RNGAdapter{Seed: 42}, 42)
	records := makeRecords(5)

	assert.Empty(t, sampler.SampleRandom(records, 0))
	assert.Empty(t, sampler.SampleRandom(records, -2))
}

func TestSampleRandomClampKeepsOrder(t *testing.T) {
	sampler := NewSampler(&testkit.RNGAdapter{Seed: 42}, 42)
	records := makeRecords(5)

	for _, n := range []int{5, 9} {
		sample := sampler.SampleRandom(records, n)
		require.Len(t, sample, 5)
		for i, rec := range sample {
			assert.Equal(t, i+1, rec.ID, "clamped sample must keep insertion order")
		}
	}
}

func TestSampleRandomExactDistinctSubset(t *testing.T) {
	sampler := NewSampler(&testkit.RNGAdapter{Seed: 7}, 7)
	records := makeRecords(10)

	sample := sampler.SampleRandom(records, 4)
	require.Len(t, sample, 4)

	seen := make(map[int]bool, len(sample))
	for _, rec := range sample {
		assert.False(t, seen[rec.ID], "sample must not repeat records")
		seen[rec.ID] = true
		assert.GreaterOrEqual(t, rec.ID, 1)
		assert.LessOrEqual(t, rec.ID, 10)
	}
}

func TestSampleRandomDoesNotMutateInput(t *testing.T) {
	sampler := NewSampler(&testkit.RNGAdapter{Seed: 7}, 7)
	records := makeRecords(10)

	for i := 0; i < 50; i++ {
		sampler.SampleRandom(records, 4)
	}
	for i, rec := range records {
		assert.Equal(t, i+1, rec.ID, "input slice order must survive sampling")
	}
}

func TestSampleRandomSeededReplay(t *testing.T) {
	records := makeRecords(20)

	first := NewSampler(&testkit.RNGAdapter{Seed: 99}, 99).SampleRandom(records, 6)
	second := NewSampler(&testkit.RNGAdapter{Seed: 99}, 99).SampleRandom(records, 6)

	require.Len(t, first, 6)
	require.Len(t, second, 6)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "same seed must replay the same draws")
	}
}

func TestSampleRandomUniformity(t *testing.T) {
	const (
		population = 10
		sampleSize = 5
		trials     = 2000
	)

	sampler := NewSampler(&testkit.RNGAdapter{Seed: 1234}, 1234)
	records := makeRecords(population)

	counts := make([]float64, population)
	for i := 0; i < trials; i++ {
		sample := sampler.SampleRandom(records, sampleSize)
		require.Len(t, sample, sampleSize)
		for _, rec := range sample {
			counts[rec.ID-1]++
		}
	}

	// Chi-square goodness of fit against the flat expectation. The seeded
	// stream makes the statistic reproducible, so the assertion is stable.
	expected := float64(trials*sampleSize) / float64(population)
	chi2 := 0.0
	for _, c := range counts {
		diff := c - expected
		chi2 += diff * diff / expected
	}

	chiSquare := distuv.ChiSquared{K: float64(population - 1)}
	pValue := 1 - chiSquare.CDF(chi2)
	assert.Greater(t, pValue, 0.0001, "membership counts deviate too far from uniform (chi2=%.2f)", chi2)
}
