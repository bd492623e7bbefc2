package profiling

import (
	"sheetpick/domain/record"
)

// ColumnProfile summarizes one column across the loaded records
type ColumnProfile struct {
	Column       string
	TotalCount   int
	NullCount    int
	BoolCount    int
	IntCount     int
	FloatCount   int
	StringCount  int
	MissingRatio float64
	// Numeric is set when the column's non-null values are mostly numbers
	Numeric *NumericSummary
}

// NumericSummary carries distribution statistics for a numeric column
type NumericSummary struct {
	Mean     float64
	StdDev   float64
	Min      float64
	Max      float64
	Median   float64
	Q25      float64
	Q75      float64
	Skewness float64
	Kurtosis float64
	IsNormal bool
	NormalP  float64
}

// Profiler computes per-column summaries over a record collection
type Profiler struct{}

// NewProfiler creates a new profiler
func NewProfiler() *Profiler {
	return &Profiler{}
}

// ProfileColumns summarizes each named column in order. Integers widen to
// float64 for the numeric statistics.
func (p *Profiler) ProfileColumns(columns []string, records []record.Record) []ColumnProfile {
	profiles := make([]ColumnProfile, 0, len(columns))
	for _, column := range columns {
		profiles = append(profiles, p.profileColumn(column, records))
	}
	return profiles
}

func (p *Profiler) profileColumn(column string, records []record.Record) ColumnProfile {
	profile := ColumnProfile{Column: column, TotalCount: len(records)}

	numeric := make([]float64, 0, len(records))
	for _, rec := range records {
		value, ok := rec.Data[column]
		switch {
		case !ok || value.IsNull():
			profile.NullCount++
		case value.IsBool():
			profile.BoolCount++
		case value.IsInt():
			profile.IntCount++
			numeric = append(numeric, value.AsFloat64())
		case value.IsFloat():
			profile.FloatCount++
			numeric = append(numeric, value.AsFloat64())
		default:
			profile.StringCount++
		}
	}

	if profile.TotalCount > 0 {
		profile.MissingRatio = float64(profile.NullCount) / float64(profile.TotalCount)
	}

	// Numeric statistics only make sense when numbers dominate the
	// non-null values and there is more than one of them.
	nonNull := profile.TotalCount - profile.NullCount
	if len(numeric) >= 2 && len(numeric)*2 >= nonNull {
		if summary, err := summarizeNumeric(numeric); err == nil {
			profile.Numeric = summary
		}
	}

	return profile
}
