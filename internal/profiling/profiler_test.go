package profiling

import (
	"math"
	"testing"

	"sheetpick/domain/record"
)

func recordsFromColumn(column string, values []record.Value) []record.Record {
	records := make([]record.Record, len(values))
	for i, v := range values {
		records[i] = record.Record{ID: i + 1, Data: map[string]record.Value{column: v}}
	}
	return records
}

// TestProfileNumericColumn tests summary statistics on a hand-computed column
func TestProfileNumericColumn(t *testing.T) {
	values := []record.Value{
		record.Int(2), record.Int(4), record.Int(4), record.Int(4),
		record.Int(5), record.Int(5), record.Int(7), record.Int(9),
	}

	profiles := NewProfiler().ProfileColumns([]string{"score"}, recordsFromColumn("score", values))
	if len(profiles) != 1 {
		t.Fatalf("Expected 1 profile, got %d", len(profiles))
	}

	p := profiles[0]
	if p.IntCount != 8 || p.NullCount != 0 {
		t.Errorf("Expected 8 ints and 0 nulls, got %d ints and %d nulls", p.IntCount, p.NullCount)
	}
	if p.Numeric == nil {
		t.Fatal("Expected a numeric summary for an all-int column")
	}
	if p.Numeric.Mean != 5 {
		t.Errorf("Expected mean 5, got %v", p.Numeric.Mean)
	}
	if p.Numeric.StdDev != 2 {
		t.Errorf("Expected stddev 2, got %v", p.Numeric.StdDev)
	}
	if p.Numeric.Min != 2 || p.Numeric.Max != 9 {
		t.Errorf("Expected range [2, 9], got [%v, %v]", p.Numeric.Min, p.Numeric.Max)
	}
	if p.Numeric.Median != 4.5 {
		t.Errorf("Expected median 4.5, got %v", p.Numeric.Median)
	}
	if p.Numeric.Q25 > p.Numeric.Median || p.Numeric.Median > p.Numeric.Q75 {
		t.Errorf("Expected Q25 <= median <= Q75, got Q25=%v median=%v Q75=%v",
			p.Numeric.Q25, p.Numeric.Median, p.Numeric.Q75)
	}
	if p.Numeric.NormalP < 0 || p.Numeric.NormalP > 1 {
		t.Errorf("Expected p-value in [0,1], got %v", p.Numeric.NormalP)
	}
	if math.IsNaN(p.Numeric.Skewness) || math.IsNaN(p.Numeric.Kurtosis) {
		t.Error("Expected finite shape statistics")
	}
}

// TestProfileMixedColumn tests kind tallies and the missing ratio
func TestProfileMixedColumn(t *testing.T) {
	values := []record.Value{
		record.String("a"), record.String("b"), record.String("c"),
		record.Int(1), record.Int(2),
		record.Bool(true),
		record.Null(), record.Null(),
	}

	p := NewProfiler().ProfileColumns([]string{"mixed"}, recordsFromColumn("mixed", values))[0]

	if p.TotalCount != 8 {
		t.Errorf("Expected total 8, got %d", p.TotalCount)
	}
	if p.StringCount != 3 || p.IntCount != 2 || p.BoolCount != 1 || p.NullCount != 2 {
		t.Errorf("Unexpected tallies: %d strings, %d ints, %d bools, %d nulls",
			p.StringCount, p.IntCount, p.BoolCount, p.NullCount)
	}
	if p.MissingRatio != 0.25 {
		t.Errorf("Expected missing ratio 0.25, got %v", p.MissingRatio)
	}
	// 2 numeric out of 6 non-null values: numbers do not dominate.
	if p.Numeric != nil {
		t.Error("Expected no numeric summary when strings dominate")
	}
}

// TestProfileSymmetricColumnLooksNormal tests the normality probe on
// symmetric data, where the shape statistics stay near their normal values
func TestProfileSymmetricColumnLooksNormal(t *testing.T) {
	values := make([]record.Value, 0, 8)
	for i := 1; i <= 8; i++ {
		values = append(values, record.Int(int64(i)))
	}

	p := NewProfiler().ProfileColumns([]string{"v"}, recordsFromColumn("v", values))[0]
	if p.Numeric == nil {
		t.Fatal("Expected a numeric summary")
	}
	if !p.Numeric.IsNormal {
		t.Errorf("Expected symmetric data to pass the probe, p-value %v", p.Numeric.NormalP)
	}
	if math.Abs(p.Numeric.Skewness) > 1e-9 {
		t.Errorf("Expected near-zero skewness for symmetric data, got %v", p.Numeric.Skewness)
	}
}

// TestProfileMissingColumnKey tests that absent keys count as nulls
func TestProfileMissingColumnKey(t *testing.T) {
	records := []record.Record{
		{ID: 1, Data: map[string]record.Value{"present": record.Int(1)}},
		{ID: 2, Data: map[string]record.Value{}},
	}

	p := NewProfiler().ProfileColumns([]string{"present"}, records)[0]
	if p.NullCount != 1 || p.IntCount != 1 {
		t.Errorf("Expected 1 null and 1 int, got %d nulls and %d ints", p.NullCount, p.IntCount)
	}
}

// TestProfileEmptyRecords tests profiling with nothing loaded
func TestProfileEmptyRecords(t *testing.T) {
	p := NewProfiler().ProfileColumns([]string{"a"}, nil)[0]
	if p.TotalCount != 0 || p.MissingRatio != 0 {
		t.Errorf("Expected zeroed profile, got total %d ratio %v", p.TotalCount, p.MissingRatio)
	}
	if p.Numeric != nil {
		t.Error("Expected no numeric summary for empty input")
	}
}
