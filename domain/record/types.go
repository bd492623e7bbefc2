package record

import (
	"fmt"
	"strconv"
)

// Record is one normalized spreadsheet row: a stable identifier plus a
// column-keyed payload of scalar values.
type Record struct {
	ID   int              `json:"id"`
	Data map[string]Value `json:"data"`
}

// Clone returns a copy of the record with its own payload map.
// Values are immutable scalars and are shared between the copies.
func (r Record) Clone() Record {
	data := make(map[string]Value, len(r.Data))
	for k, v := range r.Data {
		data[k] = v
	}
	return Record{ID: r.ID, Data: data}
}

// Value represents a typed scalar cell with deterministic normalization
type Value struct {
	Kind      Kind
	BoolVal   *bool
	IntVal    *int64
	FloatVal  *float64
	StringVal *string
}

// Kind defines the storage type for cell values
type Kind string

const (
	KindNull   Kind = "null"
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindString Kind = "string"
)

// Null creates a null value
func Null() Value {
	return Value{Kind: KindNull}
}

// Bool creates a boolean value
func Bool(b bool) Value {
	return Value{Kind: KindBool, BoolVal: &b}
}

// Int creates an integer value
func Int(n int64) Value {
	return Value{Kind: KindInt, IntVal: &n}
}

// Float creates a floating-point value
func Float(f float64) Value {
	return Value{Kind: KindFloat, FloatVal: &f}
}

// String creates a string value
func String(s string) Value {
	return Value{Kind: KindString, StringVal: &s}
}

// IsNull returns true if the value is null
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// IsBool returns true if the value holds a valid boolean
func (v Value) IsBool() bool {
	return v.Kind == KindBool && v.BoolVal != nil
}

// IsInt returns true if the value holds a valid integer
func (v Value) IsInt() bool {
	return v.Kind == KindInt && v.IntVal != nil
}

// IsFloat returns true if the value holds a valid float
func (v Value) IsFloat() bool {
	return v.Kind == KindFloat && v.FloatVal != nil
}

// IsString returns true if the value holds a valid string
func (v Value) IsString() bool {
	return v.Kind == KindString && v.StringVal != nil
}

// IsNumeric returns true if the value holds an integer or a float
func (v Value) IsNumeric() bool {
	return v.IsInt() || v.IsFloat()
}

// AsBool returns the boolean value, or false if not a boolean
func (v Value) AsBool() bool {
	if v.BoolVal != nil {
		return *v.BoolVal
	}
	return false
}

// AsInt returns the integer value, or 0 if not an integer
func (v Value) AsInt() int64 {
	if v.IntVal != nil {
		return *v.IntVal
	}
	return 0
}

// AsFloat64 returns the numeric value as float64, or 0 if not numeric.
// Integers widen.
func (v Value) AsFloat64() float64 {
	if v.FloatVal != nil {
		return *v.FloatVal
	}
	if v.IntVal != nil {
		return float64(*v.IntVal)
	}
	return 0.0
}

// AsString returns the string value, or empty string if not a string
func (v Value) AsString() string {
	if v.StringVal != nil {
		return *v.StringVal
	}
	return ""
}

// String returns the display representation of the value
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "<null>"
	case KindBool:
		if v.BoolVal != nil {
			return fmt.Sprintf("%t", *v.BoolVal)
		}
	case KindInt:
		if v.IntVal != nil {
			return strconv.FormatInt(*v.IntVal, 10)
		}
	case KindFloat:
		if v.FloatVal != nil {
			return strconv.FormatFloat(*v.FloatVal, 'g', -1, 64)
		}
	case KindString:
		if v.StringVal != nil {
			return *v.StringVal
		}
	}
	return "<invalid>"
}
