package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON encodes the value as its bare scalar, never as the tagged
// struct, so a record serializes as {"id":1,"data":{"name":"Ana","age":30}}.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		if v.BoolVal != nil {
			return json.Marshal(*v.BoolVal)
		}
	case KindInt:
		if v.IntVal != nil {
			return json.Marshal(*v.IntVal)
		}
	case KindFloat:
		if v.FloatVal != nil {
			return json.Marshal(*v.FloatVal)
		}
	case KindString:
		if v.StringVal != nil {
			return json.Marshal(*v.StringVal)
		}
	}
	return nil, fmt.Errorf("cannot marshal value with kind %q and no payload", v.Kind)
}

// UnmarshalJSON decodes a bare scalar back into a typed value. Number
// literals that parse as int64 decode as integers, everything else numeric
// decodes as float; this mirrors how cells are normalized on load.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("cannot unmarshal empty input into value")
	}
	if bytes.Equal(data, []byte("null")) {
		*v = Null()
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to unmarshal string value: %w", err)
		}
		*v = String(s)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("failed to unmarshal boolean value: %w", err)
		}
		*v = Bool(b)
		return nil
	case '{', '[':
		return fmt.Errorf("cannot unmarshal composite JSON into scalar value")
	default:
		if n, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			*v = Int(n)
			return nil
		}
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("failed to unmarshal numeric value: %w", err)
		}
		*v = Float(f)
		return nil
	}
}
