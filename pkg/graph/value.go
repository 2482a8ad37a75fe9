package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AttributeType is the canonical type of an attribute value.
type AttributeType string

// Canonical attribute types.
const (
	TypeString  AttributeType = "string"
	TypeBoolean AttributeType = "boolean"
	TypeNumber  AttributeType = "number"
)

// Value is an attribute value: a string, a number or a boolean.
// The zero Value is invalid and reports an empty Type.
type Value struct {
	typ AttributeType
	str string
	num float64
	b   bool
}

// String returns a string Value.
func String(s string) Value { return Value{typ: TypeString, str: s} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{typ: TypeNumber, num: f} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{typ: TypeBoolean, b: b} }

// Type reports the runtime type of v.
func (v Value) Type() AttributeType { return v.typ }

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool { return v.typ != "" }

// Float returns v as a number. Numeric strings are accepted.
func (v Value) Float() (float64, bool) {
	switch v.typ {
	case TypeNumber:
		return v.num, true
	case TypeString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Boolean returns v as a boolean. The strings "true" and "false" are accepted.
func (v Value) Boolean() (bool, bool) {
	switch v.typ {
	case TypeBoolean:
		return v.b, true
	case TypeString:
		b, err := strconv.ParseBool(strings.TrimSpace(v.str))
		if err != nil {
			return false, false
		}
		return b, true
	}
	return false, false
}

// Text renders v as it appears in XML attribute and element text.
func (v Value) Text() string {
	switch v.typ {
	case TypeNumber:
		return FormatNumber(v.num)
	case TypeBoolean:
		return strconv.FormatBool(v.b)
	default:
		return v.str
	}
}

// Interface returns v as a plain Go value (string, float64 or bool).
func (v Value) Interface() any {
	switch v.typ {
	case TypeNumber:
		return v.num
	case TypeBoolean:
		return v.b
	case TypeString:
		return v.str
	}
	return nil
}

// GoString implements fmt.GoStringer for readable test failures.
func (v Value) GoString() string {
	return fmt.Sprintf("%s(%v)", v.typ, v.Interface())
}

// MarshalJSON encodes v as a JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.typ == TypeNumber && (math.IsNaN(v.num) || math.IsInf(v.num, 0)) {
		return json.Marshal(FormatNumber(v.num))
	}
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes a JSON scalar. Arrays and objects are kept as their
// compact JSON text; null leaves v invalid.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*v, _ = ValueOf(raw)
	return nil
}

// ValueOf converts a decoded JSON value or Go scalar into a Value.
// Nested arrays and objects become strings holding their compact JSON
// encoding. It returns false for nil.
func ValueOf(x any) (Value, bool) {
	switch t := x.(type) {
	case nil:
		return Value{}, false
	case Value:
		return t, t.IsValid()
	case string:
		return String(t), true
	case bool:
		return Bool(t), true
	case float64:
		return Number(t), true
	case float32:
		return Number(float64(t)), true
	case int:
		return Number(float64(t)), true
	case int32:
		return Number(float64(t)), true
	case int64:
		return Number(float64(t)), true
	case uint:
		return Number(float64(t)), true
	case uint32:
		return Number(float64(t)), true
	case uint64:
		return Number(float64(t)), true
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return Number(f), true
		}
		return String(t.String()), true
	}
	data, err := json.Marshal(x)
	if err != nil {
		return String(fmt.Sprint(x)), true
	}
	return String(string(data)), true
}

// Parse converts XML text into a Value of type t. Text that does not parse
// as the declared type is kept as a string.
func Parse(text string, t AttributeType) Value {
	switch t {
	case TypeNumber:
		if f, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			return Number(f)
		}
	case TypeBoolean:
		if b, err := strconv.ParseBool(strings.TrimSpace(text)); err == nil {
			return Bool(b)
		}
	}
	return String(text)
}

// FormatNumber renders f in the shortest form that round-trips.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
