package graph

import (
	"bytes"
	"encoding/json"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Attributes is an insertion-ordered map of attribute values.
// The zero value is empty and ready to use. Copies share storage; use
// [Attributes.Clone] for an independent map.
type Attributes struct {
	m *orderedmap.OrderedMap[string, Value]
}

// AttributesOf builds Attributes from key/value pairs in argument order.
// It panics on an odd number of arguments; intended for tests and examples.
func AttributesOf(kv ...any) Attributes {
	if len(kv)%2 != 0 {
		panic("graph: AttributesOf needs key/value pairs")
	}
	var a Attributes
	for i := 0; i < len(kv); i += 2 {
		if v, ok := ValueOf(kv[i+1]); ok {
			a.Set(kv[i].(string), v)
		}
	}
	return a
}

// Get returns the value for key.
func (a Attributes) Get(key string) (Value, bool) {
	if a.m == nil {
		return Value{}, false
	}
	return a.m.Get(key)
}

// Has reports whether key is present.
func (a Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Set stores v under key. Existing keys keep their position.
func (a *Attributes) Set(key string, v Value) {
	if a.m == nil {
		a.m = orderedmap.New[string, Value]()
	}
	a.m.Set(key, v)
}

// Delete removes key and returns its previous value.
func (a *Attributes) Delete(key string) (Value, bool) {
	if a.m == nil {
		return Value{}, false
	}
	return a.m.Delete(key)
}

// Len returns the number of entries.
func (a Attributes) Len() int {
	if a.m == nil {
		return 0
	}
	return a.m.Len()
}

// Keys returns the keys in insertion order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, a.Len())
	for k := range a.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates entries in insertion order.
func (a Attributes) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if a.m == nil {
			return
		}
		for pair := a.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	var out Attributes
	for k, v := range a.All() {
		out.Set(k, v)
	}
	return out
}

// Map returns the entries as plain Go values.
func (a Attributes) Map() map[string]any {
	out := make(map[string]any, a.Len())
	for k, v := range a.All() {
		out[k] = v.Interface()
	}
	return out
}

// MarshalJSON encodes the entries as a JSON object in insertion order.
func (a Attributes) MarshalJSON() ([]byte, error) {
	if a.m == nil {
		return []byte("{}"), nil
	}
	return a.m.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping document key order.
// Null members are dropped.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	raw := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, raw); err != nil {
		return err
	}
	a.m = nil
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		var v Value
		if err := json.Unmarshal(pair.Value, &v); err != nil {
			return err
		}
		if v.IsValid() {
			a.Set(pair.Key, v)
		}
	}
	return nil
}
