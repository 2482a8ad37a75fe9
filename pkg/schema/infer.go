// Package schema infers typed attribute schemas for sources that carry no
// declarations of their own (plain JSON and Graphology documents).
//
// For every attribute key, [Infer] counts how many elements hold a string,
// a number or a boolean under that key. The most frequent type wins. Ties
// go to the type that was observed first for that key.
//
// Observation order is fully determined by the input: records are visited in
// element order and each record's keys in insertion order, which for JSON
// input is document order. Descriptors are emitted in the order their keys
// were first seen.
package schema

import (
	"github.com/matzehuels/graphbridge/pkg/graph"
)

// Infer returns one descriptor per key found in records.
func Infer(records []graph.Attributes) graph.Schema {
	var t Tally
	for _, r := range records {
		t.Observe(r)
	}
	return t.Descriptors()
}

// Complete returns s extended with inferred descriptors for keys in records
// that s does not declare. Exporters use it so every written value refers to
// a declaration.
func Complete(s graph.Schema, records []graph.Attributes) graph.Schema {
	out := append(graph.Schema(nil), s...)
	for _, d := range Infer(records) {
		out.Add(d)
	}
	return out
}

// Tally accumulates type observations. The zero value is ready to use.
type Tally struct {
	keys   []string
	counts map[string]*keyCounts
}

type keyCounts struct {
	order []graph.AttributeType
	n     map[graph.AttributeType]int
}

// Observe records the runtime type of every value in attrs.
func (t *Tally) Observe(attrs graph.Attributes) {
	for k, v := range attrs.All() {
		t.ObserveValue(k, v)
	}
}

// ObserveValue records a single key/value observation. Invalid values are ignored.
func (t *Tally) ObserveValue(key string, v graph.Value) {
	if !v.IsValid() {
		return
	}
	if t.counts == nil {
		t.counts = make(map[string]*keyCounts)
	}
	kc, ok := t.counts[key]
	if !ok {
		kc = &keyCounts{n: make(map[graph.AttributeType]int)}
		t.counts[key] = kc
		t.keys = append(t.keys, key)
	}
	typ := v.Type()
	if kc.n[typ] == 0 {
		kc.order = append(kc.order, typ)
	}
	kc.n[typ]++
}

// Descriptors returns the inferred schema in first-seen key order.
func (t *Tally) Descriptors() graph.Schema {
	out := make(graph.Schema, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, graph.AttributeDescriptor{
			ID:    k,
			Title: k,
			Type:  t.counts[k].winner(),
		})
	}
	return out
}

// winner picks the most frequent type; strict comparison keeps the earliest
// observed type on ties.
func (kc *keyCounts) winner() graph.AttributeType {
	best := graph.TypeString
	top := 0
	for _, typ := range kc.order {
		if kc.n[typ] > top {
			best, top = typ, kc.n[typ]
		}
	}
	return best
}
