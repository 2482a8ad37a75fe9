package reserved

import (
	"slices"

	"github.com/matzehuels/graphbridge/pkg/graph"
)

// Synthesized is a declaration the exporter must add for a reserved field.
type Synthesized struct {
	Name string
	Type string
}

// Synthesize returns, in table order, every declared-kind reserved field of
// scope s that appears in at least one record or whose name is also used by
// a schema attribute. Exporters declare the schema first, so the reserved
// declaration comes last and wins on import. Records are produced by
// [Table.NodeFields] or [Table.EdgeFields].
func (t *Table) Synthesize(records []graph.Attributes, s Scope, schema graph.Schema) []Synthesized {
	names := make(map[string]bool, len(schema))
	for _, d := range schema {
		names[d.Name()] = true
	}
	var out []Synthesized
	for _, e := range t.entries {
		if !e.Declared || e.Scope&s == 0 {
			continue
		}
		if names[e.Name] || slices.ContainsFunc(records, func(r graph.Attributes) bool { return r.Has(e.Name) }) {
			out = append(out, Synthesized{Name: e.Name, Type: e.Type})
		}
	}
	return out
}

// SynthesizeNodes is Synthesize over the reserved fields of nodes.
func (t *Table) SynthesizeNodes(nodes []graph.Node, schema graph.Schema) []Synthesized {
	records := make([]graph.Attributes, len(nodes))
	for i, n := range nodes {
		records[i] = t.NodeFields(n)
	}
	return t.Synthesize(records, ScopeNode, schema)
}

// SynthesizeEdges is Synthesize over the reserved fields of edges.
func (t *Table) SynthesizeEdges(edges []graph.Edge, schema graph.Schema) []Synthesized {
	records := make([]graph.Attributes, len(edges))
	for i, e := range edges {
		records[i] = t.EdgeFields(e)
	}
	return t.Synthesize(records, ScopeEdge, schema)
}
