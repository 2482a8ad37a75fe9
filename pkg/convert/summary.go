package convert

import "github.com/matzehuels/graphbridge/pkg/graph"

// Summary is a compact description of a graph, used by inspect.
type Summary struct {
	ID         string                      `json:"id"`
	EdgeType   graph.EdgeType              `json:"edgeType"`
	Mode       graph.Mode                  `json:"mode"`
	Nodes      int                         `json:"nodes"`
	Edges      int                         `json:"edges"`
	NodeSchema []graph.AttributeDescriptor `json:"nodeSchema"`
	EdgeSchema []graph.AttributeDescriptor `json:"edgeSchema"`
	// Reserved counts how many elements carry each reserved field.
	Reserved map[string]int `json:"reserved,omitempty"`
}

// Summary describes g.
func (g *Graph) Summary() Summary {
	ga := g.Attributes()
	s := Summary{
		ID:         ga.ID,
		EdgeType:   ga.EdgeType,
		Mode:       ga.Mode,
		Nodes:      g.NodeCount(),
		Edges:      g.EdgeCount(),
		NodeSchema: nonNil(g.NodeSchema()),
		EdgeSchema: nonNil(g.EdgeSchema()),
	}

	count := func(name string) {
		if s.Reserved == nil {
			s.Reserved = make(map[string]int)
		}
		s.Reserved[name]++
	}
	for _, n := range g.Nodes() {
		if n.Label != "" {
			count("label")
		}
		if n.Color != nil {
			count("color")
		}
		if n.Size != nil {
			count("size")
		}
		if n.HasPosition() {
			count("position")
		}
	}
	for _, e := range g.Edges() {
		if e.Weight != nil {
			count("weight")
		}
		if e.Undirected != nil {
			count("undirected")
		}
	}
	return s
}

func nonNil(s graph.Schema) []graph.AttributeDescriptor {
	if s == nil {
		return []graph.AttributeDescriptor{}
	}
	return s
}
