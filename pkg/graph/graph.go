package graph

import "slices"

// Graph is the canonical in-memory graph.
type Graph struct {
	attrs      GraphAttributes
	nodeSchema Schema
	edgeSchema Schema
	nodes      []Node
	edges      []Edge
}

// New assembles a graph. Missing graph attributes take their defaults.
// The slices are owned by the returned Graph.
func New(attrs GraphAttributes, nodeSchema, edgeSchema Schema, nodes []Node, edges []Edge) *Graph {
	return &Graph{
		attrs:      attrs.WithDefaults(),
		nodeSchema: nodeSchema,
		edgeSchema: edgeSchema,
		nodes:      nodes,
		edges:      edges,
	}
}

// Attributes returns the graph-level metadata.
func (g *Graph) Attributes() GraphAttributes { return g.attrs }

// Nodes returns the nodes in import order. The slice is a copy; the
// elements' attribute maps are shared and must not be modified.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// Edges returns the edges in import order, with the same sharing rules as [Graph.Nodes].
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeSchema returns the node attribute declarations.
func (g *Graph) NodeSchema() Schema { return slices.Clone(g.nodeSchema) }

// EdgeSchema returns the edge attribute declarations.
func (g *Graph) EdgeSchema() Schema { return slices.Clone(g.edgeSchema) }

// NodeAttributes returns the attribute maps of all nodes, in node order.
func (g *Graph) NodeAttributes() []Attributes {
	out := make([]Attributes, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Attributes
	}
	return out
}

// EdgeAttributes returns the attribute maps of all edges, in edge order.
func (g *Graph) EdgeAttributes() []Attributes {
	out := make([]Attributes, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.Attributes
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the first node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	for _, n := range g.nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// SetID replaces the graph id. An empty id restores the default.
func (g *Graph) SetID(id string) {
	g.attrs.ID = id
	g.attrs = g.attrs.WithDefaults()
}

// SetEdgeType replaces the default edge type.
func (g *Graph) SetEdgeType(t EdgeType) {
	g.attrs.EdgeType = t
	g.attrs = g.attrs.WithDefaults()
}

// SetMode replaces the graph mode.
func (g *Graph) SetMode(m Mode) {
	g.attrs.Mode = m
	g.attrs = g.attrs.WithDefaults()
}
