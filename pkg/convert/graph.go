package convert

import (
	"github.com/matzehuels/graphbridge/pkg/format/gexf"
	"github.com/matzehuels/graphbridge/pkg/format/graphml"
	"github.com/matzehuels/graphbridge/pkg/format/jsongraph"
	"github.com/matzehuels/graphbridge/pkg/graph"
)

// Graph is an imported graph ready for export.
type Graph struct {
	g *graph.Graph
}

// Wrap returns a handle for a model built elsewhere.
func Wrap(g *graph.Graph) *Graph {
	return &Graph{g: g}
}

// FromJSON imports a plain JSON document.
func FromJSON(data []byte) (*Graph, error) {
	return wrap(jsongraph.Decode(data))
}

// FromGraphology imports a Graphology export.
func FromGraphology(data []byte) (*Graph, error) {
	return wrap(jsongraph.DecodeGraphology(data))
}

// FromGEXF imports a GEXF document.
func FromGEXF(data []byte) (*Graph, error) {
	return wrap(gexf.Unmarshal(data))
}

// FromGraphML imports a GraphML document.
func FromGraphML(data []byte) (*Graph, error) {
	return wrap(graphml.Unmarshal(data))
}

func wrap(g *graph.Graph, err error) (*Graph, error) {
	if err != nil {
		return nil, err
	}
	return &Graph{g: g}, nil
}

// ToJSON exports the graph as plain JSON.
func (g *Graph) ToJSON() ([]byte, error) { return jsongraph.Encode(g.g) }

// ToGraphology exports the graph in the Graphology layout.
func (g *Graph) ToGraphology() ([]byte, error) { return jsongraph.EncodeGraphology(g.g) }

// ToGEXF exports the graph as a GEXF 1.3 document.
func (g *Graph) ToGEXF() ([]byte, error) { return gexf.Marshal(g.g) }

// ToGraphML exports the graph as a GraphML document.
func (g *Graph) ToGraphML() ([]byte, error) { return graphml.Marshal(g.g) }

// Nodes returns a copy of the node list.
func (g *Graph) Nodes() []graph.Node { return g.g.Nodes() }

// Edges returns a copy of the edge list.
func (g *Graph) Edges() []graph.Edge { return g.g.Edges() }

// Attributes returns the graph-level attributes.
func (g *Graph) Attributes() graph.GraphAttributes { return g.g.Attributes() }

// NodeSchema returns the node attribute declarations.
func (g *Graph) NodeSchema() graph.Schema { return g.g.NodeSchema() }

// EdgeSchema returns the edge attribute declarations.
func (g *Graph) EdgeSchema() graph.Schema { return g.g.EdgeSchema() }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.g.NodeCount() }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.g.EdgeCount() }

// Model returns the underlying canonical model. Its setters affect this
// handle.
func (g *Graph) Model() *graph.Graph { return g.g }
