package jsongraph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/matzehuels/graphbridge/pkg/graph"
	"github.com/matzehuels/graphbridge/pkg/reserved"
)

type element = orderedmap.OrderedMap[string, any]

type document struct {
	Attributes *element   `json:"attributes"`
	Options    *options   `json:"options,omitempty"`
	Nodes      []*element `json:"nodes"`
	Edges      []*element `json:"edges"`
}

type options struct {
	Type           string `json:"type"`
	Multi          bool   `json:"multi"`
	AllowSelfLoops bool   `json:"allowSelfLoops"`
}

// Encode writes g as a plain JSON document.
func Encode(g *graph.Graph) ([]byte, error) {
	return marshal(buildDocument(g, false))
}

// EncodeGraphology writes g in the Graphology export layout.
func EncodeGraphology(g *graph.Graph) ([]byte, error) {
	return marshal(buildDocument(g, true))
}

// Write encodes g as plain JSON to w.
func Write(w io.Writer, g *graph.Graph) error {
	return write(w, buildDocument(g, false))
}

// WriteGraphology encodes g as Graphology JSON to w.
func WriteGraphology(w io.Writer, g *graph.Graph) error {
	return write(w, buildDocument(g, true))
}

func marshal(doc document) ([]byte, error) {
	var buf bytes.Buffer
	if err := write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func write(w io.Writer, doc document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func buildDocument(g *graph.Graph, graphology bool) document {
	ga := g.Attributes()
	attrs := orderedmap.New[string, any]()
	if graphology {
		attrs.Set("name", ga.ID)
	}
	attrs.Set("id", ga.ID)
	attrs.Set("edgeType", string(ga.EdgeType))
	attrs.Set("mode", string(ga.Mode))

	doc := document{
		Attributes: attrs,
		Nodes:      make([]*element, 0, g.NodeCount()),
		Edges:      make([]*element, 0, g.EdgeCount()),
	}
	if graphology {
		doc.Options = &options{
			Type:           graphologyType(ga.EdgeType),
			Multi:          true,
			AllowSelfLoops: true,
		}
	}

	for _, n := range g.Nodes() {
		el := orderedmap.New[string, any]()
		if graphology {
			el.Set("key", n.ID)
		}
		fill(el, reserved.JSON.NodeFields(n), n.Attributes)
		doc.Nodes = append(doc.Nodes, el)
	}

	for _, e := range g.Edges() {
		el := orderedmap.New[string, any]()
		if graphology {
			key := e.Key
			if key == "" {
				key = e.ID
			}
			if key != "" {
				el.Set("key", key)
			}
			if e.Undirected == nil {
				e.Undirected = graph.Flag(ga.EdgeType == graph.EdgeUndirected)
			}
		}
		fill(el, reserved.JSON.EdgeFields(e), e.Attributes)
		doc.Edges = append(doc.Edges, el)
	}
	return doc
}

// fill appends reserved fields in table order followed by a nested
// attributes object, omitted when empty. Existing members are not replaced.
func fill(el *element, fields, attrs graph.Attributes) {
	for k, v := range fields.All() {
		if _, ok := el.Get(k); !ok {
			el.Set(k, v)
		}
	}
	if attrs.Len() > 0 {
		el.Set(nestedKey, attrs)
	}
}

func graphologyType(t graph.EdgeType) string {
	switch t {
	case graph.EdgeDirected:
		return "directed"
	case graph.EdgeUndirected:
		return "undirected"
	}
	return "mixed"
}
