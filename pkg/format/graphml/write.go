package graphml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/graphbridge/pkg/graph"
	"github.com/matzehuels/graphbridge/pkg/reserved"
	"github.com/matzehuels/graphbridge/pkg/schema"
)

// Marshal renders g as a GraphML document.
func Marshal(g *graph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders g as a GraphML document to w.
func Write(w io.Writer, g *graph.Graph) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(build(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// keyTable assigns document-unique key ids to one element class.
type keyTable struct {
	class  string
	attrs  map[string]string // attribute id -> key id
	fields map[string]string // reserved name -> key id
	taken  map[string]bool   // shared across classes
	keys   []outKey
}

func newKeyTable(class string, taken map[string]bool) *keyTable {
	return &keyTable{
		class:  class,
		attrs:  make(map[string]string),
		fields: make(map[string]string),
		taken:  taken,
	}
}

func (kt *keyTable) add(name, title, typ string) string {
	id := name
	for kt.taken[id] {
		id = "e_" + id
	}
	kt.taken[id] = true
	kt.keys = append(kt.keys, outKey{ID: id, For: kt.class, Name: title, Type: typ})
	return id
}

// declare writes the schema keys before the reserved ones so that a
// reserved key sharing a name with an attribute is declared last.
func (kt *keyTable) declare(s graph.Schema, extra []reserved.Synthesized) {
	for _, d := range s {
		kt.attrs[d.ID] = kt.add(d.ID, d.Name(), exportType(d.Type))
	}
	for _, x := range extra {
		kt.fields[x.Name] = kt.add(x.Name, x.Name, x.Type)
	}
}

func (kt *keyTable) data(attrs, fields graph.Attributes, extra []reserved.Synthesized) []outData {
	var out []outData
	for k, v := range attrs.All() {
		out = append(out, outData{Key: kt.attrs[k], Value: v.Text()})
	}
	for _, x := range extra {
		if v, ok := fields.Get(x.Name); ok {
			out = append(out, outData{Key: kt.fields[x.Name], Value: v.Text()})
		}
	}
	return out
}

func build(g *graph.Graph) outDocument {
	ga := g.Attributes()
	nodes := g.Nodes()
	edges := g.Edges()

	nodeSchema := schema.Complete(g.NodeSchema(), g.NodeAttributes())
	edgeSchema := schema.Complete(g.EdgeSchema(), g.EdgeAttributes())
	nodeExtra := reserved.GraphML.SynthesizeNodes(nodes, nodeSchema)
	edgeExtra := reserved.GraphML.SynthesizeEdges(edges, edgeSchema)

	taken := make(map[string]bool)
	nk := newKeyTable("node", taken)
	ek := newKeyTable("edge", taken)
	nk.declare(nodeSchema, nodeExtra)
	ek.declare(edgeSchema, edgeExtra)

	defaultUndirected := ga.EdgeType == graph.EdgeUndirected
	out := outGraph{ID: ga.ID, EdgeDefault: "directed"}
	if defaultUndirected {
		out.EdgeDefault = "undirected"
	}

	out.Nodes = make([]outNode, 0, len(nodes))
	for _, n := range nodes {
		out.Nodes = append(out.Nodes, outNode{
			ID:   n.ID,
			Data: nk.data(n.Attributes, reserved.GraphML.NodeFields(n), nodeExtra),
		})
	}

	out.Edges = make([]outEdge, 0, len(edges))
	for _, e := range edges {
		oe := outEdge{
			ID:     e.Ident(),
			Source: e.Source,
			Target: e.Target,
			Data:   ek.data(e.Attributes, reserved.GraphML.EdgeFields(e), edgeExtra),
		}
		if e.Undirected != nil && *e.Undirected != defaultUndirected {
			oe.Directed = strconv.FormatBool(!*e.Undirected)
		}
		out.Edges = append(out.Edges, oe)
	}

	return outDocument{
		Xmlns:          Namespace,
		XmlnsXSI:       XSINamespace,
		SchemaLocation: SchemaLocation,
		Keys:           append(nk.keys, ek.keys...),
		Graph:          out,
	}
}

func exportType(t graph.AttributeType) string {
	switch t {
	case graph.TypeNumber:
		return "double"
	case graph.TypeBoolean:
		return "boolean"
	}
	return "string"
}
