package gexf

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/graphbridge/pkg/buildinfo"
	"github.com/matzehuels/graphbridge/pkg/color"
	"github.com/matzehuels/graphbridge/pkg/graph"
	"github.com/matzehuels/graphbridge/pkg/reserved"
	"github.com/matzehuels/graphbridge/pkg/schema"
)

// Marshal renders g as a GEXF 1.3 document.
func Marshal(g *graph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders g as a GEXF 1.3 document to w.
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

func build(g *graph.Graph) outDocument {
	ga := g.Attributes()
	nodes := g.Nodes()
	edges := g.Edges()

	nodeSchema := schema.Complete(g.NodeSchema(), g.NodeAttributes())
	edgeSchema := schema.Complete(g.EdgeSchema(), g.EdgeAttributes())
	nodeExtra := extraAttributes(nodeSchema, reserved.GEXF.SynthesizeNodes(nodes, nodeSchema))
	edgeExtra := extraAttributes(edgeSchema, reserved.GEXF.SynthesizeEdges(edges, edgeSchema))

	out := outGraph{
		ID:              ga.ID,
		DefaultEdgeType: string(ga.EdgeType),
		Mode:            string(ga.Mode),
		Attributes: []outAttributes{
			attributeBlock("node", nodeSchema, nodeExtra),
			attributeBlock("edge", edgeSchema, edgeExtra),
		},
	}

	out.Nodes.Nodes = make([]outNode, 0, len(nodes))
	for _, n := range nodes {
		on := outNode{
			ID:        n.ID,
			Label:     n.Label,
			Start:     n.Start,
			End:       n.End,
			AttValues: attValues(n.Attributes, reserved.GEXF.NodeFields(n), nodeExtra),
			Color:     vizColor(n.Color),
			Size:      vizValue(n.Size),
		}
		if n.HasPosition() {
			on.Position = &outPosition{X: number(n.X), Y: number(n.Y), Z: number(n.Z)}
		}
		if n.Shape != "" {
			on.Shape = &outValue{Value: n.Shape}
		}
		out.Nodes.Nodes = append(out.Nodes.Nodes, on)
	}

	out.Edges.Edges = make([]outEdge, 0, len(edges))
	for i, e := range edges {
		oe := outEdge{
			ID:        e.Ident(),
			Source:    e.Source,
			Target:    e.Target,
			Label:     e.Label,
			Weight:    number(e.Weight),
			Start:     e.Start,
			End:       e.End,
			AttValues: attValues(e.Attributes, reserved.GEXF.EdgeFields(e), edgeExtra),
			Color:     vizColor(e.Color),
			Thickness: vizValue(e.Thickness),
		}
		if oe.ID == "" {
			oe.ID = "e" + strconv.Itoa(i)
		}
		if e.Undirected != nil {
			oe.Type = "directed"
			if *e.Undirected {
				oe.Type = "undirected"
			}
		}
		if e.Shape != "" {
			oe.Shape = &outValue{Value: e.Shape}
		}
		out.Edges.Edges = append(out.Edges.Edges, oe)
	}

	return outDocument{
		Xmlns:          Namespace,
		XmlnsViz:       VizNamespace,
		XmlnsXSI:       XSINamespace,
		SchemaLocation: SchemaLocation,
		Version:        Version,
		Meta:           outMeta{Creator: buildinfo.Creator()},
		Graph:          out,
	}
}

// extraAttribute is a synthesized reserved declaration with its attribute id.
type extraAttribute struct {
	reserved.Synthesized
	ID string
}

// extraAttributes assigns ids to synthesized declarations, prefixing "e_"
// while the schema already uses an id.
func extraAttributes(s graph.Schema, synth []reserved.Synthesized) []extraAttribute {
	out := make([]extraAttribute, 0, len(synth))
	for _, x := range synth {
		id := x.Name
		for s.Has(id) {
			id = "e_" + id
		}
		out = append(out, extraAttribute{Synthesized: x, ID: id})
	}
	return out
}

func attributeBlock(class string, s graph.Schema, extra []extraAttribute) outAttributes {
	block := outAttributes{Class: class, Mode: "static"}
	for _, d := range s {
		block.Attributes = append(block.Attributes, outAttribute{ID: d.ID, Title: d.Name(), Type: exportType(d.Type)})
	}
	for _, x := range extra {
		block.Attributes = append(block.Attributes, outAttribute{ID: x.ID, Title: x.Name, Type: x.Type})
	}
	return block
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

func attValues(attrs, fields graph.Attributes, extra []extraAttribute) *outAttValues {
	var out outAttValues
	for k, v := range attrs.All() {
		out.Values = append(out.Values, outAttValue{For: k, Value: v.Text()})
	}
	for _, x := range extra {
		if v, ok := fields.Get(x.Name); ok {
			out.Values = append(out.Values, outAttValue{For: x.ID, Value: v.Text()})
		}
	}
	if len(out.Values) == 0 {
		return nil
	}
	return &out
}

func vizColor(c *color.RGB) *outColor {
	if c == nil {
		return nil
	}
	return &outColor{R: c.R, G: c.G, B: c.B}
}

func vizValue(f *float64) *outValue {
	if f == nil {
		return nil
	}
	return &outValue{Value: graph.FormatNumber(*f)}
}

func number(f *float64) string {
	if f == nil {
		return ""
	}
	return graph.FormatNumber(*f)
}
