package gexf

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	errs "github.com/matzehuels/graphbridge/pkg/errors"
	"github.com/matzehuels/graphbridge/pkg/graph"
	"github.com/matzehuels/graphbridge/pkg/reserved"
)

// Read parses a GEXF document from r. Read does not close r.
func Read(r io.Reader) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return Unmarshal(data)
}

// Unmarshal parses a GEXF document.
func Unmarshal(data []byte) (*graph.Graph, error) {
	var doc rawDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, decodeError(err)
	}
	if doc.Graph == nil {
		return nil, errs.Malformed("missing <graph> element")
	}
	if doc.Graph.Nodes == nil {
		return nil, errs.Malformed("missing <nodes> element")
	}

	g := doc.Graph
	nodeDecl := declarations(g.Attributes, "node", reserved.ScopeNode)
	edgeDecl := declarations(g.Attributes, "edge", reserved.ScopeEdge)

	nodes := make([]graph.Node, 0, len(g.Nodes.Nodes))
	for i, rn := range g.Nodes.Nodes {
		rec := nodeRecord(rn)
		free := nodeDecl.apply(&rec, rn.AttValues.Values)
		n, err := reserved.GEXF.NodeFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		merge(&n.Attributes, free)
		nodes = append(nodes, n)
	}

	var rawEdges []rawEdge
	if g.Edges != nil {
		rawEdges = g.Edges.Edges
	}
	edges := make([]graph.Edge, 0, len(rawEdges))
	for i, re := range rawEdges {
		rec := edgeRecord(re)
		free := edgeDecl.apply(&rec, re.AttValues.Values)
		e, err := reserved.GEXF.EdgeFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		merge(&e.Attributes, free)
		edges = append(edges, e)
	}

	attrs := graph.GraphAttributes{
		ID:       g.ID,
		EdgeType: graph.EdgeType(g.DefaultEdgeType),
		Mode:     graph.Mode(g.Mode),
	}
	return graph.New(attrs, nodeDecl.schema, edgeDecl.schema, nodes, edges), nil
}

// decodeError separates text that is not XML from XML of the wrong shape.
func decodeError(err error) error {
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errs.Wrap(errs.ErrCodeParse, err, "parse gexf")
	}
	return errs.Malformed("not a GEXF document")
}

// declared holds one class of attribute declarations.
type declared struct {
	schema   graph.Schema
	types    map[string]graph.AttributeType
	promoted map[string]reserved.Entry
}

// declarations collects the attributes of one class. When several
// attributes resolve to the same reserved field, the last one is promoted
// and the others stay free-form.
func declarations(blocks []rawAttributes, class string, scope reserved.Scope) *declared {
	d := &declared{
		types:    make(map[string]graph.AttributeType),
		promoted: make(map[string]reserved.Entry),
	}
	var attrs []rawAttribute
	winner := make(map[string]string)
	for _, block := range blocks {
		if block.Class != class {
			continue
		}
		for _, a := range block.Attributes {
			attrs = append(attrs, a)
			if e, ok := reserved.GEXF.Resolve(a.ID, a.Title, scope); ok {
				winner[e.Name] = a.ID
			}
		}
	}
	for _, a := range attrs {
		typ := importType(a.Type)
		d.types[a.ID] = typ
		if e, ok := reserved.GEXF.Resolve(a.ID, a.Title, scope); ok && winner[e.Name] == a.ID {
			d.promoted[a.ID] = e
			continue
		}
		d.schema.Add(graph.AttributeDescriptor{ID: a.ID, Title: a.Title, Type: typ})
	}
	return d
}

// apply sorts attribute values into rec and the returned free-form
// attributes. Values of reserved declarations are stored in rec under the
// reserved name unless rec already carries that field. Undeclared values
// are kept as strings and declared on the fly.
func (d *declared) apply(rec *graph.Attributes, values []rawAttValue) graph.Attributes {
	var free graph.Attributes
	for _, av := range values {
		if av.For == "" {
			continue
		}
		if e, ok := d.promoted[av.For]; ok {
			if !rec.Has(e.Name) {
				rec.Set(e.Name, graph.Parse(av.Value, d.types[av.For]))
			}
			continue
		}
		typ, ok := d.types[av.For]
		if !ok {
			typ = graph.TypeString
			d.types[av.For] = typ
			d.schema.Add(graph.AttributeDescriptor{ID: av.For, Type: typ})
		}
		free.Set(av.For, graph.Parse(av.Value, typ))
	}
	return free
}

// merge adds free-form attributes after reconciliation so that they never
// feed a reserved field.
func merge(dst *graph.Attributes, free graph.Attributes) {
	for k, v := range free.All() {
		dst.Set(k, v)
	}
}

func importType(t string) graph.AttributeType {
	switch t {
	case "integer", "long", "double", "float", "short", "byte":
		return graph.TypeNumber
	case "boolean":
		return graph.TypeBoolean
	}
	return graph.TypeString
}

func nodeRecord(rn rawNode) graph.Attributes {
	var rec graph.Attributes
	setText(&rec, "id", rn.ID)
	setText(&rec, "label", rn.Label)
	if c, ok := rn.Color.text(); ok {
		rec.Set("color", graph.String(c))
	}
	if p := rn.Position; p != nil {
		setPtr(&rec, "x", p.X)
		setPtr(&rec, "y", p.Y)
		setPtr(&rec, "z", p.Z)
	}
	if rn.Size != nil {
		setText(&rec, "size", rn.Size.Value)
	}
	if rn.Shape != nil {
		setText(&rec, "shape", rn.Shape.Value)
	}
	setText(&rec, "start", rn.Start)
	setText(&rec, "end", rn.End)
	return rec
}

func edgeRecord(re rawEdge) graph.Attributes {
	var rec graph.Attributes
	setText(&rec, "id", re.ID)
	rec.Set("source", graph.String(re.Source))
	rec.Set("target", graph.String(re.Target))
	setText(&rec, "label", re.Label)
	setText(&rec, "weight", re.Weight)
	switch re.Type {
	case "undirected":
		rec.Set("undirected", graph.Bool(true))
	case "directed":
		rec.Set("undirected", graph.Bool(false))
	}
	if c, ok := re.Color.text(); ok {
		rec.Set("color", graph.String(c))
	}
	if re.Thickness != nil {
		setText(&rec, "thickness", re.Thickness.Value)
	}
	if re.Shape != nil {
		setText(&rec, "shape", re.Shape.Value)
	}
	setText(&rec, "start", re.Start)
	setText(&rec, "end", re.End)
	return rec
}

// text renders a viz:color element as a color string. Missing channels
// are 0.
func (c *rawColor) text() (string, bool) {
	if c == nil {
		return "", false
	}
	if c.Hex != "" {
		return c.Hex, true
	}
	if c.R == nil && c.G == nil && c.B == nil {
		return "", false
	}
	channel := func(p *string) string {
		if p == nil || *p == "" {
			return "0"
		}
		return *p
	}
	return fmt.Sprintf("rgb(%s,%s,%s)", channel(c.R), channel(c.G), channel(c.B)), true
}

func setText(rec *graph.Attributes, key, v string) {
	if v != "" {
		rec.Set(key, graph.String(v))
	}
}

func setPtr(rec *graph.Attributes, key string, p *string) {
	if p != nil {
		setText(rec, key, *p)
	}
}
