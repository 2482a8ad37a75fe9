package reserved

import (
	"github.com/matzehuels/graphbridge/pkg/color"
	errs "github.com/matzehuels/graphbridge/pkg/errors"
	"github.com/matzehuels/graphbridge/pkg/graph"
)

// fields collects reserved values while a record is split.
type fields struct {
	id, source, target, key string
	label, edgeLabel, shape string
	start, end              string
	x, y, z                 *float64
	size, weight, thickness *float64
	color                   *color.RGB
	r, g, b                 *float64
	undirected              *bool
	attrs                   graph.Attributes
}

func (t *Table) split(rec graph.Attributes, s Scope) (*fields, error) {
	f := &fields{}
	for k, v := range rec.All() {
		e, ok := t.Lookup(k, s)
		if !ok {
			f.attrs.Set(k, v)
			continue
		}
		if err := f.apply(e, v); err != nil {
			return nil, err
		}
	}
	if f.color == nil && (f.r != nil || f.g != nil || f.b != nil) {
		c := color.FromComponents(deref(f.r), deref(f.g), deref(f.b))
		f.color = &c
	}
	return f, nil
}

func (f *fields) apply(e Entry, v graph.Value) error {
	var err error
	switch e.Role {
	case RoleID:
		f.id = v.Text()
	case RoleSource:
		f.source = v.Text()
	case RoleTarget:
		f.target = v.Text()
	case RoleKey:
		f.key = v.Text()
	case RoleLabel:
		f.label = v.Text()
	case RoleEdgeLabel:
		f.edgeLabel = v.Text()
	case RoleShape:
		f.shape = v.Text()
	case RoleStart:
		f.start = v.Text()
	case RoleEnd:
		f.end = v.Text()
	case RoleX:
		f.x, err = number(e, v)
	case RoleY:
		f.y, err = number(e, v)
	case RoleZ:
		f.z, err = number(e, v)
	case RoleSize:
		f.size, err = number(e, v)
	case RoleWeight:
		f.weight, err = number(e, v)
	case RoleThickness:
		f.thickness, err = number(e, v)
	case RoleRed:
		f.r, err = number(e, v)
	case RoleGreen:
		f.g, err = number(e, v)
	case RoleBlue:
		f.b, err = number(e, v)
	case RoleColor:
		c, cerr := color.NormalizeAny(v.Interface())
		if cerr != nil {
			return cerr
		}
		f.color = &c
	case RoleUndirected:
		b, ok := v.Boolean()
		if !ok {
			return errs.Malformed("field %q: expected a boolean, got %s", e.Name, v.Type())
		}
		f.undirected = &b
	}
	return err
}

func number(e Entry, v graph.Value) (*float64, error) {
	n, ok := v.Float()
	if !ok {
		return nil, errs.Malformed("field %q: expected a number, got %s %q", e.Name, v.Type(), v.Text())
	}
	return &n, nil
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// NodeFromRecord splits a flat node record into typed fields and free-form
// attributes. A missing id is taken from "key"; a key that differs from the
// id is kept on the node. Color failures are returned unchanged.
func (t *Table) NodeFromRecord(rec graph.Attributes) (graph.Node, error) {
	f, err := t.split(rec, ScopeNode)
	if err != nil {
		return graph.Node{}, err
	}
	id, key := f.id, f.key
	if id == "" || id == key {
		id, key = key, ""
	}
	return graph.Node{
		ID:         id,
		Key:        key,
		Label:      f.label,
		Color:      f.color,
		Size:       f.size,
		Shape:      f.shape,
		X:          f.x,
		Y:          f.y,
		Z:          f.z,
		Start:      f.start,
		End:        f.end,
		Attributes: f.attrs,
	}, nil
}

// EdgeFromRecord splits a flat edge record. An edge's "size" becomes its
// weight unless an explicit "weight" is present.
func (t *Table) EdgeFromRecord(rec graph.Attributes) (graph.Edge, error) {
	f, err := t.split(rec, ScopeEdge)
	if err != nil {
		return graph.Edge{}, err
	}
	weight := f.weight
	if weight == nil {
		weight = f.size
	}
	return graph.Edge{
		ID:         f.id,
		Key:        f.key,
		Source:     f.source,
		Target:     f.target,
		Label:      f.label,
		EdgeLabel:  f.edgeLabel,
		Color:      f.color,
		Weight:     weight,
		Shape:      f.shape,
		Thickness:  f.thickness,
		Undirected: f.undirected,
		Start:      f.start,
		End:        f.end,
		Attributes: f.attrs,
	}, nil
}

// NodeFields flattens a node's reserved fields into a record, in table
// order. Colors become r/g/b numbers when the table splits colors and a
// canonical rgb() string otherwise. Attributes are not included.
func (t *Table) NodeFields(n graph.Node) graph.Attributes {
	var out graph.Attributes
	for _, e := range t.entries {
		if e.Scope&ScopeNode == 0 {
			continue
		}
		switch e.Role {
		case RoleID:
			setString(&out, e.Name, n.ID)
		case RoleKey:
			setString(&out, e.Name, n.Key)
		case RoleLabel:
			setString(&out, e.Name, n.Label)
		case RoleX:
			setNumber(&out, e.Name, n.X)
		case RoleY:
			setNumber(&out, e.Name, n.Y)
		case RoleZ:
			setNumber(&out, e.Name, n.Z)
		case RoleSize:
			setNumber(&out, e.Name, n.Size)
		case RoleShape:
			setString(&out, e.Name, n.Shape)
		case RoleStart:
			setString(&out, e.Name, n.Start)
		case RoleEnd:
			setString(&out, e.Name, n.End)
		default:
			t.setColor(&out, e, n.Color)
		}
	}
	return out
}

// EdgeFields flattens an edge's reserved fields like [Table.NodeFields].
func (t *Table) EdgeFields(ed graph.Edge) graph.Attributes {
	var out graph.Attributes
	for _, e := range t.entries {
		if e.Scope&ScopeEdge == 0 {
			continue
		}
		switch e.Role {
		case RoleID:
			setString(&out, e.Name, ed.ID)
		case RoleKey:
			setString(&out, e.Name, ed.Key)
		case RoleSource:
			out.Set(e.Name, graph.String(ed.Source))
		case RoleTarget:
			out.Set(e.Name, graph.String(ed.Target))
		case RoleLabel:
			setString(&out, e.Name, ed.Label)
		case RoleEdgeLabel:
			setString(&out, e.Name, ed.EdgeLabel)
		case RoleWeight:
			setNumber(&out, e.Name, ed.Weight)
		case RoleShape:
			setString(&out, e.Name, ed.Shape)
		case RoleThickness:
			setNumber(&out, e.Name, ed.Thickness)
		case RoleUndirected:
			if ed.Undirected != nil {
				out.Set(e.Name, graph.Bool(*ed.Undirected))
			}
		case RoleStart:
			setString(&out, e.Name, ed.Start)
		case RoleEnd:
			setString(&out, e.Name, ed.End)
		default:
			t.setColor(&out, e, ed.Color)
		}
	}
	return out
}

func (t *Table) setColor(out *graph.Attributes, e Entry, c *color.RGB) {
	if c == nil {
		return
	}
	split := t.splitsColor()
	switch {
	case e.Role == RoleColor && !split:
		out.Set(e.Name, graph.String(c.String()))
	case e.Role == RoleRed && split:
		out.Set(e.Name, graph.Number(float64(c.R)))
	case e.Role == RoleGreen && split:
		out.Set(e.Name, graph.Number(float64(c.G)))
	case e.Role == RoleBlue && split:
		out.Set(e.Name, graph.Number(float64(c.B)))
	}
}

func setString(out *graph.Attributes, name, v string) {
	if v != "" {
		out.Set(name, graph.String(v))
	}
}

func setNumber(out *graph.Attributes, name string, v *float64) {
	if v != nil {
		out.Set(name, graph.Number(*v))
	}
}
