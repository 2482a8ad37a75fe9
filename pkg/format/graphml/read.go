package graphml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	errs "github.com/matzehuels/graphbridge/pkg/errors"
	"github.com/matzehuels/graphbridge/pkg/graph"
	"github.com/matzehuels/graphbridge/pkg/reserved"
)

// Read parses a GraphML document from r. Read does not close r.
func Read(r io.Reader) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return Unmarshal(data)
}

// Unmarshal parses a GraphML document. Only the first graph is read.
func Unmarshal(data []byte) (*graph.Graph, error) {
	var doc rawDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		var syntax *xml.SyntaxError
		if errors.As(err, &syntax) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errs.Wrap(errs.ErrCodeParse, err, "parse graphml")
		}
		return nil, errs.Malformed("not a GraphML document")
	}
	if doc.Graph == nil {
		return nil, errs.Malformed("missing <graph> element")
	}

	nodeKeys := keys(doc.Keys, reserved.ScopeNode)
	edgeKeys := keys(doc.Keys, reserved.ScopeEdge)
	g := doc.Graph

	nodes := make([]graph.Node, 0, len(g.Nodes))
	for i, rn := range g.Nodes {
		var rec graph.Attributes
		if rn.ID != "" {
			rec.Set("id", graph.String(rn.ID))
		}
		free := nodeKeys.apply(&rec, rn.Data)
		n, err := reserved.GraphML.NodeFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		merge(&n.Attributes, free)
		nodes = append(nodes, n)
	}

	edges := make([]graph.Edge, 0, len(g.Edges))
	for i, re := range g.Edges {
		var rec graph.Attributes
		if re.ID != "" {
			rec.Set("id", graph.String(re.ID))
		}
		rec.Set("source", graph.String(re.Source))
		rec.Set("target", graph.String(re.Target))
		switch re.Directed {
		case "false":
			rec.Set("undirected", graph.Bool(true))
		case "true":
			rec.Set("undirected", graph.Bool(false))
		}
		free := edgeKeys.apply(&rec, re.Data)
		e, err := reserved.GraphML.EdgeFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		merge(&e.Attributes, free)
		edges = append(edges, e)
	}

	attrs := graph.GraphAttributes{ID: g.ID}
	if g.EdgeDefault == "directed" {
		attrs.EdgeType = graph.EdgeDirected
	}
	return graph.New(attrs, nodeKeys.schema, edgeKeys.schema, nodes, edges), nil
}

// structural keys are implied by the element itself.
var structural = map[string]bool{"id": true, "source": true, "target": true}

type keyInfo struct {
	name     string
	typ      graph.AttributeType
	promoted bool
	ignored  bool
}

// keySet holds the keys that apply to one element class.
type keySet struct {
	schema graph.Schema
	byID   map[string]keyInfo
}

// keys collects the keys of one element class. When several keys resolve
// to the same reserved field, the last one is promoted and the others stay
// free-form.
func keys(raw []rawKey, scope reserved.Scope) *keySet {
	ks := &keySet{byID: make(map[string]keyInfo)}
	winner := make(map[string]string)
	for _, k := range raw {
		if !applies(k.For, scope) {
			continue
		}
		if e, ok := reserved.GraphML.Resolve(k.ID, k.Name, scope); ok {
			winner[e.Name] = k.ID
		}
	}
	for _, k := range raw {
		if !applies(k.For, scope) {
			continue
		}
		name := k.Name
		if name == "" {
			name = k.ID
		}
		info := keyInfo{name: name, typ: importType(k.Type)}
		switch {
		case structural[name]:
			info.ignored = true
		default:
			if e, ok := reserved.GraphML.Resolve(k.ID, k.Name, scope); ok && winner[e.Name] == k.ID {
				info.name = e.Name
				info.promoted = true
			} else {
				ks.schema.Add(graph.AttributeDescriptor{ID: name, Title: name, Type: info.typ})
			}
		}
		ks.byID[k.ID] = info
	}
	return ks
}

// apply sorts data values into rec and the returned free-form attributes.
// Reserved values never replace a field the element already carries. Data
// for undeclared keys is kept as a string.
func (ks *keySet) apply(rec *graph.Attributes, data []rawData) graph.Attributes {
	var free graph.Attributes
	for _, d := range data {
		info, ok := ks.byID[d.Key]
		if !ok {
			if d.Key == "" {
				continue
			}
			info = keyInfo{name: d.Key, typ: graph.TypeString}
			ks.byID[d.Key] = info
			ks.schema.Add(graph.AttributeDescriptor{ID: d.Key, Type: info.typ})
		}
		switch {
		case info.ignored:
		case info.promoted:
			if !rec.Has(info.name) {
				rec.Set(info.name, graph.Parse(d.Value, info.typ))
			}
		default:
			free.Set(info.name, graph.Parse(d.Value, info.typ))
		}
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

func applies(forAttr string, scope reserved.Scope) bool {
	switch forAttr {
	case "node":
		return scope == reserved.ScopeNode
	case "edge":
		return scope == reserved.ScopeEdge
	case "all", "":
		return true
	}
	return false
}

func importType(t string) graph.AttributeType {
	switch t {
	case "int", "long", "double", "float":
		return graph.TypeNumber
	case "boolean":
		return graph.TypeBoolean
	}
	return graph.TypeString
}
