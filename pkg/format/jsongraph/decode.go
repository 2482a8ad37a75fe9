package jsongraph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	errs "github.com/matzehuels/graphbridge/pkg/errors"
	"github.com/matzehuels/graphbridge/pkg/graph"
	"github.com/matzehuels/graphbridge/pkg/reserved"
	"github.com/matzehuels/graphbridge/pkg/schema"
)

// nestedKey is the member holding an element's free-form data.
const nestedKey = "attributes"

type object = orderedmap.OrderedMap[string, json.RawMessage]

type rawDocument struct {
	Attributes json.RawMessage `json:"attributes"`
	Options    json.RawMessage `json:"options"`
	Nodes      json.RawMessage `json:"nodes"`
	Edges      json.RawMessage `json:"edges"`
}

type graphAttrs struct {
	ID       any    `json:"id"`
	Name     any    `json:"name"`
	EdgeType string `json:"edgeType"`
	Mode     string `json:"mode"`
}

type graphOptions struct {
	Type string `json:"type"`
}

// Decode builds a graph from a plain JSON document.
func Decode(data []byte) (*graph.Graph, error) {
	return decode(data, false)
}

// DecodeGraphology builds a graph from a Graphology export.
func DecodeGraphology(data []byte) (*graph.Graph, error) {
	return decode(data, true)
}

// Read decodes a plain JSON document from r. Read does not close r.
func Read(r io.Reader) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return Decode(data)
}

// ReadGraphology decodes a Graphology document from r.
func ReadGraphology(r io.Reader) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return DecodeGraphology(data)
}

func decode(data []byte, graphology bool) (*graph.Graph, error) {
	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		if !json.Valid(data) {
			return nil, errs.Wrap(errs.ErrCodeParse, err, "decode json")
		}
		return nil, errs.Malformed("document is not a JSON object")
	}

	attrs, err := decodeGraphAttrs(doc, graphology)
	if err != nil {
		return nil, err
	}

	nodeRecs, err := decodeElements(doc.Nodes, "nodes")
	if err != nil {
		return nil, err
	}
	edgeRecs, err := decodeElements(doc.Edges, "edges")
	if err != nil {
		return nil, err
	}

	nodes := make([]graph.Node, 0, len(nodeRecs))
	nodeAttrs := make([]graph.Attributes, 0, len(nodeRecs))
	for i, rec := range nodeRecs {
		n, err := reserved.JSON.NodeFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		nodes = append(nodes, n)
		nodeAttrs = append(nodeAttrs, n.Attributes)
	}

	edges := make([]graph.Edge, 0, len(edgeRecs))
	edgeAttrs := make([]graph.Attributes, 0, len(edgeRecs))
	for i, rec := range edgeRecs {
		e, err := reserved.JSON.EdgeFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		edges = append(edges, e)
		edgeAttrs = append(edgeAttrs, e.Attributes)
	}

	return graph.New(attrs, schema.Infer(nodeAttrs), schema.Infer(edgeAttrs), nodes, edges), nil
}

func decodeGraphAttrs(doc rawDocument, graphology bool) (graph.GraphAttributes, error) {
	var out graph.GraphAttributes
	if !isNull(doc.Attributes) {
		var ga graphAttrs
		if err := json.Unmarshal(doc.Attributes, &ga); err != nil {
			return out, errs.Malformed("graph attributes must be an object")
		}
		out.ID = scalarText(ga.ID)
		if out.ID == "" && graphology {
			out.ID = scalarText(ga.Name)
		}
		out.EdgeType = graph.EdgeType(ga.EdgeType)
		out.Mode = graph.Mode(ga.Mode)
	}

	if graphology && out.EdgeType == "" && !isNull(doc.Options) {
		var opts graphOptions
		if err := json.Unmarshal(doc.Options, &opts); err != nil {
			return out, errs.Malformed("graph options must be an object")
		}
		switch opts.Type {
		case "directed":
			out.EdgeType = graph.EdgeDirected
		case "undirected":
			out.EdgeType = graph.EdgeUndirected
		}
	}
	return out.WithDefaults(), nil
}

// decodeElements turns a JSON array of objects into flat records. Members of
// a nested "attributes" object are spread after the top-level members and
// never override them.
func decodeElements(raw json.RawMessage, container string) ([]graph.Attributes, error) {
	if isNull(raw) {
		return nil, errs.Malformed("missing %q array", container)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errs.Malformed("%q must be an array", container)
	}

	recs := make([]graph.Attributes, 0, len(items))
	for i, item := range items {
		if isNull(item) {
			continue
		}
		obj := orderedmap.New[string, json.RawMessage]()
		if err := json.Unmarshal(item, obj); err != nil {
			return nil, errs.Malformed("%s[%d] is not an object", container, i)
		}
		rec, err := flatten(obj)
		if err != nil {
			return nil, errs.Malformed("%s[%d]: %v", container, i, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func flatten(obj *object) (graph.Attributes, error) {
	var rec graph.Attributes
	var nested *object
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == nestedKey && isObject(pair.Value) {
			nested = orderedmap.New[string, json.RawMessage]()
			if err := json.Unmarshal(pair.Value, nested); err != nil {
				return rec, err
			}
			continue
		}
		if err := setRaw(&rec, pair.Key, pair.Value); err != nil {
			return rec, err
		}
	}
	if nested != nil {
		for pair := nested.Oldest(); pair != nil; pair = pair.Next() {
			if rec.Has(pair.Key) {
				continue
			}
			if err := setRaw(&rec, pair.Key, pair.Value); err != nil {
				return rec, err
			}
		}
	}
	return rec, nil
}

func setRaw(rec *graph.Attributes, key string, raw json.RawMessage) error {
	var v graph.Value
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	if v.IsValid() {
		rec.Set(key, v)
	}
	return nil
}

func scalarText(x any) string {
	v, ok := graph.ValueOf(x)
	if !ok {
		return ""
	}
	return v.Text()
}

func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

func isObject(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '{'
}
