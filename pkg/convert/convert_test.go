package convert

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/graphbridge/pkg/graph"
)

const doc = `{
  "attributes": {"id": "graph", "edgeType": "undirected", "mode": "static"},
  "nodes": [
    {"id": "a", "label": "A", "color": "blue", "x": 1, "y": 2, "size": 5, "team": "core", "score": 3},
    {"id": "b", "team": "infra & ops", "score": 4, "active": true}
  ],
  "edges": [
    {"id": "e0", "source": "a", "target": "b", "weight": 2, "kind": "dep"}
  ]
}`

func TestCrossFormatRoundTrip(t *testing.T) {
	via := []struct {
		name string
		to   func(*Graph) ([]byte, error)
		from func([]byte) (*Graph, error)
	}{
		{"GEXF", (*Graph).ToGEXF, FromGEXF},
		{"GraphML", (*Graph).ToGraphML, FromGraphML},
	}

	g, err := FromJSON([]byte(doc))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	want, err := g.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	for _, tt := range via {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.to(g)
			if err != nil {
				t.Fatalf("export: %v", err)
			}
			back, err := tt.from(data)
			if err != nil {
				t.Fatalf("import: %v\n%s", err, data)
			}
			got, err := back.ToJSON()
			if err != nil {
				t.Fatalf("ToJSON: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("round trip through %s changed the graph:\n%s\n--- want ---\n%s", tt.name, got, want)
			}
		})
	}
}

func TestGraphologyRoundTrip(t *testing.T) {
	g, err := FromJSON([]byte(doc))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	data, err := g.ToGraphology()
	if err != nil {
		t.Fatalf("ToGraphology: %v", err)
	}
	back, err := FromGraphology(data)
	if err != nil {
		t.Fatalf("FromGraphology: %v", err)
	}

	if back.NodeCount() != 2 || back.EdgeCount() != 1 {
		t.Fatalf("counts = %d/%d, want 2/1", back.NodeCount(), back.EdgeCount())
	}
	b, _ := back.Model().Node("b")
	if v, _ := b.Attributes.Get("team"); v.Text() != "infra & ops" {
		t.Errorf("team = %q", v.Text())
	}
	e := back.Edges()[0]
	if e.Key != "e0" || e.Undirected == nil || !*e.Undirected {
		t.Errorf("edge = %+v, want key e0 and undirected", e)
	}
}

func TestReservedIdempotence(t *testing.T) {
	g, err := FromJSON([]byte(doc))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	first, _ := g.ToJSON()
	again, err := FromJSON(first)
	if err != nil {
		t.Fatalf("FromJSON(ToJSON): %v", err)
	}

	for _, n := range again.Nodes() {
		for _, k := range []string{"id", "label", "color", "x", "y", "size", "attributes"} {
			if n.Attributes.Has(k) {
				t.Errorf("node %s: reserved key %q in attributes", n.ID, k)
			}
		}
	}
	a, _ := again.Model().Node("a")
	if a.ColorString() != "rgb(0,0,255)" {
		t.Errorf("color = %q, want rgb(0,0,255)", a.ColorString())
	}
	if e := again.Edges()[0]; e.Weight == nil || *e.Weight != 2 || e.Attributes.Has("weight") {
		t.Errorf("edge = %+v", e)
	}
}

func TestInferenceThroughFacade(t *testing.T) {
	g, err := FromJSON([]byte(`{"nodes": [{"id": 1, "v": 1}, {"id": 2, "v": 2}, {"id": 3, "v": "x"}], "edges": []}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	s := g.NodeSchema()
	if len(s) != 1 || s[0].ID != "v" || s[0].Type != graph.TypeNumber {
		t.Errorf("NodeSchema() = %+v, want [v number]", s)
	}
	if n := g.Nodes()[0]; n.ID != "1" {
		t.Errorf("numeric id = %q, want \"1\"", n.ID)
	}
}

func TestMutualMapping(t *testing.T) {
	g, err := FromJSON([]byte(`{"attributes": {"edgeType": "mutual"}, "nodes": [{"id": "a"}], "edges": []}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}

	gml, err := g.ToGraphML()
	if err != nil {
		t.Fatalf("ToGraphML: %v", err)
	}
	if !strings.Contains(string(gml), `edgedefault="directed"`) {
		t.Errorf("GraphML edgedefault not directed:\n%s", gml)
	}

	gx, err := g.ToGEXF()
	if err != nil {
		t.Fatalf("ToGEXF: %v", err)
	}
	if !strings.Contains(string(gx), `defaultedgetype="mutual"`) {
		t.Errorf("GEXF defaultedgetype not mutual:\n%s", gx)
	}

	back, err := FromGEXF(gx)
	if err != nil {
		t.Fatalf("FromGEXF: %v", err)
	}
	if back.Attributes().EdgeType != graph.EdgeMutual {
		t.Errorf("EdgeType = %q, want mutual", back.Attributes().EdgeType)
	}
}

func TestAmpersandEscaping(t *testing.T) {
	g, err := FromJSON([]byte(doc))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	for _, f := range []Format{GEXF, GraphML} {
		out, err := Export(g, f)
		if err != nil {
			t.Fatalf("Export(%s): %v", f, err)
		}
		if !strings.Contains(string(out), "infra &amp; ops") {
			t.Errorf("%s output does not escape &:\n%s", f, out)
		}
	}
}

func TestModelSetters(t *testing.T) {
	g, err := FromJSON([]byte(`{"nodes": [], "edges": []}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	g.Model().SetID("renamed")
	if g.Attributes().ID != "renamed" {
		t.Errorf("ID = %q, want renamed", g.Attributes().ID)
	}
}
