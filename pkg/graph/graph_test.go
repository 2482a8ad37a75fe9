package graph

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/graphbridge/pkg/color"
)

func TestNew_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		attrs GraphAttributes
		want  GraphAttributes
	}{
		{
			name:  "Empty",
			attrs: GraphAttributes{},
			want:  GraphAttributes{ID: "graph", EdgeType: EdgeUndirected, Mode: ModeStatic},
		},
		{
			name:  "Explicit",
			attrs: GraphAttributes{ID: "g1", EdgeType: EdgeMutual, Mode: ModeDynamic},
			want:  GraphAttributes{ID: "g1", EdgeType: EdgeMutual, Mode: ModeDynamic},
		},
		{
			name:  "UnknownValues",
			attrs: GraphAttributes{ID: "x", EdgeType: "sideways", Mode: "frozen"},
			want:  GraphAttributes{ID: "x", EdgeType: EdgeUndirected, Mode: ModeStatic},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.attrs, nil, nil, nil, nil)
			if got := g.Attributes(); got != tt.want {
				t.Errorf("Attributes() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGraph_Setters(t *testing.T) {
	g := New(GraphAttributes{}, nil, nil, nil, nil)
	g.SetID("net")
	g.SetEdgeType(EdgeDirected)
	g.SetMode(ModeDynamic)

	want := GraphAttributes{ID: "net", EdgeType: EdgeDirected, Mode: ModeDynamic}
	if got := g.Attributes(); got != want {
		t.Errorf("Attributes() = %+v, want %+v", got, want)
	}

	g.SetID("")
	if got := g.Attributes().ID; got != DefaultID {
		t.Errorf("ID = %q, want %q", got, DefaultID)
	}
}

func TestGraph_AccessorsCopy(t *testing.T) {
	g := New(GraphAttributes{}, Schema{{ID: "a", Type: TypeNumber}}, nil,
		[]Node{{ID: "n1"}, {ID: "n2"}},
		[]Edge{{Source: "n1", Target: "missing"}},
	)

	nodes := g.Nodes()
	nodes[0].ID = "changed"
	if n, _ := g.Node("n1"); n.ID != "n1" {
		t.Error("Nodes() exposed internal slice")
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("counts = %d/%d, want 2/1", g.NodeCount(), g.EdgeCount())
	}
	if _, ok := g.Node("missing"); ok {
		t.Error("Node(missing) found, want not found")
	}
	if !g.NodeSchema().Has("a") {
		t.Error("NodeSchema() lost descriptor a")
	}
}

func TestSchema_Add(t *testing.T) {
	var s Schema
	if !s.Add(AttributeDescriptor{ID: "age", Type: TypeNumber}) {
		t.Fatal("Add(age) = false, want true")
	}
	if s.Add(AttributeDescriptor{ID: "age", Type: TypeString}) {
		t.Error("duplicate Add(age) = true, want false")
	}
	d, ok := s.Lookup("age")
	if !ok {
		t.Fatal("Lookup(age) not found")
	}
	if d.Title != "age" || d.Type != TypeNumber {
		t.Errorf("descriptor = %+v, want title age, type number", d)
	}
}

func TestEdge_Helpers(t *testing.T) {
	e := Edge{Key: "k1"}
	if e.Ident() != "k1" {
		t.Errorf("Ident() = %q, want k1", e.Ident())
	}
	if !e.IsUndirected(EdgeUndirected) || e.IsUndirected(EdgeDirected) {
		t.Error("IsUndirected should follow the graph default")
	}
	e.Undirected = Flag(false)
	if e.IsUndirected(EdgeUndirected) {
		t.Error("explicit flag should override the graph default")
	}
	e.Color = &color.RGB{R: 1, G: 2, B: 3}
	if e.ColorString() != "rgb(1,2,3)" {
		t.Errorf("ColorString() = %q", e.ColorString())
	}
}

func TestNode_HasPosition(t *testing.T) {
	if (Node{}).HasPosition() {
		t.Error("empty node has position")
	}
	if !(Node{Z: Float(0)}).HasPosition() {
		t.Error("node with z has no position")
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
		ok   bool
	}{
		{"string", "x", String("x"), true},
		{"float", 1.5, Number(1.5), true},
		{"int", 3, Number(3), true},
		{"bool", true, Bool(true), true},
		{"json number", json.Number("7"), Number(7), true},
		{"array", []any{1.0, "a"}, String(`[1,"a"]`), true},
		{"object", map[string]any{"k": "v"}, String(`{"k":"v"}`), true},
		{"nil", nil, Value{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ValueOf(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ValueOf(%v) = %#v, %v, want %#v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		typ  AttributeType
		want Value
	}{
		{"42", TypeNumber, Number(42)},
		{" 1.25 ", TypeNumber, Number(1.25)},
		{"abc", TypeNumber, String("abc")},
		{"true", TypeBoolean, Bool(true)},
		{"yes", TypeBoolean, String("yes")},
		{"42", TypeString, String("42")},
	}

	for _, tt := range tests {
		t.Run(tt.text+"/"+string(tt.typ), func(t *testing.T) {
			if got := Parse(tt.text, tt.typ); got != tt.want {
				t.Errorf("Parse(%q, %s) = %#v, want %#v", tt.text, tt.typ, got, tt.want)
			}
		})
	}
}

func TestValue_Conversions(t *testing.T) {
	if f, ok := String("2.5").Float(); !ok || f != 2.5 {
		t.Errorf("String(2.5).Float() = %v, %v", f, ok)
	}
	if _, ok := Bool(true).Float(); ok {
		t.Error("Bool.Float() ok, want not ok")
	}
	if b, ok := String("false").Boolean(); !ok || b {
		t.Errorf("String(false).Boolean() = %v, %v", b, ok)
	}
	if got := Number(3).Text(); got != "3" {
		t.Errorf("Number(3).Text() = %q, want 3", got)
	}
	if got := Number(0.1).Text(); got != "0.1" {
		t.Errorf("Number(0.1).Text() = %q, want 0.1", got)
	}
	if got := Bool(false).Text(); got != "false" {
		t.Errorf("Bool(false).Text() = %q", got)
	}
}

func TestAttributes_Order(t *testing.T) {
	var a Attributes
	a.Set("z", Number(1))
	a.Set("a", String("x"))
	a.Set("m", Bool(true))
	a.Set("z", Number(2))

	want := []string{"z", "a", "m"}
	got := a.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if v, _ := a.Get("z"); v != Number(2) {
		t.Errorf("z = %#v, want number(2)", v)
	}

	if _, ok := a.Delete("a"); !ok {
		t.Error("Delete(a) = false")
	}
	if a.Len() != 2 || a.Has("a") {
		t.Errorf("after delete: len %d, has a %v", a.Len(), a.Has("a"))
	}
}

func TestAttributes_ZeroValue(t *testing.T) {
	var a Attributes
	if a.Len() != 0 || a.Has("x") || len(a.Keys()) != 0 {
		t.Error("zero Attributes not empty")
	}
	if _, ok := a.Delete("x"); ok {
		t.Error("Delete on zero value reported a hit")
	}
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}" {
		t.Errorf("Marshal(zero) = %s, want {}", data)
	}
}

func TestAttributes_JSON(t *testing.T) {
	var a Attributes
	if err := json.Unmarshal([]byte(`{"b": 1, "a": "x", "c": true, "n": null, "o": {"k": 1}}`), &a); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	keys := a.Keys()
	want := []string{"b", "a", "c", "o"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
	if v, _ := a.Get("o"); v != String(`{"k":1}`) {
		t.Errorf("o = %#v, want compact JSON string", v)
	}

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	var back map[string]any
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back["b"] != 1.0 || back["a"] != "x" || back["c"] != true {
		t.Errorf("round trip = %v", back)
	}
}

func TestAttributes_Clone(t *testing.T) {
	a := AttributesOf("k", "v")
	b := a.Clone()
	b.Set("k", String("changed"))
	if v, _ := a.Get("k"); v != String("v") {
		t.Error("Clone shares storage")
	}
}

func TestGraph_ElementAttributes(t *testing.T) {
	g := New(GraphAttributes{}, nil, nil,
		[]Node{{ID: "a", Attributes: AttributesOf("k", 1)}, {ID: "b"}},
		[]Edge{{Source: "a", Target: "b", Attributes: AttributesOf("w", "x")}},
	)
	na := g.NodeAttributes()
	if len(na) != 2 || !na[0].Has("k") || na[1].Len() != 0 {
		t.Errorf("NodeAttributes() = %v", na)
	}
	if ea := g.EdgeAttributes(); len(ea) != 1 || !ea[0].Has("w") {
		t.Errorf("EdgeAttributes() = %v", ea)
	}
}
