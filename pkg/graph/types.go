package graph

import (
	"github.com/matzehuels/graphbridge/pkg/color"
)

// =============================================================================
// Graph-level attributes
// =============================================================================

// EdgeType is the default directionality of a graph's edges.
type EdgeType string

// Edge types.
const (
	EdgeDirected   EdgeType = "directed"
	EdgeUndirected EdgeType = "undirected"
	EdgeMutual     EdgeType = "mutual"
)

// Mode distinguishes static graphs from graphs with time-bound elements.
type Mode string

// Graph modes.
const (
	ModeStatic  Mode = "static"
	ModeDynamic Mode = "dynamic"
)

// DefaultID is the graph id used when a source omits one.
const DefaultID = "graph"

// ParseEdgeType returns the EdgeType named by s.
func ParseEdgeType(s string) (EdgeType, bool) {
	switch t := EdgeType(s); t {
	case EdgeDirected, EdgeUndirected, EdgeMutual:
		return t, true
	}
	return "", false
}

// ParseMode returns the Mode named by s.
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(s); m {
	case ModeStatic, ModeDynamic:
		return m, true
	}
	return "", false
}

// GraphAttributes holds graph-level metadata.
type GraphAttributes struct {
	ID       string   `json:"id"`
	EdgeType EdgeType `json:"edgeType"`
	Mode     Mode     `json:"mode"`
}

// DefaultGraphAttributes returns {id: "graph", edgeType: "undirected", mode: "static"}.
func DefaultGraphAttributes() GraphAttributes {
	return GraphAttributes{ID: DefaultID, EdgeType: EdgeUndirected, Mode: ModeStatic}
}

// WithDefaults fills empty or unknown fields from [DefaultGraphAttributes].
func (a GraphAttributes) WithDefaults() GraphAttributes {
	d := DefaultGraphAttributes()
	if a.ID == "" {
		a.ID = d.ID
	}
	if _, ok := ParseEdgeType(string(a.EdgeType)); !ok {
		a.EdgeType = d.EdgeType
	}
	if _, ok := ParseMode(string(a.Mode)); !ok {
		a.Mode = d.Mode
	}
	return a
}

// =============================================================================
// Schema
// =============================================================================

// AttributeDescriptor declares one attribute key.
type AttributeDescriptor struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Type  AttributeType `json:"type"`
}

// Name returns the title, or the id when the title is empty.
func (d AttributeDescriptor) Name() string {
	if d.Title != "" {
		return d.Title
	}
	return d.ID
}

// Schema is an ordered list of descriptors with unique ids.
type Schema []AttributeDescriptor

// Lookup returns the descriptor with the given id.
func (s Schema) Lookup(id string) (AttributeDescriptor, bool) {
	for _, d := range s {
		if d.ID == id {
			return d, true
		}
	}
	return AttributeDescriptor{}, false
}

// Has reports whether a descriptor with the given id exists.
func (s Schema) Has(id string) bool {
	_, ok := s.Lookup(id)
	return ok
}

// Add appends d unless its id is already declared. Title defaults to the id.
func (s *Schema) Add(d AttributeDescriptor) bool {
	if s.Has(d.ID) {
		return false
	}
	if d.Title == "" {
		d.Title = d.ID
	}
	*s = append(*s, d)
	return true
}

// =============================================================================
// Elements
// =============================================================================

// Node is a graph vertex. Optional numeric fields are nil when absent;
// optional strings are empty when absent. Key is only set when a source
// carries a key that differs from the id.
type Node struct {
	ID         string
	Key        string
	Label      string
	Color      *color.RGB
	Size       *float64
	Shape      string
	X, Y, Z    *float64
	Start, End string
	Attributes Attributes
}

// ColorString returns the canonical color string, or "" when unset.
func (n Node) ColorString() string { return colorString(n.Color) }

// HasPosition reports whether any coordinate is set.
func (n Node) HasPosition() bool { return n.X != nil || n.Y != nil || n.Z != nil }

// Edge is a connection between two nodes.
type Edge struct {
	ID         string
	Key        string
	Source     string
	Target     string
	Label      string
	EdgeLabel  string
	Color      *color.RGB
	Weight     *float64
	Shape      string
	Thickness  *float64
	Undirected *bool
	Start, End string
	Attributes Attributes
}

// ColorString returns the canonical color string, or "" when unset.
func (e Edge) ColorString() string { return colorString(e.Color) }

// Ident returns the edge id, falling back to its key.
func (e Edge) Ident() string {
	if e.ID != "" {
		return e.ID
	}
	return e.Key
}

// IsUndirected resolves the edge's directionality against the graph default.
func (e Edge) IsUndirected(def EdgeType) bool {
	if e.Undirected != nil {
		return *e.Undirected
	}
	return def == EdgeUndirected
}

func colorString(c *color.RGB) string {
	if c == nil {
		return ""
	}
	return c.String()
}

// Float returns a pointer to f, for optional numeric fields.
func Float(f float64) *float64 { return &f }

// Flag returns a pointer to b, for optional boolean fields.
func Flag(b bool) *bool { return &b }
