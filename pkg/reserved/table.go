// Package reserved reconciles well-known element fields with the free-form
// attribute map.
//
// Fields such as label, color, size, weight, x/y/z or thickness have a
// dedicated home in every exchange format (a viz element in GEXF, a declared
// key in GraphML, a top-level member in JSON). They are stored as typed
// fields on [graph.Node] and [graph.Edge] and never in
// [graph.Node.Attributes].
//
// Each format has a [Table] listing the names it treats as reserved, the role
// each name plays, the XML type used when a declaration has to be
// synthesized, and whether the format needs such a declaration at all.
// Importers flatten an element into a record and call
// [Table.NodeFromRecord] / [Table.EdgeFromRecord]; exporters call
// [Table.NodeFields] / [Table.EdgeFields] and [Table.Synthesize].
package reserved

// Role is the meaning of a reserved field.
type Role int

// Field roles.
const (
	RoleID Role = iota
	RoleSource
	RoleTarget
	RoleKey
	RoleLabel
	RoleEdgeLabel
	RoleX
	RoleY
	RoleZ
	RoleSize
	RoleWeight
	RoleColor
	RoleRed
	RoleGreen
	RoleBlue
	RoleShape
	RoleThickness
	RoleUndirected
	RoleStart
	RoleEnd
)

// Scope limits a field to nodes, edges or both.
type Scope uint8

// Scopes.
const (
	ScopeNode Scope = 1 << iota
	ScopeEdge
	ScopeAll = ScopeNode | ScopeEdge
)

// XML types used for synthesized declarations.
const (
	TypeFloat   = "float"
	TypeInt     = "int"
	TypeString  = "string"
	TypeBoolean = "boolean"
)

// Entry describes one reserved name.
type Entry struct {
	Name  string
	Role  Role
	Type  string
	Scope Scope
	// Declared marks fields the format serializes as declared attributes,
	// which must have a declaration synthesized when the schema lacks one.
	Declared bool
}

// Table is an ordered set of reserved entries. Order drives synthesized
// declaration order.
type Table struct {
	entries []Entry
	byName  map[string]Entry
}

// NewTable builds a table from entries. Later entries replace earlier ones
// with the same name but keep the original position.
func NewTable(entries ...Entry) *Table {
	t := &Table{byName: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		t.add(e)
	}
	return t
}

func (t *Table) add(e Entry) {
	if _, ok := t.byName[e.Name]; ok {
		for i := range t.entries {
			if t.entries[i].Name == e.Name {
				t.entries[i] = e
			}
		}
	} else {
		t.entries = append(t.entries, e)
	}
	t.byName[e.Name] = e
}

// With returns a copy of t extended (or overridden) by entries.
func (t *Table) With(entries ...Entry) *Table {
	out := NewTable(t.entries...)
	for _, e := range entries {
		out.add(e)
	}
	return out
}

// Entries returns the entries in table order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Lookup returns the entry for name if it is reserved within scope.
func (t *Table) Lookup(name string, s Scope) (Entry, bool) {
	e, ok := t.byName[name]
	if !ok || e.Scope&s == 0 {
		return Entry{}, false
	}
	return e, true
}

// Resolve decides whether a declared attribute (GEXF attribute, GraphML key)
// denotes a reserved field. A non-empty title decides on its own; the id is
// only consulted for untitled declarations.
func (t *Table) Resolve(id, title string, s Scope) (Entry, bool) {
	if title != "" {
		return t.Lookup(title, s)
	}
	return t.Lookup(id, s)
}

// splitsColor reports whether colors are carried as r/g/b components.
func (t *Table) splitsColor() bool {
	_, ok := t.byName["r"]
	return ok
}

var base = []Entry{
	{Name: "id", Role: RoleID, Type: TypeString, Scope: ScopeAll},
	{Name: "source", Role: RoleSource, Type: TypeString, Scope: ScopeEdge},
	{Name: "target", Role: RoleTarget, Type: TypeString, Scope: ScopeEdge},
	{Name: "key", Role: RoleKey, Type: TypeString, Scope: ScopeAll},
	{Name: "label", Role: RoleLabel, Type: TypeString, Scope: ScopeAll},
	{Name: "edgelabel", Role: RoleEdgeLabel, Type: TypeString, Scope: ScopeEdge},
	{Name: "x", Role: RoleX, Type: TypeFloat, Scope: ScopeNode},
	{Name: "y", Role: RoleY, Type: TypeFloat, Scope: ScopeNode},
	{Name: "z", Role: RoleZ, Type: TypeFloat, Scope: ScopeNode},
	{Name: "size", Role: RoleSize, Type: TypeFloat, Scope: ScopeAll},
	{Name: "weight", Role: RoleWeight, Type: TypeFloat, Scope: ScopeEdge},
	{Name: "color", Role: RoleColor, Type: TypeString, Scope: ScopeAll},
	{Name: "shape", Role: RoleShape, Type: TypeString, Scope: ScopeAll},
	{Name: "thickness", Role: RoleThickness, Type: TypeFloat, Scope: ScopeEdge},
	{Name: "undirected", Role: RoleUndirected, Type: TypeBoolean, Scope: ScopeEdge},
	{Name: "start", Role: RoleStart, Type: TypeString, Scope: ScopeAll},
	{Name: "end", Role: RoleEnd, Type: TypeString, Scope: ScopeAll},
}

// Per-format tables.
var (
	// JSON covers plain JSON and Graphology documents; every reserved
	// field is a top-level member, nothing is declared.
	JSON = NewTable(base...)

	// GEXF maps most fields to viz elements or XML attributes. Only the
	// edge label variant needs an attvalue and therefore a declaration.
	GEXF = NewTable(base...).With(
		Entry{Name: "edgelabel", Role: RoleEdgeLabel, Type: TypeString, Scope: ScopeEdge, Declared: true},
	)

	// GraphML carries every visual field as key-declared data and splits
	// colors into r, g and b components.
	GraphML = NewTable(base...).With(
		Entry{Name: "label", Role: RoleLabel, Type: TypeString, Scope: ScopeAll, Declared: true},
		Entry{Name: "edgelabel", Role: RoleEdgeLabel, Type: TypeString, Scope: ScopeEdge, Declared: true},
		Entry{Name: "x", Role: RoleX, Type: TypeFloat, Scope: ScopeNode, Declared: true},
		Entry{Name: "y", Role: RoleY, Type: TypeFloat, Scope: ScopeNode, Declared: true},
		Entry{Name: "z", Role: RoleZ, Type: TypeFloat, Scope: ScopeNode, Declared: true},
		Entry{Name: "size", Role: RoleSize, Type: TypeFloat, Scope: ScopeAll, Declared: true},
		Entry{Name: "weight", Role: RoleWeight, Type: TypeFloat, Scope: ScopeEdge, Declared: true},
		Entry{Name: "r", Role: RoleRed, Type: TypeInt, Scope: ScopeAll, Declared: true},
		Entry{Name: "g", Role: RoleGreen, Type: TypeInt, Scope: ScopeAll, Declared: true},
		Entry{Name: "b", Role: RoleBlue, Type: TypeInt, Scope: ScopeAll, Declared: true},
		Entry{Name: "shape", Role: RoleShape, Type: TypeString, Scope: ScopeAll, Declared: true},
		Entry{Name: "thickness", Role: RoleThickness, Type: TypeFloat, Scope: ScopeEdge, Declared: true},
		Entry{Name: "start", Role: RoleStart, Type: TypeString, Scope: ScopeAll, Declared: true},
		Entry{Name: "end", Role: RoleEnd, Type: TypeString, Scope: ScopeAll, Declared: true},
	)
)
