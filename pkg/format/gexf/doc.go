// Package gexf reads and writes GEXF, the Graph Exchange XML Format used by
// Gephi, including the viz visualization extension.
//
// # Import
//
// [Unmarshal] and [Read] accept any GEXF version: elements and attributes
// are matched by local name, so namespace URIs and prefixes are ignored.
// Declared attributes (class node or edge) become schema descriptors with
// the type mapping
//
//	integer, long, double, float, short, byte  -> number
//	boolean                                    -> boolean
//	anything else                              -> string
//
// Attribute values are parsed through their declared type and keyed by the
// attribute id. Declarations naming a reserved field are left out of the
// schema and their values are promoted onto the element, as are the viz
// color, position, size, shape and thickness elements. The title decides
// whether a declaration is reserved; the id only counts when the title is
// empty. If several declarations name the same field, the last one wins.
//
// # Export
//
// [Marshal] and [Write] produce a GEXF 1.3 document with the viz namespace,
// one static attributes block per class and a viz:position element only
// when a node has coordinates. Reserved fields without a structural slot
// (edgelabel) are written as synthesized attributes.
//
// # Errors
//
// Input that is not well-formed XML yields PARSE_ERROR ("parse gexf");
// a missing graph or nodes element yields MALFORMED_FILE.
package gexf
