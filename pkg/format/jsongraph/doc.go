// Package jsongraph reads and writes the two JSON graph representations:
// the plain structural form and the Graphology export format.
//
// # JSON Format
//
//	{
//	  "attributes": {"id": "graph", "edgeType": "undirected", "mode": "static"},
//	  "nodes": [
//	    {"id": "a", "label": "A", "color": "rgb(255,0,0)", "x": 1, "y": 2,
//	     "attributes": {"team": "core"}}
//	  ],
//	  "edges": [
//	    {"id": "e0", "source": "a", "target": "b", "weight": 2}
//	  ]
//	}
//
// Reserved fields (see package reserved) sit at the top level of each
// element; every other member is an attribute. On import, members of a
// nested "attributes" object are spread onto the element, so exported
// documents re-import to the same model. Attribute types are inferred with
// package schema, once over all nodes and once over all edges.
//
// # Graphology Format
//
// Graphology documents name elements with "key" and keep their data in a
// nested "attributes" object; graph-level "options.type" carries the edge
// type. [DecodeGraphology] adapts these conventions and then follows the
// JSON path. [EncodeGraphology] writes the JSON layout plus element keys,
// per-edge "undirected" flags, a graph "name" and an "options" block.
//
// # Errors
//
// Invalid JSON yields an error coded PARSE_ERROR; missing or mistyped
// containers yield MALFORMED_FILE. Color failures are returned as produced
// by package color.
package jsongraph
