// Package graph defines the canonical in-memory graph model shared by every
// importer and exporter in graphbridge.
//
// # Architecture
//
// Each exchange format (JSON, Graphology, GEXF, GraphML) is translated into
// and out of this model; formats never talk to each other directly:
//
//	JSON ──┐                  ┌── JSON
//	GEXF ──┼──► graph.Graph ──┼── GEXF
//	...  ──┘                  └── ...
//
// # Core Types
//
//   - [Graph]: nodes, edges, graph-level [GraphAttributes] and the two
//     attribute schemas (node and edge)
//   - [Node], [Edge]: elements with typed well-known fields (label, color,
//     size/weight, position, ...) plus a free-form [Attributes] map
//   - [Value]: closed sum type over string, number and boolean
//   - [AttributeDescriptor]: a typed schema entry, collected in a [Schema]
//
// # Reserved Fields
//
// Well-known fields live in dedicated struct fields and never inside
// [Attributes]. The mapping between flat records and these fields is owned
// by package reserved, which keeps one table per exchange format.
//
// # Construction
//
// A Graph is built once by an importer through [New] and is read-only
// afterwards, apart from the explicit [Graph.SetID], [Graph.SetEdgeType] and
// [Graph.SetMode] setters. No referential validation is performed: an edge
// may name a node that does not exist, mirroring the permissive exchange
// formats.
//
// # Concurrency
//
// A Graph may be read from multiple goroutines. Exporters never mutate it.
package graph
