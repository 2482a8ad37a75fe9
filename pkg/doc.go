// Package pkg provides the core libraries for graphbridge graph conversion.
//
// # Overview
//
// Graphbridge reads and writes graphs in four exchange formats: plain JSON,
// Graphology JSON, GEXF 1.3 and GraphML. Every importer produces the same
// canonical model and every exporter consumes it, so any pair of formats can
// be converted without loss of the fields both formats can express.
//
// # Architecture
//
// The typical data flow:
//
//	JSON / Graphology / GEXF / GraphML document
//	         ↓
//	    format importers (decode, flatten elements into records)
//	         ↓
//	    [reserved] (split records into typed fields and free attributes)
//	    [schema]   (infer attribute types)
//	    [color]    (normalize colors to rgb())
//	         ↓
//	    [graph] canonical model
//	         ↓
//	    format exporters (synthesize declarations, encode)
//	         ↓
//	    JSON / Graphology / GEXF / GraphML document
//
// # Quick Start
//
//	import "github.com/matzehuels/graphbridge/pkg/convert"
//
//	g, err := convert.FromGEXF(data)
//	if err != nil {
//	    return err
//	}
//	out, err := g.ToGraphML()
//
// # Main Packages
//
// ## Model
//
// [graph] - The canonical graph: graph attributes, node and edge schemas,
// nodes and edges with typed reserved fields and ordered free attributes.
//
// [schema] - Attribute type inference (string, number, boolean) by
// majority vote with first-seen tie-breaking.
//
// [reserved] - Per-format tables of reserved field names and the
// reconciliation between flat records and typed fields.
//
// [color] - Color normalization from CSS names, hex and rgb() strings.
//
// ## Formats
//
// [format/jsongraph] - Plain JSON and Graphology JSON codecs.
//
// [format/gexf] - GEXF 1.3 codec with viz extensions.
//
// [format/graphml] - GraphML codec with key declarations.
//
// ## Orchestration
//
// [convert] - Format registry, facade, file helpers and the logging
// [convert.Runner] shared by the CLI and the HTTP server.
//
// [observability] - Hooks for conversion and HTTP events.
//
// [errors] - Coded errors (parse, malformed, invalid color, ...).
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./...                        # All tests
//	go test ./pkg/format/...             # Codecs only
//	go test -run Example ./pkg/...       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphbridge/pkg/graph
// [schema]: https://pkg.go.dev/github.com/matzehuels/graphbridge/pkg/schema
// [reserved]: https://pkg.go.dev/github.com/matzehuels/graphbridge/pkg/reserved
// [color]: https://pkg.go.dev/github.com/matzehuels/graphbridge/pkg/color
// [format/jsongraph]: https://pkg.go.dev/github.com/matzehuels/graphbridge/pkg/format/jsongraph
// [format/gexf]: https://pkg.go.dev/github.com/matzehuels/graphbridge/pkg/format/gexf
// [format/graphml]: https://pkg.go.dev/github.com/matzehuels/graphbridge/pkg/format/graphml
// [convert]: https://pkg.go.dev/github.com/matzehuels/graphbridge/pkg/convert
// [convert.Runner]: https://pkg.go.dev/github.com/matzehuels/graphbridge/pkg/convert#Runner
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphbridge/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphbridge/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/graphbridge/pkg/buildinfo
package pkg
