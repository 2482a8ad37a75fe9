// Package convert is the public entry point for graph conversion.
//
// A [Graph] is obtained from one of the importers and can be written to any
// of the supported formats:
//
//	g, err := convert.FromGEXF(data)
//	if err != nil {
//	    return err
//	}
//	out, err := g.ToGraphML()
//
// # Formats
//
// Four formats are registered: plain JSON, Graphology JSON, GEXF and
// GraphML. [ParseFormat] resolves a format name, [DetectFormat] guesses one
// from a file extension, and [Import] / [Export] dispatch on a [Format].
// [Read] and [Write] stream through each format's own reader and writer;
// [ReadFile] and [WriteFile] wrap them for file paths.
//
// # Runner
//
// [Runner] performs import and export with structured logging and
// observability hooks, for byte slices, streams and files alike. The CLI
// and the HTTP server both convert through it.
//
// # Concurrency
//
// Conversions share no state. A [Graph] is never modified by exporters, so
// one imported graph can be exported to several formats concurrently.
package convert
