package convert

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphbridge/pkg/observability"
)

// Runner performs conversions with logging and observability hooks.
// Both CLI and server use it so that every conversion is reported the same
// way.
//
// The Runner holds no per-conversion state. Multiple goroutines can safely
// use the same Runner.
type Runner struct {
	Logger *log.Logger
	// Hooks overrides the globally registered conversion hooks.
	Hooks observability.ConversionHooks
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Stats reports the size and timing of a conversion.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	OutputSize int
	ImportTime time.Duration
	ExportTime time.Duration
}

// Result is the outcome of [Runner.Convert].
type Result struct {
	Graph  *Graph
	Output []byte
	Stats  Stats
}

func (r *Runner) hooks() observability.ConversionHooks {
	if r.Hooks != nil {
		return r.Hooks
	}
	return observability.Conversion()
}

func (r *Runner) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

// Import decodes data in format from.
func (r *Runner) Import(ctx context.Context, data []byte, from Format) (*Graph, error) {
	r.logger().Debug("importing", "format", from, "bytes", len(data))
	return r.importing(ctx, from, func() (*Graph, error) { return Import(data, from) })
}

// Read decodes a document in format from read from rd.
func (r *Runner) Read(ctx context.Context, rd io.Reader, from Format) (*Graph, error) {
	r.logger().Debug("importing", "format", from, "source", "stream")
	return r.importing(ctx, from, func() (*Graph, error) { return Read(rd, from) })
}

// ReadFile imports the file at path like [ReadFile].
func (r *Runner) ReadFile(ctx context.Context, path string, from Format) (*Graph, error) {
	if from == "" {
		f, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		from = f
	}
	r.logger().Debug("importing", "format", from, "path", path)
	return r.importing(ctx, from, func() (*Graph, error) { return ReadFile(path, from) })
}

func (r *Runner) importing(ctx context.Context, from Format, decode func() (*Graph, error)) (*Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := r.hooks()
	hooks.OnImportStart(ctx, string(from))

	start := time.Now()
	g, err := decode()
	elapsed := time.Since(start)

	var nodes, edges int
	if g != nil {
		nodes, edges = g.NodeCount(), g.EdgeCount()
	}
	hooks.OnImportComplete(ctx, string(from), nodes, edges, elapsed, err)
	if err != nil {
		return nil, err
	}

	r.logger().Info("imported graph",
		"format", from,
		"nodes", nodes,
		"edges", edges,
		"duration", elapsed)
	return g, nil
}

// Export encodes g in format to.
func (r *Runner) Export(ctx context.Context, g *Graph, to Format) ([]byte, error) {
	var out []byte
	err := r.exporting(ctx, to, func() (int, error) {
		var err error
		out, err = Export(g, to)
		return len(out), err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Write encodes g in format to and writes it to w. It returns the number
// of bytes written.
func (r *Runner) Write(ctx context.Context, w io.Writer, g *Graph, to Format) (int, error) {
	cw := &countingWriter{w: w}
	err := r.exporting(ctx, to, func() (int, error) {
		err := Write(cw, g, to)
		return cw.n, err
	})
	return cw.n, err
}

// WriteFile exports g to path like [WriteFile] and returns the file size.
func (r *Runner) WriteFile(ctx context.Context, g *Graph, path string, to Format) (int, error) {
	if to == "" {
		f, err := DetectFormat(path)
		if err != nil {
			return 0, err
		}
		to = f
	}
	var n int
	err := r.exporting(ctx, to, func() (int, error) {
		var err error
		n, err = writeFile(g, path, to)
		return n, err
	})
	return n, err
}

func (r *Runner) exporting(ctx context.Context, to Format, encode func() (int, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	hooks := r.hooks()
	hooks.OnExportStart(ctx, string(to))

	start := time.Now()
	size, err := encode()
	elapsed := time.Since(start)

	hooks.OnExportComplete(ctx, string(to), size, elapsed, err)
	if err != nil {
		return err
	}

	r.logger().Info("exported graph",
		"format", to,
		"bytes", size,
		"duration", elapsed)
	return nil
}

// Convert imports data in format from and exports it in format to.
func (r *Runner) Convert(ctx context.Context, data []byte, from, to Format) (*Result, error) {
	importStart := time.Now()
	g, err := r.Import(ctx, data, from)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", from, err)
	}
	importTime := time.Since(importStart)

	exportStart := time.Now()
	out, err := r.Export(ctx, g, to)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", to, err)
	}

	return &Result{
		Graph:  g,
		Output: out,
		Stats: Stats{
			NodeCount:  g.NodeCount(),
			EdgeCount:  g.EdgeCount(),
			OutputSize: len(out),
			ImportTime: importTime,
			ExportTime: time.Since(exportStart),
		},
	}, nil
}
