package convert

import (
	"io"
	"path/filepath"
	"slices"
	"strings"

	errs "github.com/matzehuels/graphbridge/pkg/errors"
	"github.com/matzehuels/graphbridge/pkg/format/gexf"
	"github.com/matzehuels/graphbridge/pkg/format/graphml"
	"github.com/matzehuels/graphbridge/pkg/format/jsongraph"
	"github.com/matzehuels/graphbridge/pkg/graph"
)

// Format names an exchange format.
type Format string

// Supported formats.
const (
	JSON       Format = "json"
	Graphology Format = "graphology"
	GEXF       Format = "gexf"
	GraphML    Format = "graphml"
)

// Info describes a registered format.
type Info struct {
	Format      Format
	Extensions  []string
	MediaType   string
	Description string
}

type codec struct {
	Info
	from  func([]byte) (*Graph, error)
	to    func(*Graph) ([]byte, error)
	read  func(io.Reader) (*graph.Graph, error)
	write func(io.Writer, *graph.Graph) error
}

var registry = []codec{
	{
		Info:  Info{JSON, []string{".json"}, "application/json", "Plain JSON with nodes, edges and graph attributes"},
		from:  FromJSON,
		to:    (*Graph).ToJSON,
		read:  jsongraph.Read,
		write: jsongraph.Write,
	},
	{
		Info:  Info{Graphology, nil, "application/json", "Graphology serialized graph (key plus nested attributes)"},
		from:  FromGraphology,
		to:    (*Graph).ToGraphology,
		read:  jsongraph.ReadGraphology,
		write: jsongraph.WriteGraphology,
	},
	{
		Info:  Info{GEXF, []string{".gexf"}, "application/xml", "GEXF 1.3 with viz extensions"},
		from:  FromGEXF,
		to:    (*Graph).ToGEXF,
		read:  gexf.Read,
		write: gexf.Write,
	},
	{
		Info:  Info{GraphML, []string{".graphml", ".xml"}, "application/xml", "GraphML with key declarations"},
		from:  FromGraphML,
		to:    (*Graph).ToGraphML,
		read:  graphml.Read,
		write: graphml.Write,
	},
}

func lookup(f Format) (codec, error) {
	for _, c := range registry {
		if c.Format == f {
			return c, nil
		}
	}
	return codec{}, errs.New(errs.ErrCodeInvalidFormat, "unknown format %q", string(f))
}

// Formats returns the registered formats in a stable order.
func Formats() []Info {
	out := make([]Info, len(registry))
	for i, c := range registry {
		out[i] = c.Info
		out[i].Extensions = slices.Clone(c.Extensions)
	}
	return out
}

// Names returns the registered format names.
func Names() []string {
	out := make([]string, len(registry))
	for i, c := range registry {
		out[i] = string(c.Format)
	}
	return out
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, err := lookup(f); err != nil {
		return "", err
	}
	return f, nil
}

// DetectFormat guesses a format from the extension of path.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, c := range registry {
		if slices.Contains(c.Extensions, ext) {
			return c.Format, nil
		}
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "cannot detect format of %q", path)
}

// MediaType returns the content type used when serving f.
func (f Format) MediaType() string {
	c, err := lookup(f)
	if err != nil {
		return "application/octet-stream"
	}
	return c.MediaType
}

// Import decodes data in format f.
func Import(data []byte, f Format) (*Graph, error) {
	c, err := lookup(f)
	if err != nil {
		return nil, err
	}
	return c.from(data)
}

// Export encodes g in format f.
func Export(g *Graph, f Format) ([]byte, error) {
	c, err := lookup(f)
	if err != nil {
		return nil, err
	}
	return c.to(g)
}

// Read decodes a document in format f from r. Read does not close r.
func Read(r io.Reader, f Format) (*Graph, error) {
	c, err := lookup(f)
	if err != nil {
		return nil, err
	}
	return wrap(c.read(r))
}

// Write encodes g in format f to w.
func Write(w io.Writer, g *Graph, f Format) error {
	c, err := lookup(f)
	if err != nil {
		return err
	}
	return c.write(w, g.g)
}
