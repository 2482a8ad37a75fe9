package convert

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	errs "github.com/matzehuels/graphbridge/pkg/errors"
)

// ReadFile imports the file at path. An empty format is detected from the
// extension.
func ReadFile(path string, f Format) (*Graph, error) {
	if f == "" {
		var err error
		if f, err = DetectFormat(path); err != nil {
			return nil, err
		}
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	g, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// WriteFile exports g to path. An empty format is detected from the
// extension.
func WriteFile(g *Graph, path string, f Format) error {
	_, err := writeFile(g, path, f)
	return err
}

// writeFile is WriteFile that also reports the number of bytes written.
func writeFile(g *Graph, path string, f Format) (int, error) {
	if f == "" {
		var err error
		if f, err = DetectFormat(path); err != nil {
			return 0, err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()
	cw := &countingWriter{w: file}
	if err := Write(cw, g, f); err != nil {
		return cw.n, fmt.Errorf("write %s: %w", path, err)
	}
	return cw.n, file.Close()
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
