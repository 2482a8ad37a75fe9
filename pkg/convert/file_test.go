package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/graphbridge/pkg/errors"
)

func TestWriteReadFile(t *testing.T) {
	g, err := FromJSON([]byte(doc))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}

	dir := t.TempDir()
	for _, name := range []string{"out.gexf", "out.graphml", "out.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := WriteFile(g, path, ""); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			back, err := ReadFile(path, "")
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if back.NodeCount() != 2 || back.EdgeCount() != 1 {
				t.Errorf("counts = %d/%d, want 2/1", back.NodeCount(), back.EdgeCount())
			}
		})
	}
}

func TestWriteFile_ExplicitFormat(t *testing.T) {
	g, err := FromJSON([]byte(doc))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := WriteFile(g, path, Graphology); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"allowSelfLoops": true`) {
		t.Errorf("file is not Graphology:\n%s", data)
	}
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := ReadFile(filepath.Join(dir, "missing.gexf"), ""); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
	if _, err := ReadFile(filepath.Join(dir, "graph.dot"), ""); !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("unknown extension error = %v, want INVALID_FORMAT", err)
	}

	bad := filepath.Join(dir, "bad.graphml")
	if err := os.WriteFile(bad, []byte("<graphml><graph>"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadFile(bad, "")
	if !errs.Is(err, errs.ErrCodeParse) {
		t.Errorf("bad file error = %v, want PARSE_ERROR", err)
	}
	if err != nil && !strings.Contains(err.Error(), bad) {
		t.Errorf("error %q does not name the file", err)
	}
}
