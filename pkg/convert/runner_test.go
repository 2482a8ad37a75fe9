package convert

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/graphbridge/pkg/errors"
	"github.com/matzehuels/graphbridge/pkg/observability"
)

type recordingHooks struct {
	observability.NoopConversionHooks
	mu     sync.Mutex
	events []string
	errs   []error
}

func (h *recordingHooks) OnImportStart(_ context.Context, format string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "import-start:"+format)
}

func (h *recordingHooks) OnImportComplete(_ context.Context, format string, _, _ int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "import-done:"+format)
	h.errs = append(h.errs, err)
}

func (h *recordingHooks) OnExportComplete(_ context.Context, format string, _ int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "export-done:"+format)
	h.errs = append(h.errs, err)
}

func TestRunner_Convert(t *testing.T) {
	var buf bytes.Buffer
	hooks := &recordingHooks{}
	r := &Runner{Logger: log.New(&buf), Hooks: hooks}

	res, err := r.Convert(context.Background(), []byte(doc), JSON, GEXF)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if res.Stats.NodeCount != 2 || res.Stats.EdgeCount != 1 {
		t.Errorf("Stats = %+v", res.Stats)
	}
	if res.Stats.OutputSize != len(res.Output) || !bytes.Contains(res.Output, []byte("<gexf")) {
		t.Errorf("unexpected output (%d bytes)", len(res.Output))
	}

	want := []string{"import-start:json", "import-done:json", "export-done:gexf"}
	if strings.Join(hooks.events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", hooks.events, want)
	}

	logs := buf.String()
	for _, msg := range []string{"imported graph", "exported graph", "nodes=2"} {
		if !strings.Contains(logs, msg) {
			t.Errorf("log output missing %q:\n%s", msg, logs)
		}
	}
}

func TestRunner_ImportError(t *testing.T) {
	hooks := &recordingHooks{}
	r := &Runner{Logger: log.New(&bytes.Buffer{}), Hooks: hooks}

	_, err := r.Convert(context.Background(), []byte("<gexf>"), GEXF, JSON)
	if !errs.Is(err, errs.ErrCodeParse) {
		t.Fatalf("Convert error = %v, want PARSE_ERROR", err)
	}
	if len(hooks.errs) != 1 || hooks.errs[0] == nil {
		t.Errorf("hook errors = %v, want one import error", hooks.errs)
	}
}

func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(nil)
	if _, err := r.Convert(ctx, []byte(doc), JSON, GraphML); err == nil {
		t.Error("Convert on canceled context succeeded")
	}
}

func TestRunner_Streams(t *testing.T) {
	hooks := &recordingHooks{}
	r := &Runner{Logger: log.New(&bytes.Buffer{}), Hooks: hooks}
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.graphml")

	g, err := r.Read(ctx, strings.NewReader(doc), JSON)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	var buf bytes.Buffer
	n, err := r.Write(ctx, &buf, g, GEXF)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != buf.Len() || !strings.Contains(buf.String(), "<gexf") {
		t.Errorf("Write() = %d bytes, buffer holds %d", n, buf.Len())
	}

	size, err := r.WriteFile(ctx, g, path, "")
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if size != len(data) {
		t.Errorf("WriteFile() = %d bytes, file holds %d", size, len(data))
	}
	back, err := r.ReadFile(ctx, path, "")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if back.NodeCount() != 2 || back.EdgeCount() != 1 {
		t.Errorf("counts = %d/%d, want 2/1", back.NodeCount(), back.EdgeCount())
	}

	want := []string{
		"import-start:json", "import-done:json",
		"export-done:gexf",
		"export-done:graphml",
		"import-start:graphml", "import-done:graphml",
	}
	if got := strings.Join(hooks.events, ","); got != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", hooks.events, want)
	}

	if _, err := r.ReadFile(ctx, filepath.Join(t.TempDir(), "missing.json"), ""); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("ReadFile(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
