package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Conversion hooks
	c := NoopConversionHooks{}
	c.OnImportStart(ctx, "gexf")
	c.OnImportComplete(ctx, "gexf", 10, 20, time.Second, nil)
	c.OnExportStart(ctx, "graphml")
	c.OnExportComplete(ctx, "graphml", 1024, time.Second, nil)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "req-1", "POST", "/convert")
	h.OnResponse(ctx, "req-1", "POST", "/convert", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Conversion().(NoopConversionHooks); !ok {
		t.Error("Conversion() should return NoopConversionHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customConversion := &testConversionHooks{}
	SetConversionHooks(customConversion)
	if Conversion() != customConversion {
		t.Error("SetConversionHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Conversion().(NoopConversionHooks); !ok {
		t.Error("Reset() should restore NoopConversionHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testConversionHooks{}
	SetConversionHooks(custom)

	// Setting nil should be ignored
	SetConversionHooks(nil)

	if Conversion() != custom {
		t.Error("SetConversionHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testConversionHooks struct{ NoopConversionHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
