package log

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
)

// captureTransporter records delivered entries.
type captureTransporter struct {
	mu      sync.Mutex
	entries []Entry
	closed  bool
}

func (c *captureTransporter) Name() string { return "capture" }

func (c *captureTransporter) Write(entry Entry) error {
	c.mu.Lock()
	c.entries = append(c.entries, entry)
	c.mu.Unlock()
	return nil
}

func (c *captureTransporter) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

func (c *captureTransporter) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Entry(nil), c.entries...)
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	capture := &captureTransporter{}
	logger := New(Warn, capture)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	logger.Close()

	entries := capture.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Message != "warn" || entries[1].Message != "error" {
		t.Errorf("messages = %q, %q", entries[0].Message, entries[1].Message)
	}
}

func TestLogger_Named_InheritsLevel(t *testing.T) {
	capture := &captureTransporter{}
	logger := New(Warn, capture)
	child := logger.Named("embed")

	child.Info("hidden")
	child.Warn("visible")
	logger.Close()

	if got := len(capture.Entries()); got != 1 {
		t.Errorf("entries = %d, want 1", got)
	}
	if child.Level() != Warn {
		t.Errorf("child level = %v, want WARN", child.Level())
	}
}

func TestLogger_With_AddsFieldsWithoutTouchingParent(t *testing.T) {
	capture := &captureTransporter{}
	logger := New(Info, capture)
	child := logger.With("platform", "youtube")

	child.Info("child")
	logger.Info("parent")
	logger.Close()

	entries := capture.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Fields["platform"] != "youtube" {
		t.Errorf("child field = %v, want youtube", entries[0].Fields["platform"])
	}
	if _, ok := entries[1].Fields["platform"]; ok {
		t.Error("parent should not carry child fields")
	}
}

func TestLogger_Named_SetsComponent(t *testing.T) {
	capture := &captureTransporter{}
	logger := New(Info, capture)

	logger.Named("web").Info("hello")
	logger.Close()

	entries := capture.Entries()
	if len(entries) != 1 || entries[0].Component != "web" {
		t.Fatalf("component not set: %+v", entries)
	}
}

func TestLogger_Ctx_PullsRequestIDAndFields(t *testing.T) {
	capture := &captureTransporter{}
	logger := New(Info, capture)

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithFields(ctx, "ip", "10.0.0.1")
	logger.InfoCtx(ctx, "request", "status", 200)
	logger.Close()

	entries := capture.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.RequestID != "req-1" {
		t.Errorf("RequestID = %q, want req-1", e.RequestID)
	}
	if e.Fields["ip"] != "10.0.0.1" || e.Fields["status"] != 200 {
		t.Errorf("fields = %v", e.Fields)
	}
}

func TestLogger_Caller_PointsAtCallSite(t *testing.T) {
	capture := &captureTransporter{}
	logger := New(Info, capture)

	logger.Info("where")
	logger.Close()

	entries := capture.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if !strings.HasPrefix(entries[0].Caller, "logger_test.go:") {
		t.Errorf("Caller = %q, want logger_test.go:N", entries[0].Caller)
	}
}

func TestLogger_Close_ClosesTransporters(t *testing.T) {
	capture := &captureTransporter{}
	logger := New(Info, capture)
	logger.Close()
	logger.Close()

	capture.mu.Lock()
	defer capture.mu.Unlock()
	if !capture.closed {
		t.Error("transporter should be closed")
	}
}

func TestDefault_WithoutSetDefault_DropsEverything(t *testing.T) {
	SetDefault(nil)
	InfoCtx(context.Background(), "nobody hears this")
	if Default() != discardLogger {
		t.Error("Default() should fall back to the discard logger")
	}
}

func TestPackageHelpers_UseDefault(t *testing.T) {
	capture := &captureTransporter{}
	logger := New(Debug, capture)
	SetDefault(logger)
	defer SetDefault(nil)

	DebugCtx(context.Background(), "d")
	InfoCtx(context.Background(), "i")
	WarnCtx(context.Background(), "w")
	ErrorCtx(context.Background(), "e")
	logger.Close()

	if got := len(capture.Entries()); got != 4 {
		t.Errorf("entries = %d, want 4", got)
	}
}

func TestEntry_MarshalJSON_FlattensFieldsAndKeepsReservedKeys(t *testing.T) {
	e := NewEntry(Warn, "hello")
	e.Component = "web"
	e.RequestID = "abc"
	mergeFields(e.Fields, []any{"msg", "spoofed", "count", 3, 7, "ignored", "dangling"})

	data, err := json.Marshal(*e)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", got["msg"])
	}
	if got["level"] != "WARN" || got["component"] != "web" || got["request_id"] != "abc" {
		t.Errorf("reserved keys wrong: %v", got)
	}
	if got["count"] != float64(3) {
		t.Errorf("count = %v, want 3", got["count"])
	}
	if _, ok := got["dangling"]; ok {
		t.Error("dangling key without value should be skipped")
	}
	if _, ok := got["caller"]; ok {
		t.Error("empty caller should be omitted")
	}
}
