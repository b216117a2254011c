package transporters

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"blox/pkg/log"
)

var (
	_ log.Transporter = (*JSON)(nil)
	_ log.Transporter = (*Console)(nil)
)

func sampleEntry() log.Entry {
	return log.Entry{
		Time:      time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
		Level:     log.Warn,
		Component: "web",
		RequestID: "req-7",
		Message:   "embed rejected",
		Fields: map[string]any{
			"platform": "vimeo",
			"error":    errors.New("url pattern mismatch"),
		},
	}
}

func TestJSON_Write_OneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONWithWriter(&buf)

	if err := j.Write(sampleEntry()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := j.Write(sampleEntry()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", lines[0], err)
	}
	if got["time"] != "2026-10-18T09:30:00Z" {
		t.Errorf("time = %v", got["time"])
	}
	if got["error"] != "url pattern mismatch" {
		t.Errorf("error field should be rendered as its message, got %v", got["error"])
	}
	if got["request_id"] != "req-7" {
		t.Errorf("request_id = %v", got["request_id"])
	}
}

func TestJSON_Name(t *testing.T) {
	if NewJSON().Name() != "json" {
		t.Error("Name() should be json")
	}
}

func TestConsole_Write_HumanReadable(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWithWriter(&buf)

	if err := c.Write(sampleEntry()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"09:30:00", "WARN", "web:", "embed rejected", "platform=vimeo", "request_id=req-7"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output should end with a newline")
	}
}

func TestConsole_Write_SortsFields(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWithWriter(&buf)

	e := sampleEntry()
	e.RequestID = ""
	if err := c.Write(e); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.String()
	if strings.Index(out, "error=") > strings.Index(out, "platform=") {
		t.Errorf("fields should be sorted by key: %s", out)
	}
	if strings.Contains(out, "request_id=") {
		t.Errorf("empty request id should be omitted: %s", out)
	}
}
