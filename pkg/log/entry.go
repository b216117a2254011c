package log

import (
	"encoding/json"
	"time"
)

// Entry is a single structured log record.
type Entry struct {
	Time      time.Time
	Level     Level
	Component string
	Caller    string
	RequestID string
	Message   string
	Fields    map[string]any
}

// NewEntry stamps a new entry with the current time.
func NewEntry(level Level, msg string) *Entry {
	return &Entry{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
		Fields:  make(map[string]any),
	}
}


// reserved keys always win over user fields of the same name.
func (e Entry) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(e.Fields)+6)
	for k, v := range e.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		m[k] = v
	}

	m["time"] = e.Time.UTC().Format(time.RFC3339)
	m["level"] = e.Level.String()
	m["msg"] = e.Message
	if e.Component != "" {
		m["component"] = e.Component
	}
	if e.Caller != "" {
		m["caller"] = e.Caller
	}
	if e.RequestID != "" {
		m["request_id"] = e.RequestID
	}

	return json.Marshal(m)
}

// mergeFields adds alternating key/value pairs. Non-string keys and a
// trailing key without a value are skipped.
func mergeFields(dst map[string]any, keysAndValues []any) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		dst[key] = keysAndValues[i+1]
	}
}
