package domain

import "time"

// Severity of a user-facing notice.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notice is a short-lived message for the user, shown by whatever host
// is driving the editor (toast, status line, stderr).
type Notice struct {
	Severity Severity
	Text     string
	Timeout  time.Duration
}
