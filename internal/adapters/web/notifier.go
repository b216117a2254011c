package web

import (
	"context"
	"encoding/json"

	"blox/internal/domain"
	"blox/pkg/log"
)

// ToastNotifier collects the notices of one request so the handler can
// render them as toasts or send them in an HX-Trigger header.
type ToastNotifier struct {
	notices []domain.Notice
}

// Notify implements usecases.Notifier.
func (t *ToastNotifier) Notify(ctx context.Context, n domain.Notice) {
	log.DebugCtx(ctx, "notice queued", "severity", string(n.Severity), "text", n.Text)
	t.notices = append(t.notices, n)
}

// Notices returns the collected notices in order.
func (t *ToastNotifier) Notices() []domain.Notice {
	return t.notices
}

type toastEvent struct {
	Severity domain.Severity `json:"severity"`
	Text     string          `json:"text"`
	Timeout  int64           `json:"timeout"`
}

// TriggerHeader encodes the last notice as an HX-Trigger value that
// fires a showToast event on the client. It returns "" when there is
// nothing to show.
func (t *ToastNotifier) TriggerHeader() (string, error) {
	if len(t.notices) == 0 {
		return "", nil
	}
	n := t.notices[len(t.notices)-1]
	b, err := json.Marshal(map[string]toastEvent{
		"showToast": {Severity: n.Severity, Text: n.Text, Timeout: n.Timeout.Milliseconds()},
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
