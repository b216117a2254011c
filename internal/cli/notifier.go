package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"blox/internal/domain"
)

// TerminalNotifier prints notices as one styled line each.
type TerminalNotifier struct {
	w      io.Writer
	styles styles
}

// NewTerminalNotifier writes notices to w.
func NewTerminalNotifier(w io.Writer) *TerminalNotifier {
	return &TerminalNotifier{w: w, styles: newStyles(w)}
}

// Notify implements usecases.Notifier.
func (n *TerminalNotifier) Notify(_ context.Context, notice domain.Notice) {
	label := strings.ToUpper(string(notice.Severity))
	style, ok := n.styles.severity[notice.Severity]
	if ok {
		label = style.Render(label)
	}
	fmt.Fprintf(n.w, "%s %s\n", label, notice.Text)
}
