package transporters

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"blox/pkg/log"
)

// Console renders entries for humans: time, coloured level, message and
// sorted key=value pairs. Colours are dropped when w is not a terminal.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	levels map[log.Level]lipgloss.Style
	faint  lipgloss.Style
}

// NewConsole writes to os.Stderr.
func NewConsole() *Console {
	return NewConsoleWithWriter(os.Stderr)
}

// NewConsoleWithWriter writes to w.
func NewConsoleWithWriter(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	level := func(color string) lipgloss.Style {
		return r.NewStyle().Bold(true).Width(5).Foreground(lipgloss.Color(color))
	}
	return &Console{
		w: w,
		levels: map[log.Level]lipgloss.Style{
			log.Debug: level("8"),
			log.Info:  level("12"),
			log.Warn:  level("11"),
			log.Error: level("9"),
		},
		faint: r.NewStyle().Faint(true),
	}
}

func (c *Console) Name() string { return "console" }

func (c *Console) Write(entry log.Entry) error {
	var b strings.Builder
	b.WriteString(c.faint.Render(entry.Time.Format("15:04:05")))
	b.WriteByte(' ')
	b.WriteString(c.levels[entry.Level].Render(entry.Level.String()))
	b.WriteByte(' ')
	if entry.Component != "" {
		b.WriteString(c.faint.Render(entry.Component + ":"))
		b.WriteByte(' ')
	}
	b.WriteString(entry.Message)

	fields := entry.Fields
	if entry.RequestID != "" {
		fields = make(map[string]any, len(entry.Fields)+1)
		for k, v := range entry.Fields {
			fields[k] = v
		}
		fields["request_id"] = entry.RequestID
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + c.faint.Render(k+"=") + fmt.Sprint(fields[k]))
	}
	b.WriteByte('\n')

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := io.WriteString(c.w, b.String())
	return err
}

func (c *Console) Close() error { return nil }
