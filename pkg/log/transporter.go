package log

// Transporter is a log destination (stdout, a terminal, a file, ...).
type Transporter interface {
	Name() string
	Write(entry Entry) error
	Close() error
}

type discard struct{}

func (discard) Name() string      { return "discard" }
func (discard) Write(Entry) error { return nil }
func (discard) Close() error      { return nil }
