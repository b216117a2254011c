package log

import (
	"errors"
	"strings"
)

// Level is the severity of a log entry.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// ErrInvalidLevel is returned when a level name is not recognised.
var ErrInvalidLevel = errors.New("invalid log level")

func (l Level) String() string {
	if l < Debug || l > Error {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel converts a case-insensitive level name into a Level.
// Unknown names yield Info together with ErrInvalidLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG", "TRACE":
		return Debug, nil
	case "INFO", "":
		return Info, nil
	case "WARN", "WARNING":
		return Warn, nil
	case "ERROR", "FATAL":
		return Error, nil
	}
	return Info, ErrInvalidLevel
}

// Enables reports whether a logger at level l emits entries at target.
func (l Level) Enables(target Level) bool {
	return target >= l
}

// MarshalText lets levels appear by name in config files.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText parses a level name.
func (l *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}
