// Package log is a small structured logger: leveled entries with
// key/value fields, request-scoped context values, and asynchronous
// delivery to one or more transporters.
package log

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
)

// Logger writes entries at or above its level. Child loggers created
// with With or Named share the parent's buffer and level.
type Logger struct {
	level     *atomic.Int32
	buffer    *Buffer
	component string
	fields    map[string]any
}

// New creates a logger delivering to the given transporters.
func New(level Level, transporters ...Transporter) *Logger {
	lvl := new(atomic.Int32)
	lvl.Store(int32(level))
	return &Logger{
		level:  lvl,
		buffer: NewBuffer(1024, transporters...),
		fields: map[string]any{},
	}
}

// Level returns the current minimum level.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// With returns a child logger that adds the given fields to every entry.
func (l *Logger) With(keysAndValues ...any) *Logger {
	child := l.clone()
	mergeFields(child.fields, keysAndValues)
	return child
}

// Named returns a child logger tagged with a component name.
func (l *Logger) Named(component string) *Logger {
	child := l.clone()
	child.component = component
	return child
}

// Close flushes pending entries and closes the transporters.
func (l *Logger) Close() {
	l.buffer.Close()
}

func (l *Logger) clone() *Logger {
	fields := make(map[string]any, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	return &Logger{
		level:     l.level,
		buffer:    l.buffer,
		component: l.component,
		fields:    fields,
	}
}

func (l *Logger) emit(ctx context.Context, level Level, msg string, keysAndValues []any) {
	if !l.Level().Enables(level) {
		return
	}

	entry := NewEntry(level, msg)
	entry.Component = l.component
	entry.Caller = caller(3)
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	if ctx != nil {
		v := valuesFrom(ctx)
		entry.RequestID = v.requestID
		for k, val := range v.fields {
			entry.Fields[k] = val
		}
	}
	mergeFields(entry.Fields, keysAndValues)

	l.buffer.Send(*entry)
}

func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func (l *Logger) Debug(msg string, keysAndValues ...any) { l.emit(nil, Debug, msg, keysAndValues) }
func (l *Logger) Info(msg string, keysAndValues ...any)  { l.emit(nil, Info, msg, keysAndValues) }
func (l *Logger) Warn(msg string, keysAndValues ...any)  { l.emit(nil, Warn, msg, keysAndValues) }
func (l *Logger) Error(msg string, keysAndValues ...any) { l.emit(nil, Error, msg, keysAndValues) }

func (l *Logger) DebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.emit(ctx, Debug, msg, keysAndValues)
}

func (l *Logger) InfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.emit(ctx, Info, msg, keysAndValues)
}

func (l *Logger) WarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.emit(ctx, Warn, msg, keysAndValues)
}

func (l *Logger) ErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.emit(ctx, Error, msg, keysAndValues)
}

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
	discardLogger = New(Error+1, discard{})
)

// SetDefault installs the logger used by the package-level functions.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Default returns the installed logger, or one that drops everything.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l == nil {
		return discardLogger
	}
	return l
}

// Package-level helpers write through Default.

func DebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().emit(ctx, Debug, msg, keysAndValues)
}

func InfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().emit(ctx, Info, msg, keysAndValues)
}

func WarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().emit(ctx, Warn, msg, keysAndValues)
}

func ErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().emit(ctx, Error, msg, keysAndValues)
}
