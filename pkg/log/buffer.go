package log

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// Buffer delivers entries to transporters from a single background
// goroutine. When the queue is full the oldest queued entry is dropped.
type Buffer struct {
	queue        chan Entry
	transporters []Transporter

	dropped atomic.Int64
	closed  atomic.Bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewBuffer starts a buffer holding at most capacity pending entries.
func NewBuffer(capacity int, transporters ...Transporter) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	b := &Buffer{
		queue:        make(chan Entry, capacity),
		transporters: transporters,
		done:         make(chan struct{}),
	}
	b.wg.Add(1)
	go b.run()
	return b
}

// Send enqueues entry without blocking. Safe for concurrent use.
func (b *Buffer) Send(entry Entry) {
	if b.closed.Load() {
		return
	}
	for attempt := 0; attempt < 2; attempt++ {
		select {
		case b.queue <- entry:
			return
		default:
		}
		select {
		case <-b.queue:
			b.dropped.Add(1)
		default:
		}
	}
	b.dropped.Add(1)
}

// Dropped returns how many entries were discarded because the queue was full.
func (b *Buffer) Dropped() int64 {
	return b.dropped.Load()
}

// Close drains pending entries, then closes every transporter.
// Calling Close more than once is a no-op.
func (b *Buffer) Close() {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}
	close(b.done)
	b.wg.Wait()

	for {
		select {
		case entry := <-b.queue:
			b.deliver(entry)
		default:
			for _, t := range b.transporters {
				_ = t.Close()
			}
			return
		}
	}
}

func (b *Buffer) run() {
	defer b.wg.Done()
	for {
		select {
		case entry := <-b.queue:
			b.deliver(entry)
		case <-b.done:
			return
		}
	}
}

func (b *Buffer) deliver(entry Entry) {
	for _, t := range b.transporters {
		if err := t.Write(entry); err != nil {
			fmt.Fprintf(os.Stderr, "log: transporter %s: %v\n", t.Name(), err)
		}
	}
}
