package notify

import (
	"io"
	"log"
	"sync"
)

// Severity of a user-facing notification.
type Severity string

const (
	SeverityNormal Severity = "normal"
	SeverityError  Severity = "error"
)

// Event is what the core emits toward the presentation layer. The core
// only produces events; rendering them is someone else's problem.
type Event struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Sink receives notification events.
type Sink interface {
	Emit(event Event)
}

// LogSink writes every event to a logger.
type LogSink struct {
	logger *log.Logger
}

func NewLogSink(logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(event Event) {
	s.logger.Printf("notification severity=%s title=%q description=%q", event.Severity, event.Title, event.Description)
}

// Buffer keeps the most recent events in a bounded ring so the HTTP layer
// can hand them to clients for rendering.
type Buffer struct {
	mu     sync.Mutex
	events []Event
	max    int
}

func NewBuffer(max int) *Buffer {
	if max < 1 {
		max = 1
	}
	return &Buffer{max: max}
}

func (b *Buffer) Emit(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	if len(b.events) > b.max {
		b.events = b.events[len(b.events)-b.max:]
	}
}

// Recent returns buffered events, newest last.
func (b *Buffer) Recent() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}

// Multi fans one event out to several sinks.
type Multi []Sink

func (m Multi) Emit(event Event) {
	for _, sink := range m {
		sink.Emit(event)
	}
}
