package rowgen

import (
	"log/slog"
	"time"
)

// EventType represents the lifecycle phases of a generation run
type EventType string

const (
	EventGenerateStart EventType = "generate_start"
	EventArityRendered EventType = "arity_rendered"
	EventGenerateEnd   EventType = "generate_end"
)

// Event represents a lifecycle event of a generation run
type Event struct {
	Type      EventType   // Type of event
	RunID     string      // Run ID for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (arity, byte count, error)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}

// LoggingObserver logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer; a nil logger means slog.Default().
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Debug("rowgen_lifecycle",
		"event", event.Type,
		"run_id", event.RunID,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
