package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogseq "github.com/sokkalf/slog-seq"
)

const (
	envLevel  = "ROWKIT_LOG_LEVEL"
	envSeqURL = "ROWKIT_SEQ_URL"
)

// Config controls where and how much the tools log
type Config struct {
	Level     slog.Level
	SeqURL    string // empty disables the Seq sink
	AddSource bool
	Output    io.Writer // console destination, os.Stderr when nil
}

// ConfigFromEnv builds a Config from ROWKIT_LOG_LEVEL and ROWKIT_SEQ_URL
func ConfigFromEnv() Config {
	return Config{
		Level:  ParseLevel(os.Getenv(envLevel)),
		SeqURL: strings.TrimSpace(os.Getenv(envSeqURL)),
	}
}

// ParseLevel maps debug|info|warn|error to a slog level, defaulting to info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multiHandler forwards log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	// Enable if any handler is enabled for this level
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// SetupLogger initializes a logger and returns a cleanup function
func SetupLogger(cfg Config) (*slog.Logger, func()) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	// Console handler
	consoleHandler := slog.NewTextHandler(out, opts)

	if cfg.SeqURL == "" {
		return slog.New(consoleHandler), func() {}
	}

	// Seq handler
	_, seqHandler := slogseq.NewLogger(
		cfg.SeqURL,
		slogseq.WithBatchSize(1),
		slogseq.WithFlushInterval(500*time.Millisecond),
		slogseq.WithHandlerOptions(opts),
	)

	// If Seq is not available, use console only
	if seqHandler == nil {
		return slog.New(consoleHandler), func() {}
	}

	// Combine both handlers
	multi := &multiHandler{
		handlers: []slog.Handler{consoleHandler, seqHandler},
	}

	closeFn := func() {
		seqHandler.Close()
	}

	return slog.New(multi), closeFn
}
