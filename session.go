package sendkeys

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Session ties a key source to a sender, with a queue in between
type Session struct {
	Queue      *KeyQueue
	Reader     *Reader
	Dispatcher *Dispatcher
	Logger     *slog.Logger
}

// NewSession creates a session that reads keys from source and sends them
// with sender. display may be nil.
func NewSession(source KeySource, sender Sender, display Display, window, idle time.Duration, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	queue := NewKeyQueue()
	reader := NewReader(source, queue)
	reader.Idle = idle
	dispatcher := NewDispatcher(queue, sender)
	dispatcher.Window = window
	dispatcher.Display = display
	dispatcher.Logger = logger
	return &Session{
		Queue:      queue,
		Reader:     reader,
		Dispatcher: dispatcher,
		Logger:     logger,
	}
}

// Run runs the reader and the dispatcher until ctx is cancelled or one of
// them fails. Both stop when either does.
func (s *Session) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.Reader.Run(ctx); err != nil {
			return fmt.Errorf("reading keys: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return s.Dispatcher.Run(ctx)
	})
	s.Logger.Info("session started", "window", s.Dispatcher.Window, "idle", s.Reader.Idle)
	err := g.Wait()
	stats := s.Dispatcher.Stats()
	s.Logger.Info("session ended", "flushes", stats.Flushes, "text", stats.Text, "events", stats.Events, "failures", stats.Failures, "unsent", s.Queue.Size())
	return err
}
