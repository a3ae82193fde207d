package sendkeys

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// DefaultWindow is the minimum time between two flushes
const DefaultWindow = time.Second

// Stats describes what has been sent so far
type Stats struct {
	Flushes   int       // number of flushes
	Text      int       // text characters handed to the sender
	Events    int       // key events handed to the sender
	Failures  int       // sender calls that returned an error
	LastError error     // error from the most recent failing sender call
	LastFlush time.Time // when the most recent flush finished
}

// Display is refreshed after every flush
type Display interface {
	Refresh(Stats)
}

// Dispatcher drains a KeyQueue at most once per Window and hands each run of
// same-kind keys to a Sender. It is the only consumer of the queue.
type Dispatcher struct {
	Queue   *KeyQueue
	Sender  Sender
	Window  time.Duration
	Display Display // may be nil
	Logger  *slog.Logger

	lastFlush time.Time
	stats     Stats
}

// NewDispatcher creates a Dispatcher with the default window.
// The first window starts now.
func NewDispatcher(queue *KeyQueue, sender Sender) *Dispatcher {
	return &Dispatcher{
		Queue:     queue,
		Sender:    sender,
		Window:    DefaultWindow,
		Logger:    slog.Default(),
		lastFlush: time.Now(),
	}
}

// Run flushes the queue as soon as it is non-empty and at least Window has
// passed since the previous flush, until ctx is cancelled
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		if d.Queue.Size() == 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-d.Queue.Ready():
			}
			continue
		}
		if wait := d.Window - time.Since(d.lastFlush); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-timer.C:
			}
		}
		d.Flush(ctx)
	}
}

// Flush sends everything in the queue, one run at a time, then refreshes
// the display and restarts the window. Sender errors are logged, and the
// keys of a failed run are dropped.
func (d *Dispatcher) Flush(ctx context.Context) {
	for d.Queue.Size() > 0 {
		run, err := d.Queue.DequeueRun()
		if errors.Is(err, ErrEmptyQueue) {
			d.logger().Error("queue drained by someone else", "err", err)
			break
		}
		d.send(ctx, run)
	}
	d.lastFlush = time.Now()
	d.stats.Flushes++
	d.stats.LastFlush = d.lastFlush
	if d.Display != nil {
		d.Display.Refresh(d.stats)
	}
}

func (d *Dispatcher) send(ctx context.Context, run Run) {
	var err error
	if run.Special {
		d.stats.Events += len(run.Values)
		err = d.Sender.SendKeyEvents(ctx, run.Values)
	} else {
		d.stats.Text += len(run.Values)
		err = d.Sender.SendText(ctx, run.Values)
	}
	if err != nil {
		d.stats.Failures++
		d.stats.LastError = err
		d.logger().Debug("dispatch failed", "special", run.Special, "keys", len(run.Values), "err", err)
		return
	}
	d.logger().Debug("dispatched", "special", run.Special, "keys", len(run.Values))
}

// Stats returns what has been sent so far.
// Not safe to call while Run is active on another goroutine.
func (d *Dispatcher) Stats() Stats {
	return d.stats
}

func (d *Dispatcher) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}
