package sendkeys

import (
	"context"
	"time"
)

// DefaultIdle is how long the reader sleeps when no key was available
const DefaultIdle = 100 * time.Millisecond

// KeySource is something that key codes can be polled from, like a TTY.
// ReadKey returns ok=false when no key is available right now. A TTY
// waits for its read timeout before doing so.
type KeySource interface {
	ReadKey() (code int, ok bool, err error)
}

// Reader moves keys from a KeySource into a KeyQueue.
// It is the only producer for the queue.
type Reader struct {
	Source KeySource
	Queue  *KeyQueue
	Idle   time.Duration
}

// NewReader creates a Reader with the default idle interval
func NewReader(source KeySource, queue *KeyQueue) *Reader {
	return &Reader{Source: source, Queue: queue, Idle: DefaultIdle}
}

// Run reads, translates and enqueues keys until ctx is cancelled.
// When a key was read, the next read happens right away. Otherwise the
// reader sleeps for Idle, which adds to any wait inside ReadKey. Use an
// Idle of 0 for a source that waits by itself.
func (r *Reader) Run(ctx context.Context) error {
	idle := time.NewTimer(0)
	defer idle.Stop()
	<-idle.C
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		code, ok, err := r.Source.ReadKey()
		if err != nil {
			return err
		}
		if ok {
			r.Queue.Enqueue(Translate(code))
			continue
		}
		if r.Idle <= 0 {
			continue
		}
		idle.Reset(r.Idle)
		select {
		case <-ctx.Done():
			return nil
		case <-idle.C:
		}
	}
}
