package sendkeys

import (
	"errors"
	"sync"
)

// ErrEmptyQueue is returned when dequeueing from an empty KeyQueue.
// The dispatcher checks the size first, so seeing it is a bug.
var ErrEmptyQueue = errors.New("key queue is empty")

// KeyQueue is an ordered, mutex guarded buffer of captured keys.
// Keys come out in the order they went in.
type KeyQueue struct {
	mut   *sync.Mutex
	keys  []TaggedKey
	ready chan struct{}
}

// NewKeyQueue creates an empty KeyQueue
func NewKeyQueue() *KeyQueue {
	return &KeyQueue{
		mut:   &sync.Mutex{},
		keys:  make([]TaggedKey, 0, 64),
		ready: make(chan struct{}, 1),
	}
}

// Enqueue appends a key to the end of the queue and wakes up a waiting consumer
func (q *KeyQueue) Enqueue(k TaggedKey) {
	q.mut.Lock()
	q.keys = append(q.keys, k)
	q.mut.Unlock()
	select {
	case q.ready <- struct{}{}:
	default: // a wakeup is already pending
	}
}

// Ready returns a channel that receives a value after keys have been enqueued.
// A receive only means that the queue was non-empty at some point, so the
// size should be checked again.
func (q *KeyQueue) Ready() <-chan struct{} {
	return q.ready
}

// DequeueOne removes and returns the first key in the queue
func (q *KeyQueue) DequeueOne() (TaggedKey, error) {
	q.mut.Lock()
	defer q.mut.Unlock()
	if len(q.keys) == 0 {
		return TaggedKey{}, ErrEmptyQueue
	}
	k := q.keys[0]
	q.keys = q.keys[1:]
	return k, nil
}

// DequeueRun removes and returns the longest run of keys at the front of the
// queue that are all special or all text. The whole run is taken while
// holding the lock, so a concurrent Enqueue can only end up after it.
func (q *KeyQueue) DequeueRun() (Run, error) {
	q.mut.Lock()
	defer q.mut.Unlock()
	if len(q.keys) == 0 {
		return Run{}, ErrEmptyQueue
	}
	special := q.keys[0].Special
	n := 1
	for n < len(q.keys) && q.keys[n].Special == special {
		n++
	}
	values := make([]int, n)
	for i, k := range q.keys[:n] {
		values[i] = k.Value
	}
	q.keys = q.keys[n:]
	return Run{Special: special, Values: values}, nil
}

// Size returns the number of keys currently in the queue
func (q *KeyQueue) Size() int {
	q.mut.Lock()
	defer q.mut.Unlock()
	return len(q.keys)
}
