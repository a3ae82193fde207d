//go:build windows

package sendkeys

import (
	"errors"
	"time"
)

var errNoTTY = errors.New("reading keys from a terminal device is not supported on this platform")

// TTY is not available on this platform
type TTY struct{}

// NewTTY always fails on this platform
func NewTTY(path string) (*TTY, error) {
	return nil, errNoTTY
}

// SetTimeout sets how long ReadKey waits for input
func (tty *TTY) SetTimeout(d time.Duration) error { return errNoTTY }

// Timeout returns the configured read timeout
func (tty *TTY) Timeout() time.Duration { return 0 }

// Close does nothing on this platform
func (tty *TTY) Close() error { return nil }

// ReadKey always fails on this platform
func (tty *TTY) ReadKey() (int, bool, error) { return 0, false, errNoTTY }
