//go:build !windows

package sendkeys

import (
	"errors"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/pkg/term"
	"github.com/xyproto/env/v2"
)

// defaultTimeout is the read timeout. The terminal driver counts in tenths
// of a second, so this is also the shortest timeout that can be used.
var defaultTimeout = 100 * time.Millisecond

// Escape sequences for special keys. Both the CSI (ESC [) and SS3 (ESC O)
// forms are listed, since terminals differ in which ones they send.
var escapeLookup = map[string]int{
	"\x1b[A": KeyUp,
	"\x1b[B": KeyDown,
	"\x1b[C": KeyRight,
	"\x1b[D": KeyLeft,
	"\x1b[H": KeyHome,
	"\x1b[F": KeyEnd,
	"\x1bOA": KeyUp,
	"\x1bOB": KeyDown,
	"\x1bOC": KeyRight,
	"\x1bOD": KeyLeft,
	"\x1bOH": KeyHome,
	"\x1bOF": KeyEnd,

	"\x1b[1~": KeyHome,
	"\x1b[2~": KeyInsert,
	"\x1b[3~": KeyDelete,
	"\x1b[4~": KeyEnd,
	"\x1b[5~": KeyPageUp,
	"\x1b[6~": KeyPageDown,
	"\x1b[7~": KeyHome, // rxvt
	"\x1b[8~": KeyEnd,  // rxvt

	"\x1bOP":   KeyF1,
	"\x1bOQ":   KeyF2,
	"\x1bOR":   KeyF3,
	"\x1bOS":   KeyF4,
	"\x1b[[A":  KeyF1, // TERM=linux
	"\x1b[[B":  KeyF2,
	"\x1b[[C":  KeyF3,
	"\x1b[[D":  KeyF4,
	"\x1b[[E":  KeyF5,
	"\x1b[11~": KeyF1,
	"\x1b[12~": KeyF2,
	"\x1b[13~": KeyF3,
	"\x1b[14~": KeyF4,
	"\x1b[15~": KeyF5,
	"\x1b[17~": KeyF6,
	"\x1b[18~": KeyF7,
	"\x1b[19~": KeyF8,
	"\x1b[20~": KeyF9,
	"\x1b[21~": KeyF10,
	"\x1b[23~": KeyF11,
	"\x1b[24~": KeyF12,
}

// TTY reads key codes from a terminal device in cbreak mode
type TTY struct {
	t       *term.Term
	timeout time.Duration
	buf     []byte
	rest    []byte // start of a sequence that has not been completed yet
	pending []int  // decoded key codes that have not been returned yet
}

// NewTTY opens a terminal device in cbreak mode: no echo, no line
// buffering, but ctrl-c still raises SIGINT. If path is empty, a
// suitable device is picked.
func NewTTY(path string) (*TTY, error) {
	if path == "" {
		path = getTTYPath()
	}
	t, err := term.Open(path, term.CBreakMode, term.ReadTimeout(defaultTimeout))
	if err != nil {
		return nil, err
	}
	return &TTY{t: t, timeout: defaultTimeout, buf: make([]byte, 256)}, nil
}

// getTTYPath returns the appropriate TTY path
func getTTYPath() string {
	// Check for tmux pane TTY
	if tmuxTTY := env.Str("TMUX_PANE_TTY"); tmuxTTY != "" {
		return tmuxTTY
	}

	// Check for SSH TTY
	if sshTTY := env.Str("SSH_TTY"); sshTTY != "" {
		return sshTTY
	}

	// Default to /dev/tty
	defaultTTY := "/dev/tty"
	if _, err := os.Stat(defaultTTY); err == nil {
		return defaultTTY
	}

	// Fallback to stdin if /dev/tty unavailable
	return "/dev/stdin"
}

// SetTimeout sets how long ReadKey waits for input
// and waits for a lone ESC to be followed by more. The terminal counts in
// tenths of a second, so shorter durations are rounded up to defaultTimeout.
func (tty *TTY) SetTimeout(d time.Duration) error {
	if d < defaultTimeout {
		d = defaultTimeout
	}
	tty.timeout = d
	return tty.t.SetReadTimeout(d)
}

// Timeout returns the configured read timeout
func (tty *TTY) Timeout() time.Duration {
	return tty.timeout
}

// Close will restore and close the terminal
func (tty *TTY) Close() error {
	err := tty.t.Restore()
	if cerr := tty.t.Close(); err == nil {
		err = cerr
	}
	return err
}

// ReadKey returns the next key code. It waits at most the read timeout,
// and returns ok=false if no key arrived in that time.
// Several keys that arrive at once, like when pasting, are returned
// one by one.
func (tty *TTY) ReadKey() (int, bool, error) {
	if len(tty.pending) == 0 {
		if err := tty.fill(); err != nil {
			return 0, false, err
		}
	}
	if len(tty.pending) == 0 {
		return 0, false, nil
	}
	code := tty.pending[0]
	tty.pending = tty.pending[1:]
	return code, true, nil
}

// fill reads from the terminal and decodes what was read into pending
func (tty *TTY) fill() error {
	n, err := tty.t.Read(tty.buf)
	if errors.Is(err, io.EOF) && n == 0 {
		// Timed out, so an unfinished sequence will not be completed
		tty.pending = append(tty.pending, flushRest(tty.rest)...)
		tty.rest = tty.rest[:0]
		return nil
	}
	if err != nil {
		return err
	}
	data := append(tty.rest, tty.buf[:n]...)
	codes, rest := decodeKeys(data)
	tty.pending = append(tty.pending, codes...)
	tty.rest = append(tty.rest[:0:0], rest...)
	return nil
}

// decodeKeys turns raw terminal input into key codes. An incomplete escape
// sequence or UTF-8 encoding at the end of data is returned as rest.
func decodeKeys(data []byte) (codes []int, rest []byte) {
	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b == KeyEscape:
			consumed, code := decodeEscape(data[i:])
			switch {
			case consumed < 0: // wait for more
				return codes, data[i:]
			case consumed == 0: // a plain ESC
				codes = append(codes, KeyEscape)
				i++
			default:
				if code != 0 {
					codes = append(codes, code)
				}
				i += consumed
			}
		case b < utf8.RuneSelf:
			codes = append(codes, normalizeKeyCode(int(b)))
			i++
		default:
			if !utf8.FullRune(data[i:]) {
				return codes, data[i:]
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				codes = append(codes, int(r))
			}
			i += size
		}
	}
	return codes, nil
}

// flushRest decodes what is left over when no more input arrives.
// An ESC is the Esc key, and what follows it is plain characters.
// An incomplete UTF-8 encoding is dropped.
func flushRest(rest []byte) []int {
	var codes []int
	for len(rest) > 0 {
		if rest[0] == KeyEscape {
			codes = append(codes, KeyEscape)
			rest = rest[1:]
			continue
		}
		decoded, left := decodeKeys(rest)
		codes = append(codes, decoded...)
		if len(left) == len(rest) {
			break
		}
		rest = left
	}
	return codes
}

// decodeEscape looks at a sequence starting with ESC. It returns the number
// of bytes the sequence takes up, and the key code, or 0 if the sequence is
// not one that is recognized (it is then skipped). A consumed count of 0
// means that the ESC is not the start of a sequence, and -1 means that
// more bytes are needed.
func decodeEscape(seq []byte) (int, int) {
	if len(seq) < 2 {
		return -1, 0
	}
	switch seq[1] {
	case 'O':
		if len(seq) < 3 {
			return -1, 0
		}
		return 3, escapeLookup[string(seq[:3])]
	case '[':
		if len(seq) < 3 {
			return -1, 0
		}
		if seq[2] == '[' { // TERM=linux function keys
			if len(seq) < 4 {
				return -1, 0
			}
			return 4, escapeLookup[string(seq[:4])]
		}
		// Parameter and intermediate bytes, then a final byte in 0x40-0x7e
		for j := 2; j < len(seq); j++ {
			if seq[j] >= 0x40 && seq[j] <= 0x7e {
				return j + 1, escapeLookup[string(seq[:j+1])]
			}
			if seq[j] < 0x20 || seq[j] > 0x3f {
				// Not a valid CSI sequence, drop the introducer
				return 2, 0
			}
		}
		return -1, 0
	}
	return 0, 0
}

// normalizeKeyCode handles terminal specific differences for single bytes
func normalizeKeyCode(ascii int) int {
	switch ascii {
	case keyCR:
		return KeyEnter
	case keyDEL, keyBS:
		return KeyBackspace
	}
	return ascii
}
