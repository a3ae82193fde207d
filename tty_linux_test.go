//go:build linux

package sendkeys

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/term/termios"
)

// openPty returns the master side of a pseudoterminal and a TTY reading
// from its slave side
func openPty(t *testing.T) (write func(string), tty *TTY) {
	t.Helper()
	ptm, pts, err := termios.Pty()
	if err != nil {
		t.Skipf("no pseudoterminal available: %v", err)
	}
	t.Cleanup(func() {
		ptm.Close()
		pts.Close()
	})
	tty, err = NewTTY(pts.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { tty.Close() })
	write = func(s string) {
		if _, err := ptm.WriteString(s); err != nil {
			t.Fatal(err)
		}
	}
	return write, tty
}

// readKeys calls ReadKey until want keys have arrived or the attempts run out
func readKeys(t *testing.T, tty *TTY, want, attempts int) []int {
	t.Helper()
	var codes []int
	for i := 0; i < attempts && len(codes) < want; i++ {
		code, ok, err := tty.ReadKey()
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			codes = append(codes, code)
		}
	}
	return codes
}

func TestTTYKeepsEscapeFollowedByLetter(t *testing.T) {
	write, tty := openPty(t)
	write("\x1bO")
	got := readKeys(t, tty, 2, 5)
	if diff := cmp.Diff([]int{KeyEscape, 'O'}, got); diff != "" {
		t.Errorf("codes mismatch (-want +got):\n%s", diff)
	}
}

func TestTTYReadsArrowsAndText(t *testing.T) {
	write, tty := openPty(t)
	write("a\x1b[Ab")
	got := readKeys(t, tty, 3, 5)
	if diff := cmp.Diff([]int{'a', KeyUp, 'b'}, got); diff != "" {
		t.Errorf("codes mismatch (-want +got):\n%s", diff)
	}
}

func TestTTYSetTimeout(t *testing.T) {
	_, tty := openPty(t)
	if got := tty.Timeout(); got != defaultTimeout {
		t.Errorf("Timeout() = %v, want %v", got, defaultTimeout)
	}
	if err := tty.SetTimeout(10 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if got := tty.Timeout(); got != defaultTimeout {
		t.Errorf("a timeout below the terminal resolution gave %v", got)
	}
	if err := tty.SetTimeout(200 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	start := time.Now()
	if _, ok, err := tty.ReadKey(); err != nil || ok {
		t.Fatalf("ReadKey() = ok %v, err %v, expected a timeout", ok, err)
	}
	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Errorf("ReadKey returned after %v, expected it to wait for the timeout", elapsed)
	}
}
