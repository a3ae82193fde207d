package sendkeys

import (
	"fmt"
	"io"
	"os"

	"github.com/xyproto/env/v2"
)

const (
	cursorHome         = "\033[H"
	cursorHomeTemplate = "\033[%d;%dH"
	resetDevice        = "\033c"
	eraseScreen        = "\033[2J"
	eraseLine          = "\033[2K"
	enableLineWrap     = "\033[?7h"
	disableLineWrap    = "\033[?7l"
	showCursor         = "\033[?25h"
	hideCursor         = "\033[?25l"
	echoOff            = "\033[12h"
	echoOn             = "\033[12l"
)

// UnderTMUX reports whether the process is running inside a TMUX session.
var UnderTMUX = env.Has("TMUX")

// UnderScreen reports whether the process is running inside a GNU Screen session.
var UnderScreen = env.Has("STY")

// UnderZellij reports whether the process is running inside a Zellij session.
var UnderZellij = env.Has("ZELLIJ")

// Multiplexed is true when running inside any known terminal multiplexer.
var Multiplexed = UnderTMUX || UnderScreen || UnderZellij

// out is where the escape sequences are written
var out io.Writer = os.Stdout

// SetXY moves the cursor of the terminal that w writes to, to the given
// position (0,0 is top-left).
func SetXY(w io.Writer, x, y uint) {
	fmt.Fprintf(w, cursorHomeTemplate, y+1, x+1)
}

// Home moves the cursor to the home position (top-left corner).
func Home() {
	fmt.Fprint(out, cursorHome)
}

// Reset sends the terminal reset sequence.
func Reset() {
	fmt.Fprint(out, resetDevice)
}

// Clear erases the entire screen.
func Clear() {
	fmt.Fprint(out, eraseScreen)
}

// ClearLine erases the line the cursor is on.
func ClearLine(w io.Writer) {
	fmt.Fprint(w, eraseLine)
}

// Init prepares the terminal for full-screen use: the screen is cleared,
// and the cursor and echo are turned off.
// Under TMUX and GNU Screen, the hard reset (\033c) and echo-off (\033[12h)
// are skipped: multiplexers intercept \033c and reset their own pane state,
// and mishandle \033[12h in ways that suppress visible output.
func Init() {
	if !Multiplexed {
		Reset()
		EchoOff()
	}
	Clear()
	Home()
	ShowCursor(false)
	SetLineWrap(false)
}

// Close restores the terminal to a usable interactive state and clears the screen.
func Close() {
	if !Multiplexed {
		fmt.Fprint(out, echoOn)
	}
	SetLineWrap(true)
	ShowCursor(true)
	Clear()
	Home()
}

// EchoOff disables terminal echo.
func EchoOff() {
	fmt.Fprint(out, echoOff)
}

// SetLineWrap enables or disables terminal line-wrapping.
func SetLineWrap(enable bool) {
	if enable {
		fmt.Fprint(out, enableLineWrap)
	} else {
		fmt.Fprint(out, disableLineWrap)
	}
}

// ShowCursor shows or hides the terminal cursor.
func ShowCursor(enable bool) {
	if enable {
		fmt.Fprint(out, showCursor)
	} else {
		fmt.Fprint(out, hideCursor)
	}
}
