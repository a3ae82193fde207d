package sendkeys

import "unicode"

// Key codes for bytes the terminal delivers as-is
const (
	keyBS         = 8
	KeyTab        = 9
	KeyEnter      = 10
	keyCR         = 13
	KeyEscape     = 27
	KeySpace      = 32
	KeyLeftParen  = 40
	KeyRightParen = 41
	keyDEL        = 127
)

// Key codes for decoded escape sequences. They start right after the last
// valid rune, so they can never be mistaken for a character.
const (
	KeyUp = int(unicode.MaxRune) + 1 + iota
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyBackspace

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Android key event ids, as understood by "input keyevent"
const (
	KeycodeHome             = 3
	KeycodeBack             = 4
	KeycodeDpadUp           = 19
	KeycodeDpadDown         = 20
	KeycodeDpadLeft         = 21
	KeycodeDpadRight        = 22
	KeycodeCamera           = 27
	KeycodeTab              = 61
	KeycodeSpace            = 62
	KeycodeEnter            = 66
	KeycodeDel              = 67
	KeycodePageUp           = 92
	KeycodePageDown         = 93
	KeycodeForwardDel       = 112
	KeycodeMoveEnd          = 123
	KeycodeNumpadLeftParen  = 162
	KeycodeNumpadRightParen = 163
)

// TaggedKey is a captured key. When Special is true, Value is an Android
// key event id, otherwise it is a character code.
type TaggedKey struct {
	Special bool
	Value   int
}

// Run is a contiguous group of queued keys of the same kind
type Run struct {
	Special bool
	Values  []int
}
