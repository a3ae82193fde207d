package sendkeys

// KeyMap maps terminal key codes to Android key event ids.
// Everything not listed here is sent as text.
var KeyMap = map[int]int{
	KeyHome:       KeycodeHome,
	KeyEscape:     KeycodeBack,
	KeyUp:         KeycodeDpadUp,
	KeyDown:       KeycodeDpadDown,
	KeyLeft:       KeycodeDpadLeft,
	KeyRight:      KeycodeDpadRight,
	KeyInsert:     KeycodeCamera, // take a picture
	KeyTab:        KeycodeTab,
	KeyEnter:      KeycodeEnter,
	KeySpace:      KeycodeSpace,
	KeyBackspace:  KeycodeDel,
	KeyLeftParen:  KeycodeNumpadLeftParen,
	KeyRightParen: KeycodeNumpadRightParen,
	KeyEnd:        KeycodeMoveEnd,
	KeyDelete:     KeycodeForwardDel,
	KeyPageUp:     KeycodePageUp,
	KeyPageDown:   KeycodePageDown,
}

// Translate turns a terminal key code into a TaggedKey
func Translate(code int) TaggedKey {
	if id, found := KeyMap[code]; found {
		return TaggedKey{Special: true, Value: id}
	}
	return TaggedKey{Value: code}
}
