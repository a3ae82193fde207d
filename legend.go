package sendkeys

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mgutz/ansi"
)

// Legend lists the keys that do something other than typing a character
var Legend = [][2]string{
	{"HOME key", "Android Home"},
	{"ESCape key", "Android Back"},
	{"INSert key", "Take Picture"},
	{"Arrow keys", "DPAD Keys"},
	{"Ctrl-c", "Quit"},
}

const (
	legendTitle  = "sendkeys - type on an Android device"
	legendHeader = "        Special Keys        "
	legendTop    = 3 // row of the header
)

// Screen draws the legend, an optional notice and a status line.
// It implements Display.
type Screen struct {
	mut    *sync.Mutex
	w      io.Writer
	width  uint
	notice string
	stats  *Stats // last stats passed to Refresh

	title, header, noticeStyle, errStyle func(string) string
}

// NewScreen creates a Screen that writes to w. Colors are only used
// if color is true.
func NewScreen(w io.Writer, color bool) *Screen {
	plain := func(s string) string { return s }
	width, _ := TermSize()
	s := &Screen{
		mut:         &sync.Mutex{},
		w:           w,
		width:       width,
		title:       plain,
		header:      plain,
		noticeStyle: plain,
		errStyle:    plain,
	}
	if color {
		s.title = ansi.ColorFunc("green+b")
		s.header = ansi.ColorFunc("white+u")
		s.noticeStyle = ansi.ColorFunc("yellow+i")
		s.errStyle = ansi.ColorFunc("red")
	}
	return s
}

// SetNotice sets a line of text that is shown below the legend
func (s *Screen) SetNotice(notice string) {
	s.mut.Lock()
	s.notice = notice
	s.mut.Unlock()
}

// statusRow is the row of the status line
func (s *Screen) statusRow() uint {
	return legendTop + uint(len(Legend)) + 3
}

// Draw writes the title, the legend and the notice
func (s *Screen) Draw() {
	s.mut.Lock()
	defer s.mut.Unlock()
	s.draw()
}

// Resize redraws everything after the terminal has changed size
func (s *Screen) Resize() {
	s.mut.Lock()
	defer s.mut.Unlock()
	s.width, _ = TermSize()
	fmt.Fprint(s.w, eraseScreen)
	s.draw()
	if s.stats != nil {
		s.status(*s.stats)
	}
}

func (s *Screen) draw() {
	s.line(0, s.title(s.fit(legendTitle)))
	s.line(legendTop, s.header(legendHeader))
	for i, entry := range Legend {
		s.line(legendTop+1+uint(i), s.fit(fmt.Sprintf("%-13s - %s", entry[0], entry[1])))
	}
	if s.notice != "" {
		s.line(legendTop+uint(len(Legend))+1, s.noticeStyle(s.fit(s.notice)))
	}
}

// Refresh redraws the status line
func (s *Screen) Refresh(stats Stats) {
	s.mut.Lock()
	defer s.mut.Unlock()
	s.stats = &stats
	s.status(stats)
}

func (s *Screen) status(stats Stats) {
	s.line(s.statusRow(), s.fit(StatusLine(stats)))
	if stats.LastError != nil {
		s.line(s.statusRow()+1, s.errStyle(s.fit("last error: "+stats.LastError.Error())))
	}
}

// StatusLine summarizes what has been sent so far
func StatusLine(stats Stats) string {
	msg := fmt.Sprintf("sent %d characters and %d key events in %d batches", stats.Text, stats.Events, stats.Flushes)
	if stats.Failures > 0 {
		msg += fmt.Sprintf(", %d failed", stats.Failures)
	}
	return msg
}

// line clears a row and writes text at its start
func (s *Screen) line(row uint, text string) {
	SetXY(s.w, 0, row)
	ClearLine(s.w)
	fmt.Fprint(s.w, text)
}

// fit cuts text that is wider than the terminal
func (s *Screen) fit(text string) string {
	if s.width == 0 {
		return text
	}
	runes := []rune(text)
	if uint(len(runes)) <= s.width {
		return text
	}
	return strings.TrimSpace(string(runes[:s.width]))
}
