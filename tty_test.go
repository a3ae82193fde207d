//go:build !windows

package sendkeys

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     []int
		wantRest string
	}{
		{"text", "abc", []int{'a', 'b', 'c'}, ""},
		{"enter as CR", "a\r", []int{'a', KeyEnter}, ""},
		{"enter as LF", "\n", []int{KeyEnter}, ""},
		{"backspace as DEL", "\x7f", []int{KeyBackspace}, ""},
		{"backspace as BS", "\b", []int{KeyBackspace}, ""},
		{"tab and space", "\t ", []int{KeyTab, KeySpace}, ""},
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []int{KeyUp, KeyDown, KeyRight, KeyLeft}, ""},
		{"application mode arrows", "\x1bOA\x1bOD", []int{KeyUp, KeyLeft}, ""},
		{"home and end", "\x1b[H\x1b[4~\x1b[1~\x1bOF", []int{KeyHome, KeyEnd, KeyHome, KeyEnd}, ""},
		{"insert and delete", "\x1b[2~x\x1b[3~", []int{KeyInsert, 'x', KeyDelete}, ""},
		{"page keys", "\x1b[5~\x1b[6~", []int{KeyPageUp, KeyPageDown}, ""},
		{"function keys", "\x1bOP\x1b[15~\x1b[24~\x1b[[B", []int{KeyF1, KeyF5, KeyF12, KeyF2}, ""},
		{"unknown sequence is skipped", "a\x1b[1;5A b", []int{'a', KeySpace, 'b'}, ""},
		{"escape followed by escape", "\x1b\x1b[A", []int{KeyEscape, KeyUp}, ""},
		{"alt and a letter", "\x1bx", []int{KeyEscape, 'x'}, ""},
		{"utf-8", "æ世", []int{'æ', '世'}, ""},
		{"lone escape waits", "ab\x1b", []int{'a', 'b'}, "\x1b"},
		{"partial sequence waits", "\x1b[1", nil, "\x1b[1"},
		{"partial utf-8 waits", "a\xe4\xb8", []int{'a'}, "\xe4\xb8"},
		{"invalid utf-8 dropped", "\xffz", []int{'z'}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest := decodeKeys([]byte(tt.input))
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("codes mismatch (-want +got):\n%s", diff)
			}
			if string(rest) != tt.wantRest {
				t.Errorf("rest = %q, want %q", rest, tt.wantRest)
			}
		})
	}
}

func TestDecodeKeysAcrossReads(t *testing.T) {
	// An arrow key split over two reads
	codes, rest := decodeKeys([]byte("q\x1b["))
	if diff := cmp.Diff([]int{'q'}, codes); diff != "" {
		t.Fatalf("codes mismatch (-want +got):\n%s", diff)
	}
	codes, rest = decodeKeys(append(rest, 'A', 'w'))
	if diff := cmp.Diff([]int{KeyUp, 'w'}, codes); diff != "" {
		t.Errorf("codes mismatch (-want +got):\n%s", diff)
	}
	if len(rest) != 0 {
		t.Errorf("expected nothing left, got %q", rest)
	}
}

func TestFlushRest(t *testing.T) {
	tests := []struct {
		name string
		rest string
		want []int
	}{
		{"nothing", "", nil},
		{"lone escape", "\x1b", []int{KeyEscape}},
		{"escape and O", "\x1bO", []int{KeyEscape, 'O'}},
		{"escape and bracket", "\x1b[", []int{KeyEscape, '['}},
		{"escape, bracket and digit", "\x1b[1", []int{KeyEscape, '[', '1'}},
		{"escape and partial utf-8", "\x1b\xe4\xb8", []int{KeyEscape}},
		{"partial utf-8", "\xe4\xb8", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flushRest([]byte(tt.rest))
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("codes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
