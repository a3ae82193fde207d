package sendkeys

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoDevice is returned by CheckDevice when adb lists no usable device
var ErrNoDevice = errors.New("no device attached")

// Sender delivers runs of keys to the device
type Sender interface {
	SendText(ctx context.Context, codes []int) error
	SendKeyEvents(ctx context.Context, ids []int) error
}

// RunFunc runs a command and returns its standard output
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// DispatchError is returned when an adb invocation could not be started
// or exited with a non-zero status
type DispatchError struct {
	Args []string
	Err  error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("adb %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Device is one line of "adb devices" output
type Device struct {
	Serial string
	State  string
}

// Bridge sends keys to an Android device by running adb
type Bridge struct {
	Path  string   // path to the adb executable
	Extra []string // passed to adb before every subcommand, like "-s SERIAL"
	run   RunFunc
}

// NewBridge creates a Bridge that runs the given adb executable
func NewBridge(path string, extra ...string) *Bridge {
	if path == "" {
		path = "adb"
	}
	return &Bridge{Path: path, Extra: extra, run: execRun}
}

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Command runs adb with the extra arguments followed by args
func (b *Bridge) Command(ctx context.Context, args ...string) ([]byte, error) {
	full := make([]string, 0, len(b.Extra)+len(args))
	full = append(full, b.Extra...)
	full = append(full, args...)
	out, err := b.run(ctx, b.Path, full...)
	if err != nil {
		return out, &DispatchError{Args: full, Err: err}
	}
	return out, nil
}

// Devices lists the devices adb knows about, in any state
func (b *Bridge) Devices(ctx context.Context) ([]Device, error) {
	out, err := b.Command(ctx, "devices")
	if err != nil {
		return nil, err
	}
	return parseDevices(out), nil
}

// CheckDevice returns ErrNoDevice unless at least one device is ready
func (b *Bridge) CheckDevice(ctx context.Context) error {
	devices, err := b.Devices(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	for _, d := range devices {
		if d.State == "device" {
			return nil
		}
	}
	return ErrNoDevice
}

// parseDevices parses "serial<TAB>state" lines, skipping the header
func parseDevices(out []byte) []Device {
	var devices []Device
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || strings.HasPrefix(scanner.Text(), "List of devices") || strings.HasPrefix(fields[0], "*") {
			continue
		}
		devices = append(devices, Device{Serial: fields[0], State: fields[1]})
	}
	return devices
}

// SendText types the given characters on the device
func (b *Bridge) SendText(ctx context.Context, codes []int) error {
	args := TextArgs(codes)
	if args == nil {
		return nil
	}
	_, err := b.Command(ctx, args...)
	return err
}

// SendKeyEvents sends the given key events to the device, in order,
// with a single adb invocation
func (b *Bridge) SendKeyEvents(ctx context.Context, ids []int) error {
	args := KeyEventArgs(ids)
	if args == nil {
		return nil
	}
	_, err := b.Command(ctx, args...)
	return err
}

// TextArgs returns the adb arguments for typing the given characters,
// or nil if none of them can be typed
func TextArgs(codes []int) []string {
	text := EscapeText(codes)
	if text == "" {
		return nil
	}
	return []string{"shell", "input", "text", text}
}

// KeyEventArgs returns the adb arguments for sending the given key events
// in one go, or nil if there are none
func KeyEventArgs(ids []int) []string {
	if len(ids) == 0 {
		return nil
	}
	var sb strings.Builder
	for _, id := range ids {
		sb.WriteString("input keyevent ")
		sb.WriteString(strconv.Itoa(id))
		sb.WriteByte(';')
	}
	// adb joins the arguments with spaces before handing them to the remote shell
	return append([]string{"shell"}, strings.Fields(sb.String())...)
}

// EscapeText converts character codes to a string for "input text".
// Backslashes and quotes are escaped with a backslash. Codes that are not
// valid runes, and control characters, are left out.
func EscapeText(codes []int) string {
	var sb strings.Builder
	for _, code := range codes {
		if code < 0 || code > unicode.MaxRune {
			continue
		}
		r := rune(code)
		if !utf8.ValidRune(r) || unicode.IsControl(r) {
			continue
		}
		switch r {
		case '\\', '\'', '"':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
