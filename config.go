package sendkeys

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/xyproto/env/v2"
)

// Config holds the settings for a session
type Config struct {
	ADB           string        // adb executable
	ADBArgs       []string      // extra arguments for every adb invocation
	Window        time.Duration // batching window
	Idle          time.Duration // how long a terminal read waits for a key
	TTY           string        // terminal device, empty for automatic
	LogFile       string        // empty means no logging
	Debug         bool
	NoUpdateCheck bool
	Color         bool
}

// EnvVar describes an environment variable that sendkeys reads
type EnvVar struct {
	Name        string
	Description string
}

// EnvVars lists the environment variables that ConfigFromEnv reads
var EnvVars = []EnvVar{
	{"SENDKEYS_ADB", "Path to the adb executable (default \"adb\")"},
	{"SENDKEYS_WINDOW_MS", "Batching window in milliseconds (default 1000)"},
	{"SENDKEYS_IDLE_MS", "How long to wait for a key before polling again, in milliseconds (default 100)"},
	{"SENDKEYS_TTY", "Terminal device to read keys from"},
	{"SENDKEYS_LOG", "Write a log to this file"},
	{"SENDKEYS_DEBUG", "Log every dispatched batch"},
	{"SENDKEYS_NO_UPDATE_CHECK", "Do not check for a new version"},
	{"NO_COLOR", "Do not use colors"},
}

// ConfigFromEnv returns the default configuration, adjusted by environment variables
func ConfigFromEnv() Config {
	cfg := Config{
		ADB:           "adb",
		Window:        millis("SENDKEYS_WINDOW_MS", DefaultWindow),
		Idle:          millis("SENDKEYS_IDLE_MS", DefaultIdle),
		TTY:           env.Str("SENDKEYS_TTY"),
		LogFile:       env.Str("SENDKEYS_LOG"),
		Debug:         env.Bool("SENDKEYS_DEBUG"),
		NoUpdateCheck: env.Bool("SENDKEYS_NO_UPDATE_CHECK"),
		Color:         !env.Has("NO_COLOR"),
	}
	if adb := env.Str("SENDKEYS_ADB"); adb != "" {
		cfg.ADB = adb
	}
	return cfg
}

// millis reads a duration in milliseconds. Values below zero are ignored.
func millis(name string, defaultValue time.Duration) time.Duration {
	ms := env.Int(name, int(defaultValue/time.Millisecond))
	if ms < 0 {
		return defaultValue
	}
	return time.Duration(ms) * time.Millisecond
}

// Logger returns a logger that writes to the configured log file, and a
// function that closes it. Without a log file, log messages are discarded,
// since the terminal is busy showing the legend.
func (cfg Config) Logger() (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f.Close, nil
}
