package sendkeys

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xyproto/env/v2"
)

func TestLoggerWithoutFile(t *testing.T) {
	logger, closeLog, err := Config{}.Logger()
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("discarded")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}
}

func TestLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sendkeys.log")
	logger, closeLog, err := Config{LogFile: path, Debug: true}.Logger()
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("dispatched", "keys", 3)
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=dispatched keys=3") {
		t.Errorf("unexpected log contents: %q", data)
	}
}

func TestEnvVarsAreDocumented(t *testing.T) {
	for _, e := range EnvVars {
		if e.Name == "" || e.Description == "" {
			t.Errorf("incomplete entry: %+v", e)
		}
	}
}

// setEnv sets the variables that ConfigFromEnv reads, leaving the others
// empty, and reloads the cached environment
func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	t.Cleanup(env.Load) // runs after the variables are restored
	for _, e := range EnvVars {
		t.Setenv(e.Name, vars[e.Name])
	}
	env.Load()
}

func TestConfigFromEnv(t *testing.T) {
	defaults := Config{
		ADB:    "adb",
		Window: DefaultWindow,
		Idle:   DefaultIdle,
		Color:  true,
	}
	tests := []struct {
		name string
		vars map[string]string
		want func(cfg *Config)
	}{
		{"defaults", nil, func(cfg *Config) {}},
		{"window", map[string]string{"SENDKEYS_WINDOW_MS": "250"}, func(cfg *Config) { cfg.Window = 250 * time.Millisecond }},
		{"zero window", map[string]string{"SENDKEYS_WINDOW_MS": "0"}, func(cfg *Config) { cfg.Window = 0 }},
		{"negative window", map[string]string{"SENDKEYS_WINDOW_MS": "-5"}, func(cfg *Config) {}},
		{"window that is not a number", map[string]string{"SENDKEYS_WINDOW_MS": "1s"}, func(cfg *Config) {}},
		{"idle", map[string]string{"SENDKEYS_IDLE_MS": "300"}, func(cfg *Config) { cfg.Idle = 300 * time.Millisecond }},
		{"idle that is not a number", map[string]string{"SENDKEYS_IDLE_MS": "fast"}, func(cfg *Config) {}},
		{"adb", map[string]string{"SENDKEYS_ADB": "/opt/android/adb"}, func(cfg *Config) { cfg.ADB = "/opt/android/adb" }},
		{"tty and log", map[string]string{"SENDKEYS_TTY": "/dev/pts/3", "SENDKEYS_LOG": "/tmp/sendkeys.log"}, func(cfg *Config) {
			cfg.TTY = "/dev/pts/3"
			cfg.LogFile = "/tmp/sendkeys.log"
		}},
		{"debug", map[string]string{"SENDKEYS_DEBUG": "true"}, func(cfg *Config) { cfg.Debug = true }},
		{"debug off", map[string]string{"SENDKEYS_DEBUG": "no"}, func(cfg *Config) {}},
		{"no update check", map[string]string{"SENDKEYS_NO_UPDATE_CHECK": "1"}, func(cfg *Config) { cfg.NoUpdateCheck = true }},
		{"no color", map[string]string{"NO_COLOR": "1"}, func(cfg *Config) { cfg.Color = false }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.vars)
			want := defaults
			tt.want(&want)
			if diff := cmp.Diff(want, ConfigFromEnv()); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
