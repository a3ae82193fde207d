// Command sendkeys relays keys typed in a terminal to an Android device over adb
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xyproto/sendkeys"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cfg := sendkeys.ConfigFromEnv()

	cmd := &cobra.Command{
		Use:           "sendkeys [flags] [--] [adb arguments...]",
		Short:         "Type on an Android device from a terminal",
		Long:          "Type on an Android device from a terminal.\n\nAny arguments are passed on to every adb invocation, for example \"-- -s emulator-5554\".",
		Version:       sendkeys.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.ADBArgs = args
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&cfg.ADB, "adb", cfg.ADB, "Path to the adb executable")
	cmd.Flags().DurationVar(&cfg.Window, "window", cfg.Window, "Collect keys for this long before sending them")
	cmd.Flags().DurationVar(&cfg.Idle, "idle", cfg.Idle, "Wait this long for a key before polling again")
	cmd.Flags().StringVar(&cfg.TTY, "tty", cfg.TTY, "Terminal device to read keys from")
	cmd.Flags().StringVar(&cfg.LogFile, "log", cfg.LogFile, "Write a log to this file")
	cmd.Flags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "Log every dispatched batch")
	cmd.Flags().BoolVar(&cfg.NoUpdateCheck, "no-update-check", cfg.NoUpdateCheck, "Do not check for a new version")
	appendEnvDocs(cmd, sendkeys.EnvVars)
	return cmd
}

// appendEnvDocs adds the environment variables to the usage text
func appendEnvDocs(cmd *cobra.Command, envs []sendkeys.EnvVar) {
	envUsage := "\nEnvironment Variables:\n"
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-26s %s\n", e.Name, e.Description)
	}
	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

func run(ctx context.Context, cfg sendkeys.Config) error {
	logger, closeLog, err := cfg.Logger()
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	bridge := sendkeys.NewBridge(cfg.ADB, cfg.ADBArgs...)
	if err := bridge.CheckDevice(ctx); err != nil {
		logger.Error("no device", "err", err)
		return err
	}

	notice := ""
	if !cfg.NoUpdateCheck {
		notice = sendkeys.UpdateNotice(ctx)
	}

	tty, err := sendkeys.NewTTY(cfg.TTY)
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer tty.Close()
	if err := tty.SetTimeout(cfg.Idle); err != nil {
		return fmt.Errorf("setting the read timeout: %w", err)
	}
	logger.Info("terminal opened", "tty", cfg.TTY, "timeout", tty.Timeout())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sendkeys.Init()
	defer sendkeys.Close()

	screen := sendkeys.NewScreen(os.Stdout, cfg.Color && sendkeys.IsTerminal())
	screen.SetNotice(notice)
	screen.Draw()

	resized := make(chan os.Signal, 1)
	sendkeys.SetupResizeHandler(resized)
	defer signal.Stop(resized)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-resized:
				screen.Resize()
			}
		}
	}()

	// The terminal read already waits, so the reader does not sleep on top of it
	session := sendkeys.NewSession(tty, bridge, screen, cfg.Window, 0, logger)
	return session.Run(ctx)
}
