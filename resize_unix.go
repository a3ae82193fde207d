//go:build !windows && !plan9

package sendkeys

import (
	"os"
	"os/signal"
	"syscall"
)

// SetupResizeHandler makes sigChan receive a value when the terminal is resized
func SetupResizeHandler(sigChan chan os.Signal) {
	signal.Notify(sigChan, syscall.SIGWINCH)
}
