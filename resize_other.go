//go:build windows || plan9

package sendkeys

import "os"

// SetupResizeHandler does nothing, since there is no resize signal on this platform
func SetupResizeHandler(sigChan chan os.Signal) {}
