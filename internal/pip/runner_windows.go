//go:build windows

package pip

import (
	"os/exec"
	"syscall"
)

// hideConsoleWindow stops the subprocess from flashing a console window
// when the binary runs outside a terminal session.
func hideConsoleWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true, CreationFlags: 0x08000000} // CREATE_NO_WINDOW
}
