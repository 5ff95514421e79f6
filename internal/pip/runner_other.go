//go:build !windows

package pip

import "os/exec"

func hideConsoleWindow(*exec.Cmd) {}
