//go:build linux

package decoder

import (
	"os/exec"
	"syscall"
)

// setPlatformSpecificAttrs makes the kernel kill the decoder process if the
// service dies while it is still running.
func setPlatformSpecificAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Pdeathsig: syscall.SIGKILL,
	}
}
