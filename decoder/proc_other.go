//go:build !linux

package decoder

import "os/exec"

// setPlatformSpecificAttrs is a no-op: Pdeathsig only exists on Linux.
// The process is still killed through exec.CommandContext when the context ends.
func setPlatformSpecificAttrs(*exec.Cmd) {}
