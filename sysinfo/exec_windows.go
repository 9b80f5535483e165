//go:build windows

package sysinfo

import (
	"os/exec"
	"syscall"
)

// hideWindow keeps console utilities from flashing a window.
func hideWindow(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
