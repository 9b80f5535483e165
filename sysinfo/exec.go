package sysinfo

import (
	"context"
	"os/exec"
	"time"
)

// commandTimeout bounds every external probe so a hung utility only costs
// one "Unknown".
const commandTimeout = 2 * time.Second

// runCommand runs name with a timeout and returns raw stdout.
func runCommand(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	c := exec.CommandContext(ctx, name, args...)
	hideWindow(c)
	out, err := c.Output()
	return string(out), err
}
