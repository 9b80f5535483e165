// Package sysinfo provides best-effort system information retrieval for
// Linux, macOS and Windows. Every probe shells out to a native utility, reads
// a native file or calls a native API, and degrades to "Unknown" instead of
// failing.
package sysinfo

import (
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
)

// Unknown is the placeholder for values that could not be determined.
const Unknown = "Unknown"

// SystemInfo holds the collected host details as display-ready strings.
type SystemInfo struct {
	// Platform is the GOOS the information was collected on
	Platform string

	// Username is the current user's login name
	Username string

	// Hostname is the computer's network name
	Hostname string

	// OS is the distribution or product name (e.g. "Arch Linux", "macOS 14.4")
	OS string

	// Kernel is the kernel release. Empty when the platform has none worth showing.
	Kernel string

	// Arch is the machine architecture
	Arch string

	// Shell is the user's shell
	Shell string

	// Resolution is the display resolution, one "WxH" per connected screen
	Resolution string

	// IP is the primary local IPv4 address
	IP string

	// CPU is the processor model
	CPU string

	// GPUs lists every graphics adapter found, in probe order
	GPUs []string

	// InitSystem is the name of PID 1 (linux only)
	InitSystem string

	// Uptime is the formatted time since boot
	Uptime string

	// Memory shows used/total RAM
	Memory string

	// Disk shows used/total space per logical disk (windows only)
	Disk string
}

// Collector gathers SystemInfo for one platform.
type Collector interface {
	Collect() *SystemInfo
}

// NewCollector returns the collector for the running platform. Failed probes
// are reported to logger at debug level.
func NewCollector(logger *log.Logger) Collector {
	return collectorFor(runtime.GOOS, newProbes(logger))
}

// GetSystemInfo collects information for the running platform.
func GetSystemInfo(logger *log.Logger) *SystemInfo {
	return NewCollector(logger).Collect()
}

func collectorFor(goos string, p *probes) Collector {
	switch goos {
	case "linux", "android":
		return &linuxCollector{p: p}
	case "darwin":
		return &darwinCollector{p: p}
	case "windows":
		return &windowsCollector{p: p}
	default:
		return &genericCollector{p: p, goos: goos}
	}
}

// orUnknown substitutes the placeholder for blank values.
func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown
	}
	return s
}

// firstNonEmpty returns the first value that is not blank.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
