package sysinfo

import (
	"runtime"
	"strings"
)

// genericCollector covers platforms without a dedicated collector using
// gopsutil's portable probes.
type genericCollector struct {
	p    *probes
	goos string
}

func (c *genericCollector) Collect() *SystemInfo {
	p := c.p
	info := &SystemInfo{Platform: c.goos}

	info.Username = orUnknown(p.user("USER", "LOGNAME"))
	info.Hostname = orUnknown(p.host(""))

	name, version, kernel, arch, err := p.platform()
	if err != nil {
		p.log.Debug("platform lookup failed", "err", err)
		name = c.goos
	}
	info.OS = orUnknown(strings.TrimSpace(name + " " + version))
	info.Kernel = orUnknown(kernel)
	if arch == "" {
		arch = runtime.GOARCH
	}
	info.Arch = arch

	info.Shell = orUnknown(p.getenv("SHELL"))
	info.Resolution = Unknown
	info.IP = orUnknown(p.outboundIP())
	info.CPU = orUnknown(p.cpuFallback())
	info.Uptime = orUnknown(p.uptimeString())
	info.Memory = orUnknown(p.memoryString())

	return info
}
