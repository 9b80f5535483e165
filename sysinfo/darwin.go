package sysinfo

import (
	"runtime"
	"strings"
)

// darwinCollector uses the macOS command-line utilities.
type darwinCollector struct {
	p *probes
}

func (c *darwinCollector) Collect() *SystemInfo {
	p := c.p
	info := &SystemInfo{Platform: "darwin"}

	info.Username = orUnknown(p.user("USER"))
	info.Hostname = orUnknown(p.host(p.command("scutil", "--get", "ComputerName")))
	info.OS = orUnknown(c.productVersion())

	if u, err := p.uname(); err == nil {
		info.Kernel = u.Release
	} else {
		info.Kernel = p.command("uname", "-r")
	}
	info.Kernel = orUnknown(info.Kernel)
	info.Arch = runtime.GOARCH

	info.Shell = orUnknown(p.getenv("SHELL"))
	info.Resolution = orUnknown(parseFinderBounds(p.command("osascript", "-e",
		`tell application "Finder" to get bounds of window of desktop`)))
	info.IP = orUnknown(p.outboundIP())

	info.CPU = p.command("sysctl", "-n", "machdep.cpu.brand_string")
	if info.CPU == "" {
		info.CPU = p.cpuFallback()
	}
	info.CPU = orUnknown(info.CPU)

	info.GPUs = parseChipsetModels(p.command("system_profiler", "SPDisplaysDataType"))

	if boot, ok := parseBootTime(p.command("sysctl", "-n", "kern.boottime")); ok && !p.now().Before(boot) {
		info.Uptime = formatUptime(p.now().Sub(boot))
	} else {
		info.Uptime = orUnknown(p.uptimeString())
	}
	info.Memory = orUnknown(p.memoryString())

	return info
}

// productVersion renders "macOS 14.4.1" from sw_vers.
func (c *darwinCollector) productVersion() string {
	name := c.p.command("sw_vers", "-productName")
	version := c.p.command("sw_vers", "-productVersion")
	return strings.TrimSpace(name + " " + version)
}
