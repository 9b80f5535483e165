package sysinfo

import (
	"runtime"
	"strings"
)

// linuxCollector reads procfs and shells out to the usual userland tools.
type linuxCollector struct {
	p *probes
}

func (c *linuxCollector) Collect() *SystemInfo {
	p := c.p
	info := &SystemInfo{Platform: "linux"}

	info.Username = orUnknown(firstNonEmpty(p.command("whoami"), p.user("USER")))
	info.Hostname = orUnknown(p.host(p.command("hostname")))
	info.OS = orUnknown(parseOSRelease(p.file("/etc/os-release")))

	u, err := p.uname()
	if err != nil {
		p.log.Debug("uname failed", "err", err)
		u.Release = p.command("uname", "-r")
		u.Machine = p.command("uname", "-m")
	}
	info.Kernel = orUnknown(u.Release)
	info.Arch = u.Machine
	if info.Arch == "" {
		info.Arch = runtime.GOARCH
	}

	info.Shell = orUnknown(c.shell(info.Username))
	info.Resolution = orUnknown(parseXrandr(p.command("xrandr")))
	info.IP = orUnknown(c.ip())

	info.CPU = parseCPUInfo(p.file("/proc/cpuinfo"))
	if info.CPU == "" {
		info.CPU = p.cpuFallback()
	}
	info.CPU = orUnknown(info.CPU)

	info.GPUs = parseLspciGPUs(p.command("lspci"))
	info.InitSystem = orUnknown(c.initSystem())

	if d, ok := parseProcUptime(p.file("/proc/uptime")); ok {
		info.Uptime = formatUptime(d)
	} else {
		info.Uptime = orUnknown(p.uptimeString())
	}

	info.Memory = parseMemInfo(p.file("/proc/meminfo"))
	if info.Memory == "" {
		info.Memory = orUnknown(p.memoryString())
	}

	return info
}

// shell prefers the passwd entry over $SHELL, which may be inherited.
func (c *linuxCollector) shell(user string) string {
	if sh := parsePasswdShell(c.p.file("/etc/passwd"), user); sh != "" {
		return sh
	}
	return c.p.getenv("SHELL")
}

// ip reports the address of the default-route interface as "addr (iface)".
func (c *linuxCollector) ip() string {
	iface := parseDefaultRoute(c.p.file("/proc/net/route"))
	if iface == "" {
		return c.p.outboundIP()
	}

	addr := parseInetAddr(c.p.command("ifconfig", iface))
	if addr == "" {
		addr = parseInetAddr(c.p.command("ip", "-4", "addr", "show", "dev", iface))
	}
	if addr == "" {
		return c.p.outboundIP()
	}
	return addr + " (" + iface + ")"
}

func (c *linuxCollector) initSystem() string {
	if name := c.p.command("ps", "-p", "1", "-o", "comm="); name != "" {
		return name
	}
	return strings.TrimSpace(c.p.file("/proc/1/comm"))
}
