package sysinfo

import (
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// unameInfo is the subset of uname(2) we display.
type unameInfo struct {
	Release string
	Machine string
}

// diskUsage describes one mounted volume.
type diskUsage struct {
	Name  string
	Total uint64
	Used  uint64
}

// probes bundles every native data source a collector may use. Collectors
// only reach the host through these functions, which lets tests substitute
// canned output for any platform.
type probes struct {
	run        func(name string, args ...string) (string, error)
	readFile   func(path string) ([]byte, error)
	getenv     func(key string) string
	hostname   func() (string, error)
	username   func() (string, error)
	uname      func() (unameInfo, error)
	registry   func(root regRoot, path, value string) string
	outboundIP func() string
	uptime     func() (time.Duration, error)
	memory     func() (used, total uint64, err error)
	cpuModel   func() (string, error)
	disks      func() ([]diskUsage, error)
	platform   func() (name, version, kernel, arch string, err error)
	now        func() time.Time
	log        *log.Logger
}

func newProbes(logger *log.Logger) *probes {
	return &probes{
		run:        runCommand,
		readFile:   os.ReadFile,
		getenv:     os.Getenv,
		hostname:   os.Hostname,
		username:   currentUsername,
		uname:      nativeUname,
		registry:   readRegistryString,
		outboundIP: outboundIP,
		uptime:     hostUptime,
		memory:     virtualMemory,
		cpuModel:   cpuModelName,
		disks:      diskUsages,
		platform:   platformInfo,
		now:        time.Now,
		log:        logger,
	}
}

// command runs name and returns its trimmed stdout, or "" on failure.
func (p *probes) command(name string, args ...string) string {
	out, err := p.run(name, args...)
	if err != nil {
		p.log.Debug("probe command failed", "cmd", name, "args", strings.Join(args, " "), "err", err)
		return ""
	}
	return strings.TrimSpace(out)
}

// file returns the contents of path, or "" if it cannot be read.
func (p *probes) file(path string) string {
	data, err := p.readFile(path)
	if err != nil {
		p.log.Debug("probe file unreadable", "path", path, "err", err)
		return ""
	}
	return string(data)
}

// user resolves the login name from the environment first, then the OS
// account database.
func (p *probes) user(envKeys ...string) string {
	for _, key := range envKeys {
		if v := strings.TrimSpace(p.getenv(key)); v != "" {
			return v
		}
	}
	name, err := p.username()
	if err != nil {
		p.log.Debug("user lookup failed", "err", err)
		return ""
	}
	return name
}

// host prefers the given command output and falls back to os.Hostname.
func (p *probes) host(fromCommand string) string {
	if fromCommand != "" {
		return fromCommand
	}
	h, err := p.hostname()
	if err != nil {
		p.log.Debug("hostname lookup failed", "err", err)
		return ""
	}
	return h
}

// uptimeString formats the gopsutil uptime.
func (p *probes) uptimeString() string {
	d, err := p.uptime()
	if err != nil {
		p.log.Debug("uptime lookup failed", "err", err)
		return ""
	}
	return formatUptime(d)
}

// memoryString formats the gopsutil used/total memory.
func (p *probes) memoryString() string {
	used, total, err := p.memory()
	if err != nil || total == 0 {
		p.log.Debug("memory lookup failed", "err", err)
		return ""
	}
	return FormatBytes(used) + " / " + FormatBytes(total)
}

// cpuFallback returns the gopsutil CPU model name.
func (p *probes) cpuFallback() string {
	name, err := p.cpuModel()
	if err != nil {
		p.log.Debug("cpu lookup failed", "err", err)
		return ""
	}
	return strings.TrimSpace(name)
}

func currentUsername() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	name := u.Username
	// Windows reports DOMAIN\user.
	if i := strings.LastIndex(name, `\`); i >= 0 {
		name = name[i+1:]
	}
	return name, nil
}
