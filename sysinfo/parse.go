package sysinfo

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// resolutionRegex matches an xrandr geometry such as "1920x1080+0+0".
	resolutionRegex = regexp.MustCompile(`(\d+x\d+)\+\d+\+\d+`)
	// bootTimeRegex matches the seconds field of kern.boottime.
	bootTimeRegex = regexp.MustCompile(`sec\s*=\s*(\d+)`)
)

// lines iterates over s line by line with trailing "\r" removed.
func lines(s string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		out = append(out, strings.TrimRight(sc.Text(), "\r"))
	}
	return out
}

// parseKeyValues reads KEY=VALUE lines, unquoting values.
func parseKeyValues(data string) map[string]string {
	m := make(map[string]string)
	for _, line := range lines(data) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		m[strings.TrimSpace(k)] = strings.Trim(strings.TrimSpace(v), `"'`)
	}
	return m
}

// parseOSRelease returns PRETTY_NAME from an os-release file, with BUILD_ID
// appended in parentheses when present.
func parseOSRelease(data string) string {
	m := parseKeyValues(data)
	name := m["PRETTY_NAME"]
	if name == "" {
		name = strings.TrimSpace(m["NAME"] + " " + m["VERSION_ID"])
	}
	if build := m["BUILD_ID"]; build != "" && name != "" {
		return name + " (" + build + ")"
	}
	return name
}

// parsePasswdShell returns the login shell (7th field) of user.
func parsePasswdShell(data, user string) string {
	if user == "" {
		return ""
	}
	for _, line := range lines(data) {
		fields := strings.Split(line, ":")
		if len(fields) >= 7 && fields[0] == user {
			return fields[6]
		}
	}
	return ""
}

// parseXrandr returns the current mode of every connected output.
func parseXrandr(out string) string {
	var modes []string
	for _, line := range lines(out) {
		if !strings.Contains(line, " connected") {
			continue
		}
		if m := resolutionRegex.FindStringSubmatch(line); m != nil {
			modes = append(modes, m[1])
		}
	}
	return strings.Join(modes, ", ")
}

// parseFinderBounds turns osascript's "0, 0, W, H" desktop bounds into "WxH".
func parseFinderBounds(out string) string {
	parts := strings.Split(strings.TrimSpace(out), ",")
	if len(parts) != 4 {
		return ""
	}
	w, h := strings.TrimSpace(parts[2]), strings.TrimSpace(parts[3])
	if w == "" || h == "" {
		return ""
	}
	return w + "x" + h
}

// parseDefaultRoute returns the interface of the default route in a
// /proc/net/route table.
func parseDefaultRoute(data string) string {
	for _, line := range lines(data) {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == "00000000" {
			return fields[0]
		}
	}
	return ""
}

// parseInetAddr extracts the first IPv4 address from ifconfig (both the
// modern "inet 10.0.0.2" and legacy "inet addr:10.0.0.2" forms) or
// "ip -4 addr" output.
func parseInetAddr(out string) string {
	for _, line := range lines(out) {
		fields := strings.Fields(line)
		for i := 0; i < len(fields)-1; i++ {
			if fields[i] != "inet" {
				continue
			}
			addr := strings.TrimPrefix(fields[i+1], "addr:")
			if slash := strings.IndexByte(addr, '/'); slash >= 0 {
				addr = addr[:slash]
			}
			return addr
		}
	}
	return ""
}

// parseCPUInfo returns the first "model name" in /proc/cpuinfo.
func parseCPUInfo(data string) string {
	for _, line := range lines(data) {
		key, value, ok := strings.Cut(line, ":")
		if ok && strings.TrimSpace(key) == "model name" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// parseLspciGPUs returns the device description of every display controller.
func parseLspciGPUs(out string) []string {
	var gpus []string
	for _, line := range lines(out) {
		if !strings.Contains(line, "VGA compatible controller") &&
			!strings.Contains(line, "3D controller") &&
			!strings.Contains(line, "Display controller") {
			continue
		}
		if _, desc, ok := strings.Cut(line, ": "); ok {
			if desc = strings.TrimSpace(desc); desc != "" {
				gpus = append(gpus, desc)
			}
		}
	}
	return gpus
}

// parseChipsetModels returns every "Chipset Model:" from system_profiler.
func parseChipsetModels(out string) []string {
	var gpus []string
	for _, line := range lines(out) {
		if _, model, ok := strings.Cut(line, "Chipset Model:"); ok {
			if model = strings.TrimSpace(model); model != "" {
				gpus = append(gpus, model)
			}
		}
	}
	return gpus
}

// parseProcUptime reads the first field of /proc/uptime.
func parseProcUptime(data string) (time.Duration, bool) {
	fields := strings.Fields(data)
	if len(fields) == 0 {
		return 0, false
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs * float64(time.Second)), true
}

// parseBootTime reads kern.boottime ("{ sec = 1700000000, usec = 0 } ...").
func parseBootTime(out string) (time.Time, bool) {
	m := bootTimeRegex.FindStringSubmatch(out)
	if m == nil {
		return time.Time{}, false
	}
	secs, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(secs, 0), true
}

// parseMemInfo returns "usedM / totalM" from /proc/meminfo, where used is
// MemTotal minus MemAvailable and M is 1000 kB.
func parseMemInfo(data string) string {
	var total, available uint64
	var haveTotal, haveAvail bool
	for _, line := range lines(data) {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "kB"))
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			continue
		}
		switch strings.TrimSpace(key) {
		case "MemTotal":
			total, haveTotal = n/1000, true
		case "MemAvailable":
			available, haveAvail = n/1000, true
		}
	}
	if !haveTotal || !haveAvail || available > total {
		return ""
	}
	return strconv.FormatUint(total-available, 10) + "M / " + strconv.FormatUint(total, 10) + "M"
}
