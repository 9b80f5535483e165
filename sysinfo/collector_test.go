package sysinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorFor(t *testing.T) {
	p := (&fakeHost{}).probes()
	assert.IsType(t, &linuxCollector{}, collectorFor("linux", p))
	assert.IsType(t, &darwinCollector{}, collectorFor("darwin", p))
	assert.IsType(t, &windowsCollector{}, collectorFor("windows", p))
	assert.IsType(t, &genericCollector{}, collectorFor("freebsd", p))
}

func TestLinuxCollector(t *testing.T) {
	h := &fakeHost{
		commands: map[string]string{
			"whoami":            "alice\n",
			"hostname":          "thinkpad\n",
			"xrandr":            "eDP-1 connected primary 1920x1080+0+0 (normal) 309mm x 174mm\n",
			"ifconfig wlp2s0":   "wlp2s0: flags=4163<UP>  mtu 1500\n        inet 192.168.1.23  netmask 255.255.255.0\n",
			"lspci":             "00:02.0 VGA compatible controller: Intel Corporation UHD Graphics 620\n",
			"ps -p 1 -o comm=":  "systemd\n",
		},
		files: map[string]string{
			"/etc/os-release": "PRETTY_NAME=\"Arch Linux\"\nBUILD_ID=rolling\n",
			"/etc/passwd":     "root:x:0:0::/root:/bin/bash\nalice:x:1000:1000::/home/alice:/usr/bin/fish\n",
			"/proc/net/route": "Iface\tDestination\tGateway\nwlp2s0\t00000000\t0100A8C0\n",
			"/proc/cpuinfo":   "model name\t: AMD Ryzen 7 5800X 8-Core Processor\n",
			"/proc/uptime":    "93784.00 1000.00\n",
			"/proc/meminfo":   "MemTotal: 8000000 kB\nMemAvailable: 6000000 kB\n",
		},
		uname: &unameInfo{Release: "6.9.1-arch1-1", Machine: "x86_64"},
	}

	info := (&linuxCollector{p: h.probes()}).Collect()

	assert.Equal(t, "linux", info.Platform)
	assert.Equal(t, "alice", info.Username)
	assert.Equal(t, "thinkpad", info.Hostname)
	assert.Equal(t, "Arch Linux (rolling)", info.OS)
	assert.Equal(t, "6.9.1-arch1-1", info.Kernel)
	assert.Equal(t, "x86_64", info.Arch)
	assert.Equal(t, "/usr/bin/fish", info.Shell)
	assert.Equal(t, "1920x1080", info.Resolution)
	assert.Equal(t, "192.168.1.23 (wlp2s0)", info.IP)
	assert.Equal(t, "AMD Ryzen 7 5800X 8-Core Processor", info.CPU)
	assert.Equal(t, []string{"Intel Corporation UHD Graphics 620"}, info.GPUs)
	assert.Equal(t, "systemd", info.InitSystem)
	assert.Equal(t, "1 day, 2 hours, 3 mins", info.Uptime)
	assert.Equal(t, "2000M / 8000M", info.Memory)
	assert.Empty(t, info.Disk)
}

func TestLinuxCollectorFallbacks(t *testing.T) {
	h := &fakeHost{
		commands: map[string]string{
			"uname -r":                      "5.15.0\n",
			"uname -m":                      "aarch64\n",
			"ip -4 addr show dev eth0":      "    inet 10.1.2.3/24 brd 10.1.2.255 scope global eth0\n",
		},
		files: map[string]string{
			"/proc/net/route": "Iface\tDestination\neth0\t00000000\n",
			"/proc/1/comm":    "openrc-init\n",
		},
		env:    map[string]string{"USER": "bob", "SHELL": "/bin/dash"},
		uptime: 5 * time.Minute,
		used:   1024 * 1024 * 1024,
		total:  4 * 1024 * 1024 * 1024,
		cpu:    "Cortex-A72",
	}

	info := (&linuxCollector{p: h.probes()}).Collect()

	assert.Equal(t, "bob", info.Username)
	assert.Equal(t, Unknown, info.Hostname)
	assert.Equal(t, Unknown, info.OS)
	assert.Equal(t, "5.15.0", info.Kernel)
	assert.Equal(t, "aarch64", info.Arch)
	assert.Equal(t, "/bin/dash", info.Shell)
	assert.Equal(t, Unknown, info.Resolution)
	assert.Equal(t, "10.1.2.3 (eth0)", info.IP)
	assert.Equal(t, "Cortex-A72", info.CPU)
	assert.Empty(t, info.GPUs)
	assert.Equal(t, "openrc-init", info.InitSystem)
	assert.Equal(t, "5 mins", info.Uptime)
	assert.Equal(t, "1.0 GB / 4.0 GB", info.Memory)
}

func TestLinuxCollectorNothingAvailable(t *testing.T) {
	info := (&linuxCollector{p: (&fakeHost{}).probes()}).Collect()

	for name, v := range map[string]string{
		"user": info.Username, "host": info.Hostname, "os": info.OS, "kernel": info.Kernel,
		"shell": info.Shell, "resolution": info.Resolution, "ip": info.IP, "cpu": info.CPU,
		"init": info.InitSystem, "uptime": info.Uptime, "memory": info.Memory,
	} {
		assert.Equal(t, Unknown, v, name)
	}
	assert.NotEmpty(t, info.Arch, "arch falls back to GOARCH")
}

func TestDarwinCollector(t *testing.T) {
	h := &fakeHost{
		commands: map[string]string{
			"scutil --get ComputerName":                "Alice's MacBook Pro\n",
			"sw_vers -productName":                     "macOS\n",
			"sw_vers -productVersion":                  "14.4.1\n",
			"uname -r":                                 "23.4.0\n",
			"sysctl -n machdep.cpu.brand_string":       "Apple M1 Pro\n",
			"system_profiler SPDisplaysDataType":       "      Chipset Model: Apple M1 Pro\n",
			"sysctl -n kern.boottime":                  "{ sec = 1700000000, usec = 0 } Tue Nov 14 22:13:20 2023\n",
			`osascript -e tell application "Finder" to get bounds of window of desktop`: "0, 0, 1512, 982\n",
		},
		env:   map[string]string{"USER": "alice", "SHELL": "/bin/zsh"},
		ip:    "192.168.0.7",
		used:  8 * 1024 * 1024 * 1024,
		total: 16 * 1024 * 1024 * 1024,
		now:   time.Unix(1700000000, 0).Add(3 * time.Hour),
	}

	info := (&darwinCollector{p: h.probes()}).Collect()

	assert.Equal(t, "darwin", info.Platform)
	assert.Equal(t, "alice", info.Username)
	assert.Equal(t, "Alice's MacBook Pro", info.Hostname)
	assert.Equal(t, "macOS 14.4.1", info.OS)
	assert.Equal(t, "23.4.0", info.Kernel)
	assert.Equal(t, "/bin/zsh", info.Shell)
	assert.Equal(t, "1512x982", info.Resolution)
	assert.Equal(t, "192.168.0.7", info.IP)
	assert.Equal(t, "Apple M1 Pro", info.CPU)
	assert.Equal(t, []string{"Apple M1 Pro"}, info.GPUs)
	assert.Equal(t, "3 hours", info.Uptime)
	assert.Equal(t, "8.0 GB / 16.0 GB", info.Memory)
	assert.Empty(t, info.InitSystem)
}

func TestWindowsCollector(t *testing.T) {
	h := &fakeHost{
		commands: map[string]string{
			"powershell -NoProfile -Command " + cimQuery: `{"OS":{"Caption":"Microsoft Windows 11 Pro","OSArchitecture":"64-bit"},` +
				`"Processor":{"Name":"Intel(R) Core(TM) i5-10400 CPU @ 2.90GHz"},` +
				`"VideoControllers":[{"Name":"NVIDIA GeForce RTX 3060","CurrentHorizontalResolution":2560,"CurrentVerticalResolution":1440},` +
				`{"Name":"Intel(R) UHD Graphics 630","CurrentHorizontalResolution":null,"CurrentVerticalResolution":null}]}`,
		},
		env: map[string]string{"USERNAME": "Carol"},
		registry: map[string]string{
			computerNameKey + `\ComputerName`: "DESKTOP-42",
			currentVersionKey + `\CurrentBuild`: "22631",
			consoleKey + `\FaceName`:          "Lucida Console",
		},
		ip:     "10.0.0.9",
		uptime: 26 * time.Hour,
		used:   2 * 1024 * 1024 * 1024,
		total:  8 * 1024 * 1024 * 1024,
		disks: []diskUsage{
			{Name: "C:", Total: 476 * 1024 * 1024 * 1024, Used: 120 * 1024 * 1024 * 1024},
			{Name: "D:", Total: 931 * 1024 * 1024 * 1024, Used: 10 * 1024 * 1024 * 1024},
		},
	}

	info := (&windowsCollector{p: h.probes()}).Collect()

	assert.Equal(t, "windows", info.Platform)
	assert.Equal(t, "Carol", info.Username)
	assert.Equal(t, "DESKTOP-42", info.Hostname)
	assert.Equal(t, "Microsoft Windows 11 Pro", info.OS)
	assert.Equal(t, "Build 22631", info.Kernel)
	assert.Equal(t, "64-bit", info.Arch)
	assert.Equal(t, "PowerShell", info.Shell)
	assert.Equal(t, "2560x1440", info.Resolution)
	assert.Equal(t, "10.0.0.9", info.IP)
	assert.Equal(t, "Intel(R) Core(TM) i5-10400 CPU @ 2.90GHz", info.CPU)
	assert.Equal(t, []string{"NVIDIA GeForce RTX 3060", "Intel(R) UHD Graphics 630"}, info.GPUs)
	assert.Equal(t, "C: 120GB / 476GB, D: 10GB / 931GB", info.Disk)
	assert.Equal(t, "1 day, 2 hours", info.Uptime)
	assert.Equal(t, "2.0 GB / 8.0 GB", info.Memory)
}

func TestWindowsCollectorWithoutPowerShell(t *testing.T) {
	info := (&windowsCollector{p: (&fakeHost{}).probes()}).Collect()

	assert.Equal(t, Unknown, info.OS)
	assert.Equal(t, "CMD", info.Shell)
	assert.Equal(t, Unknown, info.Resolution)
	assert.Equal(t, Unknown, info.Disk)
	assert.Empty(t, info.Kernel)
	assert.Empty(t, info.GPUs)
}

func TestDecodeVideoControllers(t *testing.T) {
	one := decodeVideoControllers([]byte(`{"Name":"Basic","CurrentHorizontalResolution":800,"CurrentVerticalResolution":600}`))
	require.Len(t, one, 1)
	assert.Equal(t, "800x600", resolutions(one))

	assert.Nil(t, decodeVideoControllers(nil))
	assert.Nil(t, decodeVideoControllers([]byte(`"nope"`)))
}

func TestGenericCollector(t *testing.T) {
	h := &fakeHost{
		env:    map[string]string{"LOGNAME": "dave", "SHELL": "/bin/ksh"},
		ip:     "10.9.8.7",
		cpu:    "Intel Xeon",
		uptime: 10 * time.Minute,
	}

	info := (&genericCollector{p: h.probes(), goos: "openbsd"}).Collect()

	assert.Equal(t, "openbsd", info.Platform)
	assert.Equal(t, "dave", info.Username)
	assert.Equal(t, "openbsd", info.OS)
	assert.Equal(t, "/bin/ksh", info.Shell)
	assert.Equal(t, Unknown, info.Resolution)
	assert.Equal(t, "10.9.8.7", info.IP)
	assert.Equal(t, "Intel Xeon", info.CPU)
	assert.Equal(t, "10 mins", info.Uptime)
	assert.Equal(t, Unknown, info.Memory)
}
