package sysinfo

import (
	"errors"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var errNoProbe = errors.New("probe not faked")

// fakeHost is a canned machine: command lines map to stdout, paths to file
// contents. Anything missing fails the way a missing tool or file would.
type fakeHost struct {
	commands map[string]string
	files    map[string]string
	env      map[string]string
	registry map[string]string
	uname    *unameInfo
	uptime   time.Duration
	used     uint64
	total    uint64
	cpu      string
	disks    []diskUsage
	ip       string
	now      time.Time
}

func (h *fakeHost) probes() *probes {
	return &probes{
		run: func(name string, args ...string) (string, error) {
			key := strings.TrimSpace(name + " " + strings.Join(args, " "))
			out, ok := h.commands[key]
			if !ok {
				return "", errNoProbe
			}
			return out, nil
		},
		readFile: func(path string) ([]byte, error) {
			data, ok := h.files[path]
			if !ok {
				return nil, fs.ErrNotExist
			}
			return []byte(data), nil
		},
		getenv:   func(key string) string { return h.env[key] },
		hostname: func() (string, error) { return "", errNoProbe },
		username: func() (string, error) { return "", errNoProbe },
		uname: func() (unameInfo, error) {
			if h.uname == nil {
				return unameInfo{}, errNoProbe
			}
			return *h.uname, nil
		},
		registry: func(root regRoot, path, value string) string {
			return h.registry[path+`\`+value]
		},
		outboundIP: func() string { return h.ip },
		uptime: func() (time.Duration, error) {
			if h.uptime == 0 {
				return 0, errNoProbe
			}
			return h.uptime, nil
		},
		memory: func() (uint64, uint64, error) {
			if h.total == 0 {
				return 0, 0, errNoProbe
			}
			return h.used, h.total, nil
		},
		cpuModel: func() (string, error) {
			if h.cpu == "" {
				return "", errNoProbe
			}
			return h.cpu, nil
		},
		disks: func() ([]diskUsage, error) {
			if h.disks == nil {
				return nil, errNoProbe
			}
			return h.disks, nil
		},
		platform: func() (string, string, string, string, error) {
			return "", "", "", "", errNoProbe
		},
		now: func() time.Time { return h.now },
		log: log.New(io.Discard),
	}
}
