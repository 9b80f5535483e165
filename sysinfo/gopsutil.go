package sysinfo

import (
	"errors"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

func hostUptime() (time.Duration, error) {
	secs, err := host.Uptime()
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

func virtualMemory() (used, total uint64, err error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, err
	}
	return v.Used, v.Total, nil
}

func cpuModelName() (string, error) {
	infos, err := cpu.Info()
	if err != nil {
		return "", err
	}
	if len(infos) == 0 {
		return "", errors.New("no cpu reported")
	}
	return infos[0].ModelName, nil
}

// diskUsages reports every physical partition that has a non-zero size.
func diskUsages() ([]diskUsage, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, err
	}

	var usages []diskUsage
	for _, part := range parts {
		u, err := disk.Usage(part.Mountpoint)
		if err != nil || u.Total == 0 {
			continue
		}
		usages = append(usages, diskUsage{Name: part.Mountpoint, Total: u.Total, Used: u.Used})
	}
	return usages, nil
}

func platformInfo() (name, version, kernel, arch string, err error) {
	info, err := host.Info()
	if err != nil {
		return "", "", "", "", err
	}
	return info.Platform, info.PlatformVersion, info.KernelVersion, info.KernelArch, nil
}
