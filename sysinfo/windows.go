package sysinfo

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	computerNameKey   = `SYSTEM\CurrentControlSet\Control\ComputerName\ComputerName`
	currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`
	consoleKey        = `Console`
)

// cimQuery fetches everything WMI-backed in a single PowerShell start.
const cimQuery = "$os=Get-CimInstance Win32_OperatingSystem | Select-Object -First 1 -Property Caption,OSArchitecture; " +
	"$proc=Get-CimInstance Win32_Processor | Select-Object -First 1 -Property Name; " +
	"$vg=@(Get-CimInstance Win32_VideoController | Select-Object -Property Name,CurrentHorizontalResolution,CurrentVerticalResolution); " +
	"@{OS=$os; Processor=$proc; VideoControllers=$vg} | ConvertTo-Json -Compress -Depth 3"

// cimResult mirrors the JSON emitted by cimQuery.
type cimResult struct {
	OS struct {
		Caption        string
		OSArchitecture string
	}
	Processor struct {
		Name string
	}
	VideoControllers json.RawMessage
}

type videoController struct {
	Name                        string
	CurrentHorizontalResolution int
	CurrentVerticalResolution   int
}

// windowsCollector combines the registry, one CIM query and gopsutil.
type windowsCollector struct {
	p *probes
}

func (c *windowsCollector) Collect() *SystemInfo {
	p := c.p
	info := &SystemInfo{Platform: "windows"}

	info.Username = orUnknown(p.user("USERNAME"))
	info.Hostname = orUnknown(p.host(p.registry(regLocalMachine, computerNameKey, "ComputerName")))

	var cim cimResult
	if err := c.powerShellJSON(cimQuery, &cim); err != nil {
		p.log.Debug("cim query failed", "err", err)
	}
	controllers := decodeVideoControllers(cim.VideoControllers)

	info.OS = orUnknown(cim.OS.Caption)
	if build := p.registry(regLocalMachine, currentVersionKey, "CurrentBuild"); build != "" {
		info.Kernel = "Build " + build
	}
	info.Arch = orUnknown(cim.OS.OSArchitecture)
	info.Shell = orUnknown(c.shell())
	info.Resolution = orUnknown(resolutions(controllers))
	info.IP = orUnknown(p.outboundIP())

	info.CPU = strings.TrimSpace(cim.Processor.Name)
	if info.CPU == "" {
		info.CPU = p.cpuFallback()
	}
	info.CPU = orUnknown(info.CPU)

	for _, vc := range controllers {
		if name := strings.TrimSpace(vc.Name); name != "" {
			info.GPUs = append(info.GPUs, name)
		}
	}

	info.Disk = orUnknown(c.diskUsage())
	info.Uptime = orUnknown(p.uptimeString())
	info.Memory = orUnknown(p.memoryString())

	return info
}

// powerShellJSON runs a PowerShell command expected to emit JSON and
// unmarshals it into v.
func (c *windowsCollector) powerShellJSON(cmd string, v any) error {
	out, err := c.p.run("powershell", "-NoProfile", "-Command", cmd)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(out), v); err != nil {
		return fmt.Errorf("decoding powershell output: %w", err)
	}
	return nil
}

// shell guesses the console host from its configured font: Windows
// PowerShell ships with Lucida Console, cmd.exe with the raster default.
func (c *windowsCollector) shell() string {
	if c.p.registry(regCurrentUser, consoleKey, "FaceName") == "Lucida Console" {
		return "PowerShell"
	}
	return "CMD"
}

func (c *windowsCollector) diskUsage() string {
	disks, err := c.p.disks()
	if err != nil {
		c.p.log.Debug("disk lookup failed", "err", err)
		return ""
	}

	const gib = 1024 * 1024 * 1024
	parts := make([]string, 0, len(disks))
	for _, d := range disks {
		parts = append(parts, fmt.Sprintf("%s %dGB / %dGB", d.Name, d.Used/gib, d.Total/gib))
	}
	return strings.Join(parts, ", ")
}

// decodeVideoControllers accepts both a JSON array and the bare object
// ConvertTo-Json emits for single-element collections.
func decodeVideoControllers(raw json.RawMessage) []videoController {
	if len(raw) == 0 {
		return nil
	}
	var many []videoController
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	var one videoController
	if err := json.Unmarshal(raw, &one); err == nil {
		return []videoController{one}
	}
	return nil
}

func resolutions(controllers []videoController) string {
	var modes []string
	for _, vc := range controllers {
		if vc.CurrentHorizontalResolution > 0 && vc.CurrentVerticalResolution > 0 {
			modes = append(modes, fmt.Sprintf("%dx%d", vc.CurrentHorizontalResolution, vc.CurrentVerticalResolution))
		}
	}
	return strings.Join(modes, ", ")
}
