package display

import "boykisserfetch/sysinfo"

// Kind selects how a Detail is drawn.
type Kind int

const (
	// KindDetail is a "Label : value" row.
	KindDetail Kind = iota
	// KindDelimiter is a horizontal rule.
	KindDelimiter
	// KindHostInfo is the user@host banner; Label holds the user and Value the host.
	KindHostInfo
	// KindColors is the color swatch row.
	KindColors
)

// Detail is one row of the info column.
type Detail struct {
	Label string
	Value string
	Kind  Kind
}

// BuildDetails turns collected information into the info column, in display
// order. Platform-specific rows (kernel, disk usage, init system) are left
// out when the collector did not fill them.
func BuildDetails(info *sysinfo.SystemInfo) []Detail {
	osLabel, kernelLabel := "OS", "Kernel"
	switch info.Platform {
	case "linux":
		osLabel = "Distro"
	case "windows":
		osLabel, kernelLabel = "Product", "OS Build"
	}

	details := []Detail{
		{Kind: KindHostInfo, Label: info.Username, Value: info.Hostname},
		{Kind: KindDelimiter},
		{Label: osLabel, Value: info.OS},
	}
	if info.Kernel != "" {
		details = append(details, Detail{Label: kernelLabel, Value: info.Kernel})
	}
	details = append(details,
		Detail{Label: "Arch", Value: info.Arch},
		Detail{Label: "Shell", Value: info.Shell},
		Detail{Label: "Resolution", Value: info.Resolution},
		Detail{Label: "IP", Value: info.IP},
		Detail{Label: "CPU", Value: info.CPU},
	)
	if info.Disk != "" {
		details = append(details, Detail{Label: "Disk usage", Value: info.Disk})
	}

	if len(info.GPUs) == 0 {
		details = append(details, Detail{Label: "GPU", Value: sysinfo.Unknown})
	}
	for _, gpu := range info.GPUs {
		details = append(details, Detail{Label: "GPU", Value: gpu})
	}

	if info.InitSystem != "" {
		details = append(details, Detail{Label: "Init System", Value: info.InitSystem})
	}
	details = append(details,
		Detail{Label: "Uptime", Value: info.Uptime},
		Detail{Label: "Memory", Value: info.Memory},
		Detail{Kind: KindDelimiter},
		Detail{Kind: KindColors},
	)
	return details
}
