//go:build windows

package sysinfo

import "golang.org/x/sys/windows/registry"

// readRegistryString reads a string value, returning "" if the key, path or
// value doesn't exist or can't be read.
func readRegistryString(root regRoot, path, value string) string {
	hive := registry.LOCAL_MACHINE
	if root == regCurrentUser {
		hive = registry.CURRENT_USER
	}

	k, err := registry.OpenKey(hive, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	s, _, err := k.GetStringValue(value)
	if err != nil {
		return ""
	}
	return s
}
