//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package sysinfo

import "errors"

func nativeUname() (unameInfo, error) {
	return unameInfo{}, errors.New("uname not supported on this platform")
}
