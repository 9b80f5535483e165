package sysinfo

// regRoot names a registry hive.
type regRoot int

const (
	regLocalMachine regRoot = iota
	regCurrentUser
)
