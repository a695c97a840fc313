//go:build linux || darwin

package sysx

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// SysInfo holds the kernel identification fields of uname(2).
type SysInfo struct {
	Sysname  string // kernel name, e.g. "Linux"
	Nodename string
	Release  string // kernel release, e.g. "6.8.0-41-generic"
	Version  string
	Machine  string // hardware identifier, e.g. "x86_64"
}

// Uname returns the kernel identification reported by uname(2).
func Uname() (SysInfo, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return SysInfo{}, fmt.Errorf("sysx: uname: %w", err)
	}
	return SysInfo{
		Sysname:  unix.ByteSliceToString(uts.Sysname[:]),
		Nodename: unix.ByteSliceToString(uts.Nodename[:]),
		Release:  unix.ByteSliceToString(uts.Release[:]),
		Version:  unix.ByteSliceToString(uts.Version[:]),
		Machine:  unix.ByteSliceToString(uts.Machine[:]),
	}, nil
}

// DiskFree returns the bytes available to unprivileged users on the
// filesystem containing path, like `df --output=avail`.
func DiskFree(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, fmt.Errorf("sysx: statfs %q: %w", path, err)
	}
	return st.Bavail * uint64(st.Bsize), nil
}
