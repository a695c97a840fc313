//go:build !linux && !darwin

package sysx

// SysInfo holds the kernel identification fields of uname(2).
type SysInfo struct {
	Sysname  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

// Uname returns [ErrUnsupported] on platforms without uname(2).
func Uname() (SysInfo, error) { return SysInfo{}, ErrUnsupported }

// DiskFree returns [ErrUnsupported] on platforms without statfs(2).
func DiskFree(string) (uint64, error) { return 0, ErrUnsupported }
