//go:build linux

package filter

import "golang.org/x/sys/unix"

// fadviseSequential hints to the kernel that a regular file on stdin will be read once, front to back.
// Best-effort: errors are silently ignored.
func fadviseSequential(fd int, offset, length int64) {
	_ = unix.Fadvise(fd, offset, length, unix.FADV_SEQUENTIAL)
}
