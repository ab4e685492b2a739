//go:build unix

package pagesize

import "golang.org/x/sys/unix"

func probe() int {
	return unix.Getpagesize()
}
