//go:build !unix

package pagesize

import "os"

func probe() int {
	return os.Getpagesize()
}
