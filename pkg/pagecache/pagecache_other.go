//go:build !linux

package pagecache

import (
	"os"

	"github.com/lukaspustina/fastfile/pkg/fastfile"
)

func inspect(*os.File, uint64) (Info, error) {
	return Info{}, fastfile.FileOpFailed("mincore", ErrUnsupported)
}
