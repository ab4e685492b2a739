package fastfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
		msg  string
	}{
		{"MemOp", MemOpFailed("bad bounds"), KindMemOp, "fastfile: memory operation failed: bad bounds"},
		{"FileOp", FileOpFailed("open", fs.ErrNotExist), KindFileOp, "fastfile: file operation failed: open: file does not exist"},
		{"Libc", LibcFailed("mmap", syscall.ENOMEM), KindLibc, "fastfile: libc function failed: mmap: " + syscall.ENOMEM.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.msg, tt.err.Error())

			kind, ok := KindOf(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestErrorChain(t *testing.T) {
	err := FileOpFailed("mmap", LibcFailed("mmap", syscall.ENODEV))
	wrapped := fmt.Errorf("opening reader: %w", err)

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindFileOp, kind)

	assert.True(t, HasKind(wrapped, KindFileOp))
	assert.True(t, HasKind(wrapped, KindLibc))
	assert.False(t, HasKind(wrapped, KindMemOp))
	assert.ErrorIs(t, wrapped, syscall.ENODEV)

	var e *Error
	require.ErrorAs(t, wrapped, &e)
	assert.Equal(t, "mmap", e.Op)
}

func TestKindOfForeignError(t *testing.T) {
	_, ok := KindOf(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, HasKind(nil, KindFileOp))
	assert.False(t, HasKind(os.ErrClosed, KindFileOp))
}

func TestIsInterrupted(t *testing.T) {
	pathErr := &fs.PathError{Op: "read", Path: "/x", Err: syscall.EINTR}

	assert.True(t, IsInterrupted(syscall.EINTR))
	assert.True(t, IsInterrupted(pathErr))
	assert.True(t, IsInterrupted(FileOpFailed("read", pathErr)))
	assert.False(t, IsInterrupted(syscall.EAGAIN))
	assert.False(t, IsInterrupted(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "memory operation failed", KindMemOp.String())
	assert.Equal(t, "file operation failed", KindFileOp.String())
	assert.Equal(t, "libc function failed", KindLibc.String())
	assert.Equal(t, "unknown error", Kind(0).String())
}
