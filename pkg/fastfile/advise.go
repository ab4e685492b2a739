package fastfile

import "os"

// Advisor issues kernel access hints for an open file. SystemAdvisor is the
// operating system implementation; tests substitute recording advisors.
type Advisor interface {
	// ReadAhead announces sequential access to the whole file.
	ReadAhead(f *os.File) error

	// AdviseRange asks the kernel to prefetch [offset, offset+length).
	AdviseRange(f *os.File, offset, length uint64) error
}

// SystemAdvisor issues hints through the platform's advisory system calls:
// posix_fadvise on Linux, fcntl F_RDAHEAD/F_RDADVISE on macOS and nothing
// elsewhere. Failures are LibcFailed errors wrapped in a KindFileOp error.
type SystemAdvisor struct{}

var _ Advisor = SystemAdvisor{}
