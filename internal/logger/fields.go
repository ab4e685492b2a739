package logger

import "log/slog"

// Standard field keys for structured logging.
// Use these keys consistently so reader, page cache and benchmark logs can
// be queried together.
const (
	// ========================================================================
	// Distributed Tracing
	// ========================================================================
	KeyTraceID = "trace_id" // OpenTelemetry trace ID for request correlation
	KeySpanID  = "span_id"  // OpenTelemetry span ID for operation tracking

	// ========================================================================
	// Files
	// ========================================================================
	KeyPath = "path" // File path as given by the caller
	KeySize = "size" // Resolved file size in bytes

	// ========================================================================
	// Reader
	// ========================================================================
	KeyStrategy   = "strategy"    // Reader strategy: default, direct, mmap
	KeyBackend    = "backend"     // Backing variant: direct, mmap
	KeyHint       = "hint"        // Kernel hint class: none, readahead, range-advise
	KeyBytesRead  = "bytes_read"  // Bytes returned by a read
	KeyBufferSize = "buffer_size" // Scratch buffer size in bytes

	// ========================================================================
	// Page Cache
	// ========================================================================
	KeyTotalPages  = "total_pages"  // Pages spanned by the file
	KeyCachedPages = "cached_pages" // Pages resident in the page cache
	KeyRatio       = "ratio"        // Cached / total pages

	// ========================================================================
	// Benchmark
	// ========================================================================
	KeyRunID      = "run_id"     // Benchmark run identifier
	KeyIterations = "iterations" // Iterations per benchmark function
	KeyMethod     = "method"     // Benchmarked method name

	// ========================================================================
	// Operation Metadata
	// ========================================================================
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
	KeyError      = "error"       // Error message
	KeyCommand    = "command"     // CLI command being executed
)

// ============================================================================
// Field constructors for type safety
// ============================================================================

// TraceID returns a slog.Attr for OpenTelemetry trace ID
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for OpenTelemetry span ID
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// Path returns a slog.Attr for a file path
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Size returns a slog.Attr for file size
func Size(s uint64) slog.Attr {
	return slog.Uint64(KeySize, s)
}

// Strategy returns a slog.Attr for the reader strategy name
func Strategy(name string) slog.Attr {
	return slog.String(KeyStrategy, name)
}

// Backend returns a slog.Attr for the backing variant
func Backend(name string) slog.Attr {
	return slog.String(KeyBackend, name)
}

// Hint returns a slog.Attr for the kernel hint class
func Hint(class string) slog.Attr {
	return slog.String(KeyHint, class)
}

// BytesRead returns a slog.Attr for bytes read
func BytesRead(n int) slog.Attr {
	return slog.Int(KeyBytesRead, n)
}

// BufferSize returns a slog.Attr for scratch buffer size
func BufferSize(n int) slog.Attr {
	return slog.Int(KeyBufferSize, n)
}

// TotalPages returns a slog.Attr for the number of pages spanned by a file
func TotalPages(n uint64) slog.Attr {
	return slog.Uint64(KeyTotalPages, n)
}

// CachedPages returns a slog.Attr for the number of resident pages
func CachedPages(n uint64) slog.Attr {
	return slog.Uint64(KeyCachedPages, n)
}

// Ratio returns a slog.Attr for a page cache ratio
func Ratio(r float64) slog.Attr {
	return slog.Float64(KeyRatio, r)
}

// RunID returns a slog.Attr for a benchmark run identifier
func RunID(id string) slog.Attr {
	return slog.String(KeyRunID, id)
}

// Iterations returns a slog.Attr for benchmark iterations
func Iterations(n int) slog.Attr {
	return slog.Int(KeyIterations, n)
}

// Method returns a slog.Attr for a benchmarked method
func Method(name string) slog.Attr {
	return slog.String(KeyMethod, name)
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Command returns a slog.Attr for the CLI command name
func Command(name string) slog.Attr {
	return slog.String(KeyCommand, name)
}
