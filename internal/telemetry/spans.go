package telemetry

import (
	"context"
	"math"

	"github.com/lukaspustina/fastfile/internal/logger"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys for fastfile spans.
const (
	AttrPath       = "file.path"
	AttrSize       = "file.size"
	AttrStrategy   = "fastfile.strategy"
	AttrBackend    = "fastfile.backend"
	AttrHint       = "fastfile.hint"
	AttrBytesRead  = "fastfile.bytes_read"
	AttrBufferSize = "fastfile.buffer_size"
	AttrRunID      = "bench.run_id"
	AttrIterations = "bench.iterations"
)

// Attribute constructors for the keys above.

func Path(p string) attribute.KeyValue {
	return attribute.String(AttrPath, p)
}

func Size(s uint64) attribute.KeyValue {
	return attribute.Int64(AttrSize, clampInt64(s))
}

func Strategy(name string) attribute.KeyValue {
	return attribute.String(AttrStrategy, name)
}

func Backend(kind string) attribute.KeyValue {
	return attribute.String(AttrBackend, kind)
}

func Hint(class string) attribute.KeyValue {
	return attribute.String(AttrHint, class)
}

func BytesRead(n uint64) attribute.KeyValue {
	return attribute.Int64(AttrBytesRead, clampInt64(n))
}

func BufferSize(n int) attribute.KeyValue {
	return attribute.Int(AttrBufferSize, n)
}

func RunID(id string) attribute.KeyValue {
	return attribute.String(AttrRunID, id)
}

func Iterations(n int) attribute.KeyValue {
	return attribute.Int(AttrIterations, n)
}

func clampInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

// StartReadSpan starts a span for reading path with the named strategy.
func StartReadSpan(ctx context.Context, path, strategy string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append([]attribute.KeyValue{Path(path), Strategy(strategy)}, attrs...)
	return StartSpan(ctx, "fastfile.read", trace.WithAttributes(attrs...))
}

// StartBenchSpan starts a span for a benchmark run.
func StartBenchSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return StartSpan(ctx, "fastfile.bench "+name, trace.WithAttributes(attrs...))
}

// WithLogContext copies the trace and span IDs of ctx into its logger
// context, creating one for command if there is none.
func WithLogContext(ctx context.Context, command string) context.Context {
	lc := logger.FromContext(ctx)
	if lc == nil {
		lc = logger.NewLogContext(command)
	}
	return logger.WithContext(ctx, lc.WithTrace(TraceID(ctx), SpanID(ctx)))
}
