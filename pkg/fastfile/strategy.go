package fastfile

import (
	"fmt"

	"github.com/lukaspustina/fastfile/internal/logger"
	"github.com/lukaspustina/fastfile/internal/pagesize"
)

// Strategy turns an opened request into a Reader. It chooses the backing
// variant and issues any kernel hints before the first read.
//
// On error a Strategy must not close the request's file; the caller does.
type Strategy interface {
	Reader(req *OpenedRequest) (*Reader, error)
}

// Strategy names accepted by StrategyByName.
const (
	StrategyDefault = "default"
	StrategyDirect  = "direct"
	StrategyMmap    = "mmap"
)

// StrategyByName returns the built-in strategy with the given name.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case StrategyDefault, "":
		return NewDefaultStrategy(), nil
	case StrategyDirect:
		return &DirectStrategy{}, nil
	case StrategyMmap:
		return &MmapStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown reader strategy %q (want %s, %s or %s)",
			name, StrategyDefault, StrategyDirect, StrategyMmap)
	}
}

// ResolveSize returns the size a Reader for req is built with: the explicit
// size if set, else the size hint, else the size reported by stat.
func ResolveSize(req *OpenedRequest) (uint64, error) {
	if req.hasSize {
		return req.size, nil
	}
	if req.hasSizeHint {
		return req.sizeHint, nil
	}

	fi, err := req.file.Stat()
	if err != nil {
		return 0, FileOpFailed("stat", err)
	}
	return uint64(fi.Size()), nil
}

// HintClass is the kind of kernel hint issued for a file.
type HintClass int

const (
	// HintNone issues no hint.
	HintNone HintClass = iota

	// HintReadAhead announces sequential access. Failures are logged and
	// otherwise ignored.
	HintReadAhead

	// HintRangeAdvise requests prefetch of the whole file. Failures abort
	// the open.
	HintRangeAdvise
)

func (h HintClass) String() string {
	switch h {
	case HintNone:
		return "none"
	case HintReadAhead:
		return "readahead"
	case HintRangeAdvise:
		return "range-advise"
	default:
		return "unknown"
	}
}

// DefaultRangeAdviseAbove is the size above which DefaultStrategy requests
// prefetch of the whole file (10 MiB).
const DefaultRangeAdviseAbove = 10 << 20

// Thresholds are the size boundaries that select a HintClass.
type Thresholds struct {
	// Files smaller than NoHintBelow get no hint.
	NoHintBelow uint64

	// Files larger than RangeAdviseAbove get a range advise; files in
	// between get a read-ahead hint.
	RangeAdviseAbove uint64
}

// DefaultThresholds returns one page and 10 MiB.
func DefaultThresholds() Thresholds {
	return Thresholds{
		NoHintBelow:      uint64(pagesize.Get()),
		RangeAdviseAbove: DefaultRangeAdviseAbove,
	}
}

// Classify returns the hint class for a file of the given size.
func (t Thresholds) Classify(size uint64) HintClass {
	switch {
	case size < t.NoHintBelow:
		return HintNone
	case size <= t.RangeAdviseAbove:
		return HintReadAhead
	default:
		return HintRangeAdvise
	}
}

// DefaultStrategy reads through the descriptor and picks a kernel hint by
// file size. The zero value uses DefaultThresholds and SystemAdvisor.
type DefaultStrategy struct {
	Thresholds Thresholds
	Advisor    Advisor
	Buffers    BufferBounds
	Metrics    Metrics
}

// NewDefaultStrategy returns a DefaultStrategy with default thresholds and
// the system advisor.
func NewDefaultStrategy() *DefaultStrategy {
	return &DefaultStrategy{
		Thresholds: DefaultThresholds(),
		Advisor:    SystemAdvisor{},
	}
}

func (s *DefaultStrategy) thresholds() Thresholds {
	if s.Thresholds == (Thresholds{}) {
		return DefaultThresholds()
	}
	return s.Thresholds
}

func (s *DefaultStrategy) advisor() Advisor {
	if s.Advisor == nil {
		return SystemAdvisor{}
	}
	return s.Advisor
}

// Reader resolves the size, issues the hint for its class and returns a
// Reader over a direct backing.
func (s *DefaultStrategy) Reader(req *OpenedRequest) (*Reader, error) {
	if err := s.Buffers.Validate(); err != nil {
		return nil, err
	}
	size, err := ResolveSize(req)
	if err != nil {
		return nil, err
	}

	hint := s.thresholds().Classify(size)
	if err := applyHint(s.advisor(), req, size, hint, s.Metrics); err != nil {
		return nil, err
	}

	logger.Debug("reader strategy selected",
		logger.Strategy(StrategyDefault),
		logger.Path(req.path),
		logger.Size(size),
		logger.Hint(hint.String()),
		logger.Backend(BackingDirect.String()))

	return newReader(NewDirectBacking(req.file), size, hint, s.Buffers, s.Metrics), nil
}

// applyHint issues the hint for class. Read-ahead failures are logged and
// swallowed; range advise failures are returned.
func applyHint(adv Advisor, req *OpenedRequest, size uint64, class HintClass, m Metrics) error {
	switch class {
	case HintNone:
		return nil

	case HintReadAhead:
		if err := adv.ReadAhead(req.file); err != nil {
			logger.Warn("readahead hint failed, continuing without it",
				logger.Path(req.path), logger.Size(size), logger.Err(err))
			if m != nil {
				m.ObserveHintFailure(class)
			}
		}
		return nil

	case HintRangeAdvise:
		if err := adv.AdviseRange(req.file, 0, size); err != nil {
			if m != nil {
				m.ObserveHintFailure(class)
			}
			return err
		}
		return nil

	default:
		panic(fmt.Sprintf("fastfile: unknown hint class %d", class))
	}
}

// DirectStrategy reads through the descriptor without kernel hints.
type DirectStrategy struct {
	Buffers BufferBounds
	Metrics Metrics
}

func (s *DirectStrategy) Reader(req *OpenedRequest) (*Reader, error) {
	if err := s.Buffers.Validate(); err != nil {
		return nil, err
	}
	size, err := ResolveSize(req)
	if err != nil {
		return nil, err
	}

	logger.Debug("reader strategy selected",
		logger.Strategy(StrategyDirect), logger.Path(req.path), logger.Size(size))

	return newReader(NewDirectBacking(req.file), size, HintNone, s.Buffers, s.Metrics), nil
}

// MmapStrategy maps the file and reads from the mapping. A sequential
// access hint is issued on the mapping; its failure is only logged.
//
// Mapping an empty file fails with ErrEmptyMapping.
type MmapStrategy struct {
	Buffers BufferBounds
	Metrics Metrics
}

func (s *MmapStrategy) Reader(req *OpenedRequest) (*Reader, error) {
	if err := s.Buffers.Validate(); err != nil {
		return nil, err
	}
	size, err := ResolveSize(req)
	if err != nil {
		return nil, err
	}

	inner, err := NewMappedBacking(req.file)
	if err != nil {
		return nil, err
	}

	if err := inner.adviseSequential(); err != nil {
		logger.Warn("mmap sequential hint failed, continuing without it",
			logger.Path(req.path), logger.Err(err))
		if s.Metrics != nil {
			s.Metrics.ObserveHintFailure(HintReadAhead)
		}
	}

	logger.Debug("reader strategy selected",
		logger.Strategy(StrategyMmap), logger.Path(req.path), logger.Size(size))

	return newReader(inner, size, HintReadAhead, s.Buffers, s.Metrics), nil
}
