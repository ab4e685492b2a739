package config

import (
	"fmt"

	"github.com/lukaspustina/fastfile/pkg/fastfile"
)

// Thresholds returns the hint thresholds of the reader configuration.
func (rc *ReaderConfig) Thresholds() fastfile.Thresholds {
	return fastfile.Thresholds{
		NoHintBelow:      rc.NoHintBelow.Uint64(),
		RangeAdviseAbove: rc.RangeAdviseAbove.Uint64(),
	}
}

// Buffers returns the scratch buffer bounds of the reader configuration.
func (rc *ReaderConfig) Buffers() fastfile.BufferBounds {
	return fastfile.BufferBounds{Min: rc.MinBuffer.Int(), Max: rc.MaxBuffer.Int()}
}

// NewStrategy builds the configured reader strategy. m may be nil.
func (rc *ReaderConfig) NewStrategy(m fastfile.Metrics) (fastfile.Strategy, error) {
	return rc.NewStrategyNamed(rc.Strategy, m)
}

// NewStrategyNamed builds the named strategy with the thresholds and buffer
// bounds of rc. The bench command uses it to compare strategies under the
// same tuning.
func (rc *ReaderConfig) NewStrategyNamed(name string, m fastfile.Metrics) (fastfile.Strategy, error) {
	switch name {
	case fastfile.StrategyDefault, "":
		return &fastfile.DefaultStrategy{
			Thresholds: rc.Thresholds(),
			Advisor:    fastfile.SystemAdvisor{},
			Buffers:    rc.Buffers(),
			Metrics:    m,
		}, nil
	case fastfile.StrategyDirect:
		return &fastfile.DirectStrategy{Buffers: rc.Buffers(), Metrics: m}, nil
	case fastfile.StrategyMmap:
		return &fastfile.MmapStrategy{Buffers: rc.Buffers(), Metrics: m}, nil
	default:
		return nil, fmt.Errorf("unknown reader strategy %q", name)
	}
}
