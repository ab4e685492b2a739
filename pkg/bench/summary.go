package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/lukaspustina/fastfile/internal/bytesize"
)

// Summary describes the timing distribution of a set of samples.
type Summary struct {
	Count  int           `json:"count" yaml:"count"`
	Min    time.Duration `json:"min" yaml:"min"`
	Mean   time.Duration `json:"mean" yaml:"mean"`
	Max    time.Duration `json:"max" yaml:"max"`
	StdDev time.Duration `json:"stddev" yaml:"stddev"`
}

// Summarize computes min, mean, max and sample standard deviation. An
// empty slice yields the zero Summary.
func Summarize(samples []Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	minD, maxD := samples[0].Duration, samples[0].Duration
	var total float64
	for _, s := range samples {
		minD = min(minD, s.Duration)
		maxD = max(maxD, s.Duration)
		total += float64(s.Duration)
	}
	mean := total / float64(len(samples))

	var sd float64
	if len(samples) > 1 {
		var sq float64
		for _, s := range samples {
			d := float64(s.Duration) - mean
			sq += d * d
		}
		sd = math.Sqrt(sq / float64(len(samples)-1))
	}

	return Summary{
		Count:  len(samples),
		Min:    minD,
		Mean:   time.Duration(mean),
		Max:    maxD,
		StdDev: time.Duration(sd),
	}
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func (s Summary) String() string {
	return fmt.Sprintf("[min:%10.2f ms, mean:%10.2f ms, max:%10.2f ms, sd:%10.2f]",
		ms(s.Min), ms(s.Mean), ms(s.Max), ms(s.StdDev))
}

// Throughput is bytes per second at the fastest, mean and slowest run.
type Throughput struct {
	Min  float64 `json:"min" yaml:"min"`
	Mean float64 `json:"mean" yaml:"mean"`
	Max  float64 `json:"max" yaml:"max"`
}

// NewThroughput derives throughput for amount bytes per run. Min is the
// throughput of the slowest run, Max that of the fastest.
func NewThroughput(s Summary, amount uint64) Throughput {
	return Throughput{
		Min:  perSecond(amount, s.Max),
		Mean: perSecond(amount, s.Mean),
		Max:  perSecond(amount, s.Min),
	}
}

func perSecond(amount uint64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(amount) / d.Seconds()
}

func (t Throughput) String() string {
	return fmt.Sprintf("[min:%11s/s, mean:%11s/s, max:%11s/s]",
		rate(t.Min), rate(t.Mean), rate(t.Max))
}

func rate(v float64) string {
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return "-"
	}
	return bytesize.ByteSize(min(v, math.MaxUint64/2)).HumanString()
}
