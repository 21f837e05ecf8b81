package splat

import (
	"runtime"

	"github.com/chewxy/math32"
	"golang.org/x/sync/errgroup"
)

// DefaultParallelThreshold is the record count from which the transform
// fans out across goroutines.
const DefaultParallelThreshold = 1 << 16

// Options tunes how Load runs the field transform. It never changes the
// result.
type Options struct {
	// Workers caps the goroutines used by the transform.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int
	// ParallelThreshold is the smallest record count transformed in
	// parallel. Zero or negative means DefaultParallelThreshold.
	ParallelThreshold int
}

// DefaultOptions returns the options used by Load.
func DefaultOptions() Options {
	return Options{
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: DefaultParallelThreshold,
	}
}

func (o Options) normalized() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.ParallelThreshold <= 0 {
		o.ParallelThreshold = DefaultParallelThreshold
	}
	return o
}

// activate converts the stored log scale and opacity logit in place.
// It must run exactly once per record.
func (s *Splat) activate() {
	for i := range s.Scale {
		s.Scale[i] = math32.Exp(s.Scale[i])
	}
	s.Opacity = sigmoid(s.Opacity)
}

func sigmoid(x float32) float32 {
	return 1 / (1 + math32.Exp(-x))
}

// activateAll transforms every record. Large inputs are split into
// contiguous ranges, one goroutine each, so indices never move.
func activateAll(splats []Splat, opts Options) {
	opts = opts.normalized()

	if len(splats) < opts.ParallelThreshold || opts.Workers == 1 {
		activateRange(splats)
		return
	}

	size := (len(splats) + opts.Workers - 1) / opts.Workers

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for start := 0; start < len(splats); start += size {
		part := splats[start:min(start+size, len(splats))]
		g.Go(func() error {
			activateRange(part)
			return nil
		})
	}
	_ = g.Wait()
}

func activateRange(splats []Splat) {
	for i := range splats {
		splats[i].activate()
	}
}
