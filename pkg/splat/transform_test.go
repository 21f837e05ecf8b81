package splat

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSigmoid(t *testing.T) {
	assert.InDelta(t, 0.5, sigmoid(0), 1e-7)
	assert.Equal(t, float32(1), sigmoid(float32(math.Inf(1))))
	assert.Equal(t, float32(0), sigmoid(float32(math.Inf(-1))))
	assert.True(t, math.IsNaN(float64(sigmoid(float32(math.NaN())))))

	for _, x := range []float32{-20, -3, -0.5, 0.5, 3, 15} {
		got := sigmoid(x)
		expected := 1 / (1 + math.Exp(-float64(x)))
		assert.InEpsilon(t, expected, got, 1e-5, "sigmoid(%v)", x)
		assert.Greater(t, got, float32(0), "sigmoid(%v)", x)
		assert.Less(t, got, float32(1), "sigmoid(%v)", x)
	}
}

func TestSplat_Activate(t *testing.T) {
	raw := testSplat(3)
	s := raw
	s.activate()

	for i := range raw.Scale {
		expected := math.Exp(float64(raw.Scale[i]))
		assert.InEpsilon(t, expected, s.Scale[i], 1e-5, "scale[%d]", i)
	}
	assert.InEpsilon(t, 1/(1+math.Exp(-float64(raw.Opacity))), s.Opacity, 1e-5)

	// Untransformed fields are untouched.
	assert.Equal(t, raw.Position, s.Position)
	assert.Equal(t, raw.Normal, s.Normal)
	assert.Equal(t, raw.ColorDC, s.ColorDC)
	assert.Equal(t, raw.ColorRest, s.ColorRest)
	assert.Equal(t, raw.Rotation, s.Rotation)
}

func TestSplat_ActivateScaleExtremes(t *testing.T) {
	s := Splat{Scale: [3]float32{100, -200, 0}}
	s.activate()

	assert.True(t, math.IsInf(float64(s.Scale[0]), 1), "exp(100) = %v, expected +Inf", s.Scale[0])
	assert.Equal(t, float32(0), s.Scale[1])
	assert.Equal(t, float32(1), s.Scale[2])
}

func TestSplat_ActivateTwiceDiffers(t *testing.T) {
	s := testSplat(2)
	s.activate()
	once := s
	s.activate()

	assert.NotEqual(t, once.Opacity, s.Opacity)
	assert.NotEqual(t, once.Scale, s.Scale)
}

func TestActivateAll_ParallelMatchesSequential(t *testing.T) {
	sequential := testSplats(1000)
	parallel := testSplats(1000)

	activateAll(sequential, Options{Workers: 1})
	activateAll(parallel, Options{Workers: 7, ParallelThreshold: 10})

	if diff := cmp.Diff(sequential, parallel); diff != "" {
		t.Errorf("parallel transform differs (-sequential +parallel):\n%s", diff)
	}
}

func TestActivateAll_Empty(t *testing.T) {
	activateAll(nil, Options{Workers: 4, ParallelThreshold: 1})
	activateAll([]Splat{}, DefaultOptions())
}

func TestOptions_Normalized(t *testing.T) {
	opts := Options{}.normalized()
	assert.Positive(t, opts.Workers)
	assert.Equal(t, DefaultParallelThreshold, opts.ParallelThreshold)

	opts = Options{Workers: 3, ParallelThreshold: 9}.normalized()
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, 9, opts.ParallelThreshold)
}
