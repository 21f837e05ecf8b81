// Package splatstat summarizes decoded splat attributes.
package splatstat

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/lgingerich/gsplat-viewer/pkg/math"
	"github.com/lgingerich/gsplat-viewer/pkg/splat"
)

// ErrUnknownField is returned by Values for an unrecognized attribute name.
var ErrUnknownField = errors.New("unknown splat field")

// FieldSummary describes the finite values of one attribute.
type FieldSummary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summary describes a decoded splat cloud.
type Summary struct {
	Count int
	// Bounds covers every record with a finite position.
	Bounds  math.Bounds
	Opacity FieldSummary
	Scale   [3]FieldSummary
	// NonFinite counts records with a NaN or infinite position, opacity or scale.
	NonFinite int
}

// Summarize computes a Summary. Non-finite values are left out of the
// per-field statistics and counted in NonFinite instead.
func Summarize(splats []splat.Splat) Summary {
	sum := Summary{Count: len(splats)}

	opacity := make([]float64, 0, len(splats))
	var scale [3][]float64
	for i := range scale {
		scale[i] = make([]float64, 0, len(splats))
	}

	for i := range splats {
		s := &splats[i]
		finite := true

		pos := math.Vec3From(s.Position)
		if pos.IsFinite() {
			sum.Bounds.Extend(pos)
		} else {
			finite = false
		}

		if isFinite(s.Opacity) {
			opacity = append(opacity, float64(s.Opacity))
		} else {
			finite = false
		}

		for j, v := range s.Scale {
			if isFinite(v) {
				scale[j] = append(scale[j], float64(v))
			} else {
				finite = false
			}
		}

		if !finite {
			sum.NonFinite++
		}
	}

	sum.Opacity = summarizeValues(opacity)
	for j := range scale {
		sum.Scale[j] = summarizeValues(scale[j])
	}

	return sum
}

func summarizeValues(x []float64) FieldSummary {
	if len(x) == 0 {
		return FieldSummary{}
	}
	mean, std := stat.MeanStdDev(x, nil)
	if len(x) == 1 {
		std = 0
	}
	return FieldSummary{
		Count:  len(x),
		Min:    floats.Min(x),
		Max:    floats.Max(x),
		Mean:   mean,
		StdDev: std,
	}
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// fieldGetters maps attribute names, as written in PLY property lists, to
// accessors on a decoded record.
var fieldGetters = map[string]func(*splat.Splat) float32{
	"x":       func(s *splat.Splat) float32 { return s.Position[0] },
	"y":       func(s *splat.Splat) float32 { return s.Position[1] },
	"z":       func(s *splat.Splat) float32 { return s.Position[2] },
	"nx":      func(s *splat.Splat) float32 { return s.Normal[0] },
	"ny":      func(s *splat.Splat) float32 { return s.Normal[1] },
	"nz":      func(s *splat.Splat) float32 { return s.Normal[2] },
	"f_dc_0":  func(s *splat.Splat) float32 { return s.ColorDC[0] },
	"f_dc_1":  func(s *splat.Splat) float32 { return s.ColorDC[1] },
	"f_dc_2":  func(s *splat.Splat) float32 { return s.ColorDC[2] },
	"opacity": func(s *splat.Splat) float32 { return s.Opacity },
	"scale_0": func(s *splat.Splat) float32 { return s.Scale[0] },
	"scale_1": func(s *splat.Splat) float32 { return s.Scale[1] },
	"scale_2": func(s *splat.Splat) float32 { return s.Scale[2] },
	"rot_0":   func(s *splat.Splat) float32 { return s.Rotation[0] },
	"rot_1":   func(s *splat.Splat) float32 { return s.Rotation[1] },
	"rot_2":   func(s *splat.Splat) float32 { return s.Rotation[2] },
	"rot_3":   func(s *splat.Splat) float32 { return s.Rotation[3] },
}

// Fields returns the attribute names accepted by Values, sorted.
func Fields() []string {
	names := make([]string, 0, len(fieldGetters))
	for name := range fieldGetters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Values extracts one attribute from every record, in record order.
func Values(splats []splat.Splat, field string) ([]float64, error) {
	get, ok := fieldGetters[strings.ToLower(field)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	values := make([]float64, len(splats))
	for i := range splats {
		values[i] = float64(get(&splats[i]))
	}
	return values, nil
}
