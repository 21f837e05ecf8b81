//go:build ignore

// This program generates a small splat PLY file for manual testing.
// Run with: go run generate_ply.go
package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

const (
	splatCount = 256
	floatCount = 62
)

func main() {
	f, err := os.Create("sample.ply")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintln(w, "ply")
	fmt.Fprintln(w, "format binary_little_endian 1.0")
	fmt.Fprintln(w, "comment generated by generate_ply.go")
	fmt.Fprintf(w, "element vertex %d\n", splatCount)
	for _, name := range []string{"x", "y", "z", "nx", "ny", "nz", "f_dc_0", "f_dc_1", "f_dc_2"} {
		fmt.Fprintf(w, "property float %s\n", name)
	}
	for i := 0; i < 45; i++ {
		fmt.Fprintf(w, "property float f_rest_%d\n", i)
	}
	for _, name := range []string{"opacity", "scale_0", "scale_1", "scale_2", "rot_0", "rot_1", "rot_2", "rot_3"} {
		fmt.Fprintf(w, "property float %s\n", name)
	}
	fmt.Fprintln(w, "end_header")

	// Points on a unit sphere (golden spiral), colour varying with height.
	record := make([]float32, floatCount)
	for i := 0; i < splatCount; i++ {
		y := 1 - 2*(float64(i)+0.5)/splatCount
		r := math.Sqrt(1 - y*y)
		theta := math.Pi * (3 - math.Sqrt(5)) * float64(i)

		for k := range record {
			record[k] = 0
		}
		record[0] = float32(r * math.Cos(theta))
		record[1] = float32(y)
		record[2] = float32(r * math.Sin(theta))
		record[3], record[4], record[5] = record[0], record[1], record[2]
		record[6] = float32(y)
		record[7] = float32(-y)
		record[8] = 0.5
		record[54] = float32(i%10) - 5 // opacity logit
		record[55], record[56], record[57] = -4, -4, -5
		record[58] = 1 // identity rotation

		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			panic(err)
		}
	}
}
