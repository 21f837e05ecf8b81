// Package splat loads Gaussian splat point clouds stored as binary PLY files.
//
// A splat file is a PLY variant whose vertex element carries a fixed set of
// 62 float32 properties per point. Load parses the text header, checks the
// declared encoding, decodes the packed vertex records and converts the
// stored opacity logits and log scales into probabilities and linear scales.
package splat

// RecordSize is the on-disk size of one vertex record in bytes.
const RecordSize = 62 * 4

// Number of higher-order colour coefficients per record (15 per channel).
const ColorRestCount = 45

// Byte offsets of each field inside a vertex record.
const (
	offPosition  = 0
	offNormal    = offPosition + 3*4
	offColorDC   = offNormal + 3*4
	offColorRest = offColorDC + 3*4
	offOpacity   = offColorRest + ColorRestCount*4
	offScale     = offOpacity + 4
	offRotation  = offScale + 3*4
)

// shC0 is the degree-0 spherical harmonic basis constant.
const shC0 = 0.28209479177387814

// Splat is a single decoded point of the cloud.
//
// Fields appear in on-disk order. After Load returns, Opacity holds a
// probability and Scale holds linear extents; every other field is exactly
// what the file stored.
type Splat struct {
	Position  [3]float32
	Normal    [3]float32
	ColorDC   [3]float32
	ColorRest [ColorRestCount]float32
	Opacity   float32
	Scale     [3]float32
	// Rotation is a quaternion in whatever component order the writer used.
	// It is neither normalized nor validated.
	Rotation [4]float32
}

// BaseColor returns the view-independent RGB colour encoded by ColorDC.
// Values are not clamped to [0, 1].
func (s *Splat) BaseColor() [3]float32 {
	return [3]float32{
		0.5 + shC0*s.ColorDC[0],
		0.5 + shC0*s.ColorDC[1],
		0.5 + shC0*s.ColorDC[2],
	}
}

// PointVertex is the minimal per-point data a point renderer consumes.
type PointVertex struct {
	Position [3]float32
	Color    [3]float32
}

// PointVertices builds one vertex per splat, in the same order, using the
// raw DC colour coefficient as the vertex colour.
func PointVertices(splats []Splat) []PointVertex {
	vertices := make([]PointVertex, len(splats))
	for i := range splats {
		vertices[i] = PointVertex{
			Position: splats[i].Position,
			Color:    splats[i].ColorDC,
		}
	}
	return vertices
}
