package gridviz

import "math"

// Matrix represents a 2D linear transformation.
// It is a 2x2 matrix in row-major order:
//
//	| A  B |
//	| C  D |
//
// This represents the transformation:
//
//	x' = A*x + B*y
//	y' = C*x + D*y
//
// Unlike a full affine matrix there is no translation part: a linear map
// always keeps the origin fixed.
type Matrix struct {
	A, B float64
	C, D float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0,
		C: 0, D: 1,
	}
}

// Scaling creates a scaling matrix with independent factors per axis.
func Scaling(sx, sy float64) Matrix {
	return Matrix{
		A: sx, B: 0,
		C: 0, D: sy,
	}
}

// Stretch creates a uniaxial stretch along the x-axis: extension for
// k > 1, compression for 0 < k < 1.
func Stretch(k float64) Matrix {
	return Scaling(k, 1)
}

// Rotation creates a rotation matrix (angle in radians, counter-clockwise).
func Rotation(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin,
		C: sin, D: cos,
	}
}

// Shearing creates a shear matrix with unit diagonal.
func Shearing(kx, ky float64) Matrix {
	return Matrix{
		A: 1, B: kx,
		C: ky, D: 1,
	}
}

// Isochoric creates an area-preserving stretch diag(k, 1/k).
// Its determinant is exactly 1 for any non-zero k.
func Isochoric(k float64) Matrix {
	return Scaling(k, 1/k)
}

// Mul multiplies two matrices (m * other).
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
	}
}

// Apply transforms a point by matrix-vector multiplication.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.C*p.X + m.D*p.Y,
	}
}

// Det returns the determinant. Its magnitude is the area scaling factor
// of the map; |Det| == 1 means the map is isochoric.
func (m Matrix) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// IsFinite returns true if every entry is a finite number.
func (m Matrix) IsFinite() bool {
	return isFinite(m.A) && isFinite(m.B) && isFinite(m.C) && isFinite(m.D)
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1
}

// Transform applies the matrix to every point of g and returns a new grid
// with identical topology. The input grid is never mutated.
//
// Returns ErrInvalidMatrix before touching any point if the matrix
// contains NaN or Inf entries.
func (m Matrix) Transform(g Grid) (Grid, error) {
	if !m.IsFinite() {
		return Grid{}, ErrInvalidMatrix
	}
	return Grid{
		Horizontal: m.transformSegments(g.Horizontal),
		Vertical:   m.transformSegments(g.Vertical),
	}, nil
}

func (m Matrix) transformSegments(segs []Segment) []Segment {
	out := make([]Segment, len(segs))
	for i, seg := range segs {
		ns := make(Segment, len(seg))
		for j, p := range seg {
			ns[j] = m.Apply(p)
		}
		out[i] = ns
	}
	return out
}
