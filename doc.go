// Package gridviz visualizes 2D linear transformations.
//
// # Overview
//
// gridviz builds a structured grid of line segments over a rectangular
// domain, applies a 2x2 matrix to every grid point, and hands both the
// reference and the deformed grid to a renderer for side-by-side
// comparison. It is the classic "what does this matrix do to the plane"
// picture: extension, compression, shear, rotation, and friends.
//
// # Quick Start
//
//	grid, err := gridviz.NewGrid(gridviz.Bounds{Min: 0, Max: 1}, 0.25)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	shear := gridviz.Shearing(0.2, 0.2)
//	deformed, err := shear.Transform(grid)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Render with the render package, or walk the segments yourself:
//	for _, seg := range deformed.Segments() {
//		_ = seg
//	}
//
// # Coordinate System
//
// Grids live in mathematical coordinates: X increases right, Y increases
// up, angles in radians and counter-clockwise. The render package owns the
// flip into image coordinates.
//
// All types in this package are immutable values. Transform never mutates
// its input and returns a fresh grid with identical topology.
package gridviz

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
