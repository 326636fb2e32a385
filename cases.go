package gridviz

import "math"

// Case pairs a transformation matrix with a display title.
type Case struct {
	Name   string
	Matrix Matrix
}

// Cases returns the built-in catalogue of example transformations, in
// presentation order. The first entry is the undeformed reference.
func Cases() []Case {
	return []Case{
		{Name: "Reference", Matrix: Identity()},
		{Name: "Extension", Matrix: Stretch(1.2)},
		{Name: "Compression", Matrix: Stretch(0.8)},
		{Name: "Expansion", Matrix: Scaling(1.2, 1.2)},
		{Name: "Contraction", Matrix: Scaling(0.8, 0.8)},
		{Name: "Isochoric (Volume Conservation)", Matrix: Isochoric(1.2)},
		{Name: "Pure Shear", Matrix: Shearing(0.2, 0.2)},
		{Name: "Rotation", Matrix: Rotation(math.Pi / 4)},
	}
}
