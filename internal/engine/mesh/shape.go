package mesh

// shapeOutline is the flat figure in its authoring space: x in [0, 0.4],
// y in [0, 0.6], followed by the vertex colour.
var shapeOutline = [...][5]float32{
	{0, 0, 1, 0, 0},
	{0.1, 0, 1, 0, 0},
	{0.1, 0.2, 1, 0, 0},
	{0, 0.3, 1, 0, 0},
	{0.4, 0.3, 0, 1, 0},
	{0.4, 0.2, 0, 1, 0},
	{0.4, 0, 0, 0, 1},
	{0.3, 0, 0, 0, 1},
	{0.3, 0.2, 0, 0, 1},
	{0.1, 0.1, 1, 0, 0},
	{0.1, 0.5, 1, 0, 0},
	{0.1, 0.3, 1, 0, 0},
	{0, 0.6, 0, 1, 0},
	{0.4, 0.6, 0, 1, 0},
	{0.4, 0.5, 0, 1, 0},
	{0.3, 0.5, 0, 0, 1},
	{0.3, 0.3, 0, 0, 1},
	{0.3, 0.4, 0, 0, 1},
	{0.1, 0.4, 0, 0, 1},
	{0.3, 0.1, 0, 0, 1},
}

var shapeIndices = []uint32{
	0, 1, 2,
	0, 2, 3,
	2, 4, 3,
	2, 5, 4,
	5, 8, 7,
	7, 6, 5,
	1, 19, 9,
	1, 7, 19,
	3, 10, 12,
	3, 11, 10,
	10, 13, 12,
	10, 14, 13,
	15, 16, 14,
	14, 16, 4,
	11, 17, 18,
	11, 16, 17,
}

// shapeScale maps the 0.4 wide outline onto the unit cube's width.
const shapeScale = 2.5

// Shape returns the flat outline figure in the z=0 plane, centred on the
// origin and scaled to the cube's footprint. The first half of the indices
// face +Z; the second half repeats them with reversed winding so the figure
// survives back-face culling when it turns away from the camera.
func Shape() *Mesh {
	m := &Mesh{
		Name:     "shape",
		Vertices: make([]float32, 0, len(shapeOutline)*FloatsPerVertex),
		Indices:  make([]uint32, 0, 2*len(shapeIndices)),
	}
	m.Indices = append(m.Indices, shapeIndices...)
	for i := 0; i < len(shapeIndices); i += 3 {
		m.Indices = append(m.Indices, shapeIndices[i], shapeIndices[i+2], shapeIndices[i+1])
	}
	for _, v := range shapeOutline {
		m.Vertices = append(m.Vertices,
			(v[0]-0.2)*shapeScale, (v[1]-0.3)*shapeScale, 0,
			v[2], v[3], v[4],
		)
	}
	return m
}
