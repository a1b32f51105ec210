package mesh

// Cube returns a unit cube centred on the origin. Faces wind
// counter-clockwise when seen from outside.
func Cube() *Mesh {
	return &Mesh{
		Name: "cube",
		Vertices: []float32{
			// Position          // Color (RGB)
			-0.5, -0.5, 0.5, 1.0, 0.2, 0.2, // 0 front bottom left
			0.5, -0.5, 0.5, 0.2, 1.0, 0.2, // 1 front bottom right
			0.5, 0.5, 0.5, 0.2, 0.2, 1.0, // 2 front top right
			-0.5, 0.5, 0.5, 1.0, 1.0, 0.2, // 3 front top left
			-0.5, -0.5, -0.5, 1.0, 0.2, 1.0, // 4 back bottom left
			0.5, -0.5, -0.5, 0.2, 1.0, 1.0, // 5 back bottom right
			0.5, 0.5, -0.5, 0.9, 0.9, 0.9, // 6 back top right
			-0.5, 0.5, -0.5, 0.4, 0.4, 0.4, // 7 back top left
		},
		Indices: []uint32{
			0, 1, 2, 0, 2, 3, // front
			5, 4, 7, 5, 7, 6, // back
			1, 5, 6, 1, 6, 2, // right
			4, 0, 3, 4, 3, 7, // left
			3, 2, 6, 3, 6, 7, // top
			4, 5, 1, 4, 1, 0, // bottom
		},
	}
}
