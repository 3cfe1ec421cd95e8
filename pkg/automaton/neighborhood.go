package automaton

// Offset is a relative grid position.
type Offset struct {
	DX, DY int
}

// Edge selects how a neighborhood treats offsets that leave the grid.
type Edge uint8

const (
	// EdgeDrop omits out-of-bounds neighbors, so border cells see fewer of them.
	EdgeDrop Edge = iota
	// EdgeBorder substitutes the grid's border cell for out-of-bounds
	// neighbors, so every cell sees the full neighborhood.
	EdgeBorder
)

// Neighborhood is an ordered list of offsets plus an edge policy. The order
// is the order in which neighbors are handed to LocalTransition.
type Neighborhood struct {
	Offsets []Offset
	Edge    Edge
}

// Size reports the number of slots in a full neighborhood.
func (n Neighborhood) Size() int { return len(n.Offsets) }

var (
	// Moore is the eight surrounding cells in reading order, dropping
	// neighbors past the edge.
	Moore = Neighborhood{
		Offsets: []Offset{
			{-1, -1}, {0, -1}, {1, -1},
			{-1, 0}, {1, 0},
			{-1, 1}, {0, 1}, {1, 1},
		},
		Edge: EdgeDrop,
	}

	// Radial is the eight surrounding cells clockwise from the upper left,
	// so slot s and slot (s+4)%8 always face each other. Neighbors past the
	// edge are replaced by the border cell.
	Radial = Neighborhood{
		Offsets: []Offset{
			{-1, -1}, {0, -1}, {1, -1}, {1, 0},
			{1, 1}, {0, 1}, {-1, 1}, {-1, 0},
		},
		Edge: EdgeBorder,
	}

	// VonNeumann is left, right, up, down, with the border cell standing in
	// past the edge.
	VonNeumann = Neighborhood{
		Offsets: []Offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}},
		Edge:    EdgeBorder,
	}
)
