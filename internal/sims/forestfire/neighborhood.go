package forestfire

type offset struct{ dx, dy int }

// Neighborhood is a fixed set of relative offsets. Offsets that fall outside
// the grid are dropped; there is no wraparound.
type Neighborhood struct {
	Name    string
	offsets []offset
}

// Moore is the 8-connected neighborhood, visited row by row from the
// north-west corner.
var Moore = Neighborhood{
	Name: "moore",
	offsets: []offset{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	},
}

// VonNeumann is the 4-connected neighborhood: north, west, east, south.
var VonNeumann = Neighborhood{
	Name:    "vonneumann",
	offsets: []offset{{0, -1}, {-1, 0}, {1, 0}, {0, 1}},
}

// Size returns the neighbor count of an interior cell.
func (n Neighborhood) Size() int { return len(n.offsets) }

// Neighbors appends the linear indexes of the in-bounds neighbors of (x, y)
// on a w×h grid to dst.
func (n Neighborhood) Neighbors(dst []int, w, h, x, y int) []int {
	for _, o := range n.offsets {
		nx, ny := x+o.dx, y+o.dy
		if nx < 0 || nx >= w || ny < 0 || ny >= h {
			continue
		}
		dst = append(dst, ny*w+nx)
	}
	return dst
}

// Tally counts neighbors by state, indexed by State.
type Tally [numStates]int

// Tally counts the in-bounds neighbors of (x, y) in cells by state.
func (n Neighborhood) Tally(cells []uint8, w, h, x, y int) Tally {
	var t Tally
	for _, o := range n.offsets {
		nx, ny := x+o.dx, y+o.dy
		if nx < 0 || nx >= w || ny < 0 || ny >= h {
			continue
		}
		if s := cells[ny*w+nx]; s < numStates {
			t[s]++
		}
	}
	return t
}
