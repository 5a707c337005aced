package forestfire

// State enumerates the cell values of the forest grid.
type State uint8

const (
	Empty State = iota
	Tree
	Burning
	Burned

	numStates = 4
)

var stateNames = [numStates]string{"empty", "tree", "burning", "burned"}

// Valid reports whether s is one of the four cell states.
func (s State) Valid() bool { return s < numStates }

func (s State) String() string {
	if !s.Valid() {
		return "invalid"
	}
	return stateNames[s]
}

// States lists every cell state in value order.
func States() []State { return []State{Empty, Tree, Burning, Burned} }
