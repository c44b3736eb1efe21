package grid

/*

Rule engine: move legality and win detection

*/

// A Move proposes placing a value at a 1-indexed row and column.
// A zero Value means "clear the cell".  The zero Move (0,0=0) is
// the save-and-end sentinel and is recognized before any range
// validation.
type Move struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

// Sentinel reports whether the move is the save-and-end request.
func (m Move) Sentinel() bool {
	return m.Row == 0 && m.Col == 0 && m.Value == 0
}

// An Outcome classifies the session state after an accepted move.
type Outcome int

const (
	// Continue means the move was applied and the puzzle is not
	// yet filled.
	Continue Outcome = iota
	// Completed means the move was applied and every cell now
	// holds a value.
	Completed
	// Terminated means the move was the sentinel: the session
	// ends and the grid should be handed to the save collaborator.
	Terminated
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Completed:
		return "completed"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Apply validates a move against the grid and commits it if
// legal.  Rejected moves return an Error carrying the reason and
// leave the grid untouched.  Accepted moves return Continue or,
// when the last empty cell is filled, Completed.  The sentinel
// move returns Terminated without touching the grid.
func (g *Grid) Apply(m Move) (Outcome, error) {
	// the sentinel is recognized on the raw move, before any
	// range checks
	if m.Sentinel() {
		return Terminated, nil
	}

	if m.Row < 1 || m.Row > g.size || m.Col < 1 || m.Col > g.size ||
		m.Value < 0 || m.Value > g.size {
		return Continue, Error{
			Condition: OutOfRangeCondition,
			Values:    ErrorData{g.size, m.Row, m.Col, m.Value},
		}
	}

	c := g.cells[g.index(m.Row, m.Col)]
	switch {
	case c.fixed:
		if m.Value == 0 {
			return Continue, Error{
				Condition: IllegalClearCondition,
				Values:    ErrorData{m.Row, m.Col},
			}
		}
		return Continue, Error{
			Condition: CellOccupiedCondition,
			Values:    ErrorData{m.Row, m.Col},
		}
	case c.value != 0:
		if m.Value != 0 {
			return Continue, Error{
				Condition: CellOccupiedCondition,
				Values:    ErrorData{m.Row, m.Col},
			}
		}
		// clearing a player-placed value always succeeds
	case m.Value != 0:
		// inserting into an empty cell: check the Latin rule
		if g.conflicts(m) {
			return Continue, Error{
				Condition: DuplicateValueCondition,
				Values:    ErrorData{m.Row, m.Col, m.Value},
			}
		}
	default:
		// clearing an empty cell is an accepted no-op
	}

	g.cells[g.index(m.Row, m.Col)] = cell{value: m.Value}
	if g.Complete() {
		return Completed, nil
	}
	return Continue, nil
}

// conflicts scans the move's row and column for the candidate
// value.  Givens participate through their absolute value exactly
// like player values.
func (g *Grid) conflicts(m Move) bool {
	for col := 1; col <= g.size; col++ {
		if g.cells[g.index(m.Row, col)].value == m.Value {
			return true
		}
	}
	for row := 1; row <= g.size; row++ {
		if g.cells[g.index(row, m.Col)].value == m.Value {
			return true
		}
	}
	return false
}
