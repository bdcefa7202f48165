package board

import "strings"

// ValidMove is a destination reachable by the piece it was generated for.
type ValidMove struct {
	Square    Square
	Distance  int
	IsCapture bool
}

// String returns "x,y", with an "x" suffix for captures.
func (m ValidMove) String() string {
	if m.IsCapture {
		return m.Square.String() + "x"
	}
	return m.Square.String()
}

// MoveList is the set of destinations generated for one piece.
type MoveList []ValidMove

// Len returns the number of moves in the list.
func (ml MoveList) Len() int {
	return len(ml)
}

// Contains returns true if some move in the list lands on target.
// Distance and capture flag are ignored.
func (ml MoveList) Contains(target Square) bool {
	for _, m := range ml {
		if m.Square == target {
			return true
		}
	}
	return false
}

// Find returns the move landing on target.
func (ml MoveList) Find(target Square) (ValidMove, bool) {
	for _, m := range ml {
		if m.Square == target {
			return m, true
		}
	}
	return ValidMove{}, false
}

// Captures returns only the capturing moves.
func (ml MoveList) Captures() MoveList {
	var out MoveList
	for _, m := range ml {
		if m.IsCapture {
			out = append(out, m)
		}
	}
	return out
}

// String returns the moves separated by spaces.
func (ml MoveList) String() string {
	parts := make([]string, len(ml))
	for i, m := range ml {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// IsValidMove reports whether target is one of the generated destinations.
func IsValidMove(moves MoveList, target Square) bool {
	return moves.Contains(target)
}
