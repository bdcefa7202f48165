package engine

import "github.com/gbs0/chezz-univoid-game/internal/board"

// Selection is the piece waiting for a destination.
type Selection struct {
	Piece  board.Piece
	Square board.Square
}

// TurnController tracks the side to move and the current selection.
type TurnController struct {
	current   board.Color
	selection *Selection
}

// NewTurnController creates a controller with White to move.
func NewTurnController() *TurnController {
	return &TurnController{current: board.White}
}

// CurrentTurn returns the side to move.
func (tc *TurnController) CurrentTurn() board.Color {
	return tc.current
}

// SelectPiece selects p standing on (x, y) if it belongs to the side to
// move. On failure any earlier selection is left as it was.
func (tc *TurnController) SelectPiece(p board.Piece, x, y int) bool {
	if p.Color != tc.current {
		return false
	}
	tc.selection = &Selection{Piece: p, Square: board.NewSquare(x, y)}
	return true
}

// DeselectPiece clears the selection.
func (tc *TurnController) DeselectPiece() {
	tc.selection = nil
}

// EndTurn passes the move to the other side and clears the selection.
func (tc *TurnController) EndTurn() {
	tc.current = tc.current.Other()
	tc.selection = nil
}

// IsSelectedPosition reports whether (x, y) is the selected square.
func (tc *TurnController) IsSelectedPosition(x, y int) bool {
	return tc.selection != nil && tc.selection.Square == board.NewSquare(x, y)
}

// Selection returns the current selection, if any.
func (tc *TurnController) Selection() (Selection, bool) {
	if tc.selection == nil {
		return Selection{}, false
	}
	return *tc.selection, true
}
