package board

import (
	"fmt"
	"log"
	"strings"
)

// DebugMoveValidation enables an invariant check after every MovePiece.
var DebugMoveValidation = false

// Tile is one cell of the grid. The shade is fixed by the coordinates;
// the occupant is the only part that changes.
type Tile struct {
	Shade    Shade
	occupant *Piece
}

// Occupant returns a copy of the piece on the tile, if any.
func (t Tile) Occupant() (Piece, bool) {
	if t.occupant == nil {
		return Piece{}, false
	}
	return *t.occupant, true
}

// IsEmpty returns true if no piece stands on the tile.
func (t Tile) IsEmpty() bool {
	return t.occupant == nil
}

// GameResult is produced by every move attempt.
type GameResult struct {
	IsGameOver bool
	winner     Color
	hasWinner  bool
}

// Winner returns the winning color once the game is over.
func (r GameResult) Winner() (Color, bool) {
	return r.winner, r.hasWinner
}

// String returns "ongoing" or "gameover winner <color>".
func (r GameResult) String() string {
	if !r.IsGameOver {
		return "ongoing"
	}
	if w, ok := r.Winner(); ok {
		return "gameover winner " + w.String()
	}
	return "gameover"
}

// WonBy returns the terminal result for the given winner.
func WonBy(c Color) GameResult {
	return GameResult{IsGameOver: true, winner: c, hasWinner: true}
}

// Board is an N×N grid of tiles plus the registry of pieces standing on it.
// All occupancy changes go through MovePiece.
type Board struct {
	size     int
	grid     [][]Tile // grid[y][x]
	registry *Registry

	// result is the terminal result once a priest has been captured.
	result GameResult
}

// New creates a board with the initial pieces placed. The size is clamped
// into [MinSize, MaxSize].
func New(size int) *Board {
	return newBoard(ClampSize(size), InitialPieces())
}

// newBoard builds the grid and places pieces. size must already be valid and
// pieces must sit on distinct valid squares.
func newBoard(size int, pieces []Piece) *Board {
	b := &Board{
		size:     size,
		grid:     make([][]Tile, size),
		registry: NewRegistry(nil),
	}
	for y := 0; y < size; y++ {
		b.grid[y] = make([]Tile, size)
		for x := 0; x < size; x++ {
			b.grid[y][x].Shade = ShadeOf(NewSquare(x, y))
		}
	}
	for _, p := range pieces {
		b.grid[p.Square.Y][p.Square.X].occupant = b.registry.add(p)
	}
	return b
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// Registry returns a read-only view of the board's piece registry.
// Occupancy changes only through MovePiece.
func (b *Board) Registry() RegistryView {
	return RegistryView{r: b.registry}
}

// Pieces returns a copy of every piece in play.
func (b *Board) Pieces() []Piece {
	return b.registry.All()
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.IsValid(b.size) {
		return Piece{}, false
	}
	return b.grid[sq.Y][sq.X].Occupant()
}

// Result returns the terminal result, or the zero result while play continues.
func (b *Board) Result() GameResult {
	return b.result
}

// Snapshot returns a read-only view of the live grid. Later moves are visible
// through the view.
func (b *Board) Snapshot() View {
	return View{b: b}
}

// MovePiece moves the piece on (fromX, fromY) to (toX, toY), capturing an
// enemy piece on the destination. Rejected moves return the zero result and
// change nothing. Capturing a priest ends the game; after that every call
// returns the same terminal result without touching the board.
//
// Only occupancy is checked here. Whether the piece may reach the
// destination is decided by GenerateMoves.
func (b *Board) MovePiece(fromX, fromY, toX, toY int) GameResult {
	if b.result.IsGameOver {
		return b.result
	}

	from, to := NewSquare(fromX, fromY), NewSquare(toX, toY)
	if !from.IsValid(b.size) || !to.IsValid(b.size) {
		return GameResult{}
	}

	src := &b.grid[from.Y][from.X]
	dst := &b.grid[to.Y][to.X]
	mover := src.occupant
	if mover == nil {
		return GameResult{}
	}

	var result GameResult
	if defender := dst.occupant; defender != nil {
		if defender.Color == mover.Color {
			return GameResult{}
		}
		if defender.Kind == Priest {
			result = WonBy(mover.Color)
		}
		b.registry.Remove(to.X, to.Y)
	}

	b.registry.Move(from.X, from.Y, to.X, to.Y)
	dst.occupant = mover
	src.occupant = nil

	if DebugMoveValidation {
		if err := b.Verify(); err != nil {
			log.Printf("[MOVEPIECE] %s -> %s left the board inconsistent: %v", from, to, err)
		}
	}

	if result.IsGameOver {
		b.result = result
	}
	return result
}

// Verify checks that the grid and the registry agree: every registry entry
// sits on a valid tile that points back at it, and no tile holds a piece the
// registry does not know.
func (b *Board) Verify() error {
	seen := make(map[*Piece]bool, b.registry.Len())
	for _, p := range b.registry.pieces {
		if !p.Square.IsValid(b.size) {
			return fmt.Errorf("%s is off the board", p)
		}
		if seen[p] {
			return fmt.Errorf("%s registered twice", p)
		}
		seen[p] = true
		if occ := b.grid[p.Square.Y][p.Square.X].occupant; occ != p {
			return fmt.Errorf("%s not found on its tile", p)
		}
	}

	count := 0
	for y, row := range b.grid {
		for x, t := range row {
			if t.occupant == nil {
				continue
			}
			count++
			if !seen[t.occupant] {
				return fmt.Errorf("tile %d,%d holds unregistered %s", x, y, t.occupant)
			}
		}
	}
	if count != b.registry.Len() {
		return fmt.Errorf("grid holds %d pieces, registry %d", count, b.registry.Len())
	}
	return nil
}

// String returns an ASCII diagram of the board with the top row first.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for y := b.size - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%2d  ", y)
		for x := 0; x < b.size; x++ {
			t := b.grid[y][x]
			switch {
			case t.occupant != nil:
				sb.WriteByte(t.occupant.Char())
			case t.Shade == Light:
				sb.WriteByte('.')
			default:
				sb.WriteByte(':')
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n    ")
	for x := 0; x < b.size; x++ {
		fmt.Fprintf(&sb, "%d ", x%10)
	}
	sb.WriteString("\n")
	if w, ok := b.result.Winner(); ok {
		fmt.Fprintf(&sb, "Winner: %s\n", w)
	}
	return sb.String()
}

// View is a read-only window onto a board's live grid.
type View struct {
	b *Board
}

// Size returns the side length of the board.
func (v View) Size() int {
	return v.b.size
}

// At returns the tile on sq. ok is false off the board.
func (v View) At(sq Square) (Tile, bool) {
	if !sq.IsValid(v.b.size) {
		return Tile{}, false
	}
	return v.b.grid[sq.Y][sq.X], true
}

// PieceAt returns the piece on sq, if any.
func (v View) PieceAt(sq Square) (Piece, bool) {
	return v.b.PieceAt(sq)
}

// Rows returns a detached copy of the tiles indexed [y][x], as they stand at
// the time of the call.
func (v View) Rows() [][]Tile {
	rows := make([][]Tile, v.b.size)
	for y := range rows {
		rows[y] = make([]Tile, v.b.size)
		for x, t := range v.b.grid[y] {
			rows[y][x].Shade = t.Shade
			if t.occupant != nil {
				p := *t.occupant
				rows[y][x].occupant = &p
			}
		}
	}
	return rows
}
