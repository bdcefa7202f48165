package board

// TowerRange is the furthest a tower may slide in one direction.
const TowerRange = 3

// Occupancy is the read side of a board needed for move generation.
// Both *Board and View satisfy it.
type Occupancy interface {
	PieceAt(sq Square) (Piece, bool)
}

type offset struct {
	dx, dy int
}

// directions are the 8 compass and diagonal steps.
var directions = [8]offset{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// horseJumps are the knight-style offsets.
var horseJumps = [8]offset{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// GenerateMoves returns every destination the piece on from may move to on a
// board of the given size. An empty tile yields no moves.
func GenerateMoves(occ Occupancy, from Square, size int) MoveList {
	piece, ok := occ.PieceAt(from)
	if !ok {
		return nil
	}

	switch piece.Kind {
	case Tower:
		return towerMoves(occ, piece, size)
	case Priest:
		return stepMoves(occ, piece, size, directions[:])
	case Horse:
		return stepMoves(occ, piece, size, horseJumps[:])
	default:
		return nil
	}
}

// towerMoves slides up to TowerRange tiles in each direction, stopping at the
// first occupied tile. An enemy there is a capture; a friend just blocks.
func towerMoves(occ Occupancy, piece Piece, size int) MoveList {
	var ml MoveList
	for _, d := range directions {
		for dist := 1; dist <= TowerRange; dist++ {
			to := piece.Square.Offset(d.dx*dist, d.dy*dist)
			if !to.IsValid(size) {
				break
			}
			target, occupied := occ.PieceAt(to)
			if !occupied {
				ml = append(ml, ValidMove{Square: to, Distance: dist})
				continue
			}
			if target.Color != piece.Color {
				ml = append(ml, ValidMove{Square: to, Distance: dist, IsCapture: true})
			}
			break
		}
	}
	return ml
}

// stepMoves tries each offset once, ignoring anything in between.
// Distance is the Chebyshev length of the offset.
func stepMoves(occ Occupancy, piece Piece, size int, offsets []offset) MoveList {
	var ml MoveList
	for _, d := range offsets {
		to := piece.Square.Offset(d.dx, d.dy)
		if !to.IsValid(size) {
			continue
		}
		dist := max(abs(d.dx), abs(d.dy))
		target, occupied := occ.PieceAt(to)
		switch {
		case !occupied:
			ml = append(ml, ValidMove{Square: to, Distance: dist})
		case target.Color != piece.Color:
			ml = append(ml, ValidMove{Square: to, Distance: dist, IsCapture: true})
		}
	}
	return ml
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
