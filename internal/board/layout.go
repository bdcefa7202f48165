package board

import (
	"fmt"
	"strconv"
	"strings"
)

// A layout string describes piece placement, FEN style: rows separated by
// '/', top row (y = size-1) first, columns left to right. Pieces are
// H/T/P for white and h/t/p for black; a number is a run of empty tiles.
// The number of rows is the board size.
//
//	3htp/6/6/6/6/HTP3 is the 6×6 starting layout.

// ParseLayout builds a board from a layout string.
func ParseLayout(layout string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(layout), "/")
	size := len(rows)
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("need %d to %d rows, got %d", MinSize, MaxSize, size)
	}

	var pieces []Piece
	for i, row := range rows {
		y := size - 1 - i
		x := 0
		for j := 0; j < len(row); {
			c := row[j]
			if c >= '0' && c <= '9' {
				k := j
				for k < len(row) && row[k] >= '0' && row[k] <= '9' {
					k++
				}
				n, err := strconv.Atoi(row[j:k])
				if err != nil || n == 0 {
					return nil, fmt.Errorf("invalid empty run %q in row %d", row[j:k], y)
				}
				if n > size-x {
					return nil, fmt.Errorf("too many tiles in row %d", y)
				}
				x += n
				j = k
				continue
			}

			kind, color, ok := PieceFromChar(c)
			if !ok {
				return nil, fmt.Errorf("invalid piece character: %c", c)
			}
			if x >= size {
				return nil, fmt.Errorf("too many tiles in row %d", y)
			}
			pieces = append(pieces, Piece{Kind: kind, Color: color, Square: NewSquare(x, y)})
			x++
			j++
		}
		if x != size {
			return nil, fmt.Errorf("invalid number of tiles in row %d: got %d, want %d", y, x, size)
		}
	}

	return newBoard(size, pieces), nil
}

// MustParseLayout is like ParseLayout but panics on error. For fixed
// layouts in tests and tables.
func MustParseLayout(layout string) *Board {
	b, err := ParseLayout(layout)
	if err != nil {
		panic(err)
	}
	return b
}

// Layout returns the layout string for the current placement.
func (b *Board) Layout() string {
	var sb strings.Builder
	for y := b.size - 1; y >= 0; y-- {
		empty := 0
		for x := 0; x < b.size; x++ {
			occ := b.grid[y][x].occupant
			if occ == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(occ.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
