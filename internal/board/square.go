// Package board implements the board, pieces and move generation for the
// horse/tower/priest game.
package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Board side limits. Requested sizes are clamped into this range.
const (
	MinSize = 6
	MaxSize = 12
)

// ClampSize clamps a requested board size into [MinSize, MaxSize].
func ClampSize(size int) int {
	return min(max(size, MinSize), MaxSize)
}

// Square is a board coordinate. X is the column, Y the row; (0,0) is white's corner.
type Square struct {
	X, Y int
}

// NewSquare creates a square from column and row.
func NewSquare(x, y int) Square {
	return Square{X: x, Y: y}
}

// IsValid returns true if the square lies on a board of the given size.
func (sq Square) IsValid(size int) bool {
	return sq.X >= 0 && sq.X < size && sq.Y >= 0 && sq.Y < size
}

// Offset returns the square shifted by (dx, dy).
func (sq Square) Offset(dx, dy int) Square {
	return Square{X: sq.X + dx, Y: sq.Y + dy}
}

// String returns "x,y".
func (sq Square) String() string {
	return fmt.Sprintf("%d,%d", sq.X, sq.Y)
}

// ParseSquare parses "x,y" into a Square. Range is not checked.
func ParseSquare(s string) (Square, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Square{}, fmt.Errorf("invalid square: %s", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Square{}, fmt.Errorf("invalid square: %s", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Square{}, fmt.Errorf("invalid square: %s", s)
	}
	return NewSquare(x, y), nil
}

// Shade is the cosmetic colour of a tile. It never affects legality.
type Shade uint8

const (
	Light Shade = iota
	Dark
)

// String returns the shade name.
func (s Shade) String() string {
	if s == Light {
		return "light"
	}
	return "dark"
}

// ShadeOf returns the shade of a square: (x+y) mod 2, even is Light.
func ShadeOf(sq Square) Shade {
	return Shade((sq.X + sq.Y) & 1)
}
