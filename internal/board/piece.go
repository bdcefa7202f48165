package board

import "fmt"

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// ParseColor accepts "white"/"black" or the single-letter forms "w"/"b".
func ParseColor(s string) (Color, error) {
	switch s {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return White, fmt.Errorf("invalid color: %q", s)
	}
}

// Kind is the kind of a piece.
type Kind uint8

const (
	Horse Kind = iota
	Priest
	Tower
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Horse:
		return "horse"
	case Priest:
		return "priest"
	case Tower:
		return "tower"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Char returns the layout character for the kind (lowercase).
func (k Kind) Char() byte {
	switch k {
	case Horse:
		return 'h'
	case Priest:
		return 'p'
	case Tower:
		return 't'
	default:
		return '?'
	}
}

// Piece is a registry entry: what it is, whose it is and where it stands.
type Piece struct {
	Kind   Kind
	Color  Color
	Square Square
}

// Char returns the layout character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) Char() byte {
	c := p.Kind.Char()
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return c
}

// String returns e.g. "white tower at 1,0".
func (p Piece) String() string {
	return fmt.Sprintf("%s %s at %s", p.Color, p.Kind, p.Square)
}

// PieceFromChar converts a layout character to a kind and color.
func PieceFromChar(c byte) (Kind, Color, bool) {
	color := Black
	if c >= 'A' && c <= 'Z' {
		color = White
		c += 'a' - 'A'
	}
	switch c {
	case 'h':
		return Horse, color, true
	case 'p':
		return Priest, color, true
	case 't':
		return Tower, color, true
	default:
		return 0, 0, false
	}
}

// InitialPieces returns the fixed starting placement.
//
// The placement does not scale with the board: black always starts on y=5,
// which is not the far edge on boards larger than 6.
func InitialPieces() []Piece {
	return []Piece{
		{Kind: Horse, Color: White, Square: NewSquare(0, 0)},
		{Kind: Tower, Color: White, Square: NewSquare(1, 0)},
		{Kind: Priest, Color: White, Square: NewSquare(2, 0)},
		{Kind: Horse, Color: Black, Square: NewSquare(3, 5)},
		{Kind: Tower, Color: Black, Square: NewSquare(4, 5)},
		{Kind: Priest, Color: Black, Square: NewSquare(5, 5)},
	}
}
