package board

// Registry holds every piece still in play, in insertion order.
//
// The Board keeps its grid in step with the registry; code outside the
// package only ever sees copies of the entries.
type Registry struct {
	pieces []*Piece
}

// NewRegistry creates a registry holding the given pieces.
func NewRegistry(pieces []Piece) *Registry {
	r := &Registry{pieces: make([]*Piece, 0, len(pieces))}
	for _, p := range pieces {
		r.add(p)
	}
	return r
}

func (r *Registry) add(p Piece) *Piece {
	entry := &p
	r.pieces = append(r.pieces, entry)
	return entry
}

func (r *Registry) lookup(x, y int) *Piece {
	for _, p := range r.pieces {
		if p.Square.X == x && p.Square.Y == y {
			return p
		}
	}
	return nil
}

// All returns a copy of every piece in play.
func (r *Registry) All() []Piece {
	out := make([]Piece, len(r.pieces))
	for i, p := range r.pieces {
		out[i] = *p
	}
	return out
}

// Len returns the number of pieces in play.
func (r *Registry) Len() int {
	return len(r.pieces)
}

// At returns the piece standing on (x, y).
func (r *Registry) At(x, y int) (Piece, bool) {
	if p := r.lookup(x, y); p != nil {
		return *p, true
	}
	return Piece{}, false
}

// Move relocates the entry at (fromX, fromY). It returns false if there is
// no piece there. No legality checks are made; Board validates first.
func (r *Registry) Move(fromX, fromY, toX, toY int) bool {
	p := r.lookup(fromX, fromY)
	if p == nil {
		return false
	}
	p.Square = NewSquare(toX, toY)
	return true
}

// Remove deletes the entry at (x, y), if any.
func (r *Registry) Remove(x, y int) {
	kept := r.pieces[:0]
	for _, p := range r.pieces {
		if p.Square.X != x || p.Square.Y != y {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(r.pieces); i++ {
		r.pieces[i] = nil
	}
	r.pieces = kept
}

// RegistryView is the read side of a Registry owned by a Board.
type RegistryView struct {
	r *Registry
}

// All returns a copy of every piece in play.
func (v RegistryView) All() []Piece {
	return v.r.All()
}

// Len returns the number of pieces in play.
func (v RegistryView) Len() int {
	return v.r.Len()
}

// At returns the piece standing on (x, y).
func (v RegistryView) At(x, y int) (Piece, bool) {
	return v.r.At(x, y)
}
