package board

import (
	"sort"
	"testing"
)

func sortedSquares(ml MoveList) []Square {
	out := make([]Square, len(ml))
	for i, m := range ml {
		out[i] = m.Square
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func TestHorseFromStart(t *testing.T) {
	b := New(6)
	moves := GenerateMoves(b.Snapshot(), NewSquare(0, 0), b.Size())

	m, ok := moves.Find(NewSquare(2, 1))
	if !ok {
		t.Fatalf("2,1 missing from horse moves %v", moves)
	}
	if m.Distance != 2 || m.IsCapture {
		t.Errorf("2,1 = %+v, want distance 2 without capture", m)
	}
	if moves.Len() != 2 || !moves.Contains(NewSquare(1, 2)) {
		t.Errorf("horse moves = %v, want 2,1 and 1,2", moves)
	}

	b.MovePiece(0, 0, 2, 1)
	if _, ok := b.PieceAt(NewSquare(0, 0)); ok {
		t.Error("0,0 still occupied")
	}
	if p, ok := b.PieceAt(NewSquare(2, 1)); !ok || p.Kind != Horse || p.Color != White {
		t.Errorf("2,1 = %v, want white horse", p)
	}
}

func TestHorseIgnoresBlockers(t *testing.T) {
	// White horse on 2,2 ringed by its own towers, more towers on 1,0 and 3,0,
	// black horse on 4,3.
	b := MustParseLayout("5p/6/1TTTh1/1THT2/1TTT2/1T1T2")
	moves := GenerateMoves(b, NewSquare(2, 2), b.Size())

	want := []Square{
		NewSquare(1, 0), NewSquare(3, 0),
		NewSquare(0, 1), NewSquare(4, 1),
		NewSquare(0, 3), NewSquare(4, 3),
		NewSquare(1, 4), NewSquare(3, 4),
	}
	got := sortedSquares(moves)
	if len(got) != len(want)-2 {
		t.Fatalf("horse moves = %v", moves)
	}

	// 1,0 and 3,0 hold white towers.
	for _, sq := range want {
		friendly := sq == NewSquare(1, 0) || sq == NewSquare(3, 0)
		if moves.Contains(sq) == friendly {
			t.Errorf("Contains(%s) = %v", sq, moves.Contains(sq))
		}
	}
	for _, m := range moves {
		if m.Distance != 2 {
			t.Errorf("%s distance = %d, want 2", m.Square, m.Distance)
		}
		wantCapture := m.Square == NewSquare(4, 3)
		if m.IsCapture != wantCapture {
			t.Errorf("%s capture = %v, want %v", m.Square, m.IsCapture, wantCapture)
		}
	}
}

func TestTowerStopsAtFirstPiece(t *testing.T) {
	// White tower 1,0, empty 1,1, black horse 1,2.
	b := MustParseLayout("5p/6/6/1h4/6/1T3P")
	moves := GenerateMoves(b.Snapshot(), NewSquare(1, 0), b.Size())

	quiet, ok := moves.Find(NewSquare(1, 1))
	if !ok || quiet.IsCapture || quiet.Distance != 1 {
		t.Errorf("1,1 = %+v (%v), want quiet move at distance 1", quiet, ok)
	}
	capture, ok := moves.Find(NewSquare(1, 2))
	if !ok || !capture.IsCapture || capture.Distance != 2 {
		t.Errorf("1,2 = %+v (%v), want capture at distance 2", capture, ok)
	}
	for y := 3; y < 6; y++ {
		if moves.Contains(NewSquare(1, y)) {
			t.Errorf("tower sees past the horse to 1,%d", y)
		}
	}
}

func TestTowerRange(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		from   Square
		want   int
	}{
		// Corner of an otherwise empty 12×12: three rays of three.
		{"corner", "12/12/12/12/12/12/12/12/12/12/12/T11", NewSquare(0, 0), 9},
		// Centre of the 12×12: eight rays of three.
		{"centre", "12/12/12/12/12/12/6T5/12/12/12/12/12", NewSquare(6, 5), 24},
		// Centre of a 6×6: rays are cut by the edge.
		{"small board", "6/6/6/2T3/6/6", NewSquare(2, 2), 3 + 2 + 3 + 2 + 3 + 2 + 2 + 2},
		// Friendly piece adjacent on every side.
		{"boxed in", "6/6/1PPP2/1PTP2/1PPP2/6", NewSquare(2, 2), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := MustParseLayout(tc.layout)
			moves := GenerateMoves(b, tc.from, b.Size())
			if moves.Len() != tc.want {
				t.Errorf("tower from %s has %d moves %v, want %d", tc.from, moves.Len(), moves, tc.want)
			}
			for _, m := range moves {
				if m.Distance < 1 || m.Distance > TowerRange {
					t.Errorf("%s distance = %d", m.Square, m.Distance)
				}
			}
		})
	}
}

func TestPriestSingleSteps(t *testing.T) {
	// White priest 2,2; white tower 3,2; black horse 1,3.
	b := MustParseLayout("5p/6/1h4/2PT2/6/6")
	moves := GenerateMoves(b, NewSquare(2, 2), b.Size())

	if moves.Len() != 7 {
		t.Fatalf("priest moves = %v, want 7", moves)
	}
	if moves.Contains(NewSquare(3, 2)) {
		t.Error("priest may step onto its own tower")
	}
	if m, ok := moves.Find(NewSquare(1, 3)); !ok || !m.IsCapture {
		t.Errorf("1,3 = %+v (%v), want capture", m, ok)
	}
	for _, m := range moves {
		if m.Distance != 1 {
			t.Errorf("%s distance = %d, want 1", m.Square, m.Distance)
		}
	}

	corner := GenerateMoves(b, NewSquare(5, 5), b.Size())
	if corner.Len() != 3 {
		t.Errorf("corner priest moves = %v, want 3", corner)
	}
}

func TestGenerateMovesEmptyTile(t *testing.T) {
	b := New(6)
	if moves := GenerateMoves(b, NewSquare(3, 3), b.Size()); moves.Len() != 0 {
		t.Errorf("empty tile generated %v", moves)
	}
	if moves := GenerateMoves(b, NewSquare(-1, 0), b.Size()); moves.Len() != 0 {
		t.Errorf("off-board tile generated %v", moves)
	}
}

func TestGenerateMovesRespectsSize(t *testing.T) {
	// The tower on 4,4 of a 12×12 board, generated as if the board were 6 wide.
	b := MustParseLayout("12/12/12/12/12/12/12/4T7/12/12/12/12")
	for _, m := range GenerateMoves(b, NewSquare(4, 4), 6) {
		if !m.Square.IsValid(6) {
			t.Errorf("%s lies outside a 6×6 board", m.Square)
		}
	}
}

func TestIsValidMove(t *testing.T) {
	moves := MoveList{
		{Square: NewSquare(1, 1), Distance: 1},
		{Square: NewSquare(1, 2), Distance: 2, IsCapture: true},
	}

	if !IsValidMove(moves, NewSquare(1, 2)) {
		t.Error("1,2 should be valid")
	}
	if IsValidMove(moves, NewSquare(1, 3)) {
		t.Error("1,3 should not be valid")
	}
	if IsValidMove(nil, NewSquare(0, 0)) {
		t.Error("nil list should contain nothing")
	}
	if got := moves.String(); got != "1,1 1,2x" {
		t.Errorf("String = %q", got)
	}
	if got := moves.Captures(); got.Len() != 1 {
		t.Errorf("Captures = %v", got)
	}
}
