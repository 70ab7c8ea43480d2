package mess

import "testing"

func TestSquareRoundTrip(t *testing.T) {
	for sq := Square(0); sq < SquareN; sq++ {
		s := sq.String()
		got, err := ParseSquare(s)
		if err != nil {
			t.Fatalf("ParseSquare(%q) failed: %v", s, err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %v, want %v", s, got, sq)
		}
	}
}

func TestNewSquare(t *testing.T) {
	cases := []struct {
		file File
		rank Rank
		want Square
	}{
		{FileA, Rank1, A1},
		{FileH, Rank1, H1},
		{FileA, Rank8, A8},
		{FileH, Rank8, H8},
		{FileE, Rank4, E4},
	}
	for _, c := range cases {
		if got := NewSquare(c.file, c.rank); got != c.want {
			t.Errorf("NewSquare(%v, %v) = %v, want %v", c.file, c.rank, got, c.want)
		}
	}
}

func TestDiagonals(t *testing.T) {
	if A1.Diagonal() != H8.Diagonal() {
		t.Error("a1 and h8 should share a diagonal")
	}
	if A8.AntiDiagonal() != H1.AntiDiagonal() {
		t.Error("a8 and h1 should share an anti-diagonal")
	}
}

func TestColoredPieceRoundTrip(t *testing.T) {
	for cp := ColoredPiece(0); cp < ColoredPieceN; cp++ {
		c := cp.String()[0]
		got, err := ParseColoredPiece(c)
		if err != nil {
			t.Fatalf("ParseColoredPiece(%q) failed: %v", c, err)
		}
		if got != cp {
			t.Errorf("ParseColoredPiece(%q) = %v, want %v", c, got, cp)
		}
	}
}

func TestColoredPieceComponents(t *testing.T) {
	if WhiteKnight.Piece() != Knight || WhiteKnight.Color() != White {
		t.Error("WhiteKnight decomposed incorrectly")
	}
	if BlackQueen.Piece() != Queen || BlackQueen.Color() != Black {
		t.Error("BlackQueen decomposed incorrectly")
	}
}

func TestUpDown(t *testing.T) {
	if Up(White) != North || Down(White) != South {
		t.Error("white's forward direction should be north")
	}
	if Up(Black) != South || Down(Black) != North {
		t.Error("black's forward direction should be south")
	}
}
