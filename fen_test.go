package mess

import "testing"

func TestParseFENStartpos(t *testing.T) {
	fen, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	if fen.SideToMove != White {
		t.Error("startpos should have white to move")
	}
	if fen.Mailbox[E1] != WhiteKing {
		t.Error("white king should start on e1")
	}
	if fen.Mailbox[E8] != BlackKing {
		t.Error("black king should start on e8")
	}
	if fen.EPTarget != NoSquare {
		t.Error("startpos should have no en passant target")
	}
	if fen.FRC {
		t.Error("startpos should not be detected as FRC")
	}
	if fen.PlyCount != 0 {
		t.Errorf("startpos ply count = %d, want 0", fen.PlyCount)
	}
}

func TestParseFENEnPassant(t *testing.T) {
	fen, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatal(err)
	}
	if fen.EPTarget != D6 {
		t.Errorf("EPTarget = %v, want d6", fen.EPTarget)
	}
	if fen.PlyCount != 4 {
		t.Errorf("ply count = %d, want 4", fen.PlyCount)
	}
}

func TestParseFENShredder(t *testing.T) {
	fen, err := ParseFEN("rkr5/8/8/8/8/8/8/RKR5 w CAca - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !fen.FRC {
		t.Error("shredder FEN should be detected as FRC")
	}
}

func TestParseFENInvalid(t *testing.T) {
	if _, err := ParseFEN("not a fen"); err == nil {
		t.Error("malformed FEN should produce an error")
	}
}
