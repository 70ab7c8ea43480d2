package mess

import "strings"

// Position holds one snapshot of the board: piece placement, side to
// move, and all state needed to make and unmake moves without
// recomputing anything from scratch. Board keeps a stack of these.
type Position struct {
	Mailbox [SquareN]ColoredPiece
	PieceBB [PieceN]BitBoard
	ColorBB [ColorN]BitBoard

	Hash Hash

	Checkers   BitBoard
	CheckCount uint8

	Rights      CastlingRights
	SideToMove  Color
	EpTarget    Square
	DrawClock   uint8
}

// Occupied returns the set of all occupied squares.
func (p *Position) Occupied() BitBoard {
	return p.ColorBB[White] | p.ColorBB[Black]
}

// Pieces returns the set of all pieces of the given type, regardless of color.
func (p *Position) Pieces(piece Piece) BitBoard {
	return p.PieceBB[piece]
}

// PiecesOf returns the set of pieces of the given type and color.
func (p *Position) PiecesOf(color Color, piece Piece) BitBoard {
	return p.PieceBB[piece] & p.ColorBB[color]
}

// Colored returns the set of all pieces belonging to color.
func (p *Position) Colored(color Color) BitBoard {
	return p.ColorBB[color]
}

// King returns the square of color's king.
func (p *Position) King(color Color) Square {
	return p.PiecesOf(color, King).LSB()
}

// Insert places piece on sq, updating the mailbox, the bitboards, and
// the hash. sq must currently be empty; violating that is a
// programmer error, not a recoverable condition.
func (p *Position) Insert(sq Square, piece ColoredPiece) {
	if p.Mailbox[sq] != NoColoredPiece {
		panic(newError(IllegalInsert, "insert onto occupied square %v", sq))
	}
	p.Mailbox[sq] = piece
	p.PieceBB[piece.Piece()] = p.PieceBB[piece.Piece()].Set(sq)
	p.ColorBB[piece.Color()] = p.ColorBB[piece.Color()].Set(sq)
	p.Hash = p.Hash.Add(PieceOnSquareKey(piece, sq))
}

// Remove empties sq, updating the mailbox, the bitboards, and the
// hash. sq must currently hold a piece; violating that is a
// programmer error, not a recoverable condition.
func (p *Position) Remove(sq Square) {
	piece := p.Mailbox[sq]
	if piece == NoColoredPiece {
		panic(newError(IllegalInsert, "remove from empty square %v", sq))
	}
	p.Mailbox[sq] = NoColoredPiece
	p.PieceBB[piece.Piece()] = p.PieceBB[piece.Piece()].Clear(sq)
	p.ColorBB[piece.Color()] = p.ColorBB[piece.Color()].Clear(sq)
	p.Hash = p.Hash.Remove(PieceOnSquareKey(piece, sq))
}

// AttackersTo returns the set of by-colored attackers of sq, given an
// explicit occupancy (useful when probing through a piece that is
// about to move, e.g. the king during a castling check).
func (p *Position) AttackersTo(sq Square, by Color, blockers BitBoard) BitBoard {
	pawns := p.PiecesOf(by, Pawn) & PawnAttacks(by.Other(), sq)
	knights := p.PiecesOf(by, Knight) & KnightAttacks(sq)
	king := p.PiecesOf(by, King) & KingAttacks(sq)
	bishops := (p.PiecesOf(by, Bishop) | p.PiecesOf(by, Queen)) & BishopAttacks(sq, blockers)
	rooks := (p.PiecesOf(by, Rook) | p.PiecesOf(by, Queen)) & RookAttacks(sq, blockers)
	return pawns | knights | king | bishops | rooks
}

// Attacked reports whether sq is attacked by color's pieces, given an
// explicit occupancy.
func (p *Position) Attacked(color Color, sq Square, blockers BitBoard) bool {
	return !p.AttackersTo(sq, color, blockers).IsEmpty()
}

// AttackedDefault reports whether sq is attacked by color's pieces
// using the position's own occupancy.
func (p *Position) AttackedDefault(color Color, sq Square) bool {
	return p.Attacked(color, sq, p.Occupied())
}

// AttackedAny reports whether any square in targets is attacked by
// color's pieces, given an explicit occupancy.
func (p *Position) AttackedAny(color Color, targets BitBoard, blockers BitBoard) bool {
	for targets != 0 {
		var sq Square
		sq, targets = targets.PopLSB()
		if p.Attacked(color, sq, blockers) {
			return true
		}
	}
	return false
}

// GenerateCheckers recomputes Checkers and CheckCount from scratch by
// treating the side to move's king as a super-piece and intersecting
// its attack rays with the enemy's actual attackers.
func (p *Position) GenerateCheckers() {
	stm := p.SideToMove
	enemy := stm.Other()
	king := p.King(stm)
	occ := p.Occupied()

	checkers := p.PiecesOf(enemy, Pawn) & PawnAttacks(stm, king)
	checkers |= p.PiecesOf(enemy, Knight) & KnightAttacks(king)
	checkers |= (p.PiecesOf(enemy, Bishop) | p.PiecesOf(enemy, Queen)) & BishopAttacks(king, occ)
	checkers |= (p.PiecesOf(enemy, Rook) | p.PiecesOf(enemy, Queen)) & RookAttacks(king, occ)

	p.Checkers = checkers
	p.CheckCount = uint8(checkers.PopCount())
}

// NewPosition builds a Position from a parsed FEN.
func NewPosition(fen FEN) Position {
	var p Position
	for sq := Square(0); sq < SquareN; sq++ {
		p.Mailbox[sq] = NoColoredPiece
	}

	for sq := Square(0); sq < SquareN; sq++ {
		piece := fen.Mailbox[sq]
		if piece == NoColoredPiece {
			continue
		}
		p.Insert(sq, piece)
	}

	p.SideToMove = fen.SideToMove
	p.EpTarget = fen.EPTarget
	p.DrawClock = fen.DrawClock
	p.Rights = fen.CastlingRights

	if p.SideToMove == Black {
		p.Hash = p.Hash.Add(SideToMoveKey)
	}
	if p.EpTarget != NoSquare {
		p.Hash = p.Hash.Add(EnPassantKey(p.EpTarget))
	}
	p.Hash = p.Hash.Add(CastlingKey(p.Rights))

	p.GenerateCheckers()
	return p
}

// ZobristHash recomputes p's hash from scratch. Used only to assert
// that incremental updates during Board.MakeMove stay consistent.
func ZobristHash(p *Position) Hash {
	var h Hash
	for sq := Square(0); sq < SquareN; sq++ {
		piece := p.Mailbox[sq]
		if piece != NoColoredPiece {
			h = h.Add(PieceOnSquareKey(piece, sq))
		}
	}
	if p.SideToMove == Black {
		h = h.Add(SideToMoveKey)
	}
	if p.EpTarget != NoSquare {
		h = h.Add(EnPassantKey(p.EpTarget))
	}
	h = h.Add(CastlingKey(p.Rights))
	return h
}

const boardSeparator = "+---+---+---+---+---+---+---+---+\n"

// String renders the position as an 8-row ASCII grid with column
// separators, a rank label on the right of each row, and a trailing
// file-letter footer.
func (p *Position) String() string {
	var b strings.Builder
	b.WriteString(boardSeparator)
	for rank := int(Rank8); rank >= int(Rank1); rank-- {
		b.WriteString("| ")
		for file := FileA; file < FileN; file++ {
			sq := NewSquare(file, Rank(rank))
			b.WriteString(p.Mailbox[sq].String())
			b.WriteString(" | ")
		}
		b.WriteString(Rank(rank).String())
		b.WriteByte('\n')
		b.WriteString(boardSeparator)
	}
	b.WriteString("  a   b   c   d   e   f   g   h\n")
	return b.String()
}
