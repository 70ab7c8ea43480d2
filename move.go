package mess

import "strings"

// Move packs a source square, a target square and a flag describing
// special move behaviour into 16 bits: 6 bits of source at offset 0,
// 6 bits of target at offset 6, 4 bits of flag at offset 12.
//
// For castling moves, Target holds the square of the rook being
// castled with, not the king's destination square - this is the
// internal representation; rendering a human-readable king-destination
// form is Board's job.
type Move uint16

// NullMove is the zero Move, used as a sentinel absence of a move.
const NullMove Move = 0

const (
	moveSourceShift = 0
	moveTargetShift = 6
	moveFlagShift   = 12
	moveSquareMask  = 0x3f
	moveFlagMask    = 0xf
)

// MoveFlag describes what kind of move a Move encodes beyond a plain
// piece relocation.
type MoveFlag uint8

const (
	Normal MoveFlag = iota
	KnightPromotion
	BishopPromotion
	RookPromotion
	QueenPromotion
	EnPassant
	DoublePush
	CastleHSide
	CastleASide
)

// NewMove builds a Move from its components.
func NewMove(source, target Square, flag MoveFlag) Move {
	return Move(uint16(source)<<moveSourceShift | uint16(target)<<moveTargetShift | uint16(flag)<<moveFlagShift)
}

// Source returns the move's source square.
func (m Move) Source() Square {
	return Square((uint16(m) >> moveSourceShift) & moveSquareMask)
}

// Target returns the move's target square. For castling moves this is
// the rook's square, not the king's destination.
func (m Move) Target() Square {
	return Square((uint16(m) >> moveTargetShift) & moveSquareMask)
}

// Flag returns the move's flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag((uint16(m) >> moveFlagShift) & moveFlagMask)
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	f := m.Flag()
	return f >= KnightPromotion && f <= QueenPromotion
}

// IsCastling reports whether m is a castling move.
func (m Move) IsCastling() bool {
	f := m.Flag()
	return f == CastleHSide || f == CastleASide
}

// PromotedPiece returns the piece m promotes to. Only valid when
// IsPromotion reports true; the promotion flag values are chosen to
// equal the corresponding Piece values.
func (m Move) PromotedPiece() Piece {
	return Piece(m.Flag())
}

// CastlingFlag returns the MoveFlag used to encode castling on side.
func CastlingFlag(side CastlingSide) MoveFlag {
	if side == CastleH {
		return CastleHSide
	}
	return CastleASide
}

var promotionLetters = [QueenPromotion + 1]byte{0, 'n', 'b', 'r', 'q'}

// ToString renders m in its internal, non-FRC-aware form: source
// square, target square, and a promotion letter if applicable. For
// castling moves the target square is the rook's square. "0000" for
// the null move. Board.MoveString renders a display-appropriate,
// castling-aware form instead.
func (m Move) ToString() string {
	if m == NullMove {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.Source().String())
	b.WriteString(m.Target().String())
	if m.IsPromotion() {
		b.WriteByte(promotionLetters[m.Flag()])
	}
	return b.String()
}

// MaxInGame bounds the number of plies a single game can reach; Board
// uses it to size its fixed-capacity history stack.
const MaxInGame = 512

// MaxInPosition bounds the number of legal moves any single position can have.
const MaxInPosition = 220
