package mess

// Board is a game: an immutable castling layout plus a stack of
// Positions, one per ply played so far. MakeMove pushes a new
// Position derived from the current one; UndoMove simply pops it -
// there is no delta to replay, since every previous Position is still
// sitting in the stack.
type Board struct {
	castling CastlingInfo
	frc      bool

	initialPlyCount uint16
	top             uint16
	history         [MaxInGame]Position
	termination     Termination
}

// NewBoard builds a Board from a FEN string.
func NewBoard(fenString string) (*Board, error) {
	fen, err := ParseFEN(fenString)
	if err != nil {
		return nil, err
	}
	b := &Board{
		castling:        fen.CastlingInfo,
		frc:             fen.FRC,
		initialPlyCount: fen.PlyCount,
	}
	b.history[0] = NewPosition(fen)
	return b, nil
}

// NewStartingBoard builds a Board at the standard starting position.
func NewStartingBoard() *Board {
	b, err := NewBoard(StartFEN)
	if err != nil {
		panic("mess: malformed embedded starting FEN")
	}
	return b
}

// Position returns the current position.
func (b *Board) Position() *Position {
	return &b.history[b.top]
}

// PlyCount returns the number of plies played to reach the current position.
func (b *Board) PlyCount() uint16 {
	return b.initialPlyCount + b.top
}

// CastlingInfo returns the board's immutable castling layout.
func (b *Board) CastlingInfo() *CastlingInfo {
	return &b.castling
}

func (b *Board) push() {
	b.top++
}

func (b *Board) pop() {
	b.top--
}

// doCastling places the king and rook at their castling destinations.
// It assumes both have already been removed from their start squares.
func doCastling(p *Position, castling *CastlingInfo, color Color, side CastlingSide) {
	dim := NewCastlingDimension(color, side)
	p.Insert(castling.KingEnd[dim], NewColoredPiece(color, King))
	p.Insert(castling.RookEnd[dim], NewColoredPiece(color, Rook))
}

// MakeMove plays move, pushing a new Position onto the board's
// history stack. move is assumed to be legal in the current position.
func (b *Board) MakeMove(move Move) {
	prev := b.Position()
	b.push()
	next := b.Position()
	*next = *prev

	source := move.Source()
	target := move.Target()
	flag := move.Flag()
	stm := next.SideToMove
	sourcePiece := next.Mailbox[source].Piece()
	isCapture := next.Mailbox[target] != NoColoredPiece && !move.IsCastling()
	up := Up(stm)

	next.DrawClock++

	if next.EpTarget != NoSquare {
		next.Hash = next.Hash.Remove(EnPassantKey(next.EpTarget))
		next.EpTarget = NoSquare
	}

	change := b.castling.Mask(source) | b.castling.Mask(target)
	if lost := change & next.Rights; lost != NoCastlingRights {
		next.Hash = next.Hash.Remove(CastlingKey(next.Rights))
		next.Rights &^= change
		next.Hash = next.Hash.Add(CastlingKey(next.Rights))
	}

	if !move.IsCastling() {
		next.Remove(source)
	}

	if isCapture {
		next.Remove(target)
		next.DrawClock = 0
	} else if sourcePiece == Pawn {
		next.DrawClock = 0
	}

	switch flag {
	case Normal:
		next.Insert(target, NewColoredPiece(stm, sourcePiece))
	case DoublePush:
		next.Insert(target, NewColoredPiece(stm, Pawn))
		epTarget := target.Shift(-up)
		if !next.PiecesOf(stm.Other(), Pawn).IsDisjoint(PawnAttacks(stm, epTarget)) {
			next.EpTarget = epTarget
			next.Hash = next.Hash.Add(EnPassantKey(epTarget))
		}
	case CastleHSide, CastleASide:
		side := CastleH
		if flag == CastleASide {
			side = CastleA
		}
		next.Remove(source)
		next.Remove(target)
		doCastling(next, &b.castling, stm, side)
	case EnPassant:
		next.Insert(target, NewColoredPiece(stm, Pawn))
		next.Remove(target.Shift(-up))
	case KnightPromotion, BishopPromotion, RookPromotion, QueenPromotion:
		next.Insert(target, NewColoredPiece(stm, move.PromotedPiece()))
	}

	next.SideToMove = stm.Other()
	next.Hash = next.Hash.Add(SideToMoveKey)
	next.GenerateCheckers()

	assertHashConsistent(next)
}

// UndoMove pops the current position, restoring the one before the
// last MakeMove.
func (b *Board) UndoMove() {
	b.pop()
}

// GenerateMoves returns every legal move of kind in the current position.
func (b *Board) GenerateMoves(kind GenKind) []Move {
	return GenerateMoves(b.Position(), &b.castling, kind)
}

// MoveString renders move the way a human reading the board would
// expect: in Chess960 games a castling move is shown in its internal
// encoding, with the castling rook's square as the target, but in
// standard games the target is rewritten to the king's actual
// destination square.
func (b *Board) MoveString(move Move) string {
	if !b.frc && move.IsCastling() {
		side := CastleH
		if move.Flag() == CastleASide {
			side = CastleA
		}
		dim := NewCastlingDimension(b.Position().SideToMove, side)
		display := NewMove(move.Source(), b.castling.KingEnd[dim], move.Flag())
		return display.ToString()
	}
	return move.ToString()
}

func (b *Board) String() string {
	return b.Position().String()
}

// Termination is a bitmask of the reasons a game has ended.
type Termination uint16

const (
	TerminationNone                 Termination = 0
	TerminationCheckmate            Termination = 1 << 0
	TerminationStalemate            Termination = 1 << 1
	TerminationFiftyMoveRule        Termination = 1 << 2
	TerminationInsufficientMaterial Termination = 1 << 3
	TerminationRepetition           Termination = 1 << 4
)

func (t Termination) String() string {
	if t == TerminationNone {
		return "none"
	}
	names := []struct {
		bit  Termination
		name string
	}{
		{TerminationCheckmate, "checkmate"},
		{TerminationStalemate, "stalemate"},
		{TerminationFiftyMoveRule, "fifty-move rule"},
		{TerminationInsufficientMaterial, "insufficient material"},
		{TerminationRepetition, "repetition"},
	}
	s := ""
	for _, n := range names {
		if t&n.bit != 0 {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	return s
}

// Termination returns the reasons the game has ended, as found by the
// last call to IsTerminated. Call IsTerminated first; Termination on
// its own only reports what that call found.
func (b *Board) Termination() Termination {
	return b.termination
}

// IsTerminated reports whether the game has ended, given the number
// of legal moves available to the side to move, and records the
// specific reasons for Termination to return. Repetition detection is
// intentionally left out: a Board only remembers moves played since
// it was constructed, so it cannot tell a genuine threefold repetition
// from a repeated position that only arose because the game was
// loaded from a later FEN. Callers that need repetition detection
// should track position hashes themselves across the whole game.
func (b *Board) IsTerminated(legalMoveCount int) bool {
	var t Termination
	position := b.Position()

	if position.DrawClock >= 100 {
		t |= TerminationFiftyMoveRule
	}
	if legalMoveCount == 0 {
		if position.CheckCount > 0 {
			t |= TerminationCheckmate
		} else {
			t |= TerminationStalemate
		}
	}
	if b.isInsufficientMaterial() {
		t |= TerminationInsufficientMaterial
	}

	b.termination = t
	return t != TerminationNone
}

// isInsufficientMaterial reports whether neither side has enough
// material to deliver checkmate by any sequence of legal moves: king
// versus king, king and a minor piece versus king, or king and bishop
// versus king and bishop with both bishops on the same color complex.
func (b *Board) isInsufficientMaterial() bool {
	p := b.Position()
	if !p.Pieces(Pawn).IsEmpty() || !p.Pieces(Rook).IsEmpty() || !p.Pieces(Queen).IsEmpty() {
		return false
	}

	minorCount := p.Pieces(Knight).PopCount() + p.Pieces(Bishop).PopCount()
	switch minorCount {
	case 0:
		return true
	case 1:
		return true
	case 2:
		bishops := p.Pieces(Bishop)
		if bishops.PopCount() != 2 || !p.Pieces(Knight).IsEmpty() {
			return false
		}
		var squares [2]Square
		squares[0], bishops = bishops.PopLSB()
		squares[1] = bishops.LSB()
		lightA := (uint8(squares[0].File())+uint8(squares[0].Rank()))%2 == 0
		lightB := (uint8(squares[1].File())+uint8(squares[1].Rank()))%2 == 0
		sameColor := p.ColorBB[White].Get(squares[0]) != p.ColorBB[White].Get(squares[1])
		return sameColor && lightA == lightB
	default:
		return false
	}
}
