package mess

// GenKind selects which subset of moves a generator produces. Quiet
// and Noisy are independent bits so a caller can ask for either or
// both; GenAll is the common "all legal moves" case.
type GenKind uint8

const (
	GenQuiet GenKind = 1 << iota
	GenNoisy
	GenAll = GenQuiet | GenNoisy
)

// generator holds the scratch state needed to produce legal moves for
// one side to move in one position. Rather than generating
// pseudo-legal moves and filtering out illegal ones afterwards, it
// derives a checkmask and two pinmasks up front so every move it
// serializes is already legal.
type generator struct {
	position *Position
	castling *CastlingInfo
	kind     GenKind

	stm       Color
	friends   BitBoard
	enemies   BitBoard
	occupied  BitBoard
	blockers  BitBoard // occupied with the side-to-move's king removed
	territory BitBoard

	king Square

	checkmask BitBoard
	pinmaskL  BitBoard // pinned along a rank/file (laterally)
	pinmaskD  BitBoard // pinned along a diagonal

	moves []Move
}

func newGenerator(position *Position, castling *CastlingInfo, kind GenKind) *generator {
	g := &generator{
		position: position,
		castling: castling,
		kind:     kind,
		stm:      position.SideToMove,
		moves:    make([]Move, 0, MaxInPosition),
	}

	g.friends = position.Colored(g.stm)
	g.enemies = position.Colored(g.stm.Other())
	g.occupied = g.friends | g.enemies

	if kind&GenQuiet != 0 {
		g.territory |= ^g.occupied
	}
	if kind&GenNoisy != 0 {
		g.territory |= g.enemies
	}

	g.king = position.King(g.stm)
	g.blockers = g.occupied &^ SquareBB(g.king)

	g.generatePinMasks()
	g.checkmask = g.generateCheckMask()

	return g
}

// generateCheckMask returns the set of squares a non-king move must
// land on to resolve the current check: every square when not in
// check, no squares when in double check (only king moves can help),
// and either the checking piece's square (if it cannot be blocked) or
// the ray between king and checker (if it can) when in single check.
func (g *generator) generateCheckMask() BitBoard {
	switch g.position.CheckCount {
	case 0:
		return Full
	case 1:
		checkerSq := g.position.Checkers.LSB()
		checker := g.position.Mailbox[checkerSq].Piece()
		if checker == Pawn || checker == Knight {
			return g.position.Checkers
		}
		return Between2[g.king][checkerSq]
	default:
		return Empty
	}
}

// generatePinMask returns the union, over every potential pinner in
// pinning, of the ray between the king and that pinner, but only for
// pinners that have exactly one friendly piece standing between them
// and the king.
func (g *generator) generatePinMask(pinning BitBoard) BitBoard {
	var mask BitBoard
	for pinning != 0 {
		var piece Square
		piece, pinning = pinning.PopLSB()
		ray := Between2[g.king][piece]
		if (ray & g.friends).Singular() {
			mask |= ray
		}
	}
	return mask
}

func (g *generator) generatePinMasks() {
	enemy := g.stm.Other()
	enemyRook := g.position.PiecesOf(enemy, Rook)
	enemyBishop := g.position.PiecesOf(enemy, Bishop)
	enemyQueen := g.position.PiecesOf(enemy, Queen)

	g.pinmaskL = g.generatePinMask((enemyRook | enemyQueen) & RookAttacks(g.king, g.enemies))
	g.pinmaskD = g.generatePinMask((enemyBishop | enemyQueen) & BishopAttacks(g.king, g.enemies))
}

// serialize emits Move(source, target, Normal) for every target in
// targets that resolves check and falls in the requested territory.
func (g *generator) serialize(source Square, targets BitBoard) {
	targets &= g.checkmask & g.territory
	for targets != 0 {
		var target Square
		target, targets = targets.PopLSB()
		g.moves = append(g.moves, NewMove(source, target, Normal))
	}
}

// serializeShift emits moves for pawn pushes/captures where the
// source of each target is reached by shifting backward by offset.
func (g *generator) serializeShift(targets BitBoard, offset Direction, flag MoveFlag) {
	targets &= g.checkmask & g.territory
	for targets != 0 {
		var target Square
		target, targets = targets.PopLSB()
		source := target.Shift(-offset)
		g.moves = append(g.moves, NewMove(source, target, flag))
	}
}

// serializePromotions emits every promotion move for targets reached
// by shifting backward by offset. Promotions are masked only by
// check-resolution and not landing on a friendly piece - not by
// territory - since a queen promotion to an empty square is a noisy
// move even though it is not a capture.
func (g *generator) serializePromotions(targets BitBoard, offset Direction, isCapture bool) {
	targets &= g.checkmask &^ g.friends

	for targets != 0 {
		var target Square
		target, targets = targets.PopLSB()
		source := target.Shift(-offset)
		if g.kind&GenNoisy != 0 {
			g.moves = append(g.moves, NewMove(source, target, QueenPromotion))
		}
		if (g.kind&GenQuiet != 0 && !isCapture) || (g.kind&GenNoisy != 0 && isCapture) {
			g.moves = append(g.moves, NewMove(source, target, KnightPromotion))
			g.moves = append(g.moves, NewMove(source, target, BishopPromotion))
			g.moves = append(g.moves, NewMove(source, target, RookPromotion))
		}
	}
}

func (g *generator) pawnMoves() {
	pawns := g.position.PiecesOf(g.stm, Pawn)
	up := Up(g.stm)

	promoRank := RankMask[Rank8]
	doublePushRank := RankMask[Rank3]
	if g.stm == Black {
		promoRank = RankMask[Rank1]
		doublePushRank = RankMask[Rank6]
	}

	if g.kind&GenNoisy != 0 {
		east, west := NorthEast, NorthWest
		if g.stm == Black {
			east, west = SouthEast, SouthWest
		}

		attackers := pawns &^ g.pinmaskL

		unpinnedE := attackers &^ g.pinmaskD
		pinnedE := attackers & g.pinmaskD
		targetsE := (unpinnedE.Shift(east) | (pinnedE.Shift(east) & g.pinmaskD)) & g.enemies

		unpinnedW := attackers &^ g.pinmaskD
		pinnedW := attackers & g.pinmaskD
		targetsW := (unpinnedW.Shift(west) | (pinnedW.Shift(west) & g.pinmaskD)) & g.enemies

		g.serializeShift(targetsE&^promoRank, east, Normal)
		g.serializeShift(targetsW&^promoRank, west, Normal)
		g.serializePromotions(targetsE&promoRank, east, true)
		g.serializePromotions(targetsW&promoRank, west, true)

		if g.position.EpTarget != NoSquare {
			g.pawnEnPassant(attackers)
		}
	}

	if g.kind&(GenQuiet|GenNoisy) != 0 {
		pushers := pawns &^ g.pinmaskD
		unpinned := pushers &^ g.pinmaskL
		pinned := pushers & g.pinmaskL

		single := (unpinned.Shift(up) | (pinned.Shift(up) & g.pinmaskL)) &^ g.occupied

		if g.kind&GenQuiet != 0 {
			double := (single & doublePushRank).Shift(up) &^ g.occupied
			g.serializeShift(single&^promoRank, up, Normal)
			g.serializeShift(double, up+up, DoublePush)
		}
		g.serializePromotions(single&promoRank, up, false)
	}
}

// pawnEnPassant handles the single most delicate pawn rule: capturing
// the pawn that just double-pushed, including the two ways that
// capture can itself be illegal - a horizontal discovered check along
// the captured pawn's rank, and a capturing pawn pinned diagonally
// away from the en passant target.
func (g *generator) pawnEnPassant(pawns BitBoard) {
	target := g.position.EpTarget
	up := Up(g.stm)
	captured := target.Shift(-up)
	enemy := g.stm.Other()
	enemyRook := g.position.PiecesOf(enemy, Rook)
	enemyQueen := g.position.PiecesOf(enemy, Queen)

	passanters := pawns & PawnAttacks(enemy, target)
	if passanters.IsEmpty() {
		return
	}
	if SquareBB(target).IsDisjoint(g.checkmask) && SquareBB(captured).IsDisjoint(g.checkmask) {
		return
	}

	if passanters.Singular() {
		source := passanters.LSB()
		if g.king.Rank() == captured.Rank() {
			afterCapture := g.occupied &^ (SquareBB(source) | SquareBB(captured))
			if !RookAttacks(g.king, afterCapture).IsDisjoint(enemyRook | enemyQueen) {
				return
			}
		}
		if !SquareBB(source).IsDisjoint(g.pinmaskD) && SquareBB(target).IsDisjoint(g.pinmaskD) {
			return
		}
		g.moves = append(g.moves, NewMove(source, target, EnPassant))
		return
	}

	for passanters != 0 {
		var source Square
		source, passanters = passanters.PopLSB()
		if !SquareBB(source).IsDisjoint(g.pinmaskD) && SquareBB(target).IsDisjoint(g.pinmaskD) {
			continue
		}
		g.moves = append(g.moves, NewMove(source, target, EnPassant))
	}
}

func (g *generator) knightMoves() {
	knights := g.position.PiecesOf(g.stm, Knight) &^ (g.pinmaskL | g.pinmaskD)
	for knights != 0 {
		var sq Square
		sq, knights = knights.PopLSB()
		g.serialize(sq, KnightAttacks(sq))
	}
}

func (g *generator) bishopMoves() {
	sliders := (g.position.PiecesOf(g.stm, Bishop) | g.position.PiecesOf(g.stm, Queen)) &^ g.pinmaskL

	unpinned := sliders &^ g.pinmaskD
	for unpinned != 0 {
		var sq Square
		sq, unpinned = unpinned.PopLSB()
		g.serialize(sq, BishopAttacks(sq, g.occupied))
	}

	pinned := sliders & g.pinmaskD
	for pinned != 0 {
		var sq Square
		sq, pinned = pinned.PopLSB()
		g.serialize(sq, BishopAttacks(sq, g.occupied)&g.pinmaskD)
	}
}

func (g *generator) rookMoves() {
	sliders := (g.position.PiecesOf(g.stm, Rook) | g.position.PiecesOf(g.stm, Queen)) &^ g.pinmaskD

	unpinned := sliders &^ g.pinmaskL
	for unpinned != 0 {
		var sq Square
		sq, unpinned = unpinned.PopLSB()
		g.serialize(sq, RookAttacks(sq, g.occupied))
	}

	pinned := sliders & g.pinmaskL
	for pinned != 0 {
		var sq Square
		sq, pinned = pinned.PopLSB()
		g.serialize(sq, RookAttacks(sq, g.occupied)&g.pinmaskL)
	}
}

func (g *generator) kingMoves() {
	targets := KingAttacks(g.king) & g.territory
	for targets != 0 {
		var target Square
		target, targets = targets.PopLSB()
		if !g.position.Attacked(g.stm.Other(), target, g.blockers) {
			g.moves = append(g.moves, NewMove(g.king, target, Normal))
		}
	}
}

func (g *generator) castlingMove(side CastlingSide) {
	dim := NewCastlingDimension(g.stm, side)
	if !g.position.Rights.Has(dim) {
		return
	}
	rook := g.castling.RookStart[dim]
	if !SquareBB(rook).IsDisjoint(g.pinmaskL) {
		return
	}
	if !g.occupied.IsDisjoint(g.castling.BlockerSet[dim]) {
		return
	}
	// the king's own square does not need a separate attacked check:
	// castlingMoves is only reached when CheckCount is 0.
	if g.position.AttackedAny(g.stm.Other(), g.castling.AttackSet[dim], g.blockers) {
		return
	}
	g.moves = append(g.moves, NewMove(g.king, rook, CastlingFlag(side)))
}

func (g *generator) castlingMoves() {
	if g.kind&GenQuiet == 0 {
		return
	}
	g.castlingMove(CastleH)
	g.castlingMove(CastleA)
}

// generate dispatches on the number of checking pieces: zero allows
// castling plus every other kind of move, one drops castling but
// still lets every piece move (as long as it resolves check, via
// checkmask) including the king, and two or more restricts the
// position to king moves only, since no single non-king move can
// resolve a double check. The fallthroughs encode that each case's
// moves are a superset of the next.
func (g *generator) generate() []Move {
	switch g.position.CheckCount {
	case 0:
		g.castlingMoves()
		fallthrough
	case 1:
		g.rookMoves()
		g.bishopMoves()
		g.knightMoves()
		g.pawnMoves()
		fallthrough
	default:
		g.kingMoves()
	}
	return g.moves
}

// GenerateMoves returns every legal move of kind in position, using
// castling for the position's precomputed castling layout.
func GenerateMoves(position *Position, castling *CastlingInfo, kind GenKind) []Move {
	g := newGenerator(position, castling, kind)
	return g.generate()
}
