package mess

// Black-magic slider attack tables for bishops and rooks. Magic numbers
// and offsets are from Analog Hors's CozyChess library:
// https://github.com/analog-hors/cozy-chess
//
// Unlike classical magic bitboards, black magic ORs the occupancy with
// the complement of the relevant blocker mask before multiplying, which
// removes the need to mask irrelevant blockers out beforehand.

type magicEntry struct {
	relevant BitBoard // complement of the relevant blocker mask
	number   uint64
	offset   int32
}

const slidingTableSize = 87988

// pieceShift is the magic hash shift for bishops (index 0) and rooks (index 1).
var pieceShift = [2]uint{9, 12}

var bishopMagics = [SquareN]magicEntry{
	{0xffbfdfeff7fbfdff, 0xa7020080601803d8, 60984}, {0xffffbfdfeff7fbff, 0x13802040400801f1, 66046},
	{0xffffffbfdfeff5ff, 0x0a0080181001f60c, 32910}, {0xffffffffbfddebff, 0x1840802004238008, 16369},
	{0xfffffffffdbbd7ff, 0xc03fe00100000000, 42115}, {0xfffffffdfbf7afff, 0x24c00bffff400000, 835},
	{0xfffffdfbf7efdfff, 0x0808101f40007f04, 18910}, {0xfffdfbf7efdfbfff, 0x100808201ec00080, 25911},
	{0xffdfeff7fbfdffff, 0xffa2feffbfefb7ff, 63301}, {0xffbfdfeff7fbffff, 0x083e3ee040080801, 16063},
	{0xffffbfdfeff5ffff, 0xc0800080181001f8, 17481}, {0xffffffbfddebffff, 0x0440007fe0031000, 59361},
	{0xfffffffdbbd7ffff, 0x2010007ffc000000, 18735}, {0xfffffdfbf7afffff, 0x1079ffe000ff8000, 61249},
	{0xfffdfbf7efdfffff, 0x3c0708101f400080, 68938}, {0xfffbf7efdfbfffff, 0x080614080fa00040, 61791},
	{0xffeff7fbfdfffdff, 0x7ffe7fff817fcff9, 21893}, {0xffdfeff7fbfffbff, 0x7ffebfffa01027fd, 62068},
	{0xffbfdfeff5fff5ff, 0x53018080c00f4001, 19829}, {0xffffbfddebffebff, 0x407e0001000ffb8a, 26091},
	{0xfffffdbbd7ffd7ff, 0x201fe000fff80010, 15815}, {0xfffdfbf7afffafff, 0xffdfefffde39ffef, 16419},
	{0xfffbf7efdfffdfff, 0xcc8808000fbf8002, 59777}, {0xfff7efdfbfffbfff, 0x7ff7fbfff8203fff, 16288},
	{0xfff7fbfdfffdfbff, 0x8800013e8300c030, 33235}, {0xffeff7fbfffbf7ff, 0x0420009701806018, 15459},
	{0xffdfeff5fff5efff, 0x7ffeff7f7f01f7fd, 15863}, {0xffbfddebffebddff, 0x8700303010c0c006, 75555},
	{0xfffdbbd7ffd7bbff, 0xc800181810606000, 79445}, {0xfffbf7afffaff7ff, 0x20002038001c8010, 15917},
	{0xfff7efdfffdfefff, 0x087ff038000fc001, 8512}, {0xffefdfbfffbfdfff, 0x00080c0c00083007, 73069},
	{0xfffbfdfffdfbf7ff, 0x00000080fc82c040, 16078}, {0xfff7fbfffbf7efff, 0x000000407e416020, 19168},
	{0xffeff5fff5efdfff, 0x00600203f8008020, 11056}, {0xffddebffebddbfff, 0xd003fefe04404080, 62544},
	{0xffbbd7ffd7bbfdff, 0xa00020c018003088, 80477}, {0xfff7afffaff7fbff, 0x7fbffe700bffe800, 75049},
	{0xffefdfffdfeff7ff, 0x107ff00fe4000f90, 32947}, {0xffdfbfffbfdfefff, 0x7f8fffcff1d007f8, 59172},
	{0xfffdfffdfbf7efff, 0x0000004100f88080, 55845}, {0xfffbfffbf7efdfff, 0x00000020807c4040, 61806},
	{0xfff5fff5efdfbfff, 0x00000041018700c0, 73601}, {0xffebffebddbfffff, 0x0010000080fc4080, 15546},
	{0xffd7ffd7bbfdffff, 0x1000003c80180030, 45243}, {0xffafffaff7fbfdff, 0xc10000df80280050, 20333},
	{0xffdfffdfeff7fbff, 0xffffffbfeff80fdc, 33402}, {0xffbfffbfdfeff7ff, 0x000000101003f812, 25917},
	{0xfffffdfbf7efdfff, 0x0800001f40808200, 32875}, {0xfffffbf7efdfbfff, 0x084000101f3fd208, 4639},
	{0xfffff5efdfbfffff, 0x080000000f808081, 17077}, {0xffffebddbfffffff, 0x0004000008003f80, 62324},
	{0xffffd7bbfdffffff, 0x08000001001fe040, 18159}, {0xffffaff7fbfdffff, 0x72dd000040900a00, 61436},
	{0xffffdfeff7fbfdff, 0xfffffeffbfeff81d, 57073}, {0xffffbfdfeff7fbff, 0xcd8000200febf209, 61025},
	{0xfffdfbf7efdfbfff, 0x100000101ec10082, 81259}, {0xfffbf7efdfbfffff, 0x7fbaffffefe0c02f, 64083},
	{0xfff5efdfbfffffff, 0x7f83fffffff07f7f, 56114}, {0xffebddbfffffffff, 0xfff1fffffff7ffc1, 57058},
	{0xffd7bbfdffffffff, 0x0878040000ffe01f, 58912}, {0xffaff7fbfdffffff, 0x945e388000801012, 22194},
	{0xffdfeff7fbfdffff, 0x0840800080200fda, 70880}, {0xffbfdfeff7fbfdff, 0x100000c05f582008, 11140},
}

var rookMagics = [SquareN]magicEntry{
	{0xfffefefefefefe81, 0x80280013ff84ffff, 10890}, {0xfffdfdfdfdfdfd83, 0x5ffbfefdfef67fff, 50579},
	{0xfffbfbfbfbfbfb85, 0xffeffaffeffdffff, 62020}, {0xfff7f7f7f7f7f789, 0x003000900300008a, 67322},
	{0xffefefefefefef91, 0x0050028010500023, 80251}, {0xffdfdfdfdfdfdfa1, 0x0020012120a00020, 58503},
	{0xffbfbfbfbfbfbfc1, 0x0030006000c00030, 51175}, {0xff7f7f7f7f7f7f81, 0x0058005806b00002, 83130},
	{0xfffefefefefe81ff, 0x7fbff7fbfbeafffc, 50430}, {0xfffdfdfdfdfd83ff, 0x0000140081050002, 21613},
	{0xfffbfbfbfbfb85ff, 0x0000180043800048, 72625}, {0xfff7f7f7f7f789ff, 0x7fffe800021fffb8, 80755},
	{0xffefefefefef91ff, 0xffffcffe7fcfffaf, 69753}, {0xffdfdfdfdfdfa1ff, 0x00001800c0180060, 26973},
	{0xffbfbfbfbfbfc1ff, 0x4f8018005fd00018, 84972}, {0xff7f7f7f7f7f81ff, 0x0000180030620018, 31958},
	{0xfffefefefe81feff, 0x00300018010c0003, 69272}, {0xfffdfdfdfd83fdff, 0x0003000c0085ffff, 48372},
	{0xfffbfbfbfb85fbff, 0xfffdfff7fbfefff7, 65477}, {0xfff7f7f7f789f7ff, 0x7fc1ffdffc001fff, 43972},
	{0xffefefefef91efff, 0xfffeffdffdffdfff, 57154}, {0xffdfdfdfdfa1dfff, 0x7c108007befff81f, 53521},
	{0xffbfbfbfbfc1bfff, 0x20408007bfe00810, 30534}, {0xff7f7f7f7f817fff, 0x0400800558604100, 16548},
	{0xfffefefe81fefeff, 0x0040200010080008, 46407}, {0xfffdfdfd83fdfdff, 0x0010020008040004, 11841},
	{0xfffbfbfb85fbfbff, 0xfffdfefff7fbfff7, 21112}, {0xfff7f7f789f7f7ff, 0xfebf7dfff8fefff9, 44214},
	{0xffefefef91efefff, 0xc00000ffe001ffe0, 57925}, {0xffdfdfdfa1dfdfff, 0x4af01f00078007c3, 29574},
	{0xffbfbfbfc1bfbfff, 0xbffbfafffb683f7f, 17309}, {0xff7f7f7f817f7fff, 0x0807f67ffa102040, 40143},
	{0xfffefe81fefefeff, 0x200008e800300030, 64659}, {0xfffdfd83fdfdfdff, 0x0000008780180018, 70469},
	{0xfffbfb85fbfbfbff, 0x0000010300180018, 62917}, {0xfff7f789f7f7f7ff, 0x4000008180180018, 60997},
	{0xffefef91efefefff, 0x008080310005fffa, 18554}, {0xffdfdfa1dfdfdfff, 0x4000188100060006, 14385},
	{0xffbfbfc1bfbfbfff, 0xffffff7fffbfbfff, 0}, {0xff7f7f817f7f7fff, 0x0000802000200040, 38091},
	{0xfffe81fefefefeff, 0x20000202ec002800, 25122}, {0xfffd83fdfdfdfdff, 0xfffff9ff7cfff3ff, 60083},
	{0xfffb85fbfbfbfbff, 0x000000404b801800, 72209}, {0xfff789f7f7f7f7ff, 0x2000002fe03fd000, 67875},
	{0xffef91efefefefff, 0xffffff6ffe7fcffd, 56290}, {0xffdfa1dfdfdfdfff, 0xbff7efffbfc00fff, 43807},
	{0xffbfc1bfbfbfbfff, 0x000000100800a804, 73365}, {0xff7f817f7f7f7fff, 0x6054000a58005805, 76398},
	{0xff81fefefefefeff, 0x0829000101150028, 20024}, {0xff83fdfdfdfdfdff, 0x00000085008a0014, 9513},
	{0xff85fbfbfbfbfbff, 0x8000002b00408028, 24324}, {0xff89f7f7f7f7f7ff, 0x4000002040790028, 22996},
	{0xff91efefefefefff, 0x7800002010288028, 23213}, {0xffa1dfdfdfdfdfff, 0x0000001800e08018, 56002},
	{0xffc1bfbfbfbfbfff, 0xa3a80003f3a40048, 22809}, {0xff817f7f7f7f7fff, 0x2003d80000500028, 44545},
	{0x81fefefefefefeff, 0xfffff37eefefdfbe, 36072}, {0x83fdfdfdfdfdfdff, 0x40000280090013c1, 4750},
	{0x85fbfbfbfbfbfbff, 0xbf7ffeffbffaf71f, 6014}, {0x89f7f7f7f7f7f7ff, 0xfffdffff777b7d6e, 36054},
	{0x91efefefefefefff, 0x48300007e8080c02, 78538}, {0xa1dfdfdfdfdfdfff, 0xafe0000fff780402, 28745},
	{0xc1bfbfbfbfbfbfff, 0xee73fffbffbb77fe, 8555}, {0x817f7f7f7f7f7fff, 0x0002000308482882, 1009},
}

var slidingAttacks [slidingTableSize]BitBoard

func bishopIndex(sq Square, occ BitBoard) int {
	m := bishopMagics[sq]
	relevant := uint64(occ) | uint64(m.relevant)
	shift := 64 - pieceShift[0]
	return int(m.offset) + int(relevant*m.number>>shift)
}

func rookIndex(sq Square, occ BitBoard) int {
	m := rookMagics[sq]
	relevant := uint64(occ) | uint64(m.relevant)
	shift := 64 - pieceShift[1]
	return int(m.offset) + int(relevant*m.number>>shift)
}

// BishopAttacks returns the attack set of a bishop on sq given the occupancy occ.
func BishopAttacks(sq Square, occ BitBoard) BitBoard {
	return slidingAttacks[bishopIndex(sq, occ)]
}

// RookAttacks returns the attack set of a rook on sq given the occupancy occ.
func RookAttacks(sq Square, occ BitBoard) BitBoard {
	return slidingAttacks[rookIndex(sq, occ)]
}

// setSlidingAttack writes attacks into slidingAttacks[idx], panicking
// with an InvalidMagic error if a differing value already occupies
// that slot - the magic numbers would then be producing collisions
// between distinct occupancies, making the table invalid.
func setSlidingAttack(idx int, attacks BitBoard) {
	if existing := slidingAttacks[idx]; existing != Empty && existing != attacks {
		panic(newError(InvalidMagic, "index %d already holds a differing attack set", idx))
	}
	slidingAttacks[idx] = attacks
}

func init() {
	for sq := Square(0); sq < SquareN; sq++ {
		bishopMask := ^bishopMagics[sq].relevant
		blockers := Empty
		for {
			setSlidingAttack(bishopIndex(sq, blockers), bishopSlow(sq, blockers))
			blockers = BitBoard((uint64(blockers) - uint64(bishopMask)) & uint64(bishopMask))
			if blockers == Empty {
				break
			}
		}

		rookMask := ^rookMagics[sq].relevant
		blockers = Empty
		for {
			setSlidingAttack(rookIndex(sq, blockers), rookSlow(sq, blockers))
			blockers = BitBoard((uint64(blockers) - uint64(rookMask)) & uint64(rookMask))
			if blockers == Empty {
				break
			}
		}
	}
}
