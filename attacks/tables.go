package attacks

import (
	"sync"

	"github.com/dsokolov/chesscore/bit"
	"github.com/dsokolov/chesscore/types"
)

var (
	kingTable   [64]bit.Board
	knightTable [64]bit.Board
	// pawnPushTable[color][sq] holds the single push destination OR'd with
	// the double push destination when sq is on that color's starting rank.
	pawnPushTable    [2][64]bit.Board
	pawnCaptureTable [2][64]bit.Board

	bishopMask [64]bit.Board
	rookMask   [64]bit.Board
	// bishopTable/rookTable are indexed [sq][magicIndex(...)]. 1<<9 and
	// 1<<12 upper-bound the largest per-square relevant-occupancy subset
	// count (512 for bishops, 4096 for rooks).
	bishopTable [64][512]bit.Board
	rookTable   [64][4096]bit.Board

	once sync.Once
)

// Init builds every attack table. It is safe to call Init concurrently or
// repeatedly — the build happens exactly once. Every lookup function in
// this package calls Init itself, so callers never need to call it
// directly; it is exported for callers (tests, benchmarks) that want to
// pay the one-time cost up front.
func Init() {
	once.Do(build)
}

func build() {
	for sq := bit.Square(0); sq < 64; sq++ {
		single := bit.Of(sq)

		kingTable[sq] = king(single)
		knightTable[sq] = knight(single)

		pawnCaptureTable[white][sq] = pawnCaptures(single, true)
		pawnCaptureTable[black][sq] = pawnCaptures(single, false)
		pawnPushTable[white][sq] = pawnPush(single, true)
		pawnPushTable[black][sq] = pawnPush(single, false)

		bishopMask[sq] = bishopOccupancyMask(sq)
		rookMask[sq] = rookOccupancyMask(sq)

		bBits := bishopBitCount[sq]
		for subset := 0; subset < 1<<bBits; subset++ {
			occ := subsetOf(subset, bBits, bishopMask[sq])
			idx := magicIndex(occ, bishopMask[sq], bishopMagic[sq], bBits)
			bishopTable[sq][idx] = bishopRay(single, occ)
		}

		rBits := rookBitCount[sq]
		for subset := 0; subset < 1<<rBits; subset++ {
			occ := subsetOf(subset, rBits, rookMask[sq])
			idx := magicIndex(occ, rookMask[sq], rookMagic[sq], rBits)
			rookTable[sq][idx] = rookRay(single, occ)
		}
	}
}

// color indices into the two-element pawn tables.
const (
	white = 0
	black = 1
)

func colorIndex(c types.Color) int {
	if c == types.White {
		return white
	}
	return black
}

// pawnPush computes the push destinations (single, plus double from the
// starting rank) for a single pawn, ignoring occupancy — callers mask
// against empty squares themselves (see §4.3's "only if the square(s) in
// front are empty").
func pawnPush(p bit.Board, isWhite bool) bit.Board {
	if isWhite {
		dests := p << 8
		if p&row1 != 0 {
			dests |= p << 16
		}
		return dests
	}
	dests := p >> 8
	if p&row6 != 0 {
		dests |= p >> 16
	}
	return dests
}

// King returns the bitboard of squares one step from sq.
func King(sq types.Square) types.Bitboard {
	Init()
	return kingTable[sq]
}

// Knight returns the bitboard of knight-move destinations from sq.
func Knight(sq types.Square) types.Bitboard {
	Init()
	return knightTable[sq]
}

// PawnPush returns the push destinations (single and, where applicable,
// double) for a pawn of color c on sq, ignoring occupancy.
func PawnPush(c types.Color, sq types.Square) types.Bitboard {
	Init()
	return pawnPushTable[colorIndex(c)][sq]
}

// PawnCapture returns the (up to two) diagonal capture squares for a pawn
// of color c on sq.
func PawnCapture(c types.Color, sq types.Square) types.Bitboard {
	Init()
	return pawnCaptureTable[colorIndex(c)][sq]
}

// Bishop returns the bitboard of squares attacked by a bishop on sq given
// the current full-board occupancy, via the magic-bitboard lookup.
func Bishop(sq types.Square, occupancy types.Bitboard) types.Bitboard {
	Init()
	idx := magicIndex(occupancy, bishopMask[sq], bishopMagic[sq], bishopBitCount[sq])
	return bishopTable[sq][idx]
}

// Rook returns the bitboard of squares attacked by a rook on sq given the
// current full-board occupancy.
func Rook(sq types.Square, occupancy types.Bitboard) types.Bitboard {
	Init()
	idx := magicIndex(occupancy, rookMask[sq], rookMagic[sq], rookBitCount[sq])
	return rookTable[sq][idx]
}

// Queen returns the union of a rook's and a bishop's attacks from sq — at
// most one of the two is ever relevant to any single ray, but a queen
// covers both.
func Queen(sq types.Square, occupancy types.Bitboard) types.Bitboard {
	return Bishop(sq, occupancy) | Rook(sq, occupancy)
}

// Ray returns the sliding attack bitboard for the given piece kind (Rook,
// Bishop, or Queen) on sq given occupancy. Panics if kind is not a slider —
// callers only ever reach this from pieces already known to be sliders.
func Ray(kind types.PieceKind, sq types.Square, occupancy types.Bitboard) types.Bitboard {
	switch kind {
	case types.Rook:
		return Rook(sq, occupancy)
	case types.Bishop:
		return Bishop(sq, occupancy)
	case types.Queen:
		return Queen(sq, occupancy)
	default:
		panic("attacks.Ray: not a sliding piece kind")
	}
}
