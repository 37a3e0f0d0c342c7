package piece

import (
	"github.com/dsokolov/chesscore/attacks"
	"github.com/dsokolov/chesscore/bit"
	"github.com/dsokolov/chesscore/types"
)

// ThreatLine computes the x-ray line from piece p toward kingSq (§4.3's
// closing paragraphs). For a sliding piece aligned with the king, the
// result is the piece's own square unioned with every square strictly
// between the two, provided at most one other piece of either color sits
// in that gap — with exactly zero it is a direct check, with exactly one
// it is the square a blocking move or the pinned piece must occupy. Two or
// more blockers, or no alignment at all, yields zero. For a non-sliding
// piece, the line is just the piece's own square when it directly attacks
// kingSq, else zero — a knight or pawn can never be x-rayed through.
func ThreatLine(p types.Piece, kingSq types.Square, occAll types.Bitboard) types.Bitboard {
	switch p.Kind {
	case types.Rook, types.Bishop, types.Queen:
		return sliderThreatLine(p, kingSq, occAll)
	case types.Knight:
		if attacks.Knight(p.Square)&bit.Of(kingSq) != 0 {
			return bit.Of(p.Square)
		}
		return 0
	case types.Pawn:
		if attacks.PawnCapture(p.Color, p.Square)&bit.Of(kingSq) != 0 {
			return bit.Of(p.Square)
		}
		return 0
	default:
		return 0
	}
}

func sliderThreatLine(p types.Piece, kingSq types.Square, occAll types.Bitboard) types.Bitboard {
	step, ok := rayStep(p.Square, kingSq, p.Kind)
	if !ok {
		return 0
	}

	own := bit.Of(p.Square)
	var between types.Bitboard
	blockers := 0

	sq := p.Square + step
	for sq != kingSq {
		sqBit := bit.Of(sq)
		between |= sqBit
		if sqBit&occAll != 0 {
			blockers++
		}
		sq += step
	}

	if blockers > 1 {
		return 0
	}
	return own | between
}

// rayStep returns the constant square delta from->to must share on every
// step for kind to see to, and whether such an aligned step exists at all.
func rayStep(from, to types.Square, kind types.PieceKind) (types.Square, bool) {
	rowDelta := bit.Row(to) - bit.Row(from)
	colDelta := bit.Col(to) - bit.Col(from)
	if rowDelta == 0 && colDelta == 0 {
		return 0, false
	}

	straight := rowDelta == 0 || colDelta == 0
	diagonal := rowDelta == colDelta || rowDelta == -colDelta
	switch kind {
	case types.Rook:
		if !straight {
			return 0, false
		}
	case types.Bishop:
		if !diagonal {
			return 0, false
		}
	case types.Queen:
		if !straight && !diagonal {
			return 0, false
		}
	default:
		return 0, false
	}

	rowStep := sign(rowDelta)
	colStep := sign(colDelta)
	return types.Square(rowStep*8 + colStep), true
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
