package chess

import (
	"github.com/dsokolov/chesscore/bit"
	"github.com/dsokolov/chesscore/types"
)

// pieceWeights mirrors the teacher's material-counting table (pawn=1,
// knight/bishop=3, rook=5, queen=9; kings are weightless) used only to
// recognize draws by insufficient material.
var pieceWeights = map[types.PieceKind]int{
	types.Pawn:   1,
	types.Knight: 3,
	types.Bishop: 3,
	types.Rook:   5,
	types.Queen:  9,
}

// DetermineStatus implements §4.6's classifier after a move has already
// been applied to pos (active color already flipped to the side now to
// move). It returns the move result and, for a draw, which of the four
// recognized causes applies.
func DetermineStatus(pos *Position) (types.MoveResult, types.DrawReason) {
	hasMove := HasAnyLegalMove(pos)
	inCheck := InCheck(pos, pos.ActiveColor)

	if inCheck {
		if hasMove {
			return types.Check, types.NoDraw
		}
		return types.Checkmate, types.NoDraw
	}
	if !hasMove {
		return types.Draw, types.Stalemate
	}
	if checkRepetition(pos) {
		return types.Draw, types.Repetition
	}
	if isInsufficientMaterial(pos) {
		return types.Draw, types.InsufficientMaterial
	}
	if pos.HalfmoveClock >= 100 {
		return types.Draw, types.FiftyMove
	}
	return types.StatusNormal, types.NoDraw
}

// isInsufficientMaterial recognizes the same four drawn-material shapes as
// the teacher's IsInsufficientMaterial: bare king vs bare king, king+minor
// vs bare king, same-colored bishops on both sides, and knight vs knight.
func isInsufficientMaterial(pos *Position) bool {
	const darkSquareParity = 1 // row+col odd => dark square, under this module's numbering

	material := 0
	var pawns, whiteBishops, blackBishops, whiteKnights, blackKnights int
	var whiteBishopOnDark, blackBishopOnDark bool

	for _, p := range pos.Board.Pieces() {
		material += pieceWeights[p.Kind]
		switch p.Kind {
		case types.Pawn:
			pawns++
		case types.Bishop:
			onDark := (bit.Row(p.Square)+bit.Col(p.Square))%2 == darkSquareParity
			if p.Color == types.White {
				whiteBishops++
				whiteBishopOnDark = onDark
			} else {
				blackBishops++
				blackBishopOnDark = onDark
			}
		case types.Knight:
			if p.Color == types.White {
				whiteKnights++
			} else {
				blackKnights++
			}
		}
	}

	if material == 0 {
		return true
	}
	if material == 3 && pawns == 0 {
		return true
	}
	if material == 6 {
		if whiteBishops == 1 && blackBishops == 1 {
			return whiteBishopOnDark == blackBishopOnDark
		}
		if whiteKnights == 1 && blackKnights == 1 {
			return true
		}
	}
	return false
}

