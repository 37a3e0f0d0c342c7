// Package piece dispatches each chess piece kind to its pseudo-legal move
// set and its threat-line (x-ray) computation toward an enemy king. Pieces
// carry no behavior of their own — they are plain (kind, square, color)
// values — so dispatch is a switch over types.PieceKind rather than an
// interface hierarchy; the attack tables and threat-line math are passed
// in as explicit arguments (occupancy bitboards), never stashed on the
// piece, matching the "no back references" design in SPEC_FULL.md §9.
package piece

import (
	"github.com/dsokolov/chesscore/attacks"
	"github.com/dsokolov/chesscore/bit"
	"github.com/dsokolov/chesscore/types"
)

// Occupancy bundles the three occupancy bitboards move generation needs:
// every occupied square, the moving side's own pieces, and the opponent's.
type Occupancy struct {
	All, Own, Enemy types.Bitboard
}

// Moves returns the pseudo-legal destination bitboard for a single piece,
// ignoring checks and pins entirely (§4.3). epTarget is consulted only for
// pawns; pass types.NoSquare when there is none.
func Moves(p types.Piece, occ Occupancy, epTarget types.Square) types.Bitboard {
	switch p.Kind {
	case types.King:
		return attacks.King(p.Square) &^ occ.Own
	case types.Knight:
		return attacks.Knight(p.Square) &^ occ.Own
	case types.Rook, types.Bishop, types.Queen:
		return attacks.Ray(p.Kind, p.Square, occ.All) &^ occ.Own
	case types.Pawn:
		return pawnMoves(p, occ, epTarget)
	default:
		return 0
	}
}

func pawnMoves(p types.Piece, occ Occupancy, epTarget types.Square) types.Bitboard {
	var dests types.Bitboard

	single := attacks.PawnPush(p.Color, p.Square)
	// The push table already folds in the double push from the starting
	// rank, but both the single and (if present) double destination must
	// be empty — a blocked single push also blocks the double push.
	oneStep := stepForward(p.Square, p.Color)
	if oneStep != types.NoSquare && bit.Of(oneStep)&occ.All == 0 {
		dests |= bit.Of(oneStep)
		if twoStep, ok := doubleStep(p.Square, p.Color); ok && single&bit.Of(twoStep) != 0 &&
			bit.Of(twoStep)&occ.All == 0 {
			dests |= bit.Of(twoStep)
		}
	}

	captureTargets := occ.Enemy
	if epTarget != types.NoSquare {
		captureTargets |= bit.Of(epTarget)
	}
	dests |= attacks.PawnCapture(p.Color, p.Square) & captureTargets

	return dests
}

// stepForward is a tiny helper living in this file (not exported from bit)
// since "pawn forward" is a piece-kind concept, not a bitboard primitive.
func stepForward(s types.Square, c types.Color) types.Square {
	row, col := bit.Row(s), bit.Col(s)
	if c == types.White {
		if row == 7 {
			return types.NoSquare
		}
		return bit.FromRowCol(row+1, col)
	}
	if row == 0 {
		return types.NoSquare
	}
	return bit.FromRowCol(row-1, col)
}

func doubleStep(s types.Square, c types.Color) (types.Square, bool) {
	row, col := bit.Row(s), bit.Col(s)
	if c == types.White && row == 1 {
		return bit.FromRowCol(row+2, col), true
	}
	if c == types.Black && row == 6 {
		return bit.FromRowCol(row-2, col), true
	}
	return types.NoSquare, false
}
