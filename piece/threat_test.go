package piece_test

import (
	"testing"

	"github.com/dsokolov/chesscore/bit"
	"github.com/dsokolov/chesscore/piece"
	"github.com/dsokolov/chesscore/types"
	"github.com/stretchr/testify/assert"
)

func TestRookThreatLineDirectCheck(t *testing.T) {
	rookSq := bit.FromRowCol(0, 0)
	kingSq := bit.FromRowCol(0, 5)
	p := types.Piece{Kind: types.Rook, Square: rookSq, Color: types.Black}

	line := piece.ThreatLine(p, kingSq, bit.Of(rookSq)|bit.Of(kingSq))
	// No blockers between rook and king: every intervening square is a
	// legal block, plus the attacker's own square is a legal capture.
	want := bit.Of(rookSq) | bit.Of(bit.FromRowCol(0, 1)) | bit.Of(bit.FromRowCol(0, 2)) |
		bit.Of(bit.FromRowCol(0, 3)) | bit.Of(bit.FromRowCol(0, 4))
	assert.Equal(t, want, line)
}

func TestRookThreatLineWithOnePinnedPiece(t *testing.T) {
	rookSq := bit.FromRowCol(0, 0)
	kingSq := bit.FromRowCol(0, 5)
	pinned := bit.FromRowCol(0, 3)
	p := types.Piece{Kind: types.Rook, Square: rookSq, Color: types.Black}

	occ := bit.Of(rookSq) | bit.Of(kingSq) | bit.Of(pinned)
	line := piece.ThreatLine(p, kingSq, occ)

	want := bit.Of(rookSq) | bit.Of(bit.FromRowCol(0, 1)) | bit.Of(bit.FromRowCol(0, 2)) |
		bit.Of(pinned) | bit.Of(bit.FromRowCol(0, 4))
	assert.Equal(t, want, line)
}

func TestRookThreatLineDiscardedWithTwoBlockers(t *testing.T) {
	rookSq := bit.FromRowCol(0, 0)
	kingSq := bit.FromRowCol(0, 5)
	p := types.Piece{Kind: types.Rook, Square: rookSq, Color: types.Black}

	occ := bit.Of(rookSq) | bit.Of(kingSq) | bit.Of(bit.FromRowCol(0, 2)) | bit.Of(bit.FromRowCol(0, 4))
	line := piece.ThreatLine(p, kingSq, occ)
	assert.Zero(t, line)
}

func TestRookThreatLineAdjacentToKing(t *testing.T) {
	rookSq := bit.FromRowCol(0, 4)
	kingSq := bit.FromRowCol(0, 5)
	p := types.Piece{Kind: types.Rook, Square: rookSq, Color: types.Black}

	line := piece.ThreatLine(p, kingSq, bit.Of(rookSq)|bit.Of(kingSq))
	assert.Equal(t, bit.Of(rookSq), line, "adjacent squares leave no room between attacker and king")
}

func TestBishopThreatLineRequiresDiagonalAlignment(t *testing.T) {
	bishopSq := bit.FromRowCol(0, 0)
	kingSq := bit.FromRowCol(0, 5)
	p := types.Piece{Kind: types.Bishop, Square: bishopSq, Color: types.Black}

	line := piece.ThreatLine(p, kingSq, bit.Of(bishopSq)|bit.Of(kingSq))
	assert.Zero(t, line, "a bishop cannot threaten along a rank")
}

func TestKnightThreatLineIsOwnSquareOrZero(t *testing.T) {
	knightSq := bit.FromRowCol(3, 3)
	reachable := bit.FromRowCol(5, 4)
	unreachable := bit.FromRowCol(5, 5)
	p := types.Piece{Kind: types.Knight, Square: knightSq, Color: types.Black}

	assert.Equal(t, bit.Of(knightSq), piece.ThreatLine(p, reachable, bit.Of(knightSq)))
	assert.Zero(t, piece.ThreatLine(p, unreachable, bit.Of(knightSq)))
}

func TestPawnThreatLineIsDiagonalOnly(t *testing.T) {
	pawnSq := bit.FromRowCol(3, 3)
	p := types.Piece{Kind: types.Pawn, Square: pawnSq, Color: types.White}

	diag := bit.FromRowCol(4, 4)
	ahead := bit.FromRowCol(4, 3)
	assert.Equal(t, bit.Of(pawnSq), piece.ThreatLine(p, diag, bit.Of(pawnSq)))
	assert.Zero(t, piece.ThreatLine(p, ahead, bit.Of(pawnSq)), "a pawn never threatens the square directly ahead")
}
