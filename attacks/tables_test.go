package attacks_test

import (
	"testing"

	"github.com/dsokolov/chesscore/attacks"
	"github.com/dsokolov/chesscore/bit"
	"github.com/dsokolov/chesscore/types"
	"github.com/stretchr/testify/assert"
)

func TestKingCornerHasThreeMoves(t *testing.T) {
	// Square 0 is h1: a corner, so only 3 destinations.
	assert.Equal(t, 3, bit.Count(attacks.King(0)))
}

func TestKnightCornerHasTwoMoves(t *testing.T) {
	assert.Equal(t, 2, bit.Count(attacks.Knight(0)))
}

func TestKnightCenterHasEightMoves(t *testing.T) {
	// Row 3, column 3 is a central square far from every edge.
	sq := bit.FromRowCol(3, 3)
	assert.Equal(t, 8, bit.Count(attacks.Knight(sq)))
}

func TestRookOnEmptyBoardSweepsRankAndFile(t *testing.T) {
	sq := bit.FromRowCol(3, 3)
	// 7 squares on the rank + 7 on the file = 14, on an otherwise empty board.
	assert.Equal(t, 14, bit.Count(attacks.Rook(sq, bit.Of(sq))))
}

func TestRookStopsAtFirstBlocker(t *testing.T) {
	sq := bit.FromRowCol(0, 0)
	blocker := bit.FromRowCol(0, 3)
	occ := bit.Of(sq) | bit.Of(blocker)

	dests := attacks.Rook(sq, occ)
	assert.NotZero(t, dests&bit.Of(blocker), "blocker square itself is a capture target")
	assert.Zero(t, dests&bit.Of(bit.FromRowCol(0, 4)), "squares beyond the blocker are not reachable")
}

func TestBishopOnEmptyBoardFromCenter(t *testing.T) {
	sq := bit.FromRowCol(3, 3)
	assert.Equal(t, 13, bit.Count(attacks.Bishop(sq, bit.Of(sq))))
}

func TestPawnPushDoubleFromStartRank(t *testing.T) {
	// Row 1 (rank 2) is white's starting rank under this module's numbering.
	sq := bit.FromRowCol(1, 2)
	pushes := attacks.PawnPush(types.White, sq)
	assert.Equal(t, 2, bit.Count(pushes))
}

func TestPawnPushSingleElsewhere(t *testing.T) {
	sq := bit.FromRowCol(4, 2)
	pushes := attacks.PawnPush(types.White, sq)
	assert.Equal(t, 1, bit.Count(pushes))
}

func TestPawnCaptureIsTwoDiagonals(t *testing.T) {
	sq := bit.FromRowCol(3, 3)
	assert.Equal(t, 2, bit.Count(attacks.PawnCapture(types.White, sq)))
	assert.Equal(t, 2, bit.Count(attacks.PawnCapture(types.Black, sq)))
}

func TestQueenUnionsRookAndBishop(t *testing.T) {
	sq := bit.FromRowCol(3, 3)
	occ := bit.Of(sq)
	want := attacks.Rook(sq, occ) | attacks.Bishop(sq, occ)
	assert.Equal(t, want, attacks.Queen(sq, occ))
}
