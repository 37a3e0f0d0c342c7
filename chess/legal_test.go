package chess_test

import (
	"testing"

	"github.com/dsokolov/chesscore/bit"
	"github.com/dsokolov/chesscore/chess"
	"github.com/dsokolov/chesscore/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartingPositionHas20LegalMovesTotal(t *testing.T) {
	pos := chess.NewStartingPosition()
	total := 0
	for _, p := range pos.Board.Pieces() {
		if p.Color != types.White {
			continue
		}
		total += bit.Count(chess.LegalMovesFor(pos, p.Square))
	}
	assert.Equal(t, 20, total)
}

func TestCastlingBlockedByCheckThrough(t *testing.T) {
	// White king e1, white rook h1, black rook e8: the rook attacks e1, the
	// king's own square on the castling path, so short castling must not
	// appear.
	pos, err := chess.Parse("4r3/8/8/8/8/8/8/4K2R w K -")
	require.NoError(t, err)

	dests := chess.LegalMovesFor(pos, mustSquare(t, "e1"))
	assert.Zero(t, dests&bit.Of(mustSquare(t, "g1")), "king may not castle through an attacked square")
}

func TestCastlingAllowedWhenPathIsSafe(t *testing.T) {
	pos, err := chess.Parse("4k3/8/8/8/8/8/8/4K2R w K -")
	require.NoError(t, err)

	dests := chess.LegalMovesFor(pos, mustSquare(t, "e1"))
	assert.NotZero(t, dests&bit.Of(mustSquare(t, "g1")))
}

func TestEnPassantHorizontalPinIsExcluded(t *testing.T) {
	// White king h5, white pawn e5, black rook a5, black pawn played f7-f5.
	pos, err := chess.Parse("8/8/8/r3Pp1K/8/8/8/8 w - f6")
	require.NoError(t, err)

	dests := chess.LegalMovesFor(pos, mustSquare(t, "e5"))
	assert.Zero(t, dests&bit.Of(mustSquare(t, "f6")),
		"capturing en passant would expose the king to the rook along rank 5")
}

func TestEnPassantAllowedWithoutHorizontalPin(t *testing.T) {
	pos, err := chess.Parse("8/8/8/3Pp3/8/8/4K3/8 w - e6")
	require.NoError(t, err)

	dests := chess.LegalMovesFor(pos, mustSquare(t, "d5"))
	assert.NotZero(t, dests&bit.Of(mustSquare(t, "e6")))
}

func TestPinnedPieceMayOnlyMoveWithinTheLine(t *testing.T) {
	// White king e1, white rook e3, black rook e8: the pinned rook may
	// still slide along the e-file (e.g. to e4) but may not step off it.
	pos, err := chess.Parse("4r3/8/8/8/8/4R3/8/4K3 w - -")
	require.NoError(t, err)

	dests := chess.LegalMovesFor(pos, mustSquare(t, "e3"))
	assert.NotZero(t, dests&bit.Of(mustSquare(t, "e4")), "moving along the pin line stays legal")
	assert.Zero(t, dests&bit.Of(mustSquare(t, "d3")), "a pinned rook cannot leave the pin line")
}

func TestCheckRestrictsMovesToBlockOrCapture(t *testing.T) {
	// White king e1 is in direct check from a black rook on e8 down the
	// open e-file. A knight tucked in the corner at a1 can reach neither
	// the checking rook nor any square on the e-file, so it has no legal
	// move at all while the king is in check.
	pos, err := chess.Parse("4r3/8/8/8/8/8/8/N3K3 w - -")
	require.NoError(t, err)

	require.True(t, chess.InCheck(pos, types.White))
	dests := chess.LegalMovesFor(pos, mustSquare(t, "a1"))
	assert.Zero(t, dests, "the knight on a1 has no move that blocks or captures the checking rook")
}

func TestDoubleCheckOnlyKingMayMove(t *testing.T) {
	// A rook on e8 gives check down the open e-file, a bishop on a5 gives
	// check down the open a5-e1 diagonal, simultaneously: a textbook
	// double check, which only the king itself can answer.
	pos, err := chess.Parse("4r3/8/8/b7/8/8/8/4K1N1 w - -")
	require.NoError(t, err)

	dests := chess.LegalMovesFor(pos, mustSquare(t, "g1"))
	assert.Zero(t, dests, "under double check no piece but the king may move")
}

func mustSquare(t *testing.T, s string) types.Square {
	t.Helper()
	sq, ok := chess.StringToSquare(s)
	require.True(t, ok)
	return sq
}
