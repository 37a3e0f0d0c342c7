package game_test

import (
	"testing"

	"github.com/dsokolov/chesscore/chess"
	"github.com/dsokolov/chesscore/game"
	"github.com/dsokolov/chesscore/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sq(t *testing.T, s string) types.Square {
	t.Helper()
	v, ok := chess.StringToSquare(s)
	require.True(t, ok, "bad square literal %q", s)
	return v
}

func move(t *testing.T, g *game.Game, from, to string) types.MoveResult {
	t.Helper()
	result, err := g.ExecuteMove(sq(t, from), sq(t, to), types.NoPromotion)
	require.NoError(t, err, "move %s-%s rejected", from, to)
	return result
}

func TestFoolsMateEndsInCheckmate(t *testing.T) {
	g, err := game.New("")
	require.NoError(t, err)

	move(t, g, "f2", "f3")
	move(t, g, "e7", "e5")
	move(t, g, "g2", "g4")
	result := move(t, g, "d8", "h4")

	assert.Equal(t, types.Checkmate, result)
	assert.Equal(t, types.Checkmate, g.Status())
}

func TestExecuteMoveAfterGameOverIsRejected(t *testing.T) {
	g, err := game.New("")
	require.NoError(t, err)

	move(t, g, "f2", "f3")
	move(t, g, "e7", "e5")
	move(t, g, "g2", "g4")
	move(t, g, "d8", "h4")

	_, err = g.ExecuteMove(sq(t, "a2"), sq(t, "a3"), types.NoPromotion)
	assert.ErrorIs(t, err, types.ErrGameOver)
}

func TestStalemateIsADraw(t *testing.T) {
	g, err := game.New("k7/2K5/8/8/8/8/8/1Q6 w - -")
	require.NoError(t, err)

	result := move(t, g, "b1", "b6")

	assert.Equal(t, types.Draw, result)
	assert.Equal(t, types.Stalemate, g.Result())
}

func TestKnightPromotion(t *testing.T) {
	g, err := game.New("7k/P7/8/8/8/8/8/7K w - -")
	require.NoError(t, err)

	result, err := g.ExecuteMove(sq(t, "a7"), sq(t, "a8"), types.PromoteKnight)
	require.NoError(t, err)
	assert.NotEqual(t, types.Checkmate, result)

	kind, color, ok := g.PieceAt(sq(t, "a8"))
	require.True(t, ok)
	assert.Equal(t, types.Knight, kind)
	assert.Equal(t, types.White, color)
}

func TestEnPassantCaptureThroughFacade(t *testing.T) {
	g, err := game.New("4k3/3p4/8/4P3/8/8/8/4K3 b - -")
	require.NoError(t, err)

	move(t, g, "d7", "d5")
	move(t, g, "e5", "d6")

	_, _, ok := g.PieceAt(sq(t, "d5"))
	assert.False(t, ok, "the captured pawn is removed from its own square")

	kind, color, ok := g.PieceAt(sq(t, "d6"))
	require.True(t, ok)
	assert.Equal(t, types.Pawn, kind)
	assert.Equal(t, types.White, color)
}

func TestCastlingThroughFacade(t *testing.T) {
	g, err := game.New("r3k2r/8/8/8/8/8/8/R3K2R w KQkq -")
	require.NoError(t, err)

	move(t, g, "e1", "g1")

	kingKind, _, ok := g.PieceAt(sq(t, "g1"))
	require.True(t, ok)
	assert.Equal(t, types.King, kingKind)

	rookKind, _, ok := g.PieceAt(sq(t, "f1"))
	require.True(t, ok)
	assert.Equal(t, types.Rook, rookKind)
}

// TestRepetitionLatchTriggersOnSecondMatch exercises the weaker,
// non-FIDE repetition heuristic end to end: the same two knight moves
// played three times at four-ply intervals, the pattern arms on the
// first recurrence and declares the draw on the second.
func TestRepetitionLatchTriggersOnSecondMatch(t *testing.T) {
	g, err := game.New("")
	require.NoError(t, err)

	shuffle := []struct{ from, to string }{
		{"b1", "c3"}, {"b8", "c6"},
		{"c3", "b1"}, {"c6", "b8"},
		{"b1", "c3"}, {"b8", "c6"},
		{"c3", "b1"}, {"c6", "b8"},
		{"b1", "c3"}, // ply 9: arms the latch, not yet a draw
		{"b8", "c6"}, // ply 10: matches again, draw declared
	}

	var last types.MoveResult
	for i, mv := range shuffle {
		last = move(t, g, mv.from, mv.to)
		if i == len(shuffle)-2 {
			assert.NotEqual(t, types.Draw, last, "the latch only arms on the first recurrence")
		}
	}

	assert.Equal(t, types.Draw, last)
	assert.Equal(t, types.Repetition, g.Result())
}
