package chess_test

import (
	"errors"
	"testing"

	"github.com/dsokolov/chesscore/chess"
	"github.com/dsokolov/chesscore/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyStringUsesStartingPosition(t *testing.T) {
	pos, err := chess.Parse("")
	require.NoError(t, err)
	assert.Equal(t, types.White, pos.ActiveColor)
	assert.True(t, pos.CastlingRights.Has(types.WhiteShort))
	assert.True(t, pos.CastlingRights.Has(types.BlackLong))

	king := pos.Board.At(pos.Board.King(types.White))
	assert.Equal(t, types.King, king.Kind)
}

func TestParseRoundTripsStartingPosition(t *testing.T) {
	pos, err := chess.Parse(chess.StartingPositionString)
	require.NoError(t, err)

	serialized := chess.Serialize(pos)
	reparsed, err := chess.Parse(serialized)
	require.NoError(t, err)

	assert.Equal(t, chess.Serialize(pos), chess.Serialize(reparsed))
}

func TestParseAggregatesMultipleFailures(t *testing.T) {
	_, err := chess.Parse("8/8/8/8/8/8/8/8 x Z z9")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedPosition))
	// Three distinct malformed fields: side to move, castling rights,
	// en-passant square.
	assert.GreaterOrEqual(t, len(strings(err)), 2)
}

// strings lists the messages of the causes an aggregated error exposes
// through Unwrap() []error (a single message when it exposes none), to show
// more than one cause was aggregated without depending on multierr's
// message formatting.
func strings(err error) []string {
	var causes []string
	for e := err; e != nil; {
		type unwrapper interface{ Unwrap() []error }
		u, ok := e.(unwrapper)
		if !ok {
			causes = append(causes, e.Error())
			break
		}
		errs := u.Unwrap()
		for _, inner := range errs {
			causes = append(causes, inner.Error())
		}
		break
	}
	return causes
}

func TestSquareStringRoundTrip(t *testing.T) {
	sq, ok := chess.StringToSquare("e4")
	require.True(t, ok)
	assert.Equal(t, "e4", chess.SquareToString(sq))
}

func TestStringToSquareRejectsGarbage(t *testing.T) {
	_, ok := chess.StringToSquare("z9")
	assert.False(t, ok)
	_, ok = chess.StringToSquare("e")
	assert.False(t, ok)
}
