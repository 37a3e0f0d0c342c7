package chess

import "github.com/dsokolov/chesscore/types"

// Position is the full mutable game state: the board plus everything a move
// can affect beyond piece placement (§3's GameState).
type Position struct {
	Board          *Board
	ActiveColor    types.Color
	CastlingRights types.CastlingRights
	// EPTarget is the square a pawn can capture en passant onto this move,
	// or types.NoSquare when there is none.
	EPTarget types.Square
	// HalfmoveClock counts plies since the last capture or pawn move, for
	// the supplemental fifty-move draw rule (SPEC_FULL.md §1.1).
	HalfmoveClock int
	FullmoveCount int
	// History is the ordered sequence of moves played so far (§3's
	// GameState). RepetitionLatch is the internal single-bit flag the
	// weaker repetition heuristic (§4.6) latches on its first match.
	History         []types.Move
	RepetitionLatch bool
}

// NewStartingPosition returns the standard chess starting position.
func NewStartingPosition() *Position {
	b := NewBoard()

	backRank := [8]types.PieceKind{
		types.Rook, types.Knight, types.Bishop, types.Queen,
		types.King, types.Bishop, types.Knight, types.Rook,
	}
	for col := 0; col < 8; col++ {
		// Column 0 is file h (§3's mirrored numbering), so the back rank
		// is laid out in reverse of the conventional a..h order.
		kind := backRank[7-col]
		b.Place(kind, squareAt(0, col), types.White)
		b.Place(types.Pawn, squareAt(1, col), types.White)
		b.Place(types.Pawn, squareAt(6, col), types.Black)
		b.Place(backRank[7-col], squareAt(7, col), types.Black)
		_ = kind
	}

	return &Position{
		Board:          b,
		ActiveColor:    types.White,
		CastlingRights: types.WhiteShort | types.WhiteLong | types.BlackShort | types.BlackLong,
		EPTarget:       types.NoSquare,
		FullmoveCount:  1,
	}
}

func squareAt(row, col int) types.Square {
	return types.Square(row*8 + col)
}

// Clone returns a deep copy of the position, safe to mutate independently,
// so a move can be applied to the copy without disturbing the original (the
// perft test harness uses it this way).
func (p *Position) Clone() *Position {
	history := make([]types.Move, len(p.History))
	copy(history, p.History)
	return &Position{
		Board:           p.Board.Clone(),
		ActiveColor:     p.ActiveColor,
		CastlingRights:  p.CastlingRights,
		EPTarget:        p.EPTarget,
		HalfmoveClock:   p.HalfmoveClock,
		FullmoveCount:   p.FullmoveCount,
		History:         history,
		RepetitionLatch: p.RepetitionLatch,
	}
}
