// Package game implements the façade (C9) external collaborators use: build
// a game from a position string, query legal moves, execute a move, and
// read back status. It composes package chess's legal-move filter and
// status classifier and owns nothing else — no rules logic lives here.
package game

import (
	"fmt"

	"github.com/dsokolov/chesscore/chess"
	"github.com/dsokolov/chesscore/internal/telemetry"
	"github.com/dsokolov/chesscore/types"
)

// Game is a single chess game instance. It is not safe for concurrent use —
// each instance is single-writer, matching §5's scheduling model.
type Game struct {
	pos    *chess.Position
	log    *telemetry.Logger
	result types.MoveResult
	reason types.DrawReason
}

// New creates a game from a position string (§4.7's grammar). An empty
// string yields the canonical starting position.
func New(positionString string) (*Game, error) {
	pos, err := chess.Parse(positionString)
	if err != nil {
		return nil, err
	}
	g := &Game{pos: pos, log: telemetry.New()}
	g.log.GameCreated(chess.Serialize(pos))
	return g, nil
}

// NewWithLogger is New but with an injected logger, for tests and for
// embedding services that want their own sink.
func NewWithLogger(positionString string, log *telemetry.Logger) (*Game, error) {
	pos, err := chess.Parse(positionString)
	if err != nil {
		return nil, err
	}
	g := &Game{pos: pos, log: log}
	g.log.GameCreated(chess.Serialize(pos))
	return g, nil
}

// SideToPlay returns the color to move.
func (g *Game) SideToPlay() types.Color { return g.pos.ActiveColor }

// KingSquare returns the square of color c's king.
func (g *Game) KingSquare(c types.Color) types.Square { return g.pos.Board.King(c) }

// Status returns the most recently computed game result, StatusNormal
// before any move has been played.
func (g *Game) Status() types.MoveResult { return g.result }

// Result reports why a Draw was reached, or NoDraw otherwise (§1.1).
func (g *Game) Result() types.DrawReason { return g.reason }

// PositionString serializes the current position (§4.7).
func (g *Game) PositionString() string { return chess.Serialize(g.pos) }

// PieceAt reports the piece standing on sq, if any. It is a read-only
// board accessor for consumers like the CLI demo that need to render the
// position; it exposes no mutation path.
func (g *Game) PieceAt(sq types.Square) (types.PieceKind, types.Color, bool) {
	p := g.pos.Board.At(sq)
	if p == nil {
		return types.NoPiece, types.White, false
	}
	return p.Kind, p.Color, true
}

// LegalMovesFor returns the bitboard of squares the piece at sq may legally
// reach, or 0 if the square is empty, holds the wrong color, or the game
// has already ended.
func (g *Game) LegalMovesFor(sq types.Square) types.Bitboard {
	if g.isOver() {
		return 0
	}
	return chess.LegalMovesFor(g.pos, sq)
}

// ExecuteMove performs the move from->to if legal, updating castling
// rights, en-passant target, and move history, then classifies the
// resulting status. promotionChoice is consulted only when the move is a
// pawn reaching the last rank; an unrecognized choice silently defaults to
// queen (see DESIGN.md "promotion default").
func (g *Game) ExecuteMove(from, to types.Square, promotionChoice types.PromotionKind) (types.MoveResult, error) {
	if g.isOver() {
		err := fmt.Errorf("%w: game already reached %s", types.ErrGameOver, g.result)
		g.log.MoveRejected(squareLabel(from), squareLabel(to), err)
		return g.result, err
	}

	legal := chess.LegalMovesFor(g.pos, from)
	if legal == 0 || !squareIn(legal, to) {
		err := fmt.Errorf("%w: %s to %s is not a legal move", types.ErrInvalidMove, squareLabel(from), squareLabel(to))
		g.log.MoveRejected(squareLabel(from), squareLabel(to), err)
		return g.result, err
	}

	m := buildMove(g.pos, from, to, promotionChoice)
	chess.ApplyMove(g.pos, m)

	g.result, g.reason = chess.DetermineStatus(g.pos)
	g.log.MoveExecuted(squareLabel(from), squareLabel(to), g.result.String())
	if g.isOver() {
		g.log.GameOver(g.result.String(), drawReasonString(g.reason))
	}
	return g.result, nil
}

func (g *Game) isOver() bool {
	return g.result == types.Checkmate || g.result == types.Draw
}

func squareIn(bb types.Bitboard, sq types.Square) bool {
	var one types.Bitboard = 1
	return bb&(one<<uint(sq)) != 0
}

func buildMove(pos *chess.Position, from, to types.Square, promo types.PromotionKind) types.Move {
	mover := pos.Board.At(from)

	if mover.Kind == types.Pawn && pos.EPTarget != types.NoSquare && to == pos.EPTarget {
		return types.NewMove(from, to, types.EnPassant)
	}
	if mover.Kind == types.King && isCastleDestination(from, to) {
		return types.NewMove(from, to, types.Castling)
	}
	if mover.Kind == types.Pawn && isLastRank(to, mover.Color) {
		return types.NewPromotionMove(from, to, promo)
	}
	return types.NewMove(from, to, types.Normal)
}

func isCastleDestination(from, to types.Square) bool {
	delta := int(to) - int(from)
	return delta == 2 || delta == -2
}

func isLastRank(sq types.Square, c types.Color) bool {
	row := int(sq) / 8
	if c == types.White {
		return row == 7
	}
	return row == 0
}

func squareLabel(sq types.Square) string {
	if sq == types.NoSquare {
		return "-"
	}
	return chess.SquareToString(sq)
}

func drawReasonString(r types.DrawReason) string {
	switch r {
	case types.Stalemate:
		return "stalemate"
	case types.Repetition:
		return "repetition"
	case types.InsufficientMaterial:
		return "insufficient material"
	case types.FiftyMove:
		return "fifty-move rule"
	default:
		return "none"
	}
}
