package types

import "errors"

// Sentinel errors matching the three failure kinds the engine can report
// (spec §7). Wrap these with fmt.Errorf("...: %w", ErrX) for context and
// callers can still recover the kind with errors.Is.
var (
	// ErrMalformedPosition is returned when a position string fails the
	// position-string grammar.
	ErrMalformedPosition = errors.New("malformed position string")
	// ErrInvalidMove is returned when execute_move's destination is not
	// among the legal moves for the piece at from.
	ErrInvalidMove = errors.New("invalid move")
	// ErrGameOver is returned when execute_move is called after the game
	// already reached a terminal status.
	ErrGameOver = errors.New("game is already over")
)
