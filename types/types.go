// Package types declares the value types shared across the engine: squares,
// colors, piece kinds, the packed move encoding, castling rights, and the
// terminal game-status vocabulary. Nothing in this package depends on board
// state, so attack tables, piece dispatch, and game state can all import it
// without risking an import cycle.
package types

import "github.com/dsokolov/chesscore/bit"

// Square re-exports bit.Square so callers outside this module don't need to
// import the bit package just to name a square.
type Square = bit.Square

// Bitboard re-exports bit.Board under the name used throughout the public API.
type Bitboard = bit.Board

// NoSquare marks the absence of a square (e.g. no en-passant target).
const NoSquare = bit.NoSquare

// Color is binary: white or black. There is no "both" sentinel — the
// opponent of a color is always !c (see Opponent).
type Color bool

const (
	White Color = true
	Black Color = false
)

// Opponent returns the other color.
func (c Color) Opponent() Color { return !c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is a tagged variant over the six chess piece types.
type PieceKind int

const (
	King PieceKind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NoPiece PieceKind = -1
)

// Piece is a piece of a given kind and color standing on a square.
type Piece struct {
	Kind   PieceKind
	Square Square
	Color  Color
}

// PromotionKind enumerates the pieces a pawn may promote to.
type PromotionKind int

const (
	PromoteQueen PromotionKind = iota
	PromoteRook
	PromoteBishop
	PromoteKnight
	// NoPromotion marks a move that isn't a promotion.
	NoPromotion PromotionKind = -1
)

// normalize defaults any unrecognized or absent promotion choice to queen,
// per the engine's documented behavior (see DESIGN.md "promotion default").
func (p PromotionKind) normalize() PromotionKind {
	switch p {
	case PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight:
		return p
	default:
		return PromoteQueen
	}
}

// MoveType distinguishes the handful of moves that carry extra rules beyond
// "piece goes from A to B".
type MoveType int

const (
	Normal MoveType = iota
	Castling
	Promotion
	EnPassant
)

// Move is a chess move encoded as a 16-bit value:
//
//	0-5:   To square
//	6-11:  From square
//	12-13: Promotion choice (see PromotionKind)
//	14-15: Move type (see MoveType)
type Move uint16

// NewMove builds a normal/castling/en-passant move (promotion defaults to
// queen, which is irrelevant since Promotion() is only consulted for
// promotion moves).
func NewMove(from, to Square, kind MoveType) Move {
	return Move(uint16(to) | uint16(from)<<6 | uint16(PromoteQueen)<<12 | uint16(kind)<<14)
}

// NewPromotionMove builds a promotion move for the given promotion choice.
func NewPromotionMove(from, to Square, promo PromotionKind) Move {
	promo = promo.normalize()
	return Move(uint16(to) | uint16(from)<<6 | uint16(promo)<<12 | uint16(Promotion)<<14)
}

func (m Move) From() Square           { return Square(m>>6) & 0x3F }
func (m Move) To() Square             { return Square(m) & 0x3F }
func (m Move) Promotion() PromotionKind { return PromotionKind(m>>12) & 0x3 }
func (m Move) Type() MoveType         { return MoveType(m>>14) & 0x3 }

// SameEndpoints reports whether two moves share a (from, to) pair,
// ignoring the promotion choice — the comparison the repetition detector
// needs.
func (m Move) SameEndpoints(other Move) bool {
	return m.From() == other.From() && m.To() == other.To()
}

// MaxMoves bounds the number of pseudo-legal/legal moves any single chess
// position can have. See https://www.talkchess.com/forum/viewtopic.php?t=61792
const MaxMoves = 218

// MoveList is a fixed-capacity, allocation-free move buffer.
type MoveList struct {
	Moves [MaxMoves]Move
	Count int
}

// Push appends a move to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Slice returns the populated prefix of the move buffer.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Count] }

// IndexOf returns the index of the first move in the list with the given
// (from, to) pair, or -1 if none matches. The promotion choice is not
// compared: the caller is expected to use the returned move's own promotion
// handling.
func (l *MoveList) IndexOf(from, to Square) int {
	for i := 0; i < l.Count; i++ {
		if l.Moves[i].From() == from && l.Moves[i].To() == to {
			return i
		}
	}
	return -1
}

// CastlingRights is a bitmask over the four castling privileges. Bits only
// ever clear, never set, after game start (chess.ApplyMove only clears them).
type CastlingRights int

const (
	WhiteShort CastlingRights = 1 << iota
	WhiteLong
	BlackShort
	BlackLong
)

// Has reports whether the given right is still held.
func (r CastlingRights) Has(right CastlingRights) bool { return r&right != 0 }

// Clear returns r with the given rights removed. Rights can only shrink.
func (r CastlingRights) Clear(rights CastlingRights) CastlingRights { return r &^ rights }

// MoveResult is returned by Game.ExecuteMove to classify the position after
// the move was applied.
type MoveResult int

const (
	StatusNormal MoveResult = iota
	Check
	Checkmate
	Draw
)

func (r MoveResult) String() string {
	switch r {
	case StatusNormal:
		return "normal"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// DrawReason further classifies a Draw result, supplementing the spec's
// stalemate/repetition pair with insufficient-material and fifty-move
// detection (see SPEC_FULL.md §1.1).
type DrawReason int

const (
	NoDraw DrawReason = iota
	Stalemate
	Repetition
	InsufficientMaterial
	FiftyMove
)
