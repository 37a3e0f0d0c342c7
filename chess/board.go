// Package chess implements the rules engine: board representation, special
// moves, legal-move filtering, game status, repetition, and the
// position-string grammar. Piece movement and threat-line primitives live
// in package piece; attack tables live in package attacks. This package
// wires them together into a single mutable position.
package chess

import (
	"github.com/dsokolov/chesscore/bit"
	"github.com/dsokolov/chesscore/types"
)

// Board holds the piece placement for one position, in two redundant
// representations kept in sync by Place, Remove and MovePiece (Design Note 9): a dense
// by-square array for O(1) occupant lookup, and an ordered slice for
// iteration order that does not depend on square numbering.
type Board struct {
	squares [64]*types.Piece
	pieces  []*types.Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{pieces: make([]*types.Piece, 0, 32)}
}

// At returns the piece occupying sq, or nil if the square is empty.
func (b *Board) At(sq types.Square) *types.Piece {
	return b.squares[sq]
}

// Pieces returns the ordered collection of pieces currently on the board.
// Callers must not retain the slice across a mutating call.
func (b *Board) Pieces() []*types.Piece {
	return b.pieces
}

// Place puts a new piece on the board. The square must be empty.
func (b *Board) Place(kind types.PieceKind, sq types.Square, color types.Color) *types.Piece {
	p := &types.Piece{Kind: kind, Square: sq, Color: color}
	b.squares[sq] = p
	b.pieces = append(b.pieces, p)
	return p
}

// Remove takes the piece at sq off the board, if any.
func (b *Board) Remove(sq types.Square) {
	p := b.squares[sq]
	if p == nil {
		return
	}
	b.squares[sq] = nil
	for i, q := range b.pieces {
		if q == p {
			b.pieces[i] = b.pieces[len(b.pieces)-1]
			b.pieces = b.pieces[:len(b.pieces)-1]
			break
		}
	}
}

// MovePiece relocates the piece on from to to, capturing whatever sat on to.
// Together with Place and Remove, it is one of the only three functions in
// the package that mutate the board representations (Design Note 9); every
// other mutation — special move handling included — is expressed in terms
// of Place/Remove/MovePiece.
func (b *Board) MovePiece(from, to types.Square) {
	p := b.squares[from]
	if p == nil {
		return
	}
	b.Remove(to)
	b.squares[from] = nil
	b.squares[to] = p
	p.Square = to
}

// Occupancy returns the three bitboards move generation needs for color c:
// every occupied square, c's own pieces, and the opponent's.
func (b *Board) Occupancy(c types.Color) (all, own, enemy types.Bitboard) {
	for _, p := range b.pieces {
		sq := bit.Of(p.Square)
		all |= sq
		if p.Color == c {
			own |= sq
		} else {
			enemy |= sq
		}
	}
	return all, own, enemy
}

// King returns the square of color c's king, the first one found in the
// piece collection. Panics if the board holds no king of color c — a
// violated structural invariant (§3); a second king of the same color is
// not detected.
func (b *Board) King(c types.Color) types.Square {
	for _, p := range b.pieces {
		if p.Kind == types.King && p.Color == c {
			return p.Square
		}
	}
	panic("chess: board has no king of the given color")
}

// Clone returns a deep copy of the board, safe to mutate independently.
func (b *Board) Clone() *Board {
	clone := &Board{pieces: make([]*types.Piece, 0, len(b.pieces))}
	for sq, p := range b.squares {
		if p == nil {
			continue
		}
		cp := *p
		clone.squares[sq] = &cp
		clone.pieces = append(clone.pieces, &cp)
	}
	return clone
}
