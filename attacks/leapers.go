package attacks

import "github.com/dsokolov/chesscore/bit"

// king returns the bitboard of squares one step away from a single king
// bitboard, clipped so moves don't wrap around a board edge.
func king(k bit.Board) bit.Board {
	return (k & notCol0 >> 9) |
		(k >> 8) |
		(k & notCol7 >> 7) |
		(k & notCol0 >> 1) |
		(k & notCol7 << 1) |
		(k & notCol0 << 7) |
		(k << 8) |
		(k & notCol7 << 9)
}

// knight returns the bitboard of L-shaped destinations from a single
// knight bitboard, clipped at board edges.
func knight(n bit.Board) bit.Board {
	return (n & notCol0 >> 17) |
		(n & notCol7 >> 15) |
		(n & notCol01 >> 10) |
		(n & notCol67 >> 6) |
		(n & notCol01 << 6) |
		(n & notCol67 << 10) |
		(n & notCol0 << 15) |
		(n & notCol7 << 17)
}

// pawnCaptures returns the two diagonal capture squares for a single pawn
// bitboard of the given color.
func pawnCaptures(p bit.Board, white bool) bit.Board {
	if white {
		return (p & notCol0 << 7) | (p & notCol7 << 9)
	}
	return (p & notCol0 >> 9) | (p & notCol7 >> 7)
}
