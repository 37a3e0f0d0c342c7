// Package bit implements the low-level bitboard utilities shared by every
// other package in this module: square/bit conversions, row/column
// indexing, and the handful of bit-twiddling primitives move generation
// leans on.
//
// Square numbering follows the convention fixed by this module's data
// model: square 0 is h1, column 0 is file h and column 7 is file a (the
// mirror image of the usual a1=0 numbering). Row and column arithmetic
// below does not care which file a column represents, so the formulas
// are the ones found in any bitboard engine.
package bit

// Board is a 64-bit set whose bit i is 1 iff square i is occupied/attacked/etc.
type Board uint64

// Square is a board square, 0..63.
type Square int

// NoSquare is used where a square is optional (e.g. no en-passant target).
const NoSquare Square = -1

// Row returns the rank index (0-based, 0 = rank 1) of s.
func Row(s Square) int { return int(s) / 8 }

// Col returns the column index (0-based, 0 = file h) of s.
func Col(s Square) int { return int(s) % 8 }

// FromRowCol packs a row/column pair back into a square index.
func FromRowCol(row, col int) Square { return Square(row*8 + col) }

// Of returns the singleton bitboard containing only s.
func Of(s Square) Board { return Board(1) << uint(s) }

const (
	// bitScanMagic is used to hash a bitboard's isolated LSB down to a
	// 6-bit index via the De Bruijn-style perfect-hash scheme.
	bitScanMagic uint64 = 0x07EDD5E59A4E28C2
)

// bitScanLookup maps the top 6 bits of (lsb * bitScanMagic) to the index of
// that LSB. See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf
// section 3.2.
var bitScanLookup = [64]Square{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// Scan returns the index of the least significant set bit of b.
//
// NOTE: Scan returns 63 for an empty bitboard; callers must check b != 0
// themselves when that distinction matters.
func Scan(b Board) Square {
	lsb := uint64(b) & -uint64(b)
	return bitScanLookup[lsb*bitScanMagic>>58]
}

// Pop clears the least significant set bit of *b and returns its index.
func Pop(b *Board) Square {
	s := Scan(*b)
	*b &= *b - 1
	return s
}

// Count returns the number of set bits in b.
func Count(b Board) (cnt int) {
	for ; b > 0; cnt++ {
		b &= b - 1
	}
	return cnt
}

// Empty reports whether b has no set bits.
func Empty(b Board) bool { return b == 0 }
