package attacks

import "github.com/dsokolov/chesscore/bit"

// bishopRay walks all four diagonal rays from a single bishop bitboard,
// stopping (inclusively) at the first blocker on each ray. The resulting
// bitboard includes any blocker squares, since those are valid capture
// targets.
func bishopRay(bishop, occupancy bit.Board) (attacks bit.Board) {
	for i := bishop & notCol0 >> 9; i != 0; i = i & notCol0 >> 9 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notCol7 >> 7; i != 0; i = i & notCol7 >> 7 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notCol0 << 7; i != 0; i = i & notCol0 << 7 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notCol7 << 9; i != 0; i = i & notCol7 << 9 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	return attacks
}

// rookRay walks the four orthogonal rays from a single rook bitboard,
// stopping (inclusively) at the first blocker on each ray.
func rookRay(rook, occupancy bit.Board) (attacks bit.Board) {
	for i := rook & notCol0 >> 1; i != 0; i = i & notCol0 >> 1 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & notCol7 << 1; i != 0; i = i & notCol7 << 1 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & notRow0 >> 8; i != 0; i = i & notRow0 >> 8 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & notRow7 << 8; i != 0; i = i & notRow7 << 8 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	return attacks
}

// bishopOccupancyMask returns the "relevant occupancy" squares for a bishop
// on sq — the only squares whose occupancy can change its attack set. Board
// edges are excluded since a blocker there can never hide a further square.
func bishopOccupancyMask(sq bit.Square) bit.Board {
	bishop := bit.Of(sq)
	var occ bit.Board

	notCol0Row0 := notCol0 & notRow0
	notCol7Row0 := notCol7 & notRow0
	notCol0Row7 := notCol0 & notRow7
	notCol7Row7 := notCol7 & notRow7

	for i := bishop & notCol0 >> 9; i&notCol0Row0 != 0; i >>= 9 {
		occ |= i
	}
	for i := bishop & notCol7 >> 7; i&notCol7Row0 != 0; i >>= 7 {
		occ |= i
	}
	for i := bishop & notCol0 << 7; i&notCol0Row7 != 0; i <<= 7 {
		occ |= i
	}
	for i := bishop & notCol7 << 9; i&notCol7Row7 != 0; i <<= 9 {
		occ |= i
	}
	return occ
}

// rookOccupancyMask returns the "relevant occupancy" squares for a rook on
// sq, excluding the far edge of each ray.
func rookOccupancyMask(sq bit.Square) bit.Board {
	rook := bit.Of(sq)
	var occ bit.Board

	for i := rook & notRow0 >> 8; i&notRow0 != 0; i >>= 8 {
		occ |= i
	}
	for i := rook & notCol0 >> 1; i&notCol0 != 0; i >>= 1 {
		occ |= i
	}
	for i := rook & notCol7 << 1; i&notCol7 != 0; i <<= 1 {
		occ |= i
	}
	for i := rook & notRow7 << 8; i&notRow7 != 0; i <<= 8 {
		occ |= i
	}
	return occ
}

// subsetOf returns the occupancy subset of relevantOccupancy identified by
// key, treating each set bit of relevantOccupancy (scanned LSB-first) as one
// bit of key.
func subsetOf(key, relevantBitCount int, relevantOccupancy bit.Board) (occ bit.Board) {
	for i := 0; i < relevantBitCount; i++ {
		sq := bit.Pop(&relevantOccupancy)
		if key&(1<<i) != 0 {
			occ |= bit.Of(sq)
		}
	}
	return occ
}
