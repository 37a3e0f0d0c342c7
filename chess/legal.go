package chess

import (
	"github.com/dsokolov/chesscore/attacks"
	"github.com/dsokolov/chesscore/bit"
	"github.com/dsokolov/chesscore/piece"
	"github.com/dsokolov/chesscore/types"
)

// threatLine is one x-ray line from an enemy piece toward the side-to-play's
// king, already screened for the attacker's-own-piece discard rule (§4.4):
// blocker is nil for a direct check, or the single friendly piece standing
// in the line for a pin.
type threatLine struct {
	attacker *types.Piece
	line     types.Bitboard
	blocker  *types.Piece
}

// collectThreatLines walks every piece of the color opposing defender and
// keeps the ones whose x-ray line (package piece's ThreatLine) reaches
// defender's king. A line whose sole intervening piece belongs to the
// attacker's own side is not a threat at all — the attacker's own piece
// already blocks its own ray — and is discarded here rather than in
// package piece, which has no notion of "whose side is this for".
func collectThreatLines(pos *Position, defender types.Color) []threatLine {
	kingSq := pos.Board.King(defender)
	all, _, _ := pos.Board.Occupancy(defender)

	var lines []threatLine
	for _, p := range pos.Board.Pieces() {
		if p.Color == defender {
			continue
		}
		line := piece.ThreatLine(*p, kingSq, all)
		if line == 0 {
			continue
		}

		between := (line &^ bit.Of(p.Square)) & all
		if between == 0 {
			lines = append(lines, threatLine{attacker: p, line: line})
			continue
		}

		blockerSq := bit.Scan(between)
		blocker := pos.Board.At(blockerSq)
		if blocker.Color != defender {
			continue
		}
		lines = append(lines, threatLine{attacker: p, line: line, blocker: blocker})
	}
	return lines
}

func pinLineFor(lines []threatLine, sq types.Square) (types.Bitboard, bool) {
	for _, l := range lines {
		if l.blocker != nil && l.blocker.Square == sq {
			return l.line, true
		}
	}
	return 0, false
}

// threatenedSquares returns every square color `by` attacks, used to filter
// king moves and castling paths. excludeFriendlyKing is removed from
// occupancy first so a slider's ray is not falsely blocked by the very king
// square it is trying to attack through (the king is about to move off it).
func threatenedSquares(pos *Position, by types.Color, excludeFriendlyKing types.Square) types.Bitboard {
	all, _, _ := pos.Board.Occupancy(by)
	occ := all &^ bit.Of(excludeFriendlyKing)

	var result types.Bitboard
	for _, p := range pos.Board.Pieces() {
		if p.Color != by {
			continue
		}
		switch p.Kind {
		case types.King:
			result |= attacks.King(p.Square)
		case types.Knight:
			result |= attacks.Knight(p.Square)
		case types.Pawn:
			result |= attacks.PawnCapture(p.Color, p.Square)
		case types.Rook:
			result |= attacks.Rook(p.Square, occ)
		case types.Bishop:
			result |= attacks.Bishop(p.Square, occ)
		case types.Queen:
			result |= attacks.Queen(p.Square, occ)
		}
	}
	return result
}

// epCapturedSquare returns the square of the pawn an en-passant capture to
// epTarget would remove.
func epCapturedSquare(epTarget types.Square, capturer types.Color) types.Square {
	if capturer == types.White {
		return epTarget - 8
	}
	return epTarget + 8
}

// LegalMovesFor implements §4.4 exactly: pseudo-legal generation (C3),
// narrowed by check/pin filtering (C4/C6), with the en-passant check-block
// augmentation and the horizontal-pin en-passant guard applied for pawns.
func LegalMovesFor(pos *Position, sq types.Square) types.Bitboard {
	p := pos.Board.At(sq)
	if p == nil || p.Color != pos.ActiveColor {
		return 0
	}

	all, own, enemy := pos.Board.Occupancy(pos.ActiveColor)
	pseudo := piece.Moves(*p, piece.Occupancy{All: all, Own: own, Enemy: enemy}, pos.EPTarget)

	lines := collectThreatLines(pos, pos.ActiveColor)
	var checkers []threatLine
	for _, l := range lines {
		if l.blocker == nil {
			checkers = append(checkers, l)
		}
	}

	if p.Kind == types.King {
		opponent := pos.ActiveColor.Opponent()
		threatened := threatenedSquares(pos, opponent, sq)
		pseudo &^= threatened
		if len(checkers) == 0 {
			pseudo |= castlingDestinations(pos, threatened)
		}
		return pseudo
	}

	if len(checkers) >= 2 {
		// Double check: only the king can move.
		return 0
	}
	if len(checkers) == 1 {
		pseudo &= checkers[0].line
		if p.Kind == types.Pawn && pos.EPTarget != types.NoSquare &&
			checkers[0].attacker.Square == epCapturedSquare(pos.EPTarget, pos.ActiveColor) &&
			attacks.PawnCapture(pos.ActiveColor, sq)&bit.Of(pos.EPTarget) != 0 {
			// The checking pawn can itself be removed via en passant.
			pseudo |= bit.Of(pos.EPTarget)
		}
	}

	if pinLine, pinned := pinLineFor(lines, sq); pinned {
		pseudo &= pinLine
	}

	if p.Kind == types.Pawn && pos.EPTarget != types.NoSquare && pseudo&bit.Of(pos.EPTarget) != 0 {
		if exposesKingHorizontally(pos, p, pos.EPTarget) {
			pseudo &^= bit.Of(pos.EPTarget)
		}
	}

	return pseudo
}

func castlingDestinations(pos *Position, threatened types.Bitboard) types.Bitboard {
	var dests types.Bitboard
	if pos.ActiveColor == types.White {
		if canCastle(pos, types.WhiteShort, threatened) {
			dests |= bit.Of(whiteShortKingDest)
		}
		if canCastle(pos, types.WhiteLong, threatened) {
			dests |= bit.Of(whiteLongKingDest)
		}
		return dests
	}
	if canCastle(pos, types.BlackShort, threatened) {
		dests |= bit.Of(blackShortKingDest)
	}
	if canCastle(pos, types.BlackLong, threatened) {
		dests |= bit.Of(blackLongKingDest)
	}
	return dests
}

// exposesKingHorizontally implements the horizontal-pin en-passant guard
// (§4.4): after removing both the capturing pawn and the captured pawn from
// the rank, is the first piece an enemy rook or queen now looking straight
// at the king along that rank?
func exposesKingHorizontally(pos *Position, pawn *types.Piece, epTarget types.Square) bool {
	kingSq := pos.Board.King(pawn.Color)
	if bit.Row(kingSq) != bit.Row(pawn.Square) {
		return false
	}

	capturedSq := epCapturedSquare(epTarget, pawn.Color)
	all, _, _ := pos.Board.Occupancy(pawn.Color)
	occAfter := all &^ bit.Of(pawn.Square) &^ bit.Of(capturedSq)

	for _, step := range [2]int{1, -1} {
		sq := kingSq
		for {
			col := bit.Col(sq) + step
			if col < 0 || col > 7 {
				break
			}
			sq = bit.FromRowCol(bit.Row(sq), col)
			if bit.Of(sq)&occAfter == 0 {
				continue
			}
			occupant := pos.Board.At(sq)
			if occupant.Color != pawn.Color && (occupant.Kind == types.Rook || occupant.Kind == types.Queen) {
				return true
			}
			break
		}
	}
	return false
}

// InCheck reports whether color c's king is currently attacked.
func InCheck(pos *Position, c types.Color) bool {
	for _, l := range collectThreatLines(pos, c) {
		if l.blocker == nil {
			return true
		}
	}
	return false
}

// HasAnyLegalMove reports whether the side to play has at least one legal
// move anywhere on the board — the has_move test §4.6's status classifier
// needs.
func HasAnyLegalMove(pos *Position) bool {
	for _, p := range pos.Board.Pieces() {
		if p.Color != pos.ActiveColor {
			continue
		}
		if LegalMovesFor(pos, p.Square) != 0 {
			return true
		}
	}
	return false
}
