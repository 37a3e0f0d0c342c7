package chess

import (
	"github.com/dsokolov/chesscore/bit"
	"github.com/dsokolov/chesscore/types"
)

// Home squares under this module's mirrored numbering (column 0 = file h).
// Row 0 is white's back rank, row 7 is black's.
var (
	whiteKingHome  = squareAt(0, 3) // e1
	blackKingHome  = squareAt(7, 3) // e8
	whiteRookShort = squareAt(0, 0) // h1
	whiteRookLong  = squareAt(0, 7) // a1
	blackRookShort = squareAt(7, 0) // h8
	blackRookLong  = squareAt(7, 7) // a8

	whiteShortKingDest = squareAt(0, 1) // g1
	whiteShortRookDest = squareAt(0, 2) // f1
	whiteLongKingDest  = squareAt(0, 5) // c1
	whiteLongRookDest  = squareAt(0, 4) // d1
	blackShortKingDest = squareAt(7, 1) // g8
	blackShortRookDest = squareAt(7, 2) // f8
	blackLongKingDest  = squareAt(7, 5) // c8
	blackLongRookDest  = squareAt(7, 4) // d8
)

// ApplyMove mutates p by performing m, grounded on the teacher's
// Position.MakeMove switch over move type. The caller is responsible for
// ensuring m is at least pseudo-legal; ApplyMove does not check legality.
func ApplyMove(p *Position, m types.Move) {
	from, to := m.From(), m.To()
	moved := p.Board.At(from)
	captured := p.Board.At(to)

	p.HalfmoveClock++
	if captured != nil || moved.Kind == types.Pawn {
		p.HalfmoveClock = 0
	}

	switch m.Type() {
	case types.EnPassant:
		p.Board.MovePiece(from, to)
		if moved.Color == types.White {
			p.Board.Remove(to - 8)
		} else {
			p.Board.Remove(to + 8)
		}

	case types.Castling:
		p.Board.MovePiece(from, to)
		switch to {
		case whiteShortKingDest:
			p.Board.MovePiece(whiteRookShort, whiteShortRookDest)
		case whiteLongKingDest:
			p.Board.MovePiece(whiteRookLong, whiteLongRookDest)
		case blackShortKingDest:
			p.Board.MovePiece(blackRookShort, blackShortRookDest)
		case blackLongKingDest:
			p.Board.MovePiece(blackRookLong, blackLongRookDest)
		}

	case types.Promotion:
		color := moved.Color
		p.Board.Remove(from)
		p.Board.Remove(to)
		p.Board.Place(promotionPieceKind(m.Promotion()), to, color)

	default:
		p.Board.MovePiece(from, to)
	}

	updateCastlingRights(p, moved, from, to)

	p.EPTarget = types.NoSquare
	if moved.Kind == types.Pawn {
		if to-from == 16 {
			p.EPTarget = from + 8
		} else if from-to == 16 {
			p.EPTarget = from - 8
		}
	}

	if p.ActiveColor == types.Black {
		p.FullmoveCount++
	}
	p.ActiveColor = p.ActiveColor.Opponent()

	p.History = append(p.History, m)
}

func promotionPieceKind(promo types.PromotionKind) types.PieceKind {
	switch promo {
	case types.PromoteRook:
		return types.Rook
	case types.PromoteBishop:
		return types.Bishop
	case types.PromoteKnight:
		return types.Knight
	default:
		return types.Queen
	}
}

// updateCastlingRights clears rights monotonically: a king or rook moving
// off its home square clears that side's right, and a rook captured on its
// home square clears the matching enemy right (§4.5).
func updateCastlingRights(p *Position, moved *types.Piece, from, to types.Square) {
	switch from {
	case whiteKingHome:
		if moved.Kind == types.King {
			p.CastlingRights = p.CastlingRights.Clear(types.WhiteShort | types.WhiteLong)
		}
	case blackKingHome:
		if moved.Kind == types.King {
			p.CastlingRights = p.CastlingRights.Clear(types.BlackShort | types.BlackLong)
		}
	case whiteRookShort:
		p.CastlingRights = p.CastlingRights.Clear(types.WhiteShort)
	case whiteRookLong:
		p.CastlingRights = p.CastlingRights.Clear(types.WhiteLong)
	case blackRookShort:
		p.CastlingRights = p.CastlingRights.Clear(types.BlackShort)
	case blackRookLong:
		p.CastlingRights = p.CastlingRights.Clear(types.BlackLong)
	}

	switch to {
	case whiteRookShort:
		p.CastlingRights = p.CastlingRights.Clear(types.WhiteShort)
	case whiteRookLong:
		p.CastlingRights = p.CastlingRights.Clear(types.WhiteLong)
	case blackRookShort:
		p.CastlingRights = p.CastlingRights.Clear(types.BlackShort)
	case blackRookLong:
		p.CastlingRights = p.CastlingRights.Clear(types.BlackLong)
	}
}

// canCastle reports whether castling on the given wing is currently legal:
// the right is held, the squares between king and rook are empty, and
// neither the king's square nor any square it passes through is attacked.
// threatened is the full bitboard of squares the opponent attacks.
func canCastle(p *Position, right types.CastlingRights, threatened types.Bitboard) bool {
	if !p.CastlingRights.Has(right) {
		return false
	}
	all, _, _ := p.Board.Occupancy(p.ActiveColor)

	var between, kingPath types.Bitboard
	switch right {
	case types.WhiteShort:
		between = bit.Of(whiteShortRookDest) | bit.Of(whiteShortKingDest)
		kingPath = bit.Of(whiteKingHome) | bit.Of(whiteShortRookDest) | bit.Of(whiteShortKingDest)
	case types.WhiteLong:
		between = bit.Of(whiteLongKingDest) | bit.Of(whiteLongRookDest) | bit.Of(squareAt(0, 6))
		kingPath = bit.Of(whiteKingHome) | bit.Of(whiteLongRookDest) | bit.Of(whiteLongKingDest)
	case types.BlackShort:
		between = bit.Of(blackShortRookDest) | bit.Of(blackShortKingDest)
		kingPath = bit.Of(blackKingHome) | bit.Of(blackShortRookDest) | bit.Of(blackShortKingDest)
	case types.BlackLong:
		between = bit.Of(blackLongKingDest) | bit.Of(blackLongRookDest) | bit.Of(squareAt(7, 6))
		kingPath = bit.Of(blackKingHome) | bit.Of(blackLongRookDest) | bit.Of(blackLongKingDest)
	default:
		return false
	}

	return all&between == 0 && threatened&kingPath == 0
}
