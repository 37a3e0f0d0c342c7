package chess

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/dsokolov/chesscore/types"
)

// StartingPositionString is the canonical classical starting position,
// returned by Parse for empty or absent input (§4.7).
const StartingPositionString = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

// Parse reads the first four fields of the six-field classical notation
// (piece placement, side to move, castling rights, en-passant square),
// grounded on the teacher's fen.go field-by-field approach. Because this
// module numbers column 0 as file h (§3), scanning square 63 down to 0 in
// order already visits files a..h left to right per rank — no column
// reversal is needed for placement; reversal only matters when converting a
// single square to or from its two-letter algebraic name (see
// squareToString/stringToSquare).
//
// Multiple malformed fields are reported together via multierr rather than
// stopping at the first one, so a caller sees every problem in the input
// at once; every component error still satisfies errors.Is(err,
// types.ErrMalformedPosition).
func Parse(s string) (*Position, error) {
	if strings.TrimSpace(s) == "" {
		s = StartingPositionString
	}

	fields := strings.Fields(s)
	for len(fields) < 4 {
		fields = append(fields, "-")
	}

	var errs error

	board, perr := parsePlacement(fields[0])
	if perr != nil {
		errs = multierr.Append(errs, perr)
	}

	active := types.White
	switch fields[1] {
	case "w", "":
	case "b":
		active = types.Black
	default:
		errs = multierr.Append(errs, malformed("invalid side to move %q", fields[1]))
	}

	rights, rerr := parseCastlingRights(fields[2])
	if rerr != nil {
		errs = multierr.Append(errs, rerr)
	}

	epTarget := types.NoSquare
	if fields[3] != "-" {
		sq, ok := stringToSquare(fields[3])
		if !ok {
			errs = multierr.Append(errs, malformed("invalid en-passant square %q", fields[3]))
		} else {
			epTarget = sq
		}
	}

	if errs != nil {
		return nil, errs
	}

	pos := &Position{
		Board:          board,
		ActiveColor:    active,
		CastlingRights: rights,
		EPTarget:       epTarget,
		FullmoveCount:  1,
	}
	return pos, nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{types.ErrMalformedPosition}, args...)...)
}

func parsePlacement(placement string) (*Board, error) {
	b := NewBoard()
	sq := types.Square(63)

	for _, ch := range placement {
		switch {
		case ch == '/':
			continue
		case ch >= '1' && ch <= '8':
			sq -= types.Square(ch - '0')
		default:
			kind, color, ok := pieceFromChar(byte(ch))
			if !ok {
				return nil, malformed("unknown piece placement character %q", ch)
			}
			if sq < 0 || sq > 63 {
				return nil, malformed("piece placement overruns the board")
			}
			b.Place(kind, sq, color)
			sq--
		}
	}
	return b, nil
}

func pieceFromChar(ch byte) (types.PieceKind, types.Color, bool) {
	color := types.White
	lower := ch
	if ch >= 'a' && ch <= 'z' {
		color = types.Black
	} else {
		lower = ch + ('a' - 'A')
	}

	switch lower {
	case 'k':
		return types.King, color, true
	case 'q':
		return types.Queen, color, true
	case 'r':
		return types.Rook, color, true
	case 'b':
		return types.Bishop, color, true
	case 'n':
		return types.Knight, color, true
	case 'p':
		return types.Pawn, color, true
	default:
		return types.NoPiece, color, false
	}
}

func parseCastlingRights(field string) (types.CastlingRights, error) {
	if field == "-" {
		return 0, nil
	}
	var rights types.CastlingRights
	for _, ch := range field {
		switch ch {
		case 'K':
			rights |= types.WhiteShort
		case 'Q':
			rights |= types.WhiteLong
		case 'k':
			rights |= types.BlackShort
		case 'q':
			rights |= types.BlackLong
		default:
			return 0, malformed("unknown castling rights character %q", ch)
		}
	}
	return rights, nil
}

// Serialize renders pos back into the four-field notation Parse accepts,
// plus the halfmove/fullmove counters for round-tripping.
func Serialize(pos *Position) string {
	var sb strings.Builder

	sb.WriteString(serializePlacement(pos.Board))
	sb.WriteByte(' ')

	if pos.ActiveColor == types.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	sb.WriteString(serializeCastlingRights(pos.CastlingRights))
	sb.WriteByte(' ')

	if pos.EPTarget == types.NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(squareToString(pos.EPTarget))
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullmoveCount))

	return sb.String()
}

func serializePlacement(b *Board) string {
	var sb strings.Builder
	empty := 0

	flush := func() {
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
			empty = 0
		}
	}

	for sq := types.Square(63); sq >= 0; sq-- {
		p := b.At(sq)
		if p == nil {
			empty++
		} else {
			flush()
			sb.WriteByte(pieceToChar(p.Kind, p.Color))
		}
		if sq%8 == 0 {
			flush()
			if sq != 0 {
				sb.WriteByte('/')
			}
		}
	}
	return sb.String()
}

func pieceToChar(kind types.PieceKind, color types.Color) byte {
	var ch byte
	switch kind {
	case types.King:
		ch = 'k'
	case types.Queen:
		ch = 'q'
	case types.Rook:
		ch = 'r'
	case types.Bishop:
		ch = 'b'
	case types.Knight:
		ch = 'n'
	case types.Pawn:
		ch = 'p'
	}
	if color == types.White {
		ch -= 'a' - 'A'
	}
	return ch
}

func serializeCastlingRights(r types.CastlingRights) string {
	var sb strings.Builder
	if r.Has(types.WhiteShort) {
		sb.WriteByte('K')
	}
	if r.Has(types.WhiteLong) {
		sb.WriteByte('Q')
	}
	if r.Has(types.BlackShort) {
		sb.WriteByte('k')
	}
	if r.Has(types.BlackLong) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// SquareToString and StringToSquare convert between a Square and its
// two-letter algebraic name (e.g. "e4"). Here — unlike bulk placement
// scanning — the mirrored column order (§3) does matter: file 'a' is
// column 7, file 'h' is column 0.
func SquareToString(sq types.Square) string { return squareToString(sq) }

// StringToSquare is the exported form of stringToSquare, for consumers
// (the CLI demo, tests) that need to name a square without going through a
// whole position string.
func StringToSquare(s string) (types.Square, bool) { return stringToSquare(s) }

func squareToString(sq types.Square) string {
	row, col := int(sq)/8, int(sq)%8
	file := byte('a' + (7 - col))
	rank := byte('1' + row)
	return string([]byte{file, rank})
}

func stringToSquare(s string) (types.Square, bool) {
	if len(s) != 2 {
		return types.NoSquare, false
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return types.NoSquare, false
	}
	col := 7 - int(file-'a')
	row := int(rank - '1')
	return types.Square(row*8 + col), true
}
