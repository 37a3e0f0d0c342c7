// Command chessrepl is a terminal driver over the game façade: it prints
// the board, accepts moves typed as two squares ("e2e4"), and reports
// status after each move. It is a consumer of the engine's public surface,
// not part of the engine itself — same standing as the matchmaking/HTTP
// collaborators named in the engine's scope (SPEC_FULL.md §2, A3).
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dsokolov/chesscore/chess"
	"github.com/dsokolov/chesscore/game"
	"github.com/dsokolov/chesscore/types"
)

// pieceSymbols mirrors the teacher's Unicode-piece board printer, indexed
// [color][kind].
var pieceSymbols = [2][6]rune{
	{'♔', '♕', '♖', '♗', '♘', '♙'}, // white
	{'♚', '♛', '♜', '♝', '♞', '♟'}, // black
}

func main() {
	g, err := game.New("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to start game:", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	printBoard(g)

	for {
		fmt.Printf("%s to move (e.g. e2e4, or q to quit): ", g.SideToPlay())
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "q" || line == "quit" {
			return
		}

		from, to, promo, ok := parseMoveInput(line)
		if !ok {
			fmt.Println("could not parse that move, try e.g. e2e4 or a7a8q")
			continue
		}

		result, err := g.ExecuteMove(from, to, promo)
		if err != nil {
			fmt.Println("rejected:", err)
			continue
		}

		printBoard(g)
		reportResult(g, result)
		if result == types.Checkmate || result == types.Draw {
			return
		}
	}
}

func parseMoveInput(s string) (from, to types.Square, promo types.PromotionKind, ok bool) {
	promo = types.NoPromotion
	if len(s) != 4 && len(s) != 5 {
		return 0, 0, promo, false
	}
	from, ok = chess.StringToSquare(s[0:2])
	if !ok {
		return 0, 0, promo, false
	}
	to, ok = chess.StringToSquare(s[2:4])
	if !ok {
		return 0, 0, promo, false
	}
	if len(s) == 5 {
		promo, ok = promotionFromChar(s[4])
		if !ok {
			return 0, 0, promo, false
		}
	}
	return from, to, promo, true
}

func promotionFromChar(ch byte) (types.PromotionKind, bool) {
	switch ch {
	case 'q':
		return types.PromoteQueen, true
	case 'r':
		return types.PromoteRook, true
	case 'b':
		return types.PromoteBishop, true
	case 'n':
		return types.PromoteKnight, true
	default:
		return types.NoPromotion, false
	}
}

func reportResult(g *game.Game, result types.MoveResult) {
	switch result {
	case types.Check:
		fmt.Println("check")
	case types.Checkmate:
		fmt.Printf("checkmate: %s wins\n", g.SideToPlay().Opponent())
	case types.Draw:
		fmt.Println("draw")
	}
}

func printBoard(g *game.Game) {
	for row := 7; row >= 0; row-- {
		fmt.Printf("%d  ", row+1)
		for col := 7; col >= 0; col-- {
			sq := types.Square(row*8 + col)
			symbol := '.'
			if k, c, ok := pieceAt(g, sq); ok {
				symbol = pieceSymbols[colorIndex(c)][k]
			}
			fmt.Printf("%c  ", symbol)
		}
		fmt.Println()
	}
	fmt.Println("   a  b  c  d  e  f  g  h")
}

func pieceAt(g *game.Game, sq types.Square) (types.PieceKind, types.Color, bool) {
	return g.PieceAt(sq)
}

func colorIndex(c types.Color) int {
	if c == types.White {
		return 0
	}
	return 1
}
