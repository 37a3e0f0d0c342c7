// Package attacks precomputes and looks up per-square attack bitboards for
// every piece kind: king and knight step tables, pawn push/capture tables,
// and magic-bitboard-indexed sliding tables for rooks and bishops (queens
// compose the two). Building these tables is the only meaningfully
// expensive setup cost in the engine, so it happens once, lazily, behind
// a sync.Once, and the resulting tables are immutable and safe to share
// across any number of concurrently-read games.
//
// Square numbering follows types.Square: square 0 is h1, column 0 is file
// h, column 7 is file a. The masks below only encode board-edge geometry
// (which column index is an edge), which is identical under that mirrored
// numbering to the usual a1=0 scheme — only the file *letters* differ,
// and those are handled in package chess's notation parser, not here.
package attacks

import "github.com/dsokolov/chesscore/bit"

const (
	notCol0  bit.Board = 0xFEFEFEFEFEFEFEFE // excludes column 0 (file h)
	notCol7  bit.Board = 0x7F7F7F7F7F7F7F7F // excludes column 7 (file a)
	notCol01 bit.Board = 0xFCFCFCFCFCFCFCFC // excludes columns 0-1
	notCol67 bit.Board = 0x3F3F3F3F3F3F3F3F // excludes columns 6-7
	notRow0  bit.Board = 0xFFFFFFFFFFFFFF00 // excludes rank 1
	notRow7  bit.Board = 0x00FFFFFFFFFFFFFF // excludes rank 8

	row1 bit.Board = 0xFF00             // rank 2
	row6 bit.Board = 0xFF000000000000   // rank 7
	row7 bit.Board = 0xFF00000000000000 // rank 8
)
