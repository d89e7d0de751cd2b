// Package render draws a chess board for terminals and browsers.
package render

import (
	"strconv"
	"strings"

	"chessrules/internal/chess"
)

const (
	darkTile  = "\x1b[48;2;77;40;0m"
	lightTile = "\x1b[48;2;128;66;0m"
	blackText = "\x1b[38;2;0;0;0m"
	whiteText = "\x1b[38;2;255;243;230m"
	reset     = "\x1b[0m"

	emptyTile = "□"
	files     = "  a b c d e f g h \n"
)

var glyphs = [2][7]string{
	chess.White: {chess.King: "♔", chess.Queen: "♕", chess.Rook: "♖", chess.Bishop: "♗", chess.Knight: "♘", chess.Pawn: "♙"},
	chess.Black: {chess.King: "♚", chess.Queen: "♛", chess.Rook: "♜", chess.Bishop: "♝", chess.Knight: "♞", chess.Pawn: "♟"},
}

// Glyph is the Unicode chess symbol for p.
func Glyph(p *chess.Piece) string {
	return glyphs[p.Color()][p.Kind()]
}

type textConfig struct {
	color     bool
	highlight map[chess.Location]bool
}

type TextOption func(*textConfig)

// WithColor paints tiles and pieces with 24-bit ANSI escapes.
func WithColor() TextOption {
	return func(c *textConfig) { c.color = true }
}

// WithHighlight marks squares, typically a piece's valid moves, with a dot.
func WithHighlight(locs ...chess.Location) TextOption {
	return func(c *textConfig) {
		if c.highlight == nil {
			c.highlight = make(map[chess.Location]bool, len(locs))
		}
		for _, l := range locs {
			c.highlight[l] = true
		}
	}
}

// Text renders the board with rank numbers on both sides and file letters
// above and below. Row 0 is printed first as rank 8.
func Text(b *chess.Board, opts ...TextOption) string {
	var cfg textConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var sb strings.Builder
	sb.WriteString(files)
	for r := 0; r < chess.Size; r++ {
		rank := strconv.Itoa(chess.Size - r)
		sb.WriteString(rank)
		sb.WriteByte(' ')
		for c := 0; c < chess.Size; c++ {
			sb.WriteString(cfg.tile(b, chess.Loc(r, c)))
		}
		sb.WriteByte(' ')
		sb.WriteString(rank)
		sb.WriteByte('\n')
	}
	sb.WriteString(files)
	return sb.String()
}

func (cfg *textConfig) tile(b *chess.Board, l chess.Location) string {
	symbol := emptyTile
	p := b.PieceAt(l)
	switch {
	case p != nil:
		symbol = Glyph(p)
	case cfg.highlight[l]:
		symbol = "•"
	}
	symbol += " "
	if !cfg.color {
		return symbol
	}

	if p != nil {
		fg := whiteText
		if p.Color() == chess.Black {
			fg = blackText
		}
		symbol = fg + symbol + reset
	}
	bg := lightTile
	if (l.Row+l.Col)%2 == 1 {
		bg = darkTile
	}
	return bg + symbol + reset
}
