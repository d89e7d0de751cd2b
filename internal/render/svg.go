package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"chessrules/internal/chess"
)

const defaultSquare = 60

var (
	lightFill = "fill:rgb(128,66,0)"
	darkFill  = "fill:rgb(77,40,0)"
	markFill  = "fill:rgb(230,200,60);fill-opacity:0.45"
)

// SVG writes the board as a standalone SVG document. square is the side of
// one tile in pixels; zero or less picks the default. Highlighted squares get
// a translucent overlay.
func SVG(w io.Writer, b *chess.Board, square int, highlight ...chess.Location) {
	if square <= 0 {
		square = defaultSquare
	}
	side := square * chess.Size
	canvas := svg.New(w)
	canvas.Start(side, side)
	canvas.Title("chess board")

	canvas.Gid("tiles")
	for r := 0; r < chess.Size; r++ {
		for c := 0; c < chess.Size; c++ {
			fill := lightFill
			if (r+c)%2 == 1 {
				fill = darkFill
			}
			canvas.Rect(c*square, r*square, square, square, fill)
		}
	}
	canvas.Gend()

	if len(highlight) > 0 {
		canvas.Gid("highlight")
		for _, l := range highlight {
			if l.Valid() {
				canvas.Rect(l.Col*square, l.Row*square, square, square, markFill)
			}
		}
		canvas.Gend()
	}

	canvas.Gid("pieces")
	font := fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-size:%dpx", square*3/4)
	for r := 0; r < chess.Size; r++ {
		for c := 0; c < chess.Size; c++ {
			p := b.PieceAt(chess.Loc(r, c))
			if p == nil {
				continue
			}
			fill := "fill:rgb(255,243,230)"
			if p.Color() == chess.Black {
				fill = "fill:rgb(0,0,0)"
			}
			canvas.Text(c*square+square/2, r*square+square/2, Glyph(p), font+";"+fill)
		}
	}
	canvas.Gend()
	canvas.End()
}
