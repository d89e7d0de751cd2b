package chess

import "strings"

type grid [Size][Size]*Piece

// Board is an occupancy cache. The players' piece lists are the source of
// truth; the grid is rebuilt from them by Refresh.
type Board struct {
	players []*Player
	cells   grid
}

func newBoard(players ...*Player) *Board {
	return &Board{players: players}
}

// PieceAt returns nil for an empty square or an off-board location.
func (b *Board) PieceAt(l Location) *Piece {
	if !l.Valid() {
		return nil
	}
	return b.cells[l.Row][l.Col]
}

func (b *Board) Update(l Location, p *Piece) {
	if !l.Valid() {
		return
	}
	b.cells[l.Row][l.Col] = p
}

func (b *Board) Refresh() {
	var fresh grid
	for _, pl := range b.players {
		for _, p := range pl.pieces {
			fresh[p.loc.Row][p.loc.Col] = p
		}
	}
	b.cells = fresh
}

func (b *Board) snapshot() grid { return b.cells }

func (b *Board) restore(g grid) { b.cells = g }

func (b *Board) Occupied() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] != nil {
				n++
			}
		}
	}
	return n
}

// String is a plain dump, one rank per line, FEN letters and '.' for empty.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			p := b.cells[r][c]
			if p == nil {
				sb.WriteByte('.')
				continue
			}
			sb.WriteRune(p.Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
