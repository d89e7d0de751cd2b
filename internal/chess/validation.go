package chess

// Available reports whether pl may land on l: the square is empty or holds an
// opposing piece.
func (g *Game) Available(pl *Player, l Location) bool {
	at := g.board.PieceAt(l)
	return at == nil || at.player != pl
}

// Reachable reports whether nothing stands between the piece and dest. Only
// the squares strictly between count; the destination's occupant never
// blocks. Knights jump. A destination that is not on a straight or diagonal
// line from the piece is unreachable for everything else.
func (g *Game) Reachable(p *Piece, dest Location) bool {
	if p.kind == Knight {
		return true
	}
	from := p.loc
	dr, dc := dest.Row-from.Row, dest.Col-from.Col
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return false
	}
	step := Location{Row: sign(dr), Col: sign(dc)}
	for l := from.Add(step.Row, step.Col); l != dest; l = l.Add(step.Row, step.Col) {
		if !l.Valid() {
			return false
		}
		if g.board.PieceAt(l) != nil {
			return false
		}
	}
	return true
}

func (g *Game) ValidMove(p *Piece, dest Location) bool {
	return p.LegalMove(dest) && g.Available(p.player, dest) && g.Reachable(p, dest)
}

// ValidMoves lists every destination the piece may actually move to.
func (g *Game) ValidMoves(p *Piece) []Location {
	var out []Location
	for _, m := range p.candidates(p.loc) {
		if g.Available(p.player, m) && g.Reachable(p, m) && !g.MoveChecksSelf(p, m) {
			out = append(out, m)
		}
	}
	if p.kind == King {
		out = append(out, p.castleMoves()...)
	}
	return out
}
