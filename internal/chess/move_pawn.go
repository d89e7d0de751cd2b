package chess

func (p *Piece) pawnMoves(from Location) []Location {
	g := p.game()
	var moves []Location

	one := from.Add(p.direction, 0)
	if one.Valid() && g.PieceAt(one) == nil {
		moves = append(moves, one)
		two := from.Add(2*p.direction, 0)
		if !p.moved && two.Valid() && g.PieceAt(two) == nil {
			moves = append(moves, two)
		}
	}

	for _, dc := range [2]int{-1, 1} {
		diag := from.Add(p.direction, dc)
		if !diag.Valid() {
			continue
		}
		switch {
		case g.EnemyAt(p.player, diag):
			moves = append(moves, diag)
		case g.PieceAt(diag) == nil && p.canEnPassant(g.PieceAt(from.Add(0, dc))):
			moves = append(moves, diag)
		}
	}
	return moves
}

func (p *Piece) canEnPassant(q *Piece) bool {
	return q != nil && q.kind == Pawn && q.player != p.player && q.vulnerable
}

// enPassantVictim is the pawn captured by moving p to dest, if that move is an
// en passant capture.
func (p *Piece) enPassantVictim(dest Location) *Piece {
	if p.kind != Pawn || dest.Col == p.loc.Col || p.game().PieceAt(dest) != nil {
		return nil
	}
	behind := p.game().PieceAt(dest.Add(-p.direction, 0))
	if behind == nil || behind.loc.Row != p.loc.Row || !p.canEnPassant(behind) {
		return nil
	}
	return behind
}

func (p *Piece) captureEnPassant(dest Location) {
	if victim := p.enPassantVictim(dest); victim != nil {
		victim.player.RemovePiece(victim)
	}
}
