package chess

// castleMoves returns the king's castling destinations, one per friendly rook
// that CanCastle accepts.
func (p *Piece) castleMoves() []Location {
	var moves []Location
	for _, rook := range p.player.pieces {
		if rook.kind != Rook || !p.CanCastle(rook) {
			continue
		}
		moves = append(moves, p.loc.Add(0, 2*sign(rook.loc.Col-p.loc.Col)))
	}
	return moves
}

// CanCastle reports whether the king may castle with rook: both unmoved on the
// same row, nothing between them, the king not in check, and neither the
// square it crosses nor the one it lands on attacked.
func (p *Piece) CanCastle(rook *Piece) bool {
	if p.kind != King || rook == nil || rook.kind != Rook || rook.player != p.player {
		return false
	}
	if p.moved || rook.moved || rook.loc.Row != p.loc.Row {
		return false
	}
	dir := sign(rook.loc.Col - p.loc.Col)
	if dir == 0 || abs(rook.loc.Col-p.loc.Col) < 3 {
		return false
	}
	g := p.game()
	if !g.Reachable(p, rook.loc) {
		return false
	}
	if g.PlayerInCheck(p.player) {
		return false
	}
	pass := p.loc.Add(0, dir)
	land := p.loc.Add(0, 2*dir)
	// InCheckAt is the cheap screen; the simulation also sees the enemy king.
	if g.InCheckAt(p.player, pass) || g.InCheckAt(p.player, land) {
		return false
	}
	return !g.MoveChecksSelf(p, pass) && !g.MoveChecksSelf(p, land)
}

// moveCastlingRook brings the rook on the side of dest over the king, to the
// square next to dest.
func (p *Piece) moveCastlingRook(dest Location) {
	dir := sign(dest.Col - p.loc.Col)
	for l := dest.Add(0, dir); l.Valid(); l = l.Add(0, dir) {
		rook := p.game().PieceAt(l)
		if rook == nil {
			continue
		}
		if rook.kind == Rook && rook.player == p.player {
			rook.Move(dest.Add(0, -dir), false)
		}
		return
	}
}
