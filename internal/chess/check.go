package chess

// EnemyInCheck reports whether any of attacker's pieces attacks the opposing king.
func (g *Game) EnemyInCheck(attacker *Player) bool {
	for _, p := range attacker.pieces {
		if p.CanAttackKing() {
			return true
		}
	}
	return false
}

// PlayerInCheck reports whether pl's own king is attacked.
func (g *Game) PlayerInCheck(pl *Player) bool {
	return g.EnemyInCheck(g.OtherPlayer(pl))
}

func (g *Game) PlayerInCheckmate(pl *Player) bool {
	return g.PlayerInCheck(pl) && pl.Mated()
}

func (g *Game) PlayerInStalemate(pl *Player) bool {
	return !g.PlayerInCheck(pl) && pl.Mated()
}

// InCheckAt reports whether a piece of pl's opponent, other than its king,
// attacks l.
func (g *Game) InCheckAt(pl *Player, l Location) bool {
	for _, p := range g.OtherPlayer(pl).pieces {
		if p.kind == King {
			continue
		}
		if p.CanAttackLocation(l) {
			return true
		}
	}
	return false
}

// MoveChecksSelf plays p to dest as a test move and reports whether p's own
// king is then attacked. The board, p's location and any captured piece are
// restored before it returns, on every path.
func (g *Game) MoveChecksSelf(p *Piece, dest Location) bool {
	if !dest.Valid() {
		return false
	}
	origin := p.loc
	saved := g.board.snapshot()

	victim := g.board.PieceAt(dest)
	if victim != nil && victim.player == p.player {
		victim = nil
	}
	if victim == nil {
		victim = p.enPassantVictim(dest)
	}
	idx := -1
	if victim != nil {
		idx = victim.player.retire(victim)
	}
	defer func() {
		if victim != nil && idx >= 0 {
			victim.player.reinstate(victim, idx)
		}
		p.Move(origin, true)
		g.board.restore(saved)
	}()

	if victim != nil {
		g.board.Update(victim.loc, nil)
	}
	g.board.Update(origin, nil)
	p.Move(dest, true)
	g.board.Update(dest, p)
	return g.PlayerInCheck(p.player)
}

// Status is the state of the game from c's point of view.
func (g *Game) Status(c Color) Status {
	pl := g.Player(c)
	check := g.PlayerInCheck(pl)
	mated := pl.Mated()
	switch {
	case check && mated:
		return Checkmate
	case mated:
		return Stalemate
	case check:
		return Check
	}
	return Ongoing
}
