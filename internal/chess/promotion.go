package chess

// Promote replaces an eligible pawn with a new piece of the given kind on the
// same square. The pawn goes to the player's lost pieces and the new piece
// takes its place in the active list.
func (g *Game) Promote(pawn *Piece, kind Kind) (*Piece, error) {
	if pawn == nil || !pawn.EligibleForPromotion() {
		return nil, ErrInvalidPromotion
	}
	switch kind {
	case Queen, Rook, Bishop, Knight:
	default:
		return nil, ErrInvalidPromotion
	}
	pl := pawn.player
	i := indexOf(pl.pieces, pawn)
	if i < 0 {
		return nil, ErrInvalidPromotion
	}
	promoted := newPiece(pl, kind, pawn.loc)
	promoted.moved = true
	pl.pieces[i] = promoted
	pl.lost = append(pl.lost, pawn)
	g.board.Refresh()
	return promoted, nil
}
