package chess

import "fmt"

func (g *Game) ToMove() Color { return g.toMove }

func (g *Game) SetToMove(c Color) {
	if c == White || c == Black {
		g.toMove = c
	}
}

// LegalMoves lists every move available to c, in the order of c's piece list.
func (g *Game) LegalMoves(c Color) []Move {
	pl := g.Player(c)
	if pl == nil {
		return nil
	}
	var out []Move
	for _, p := range pl.Pieces() {
		for _, to := range g.ValidMoves(p) {
			out = append(out, Move{Piece: p, From: p.loc, To: to})
		}
	}
	return out
}

// Play is one ply for the side to move: it resets that side's en passant
// exposure, validates and commits the move, promotes a pawn reaching the last
// rank (to a queen when promo is KindNone) and passes the turn. The returned
// status is the new side to move's.
func (g *Game) Play(from, to Location, promo Kind) (Status, error) {
	switch promo {
	case KindNone, Queen, Rook, Bishop, Knight:
	default:
		return Ongoing, fmt.Errorf("%w: %s", ErrInvalidPromotion, promo)
	}
	pl := g.players[g.toMove]
	pl.ResetEnPassant()
	if st := g.Status(g.toMove); st.Over() {
		return st, ErrGameOver
	}

	p := g.board.PieceAt(from)
	if p == nil {
		return Ongoing, fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	if p.player != pl {
		return Ongoing, ErrNotYourTurn
	}
	if !g.ValidMove(p, to) {
		return Ongoing, fmt.Errorf("%w: %s to %s", ErrIllegalMove, from, to)
	}

	g.MovePiece(p, to)
	if p.EligibleForPromotion() {
		if promo == KindNone {
			promo = Queen
		}
		if _, err := g.Promote(p, promo); err != nil {
			return Ongoing, err
		}
	}

	g.toMove = g.toMove.Opposite()
	return g.Status(g.toMove), nil
}
