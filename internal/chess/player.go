package chess

// Player owns its active pieces and keeps the ones it has lost.
type Player struct {
	color  Color
	game   *Game
	pieces []*Piece
	lost   []*Piece
}

func newPlayer(g *Game, c Color) *Player {
	return &Player{color: c, game: g}
}

func (pl *Player) Color() Color { return pl.color }

func (pl *Player) Pieces() []*Piece {
	return append([]*Piece(nil), pl.pieces...)
}

func (pl *Player) LostPieces() []*Piece {
	return append([]*Piece(nil), pl.lost...)
}

// RemovePiece moves p from the active list to the lost list.
func (pl *Player) RemovePiece(p *Piece) bool {
	if pl.retire(p) < 0 {
		return false
	}
	pl.lost = append(pl.lost, p)
	return true
}

// RevivePiece returns a lost piece to the active list.
func (pl *Player) RevivePiece(p *Piece) bool {
	i := indexOf(pl.lost, p)
	if i < 0 {
		return false
	}
	pl.lost = append(pl.lost[:i], pl.lost[i+1:]...)
	pl.pieces = append(pl.pieces, p)
	return true
}

// retire drops p from the active list without recording it as lost and
// returns its former index, or -1.
func (pl *Player) retire(p *Piece) int {
	i := indexOf(pl.pieces, p)
	if i < 0 {
		return -1
	}
	pl.pieces = append(pl.pieces[:i], pl.pieces[i+1:]...)
	return i
}

// reinstate puts p back at index i, undoing retire.
func (pl *Player) reinstate(p *Piece, i int) {
	if i < 0 || i > len(pl.pieces) {
		i = len(pl.pieces)
	}
	pl.pieces = append(pl.pieces, nil)
	copy(pl.pieces[i+1:], pl.pieces[i:])
	pl.pieces[i] = p
}

func (pl *Player) King() *Piece {
	for _, p := range pl.pieces {
		if p.kind == King {
			return p
		}
	}
	return nil
}

func (pl *Player) KingLocation() (Location, bool) {
	k := pl.King()
	if k == nil {
		return Location{}, false
	}
	return k.loc, true
}

// Mated reports that none of the player's pieces can move.
func (pl *Player) Mated() bool {
	for _, p := range pl.pieces {
		if p.CanMove() {
			return false
		}
	}
	return true
}

// ResetEnPassant clears the en passant exposure of the player's pawns. The
// turn sequencer calls it when the player's ply begins.
func (pl *Player) ResetEnPassant() {
	for _, p := range pl.pieces {
		p.vulnerable = false
	}
}

func indexOf(list []*Piece, p *Piece) int {
	for i, q := range list {
		if q == p {
			return i
		}
	}
	return -1
}
