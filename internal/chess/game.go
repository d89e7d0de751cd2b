package chess

// Game ties two players to the board cache. It is not safe for concurrent use.
type Game struct {
	players [2]*Player
	board   *Board
	toMove  Color
}

// NewEmptyGame returns a game with no pieces, White to move.
func NewEmptyGame() *Game {
	g := &Game{toMove: White}
	g.players[White] = newPlayer(g, White)
	g.players[Black] = newPlayer(g, Black)
	g.board = newBoard(g.players[:]...)
	return g
}

func (g *Game) Board() *Board { return g.board }

func (g *Game) Players() []*Player { return g.players[:] }

func (g *Game) Player(c Color) *Player {
	if c != White && c != Black {
		return nil
	}
	return g.players[c]
}

func (g *Game) OtherPlayer(pl *Player) *Player {
	if pl == g.players[White] {
		return g.players[Black]
	}
	return g.players[White]
}

func (g *Game) PieceAt(l Location) *Piece { return g.board.PieceAt(l) }

func (g *Game) EnemyAt(pl *Player, l Location) bool {
	at := g.board.PieceAt(l)
	return at != nil && at.player != pl
}

func (g *Game) EnemyKingLocation(pl *Player) (Location, bool) {
	return g.OtherPlayer(pl).KingLocation()
}

// MovePiece commits a move. It does not check legality; callers confirm
// ValidMove first.
func (g *Game) MovePiece(p *Piece, dest Location) {
	if target := g.board.PieceAt(dest); target != nil && target.player != p.player {
		target.player.RemovePiece(target)
	}
	p.Move(dest, false)
	g.board.Refresh()
}

// Place puts a new, unmoved piece on the board.
func (g *Game) Place(c Color, kind Kind, l Location) (*Piece, error) {
	pl := g.Player(c)
	if pl == nil || kind <= KindNone || kind > Pawn {
		return nil, ErrInvalidPiece
	}
	if !l.Valid() {
		return nil, ErrInvalidLocation
	}
	for _, other := range g.players {
		for _, q := range other.pieces {
			if q.loc == l {
				return nil, ErrOccupied
			}
		}
	}
	p := newPiece(pl, kind, l)
	pl.pieces = append(pl.pieces, p)
	g.board.Refresh()
	return p, nil
}
