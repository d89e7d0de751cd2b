package chess

var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewGame returns the standard starting position, White to move. White sits
// on rows 6 and 7, Black on rows 0 and 1.
func NewGame() *Game {
	g := NewEmptyGame()
	for _, c := range [2]Color{White, Black} {
		home, pawns := 0, 1
		if c == White {
			home, pawns = Size-1, Size-2
		}
		pl := g.players[c]
		for _, kind := range []Kind{Rook, Knight, Bishop, Queen, King} {
			for col, k := range backRank {
				if k == kind {
					pl.pieces = append(pl.pieces, newPiece(pl, kind, Loc(home, col)))
				}
			}
		}
		for col := 0; col < Size; col++ {
			pl.pieces = append(pl.pieces, newPiece(pl, Pawn, Loc(pawns, col)))
		}
	}
	g.board.Refresh()
	return g
}
