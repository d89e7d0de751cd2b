package chess

var (
	rookDirs   = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs  = [8][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	kingOffsets   = queenDirs
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// rayMoves walks every direction to the edge of the board. Blockers are not
// considered here; Reachable rejects obstructed destinations.
func rayMoves(from Location, dirs [][2]int) []Location {
	moves := make([]Location, 0, len(dirs)*(Size-1))
	for _, d := range dirs {
		for n := 1; n < Size; n++ {
			l := from.Add(d[0]*n, d[1]*n)
			if !l.Valid() {
				break
			}
			moves = append(moves, l)
		}
	}
	return moves
}

func stepMoves(from Location, offsets [][2]int) []Location {
	moves := make([]Location, 0, len(offsets))
	for _, o := range offsets {
		moves = append(moves, from.Add(o[0], o[1]))
	}
	return moves
}
