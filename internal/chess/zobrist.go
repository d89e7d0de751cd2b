package chess

import "sync"

const zobristKinds = int(Pawn) + 1

var (
	zobristOnce sync.Once

	zobristPieces    [2][zobristKinds][Size * Size]uint64
	zobristMoved     [2][zobristKinds][Size * Size]uint64
	zobristEnPassant [Size * Size]uint64
	zobristSide      uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for k := 1; k < zobristKinds; k++ {
				for sq := 0; sq < Size*Size; sq++ {
					zobristPieces[side][k][sq] = next()
					zobristMoved[side][k][sq] = next()
				}
			}
		}
		for sq := 0; sq < Size*Size; sq++ {
			zobristEnPassant[sq] = next()
		}
		zobristSide = next()
	})
}

func pieceHashKey(p *Piece) uint64 {
	sq := p.loc.Row*Size + p.loc.Col
	h := zobristPieces[p.player.color][p.kind][sq]
	if p.moved {
		h ^= zobristMoved[p.player.color][p.kind][sq]
	}
	if p.vulnerable {
		h ^= zobristEnPassant[sq]
	}
	return h
}

// Hash is a Zobrist hash of the authoritative state: both players' active
// pieces (kind, square, moved, en passant exposure) and the side to move. The
// board cache does not take part.
func (g *Game) Hash() uint64 {
	initZobrist()

	var h uint64
	for _, pl := range g.players {
		for _, p := range pl.pieces {
			h ^= pieceHashKey(p)
		}
	}
	if g.toMove == Black {
		h ^= zobristSide
	}
	return h
}
