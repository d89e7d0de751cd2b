package engine

import (
	"fmt"
	"time"

	"chessrules/internal/chess"
)

var promotions = [4]chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

type SearchResult struct {
	Move       chess.Move
	Promotion  chess.Kind // KindNone unless the move reaches the last rank
	Candidates int
	Cached     bool
	TimeUsed   time.Duration
}

// PickMove chooses a move for the side to move. ok is false when that side
// has no legal move.
func (e *Engine) PickMove(g *chess.Game) (res SearchResult, ok bool) {
	start := time.Now()
	e.mu.Lock()
	defer e.mu.Unlock()

	key := g.Hash()
	moves, cached := e.probeMoves(key)
	if !cached {
		for _, m := range g.LegalMoves(g.ToMove()) {
			moves = append(moves, moveKey{From: m.From, To: m.To})
		}
		e.nodes++
		e.storeMoves(key, moves)
	} else {
		e.hits++
	}
	if len(moves) == 0 {
		return SearchResult{Cached: cached, TimeUsed: time.Since(start)}, false
	}

	mk := moves[e.rng.Intn(len(moves))]
	p := g.PieceAt(mk.From)
	res = SearchResult{
		Move:       chess.Move{Piece: p, From: mk.From, To: mk.To},
		Promotion:  chess.KindNone,
		Candidates: len(moves),
		Cached:     cached,
	}
	if p != nil && p.Kind() == chess.Pawn && reachesLastRank(p, mk.To) {
		res.Promotion = promotions[e.rng.Intn(len(promotions))]
	}
	res.TimeUsed = time.Since(start)
	return res, true
}

// Play picks a move and commits it to g.
func (e *Engine) Play(g *chess.Game) (SearchResult, chess.Status, error) {
	res, ok := e.PickMove(g)
	if !ok {
		return res, g.Status(g.ToMove()), chess.ErrGameOver
	}
	st, err := g.Play(res.Move.From, res.Move.To, res.Promotion)
	if err != nil {
		return res, st, fmt.Errorf("engine move %s-%s: %w", res.Move.From, res.Move.To, err)
	}
	log.Debug("engine move", "from", res.Move.From, "to", res.Move.To, "candidates", res.Candidates, "cached", res.Cached)
	return res, st, nil
}

func reachesLastRank(p *chess.Piece, to chess.Location) bool {
	if p.Direction() > 0 {
		return to.Row == chess.Size-1
	}
	return to.Row == 0
}
