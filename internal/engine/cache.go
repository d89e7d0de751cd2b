package engine

import "chessrules/internal/chess"

// moveKey is a move stripped of its piece pointer so it can outlive the game
// it was generated from.
type moveKey struct {
	From chess.Location
	To   chess.Location
}

func (e *Engine) probeMoves(key uint64) ([]moveKey, bool) {
	if e.cache == nil {
		return nil, false
	}
	moves, ok := e.cache[key]
	return moves, ok
}

// storeMoves drops the whole table once it is full.
func (e *Engine) storeMoves(key uint64, moves []moveKey) {
	if e.cache == nil {
		return
	}
	if len(e.cache) >= e.cacheCap {
		log.Debug("move cache reset", "entries", len(e.cache))
		e.cache = make(map[uint64][]moveKey, min(e.cacheCap, 1<<10))
	}
	e.cache[key] = moves
}
