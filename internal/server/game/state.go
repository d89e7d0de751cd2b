package game

import (
	"sync"
	"time"

	"chessrules/internal/chess"
)

// GameState is one hosted game. Its mutex serializes every access to Game.
type GameState struct {
	mu sync.Mutex

	ID        string
	Game      *chess.Game
	History   []MoveRecord
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MoveRecord struct {
	By        chess.Color
	From      chess.Location
	To        chess.Location
	Promotion chess.Kind
	Status    chess.Status
	At        time.Time
}

// Snapshot is a consistent copy of a game's observable state.
type Snapshot struct {
	ID         string
	FEN        string
	Board      string
	ToMove     chess.Color
	Status     chess.Status
	LegalMoves []chess.Move
	Hash       uint64
	Plies      int
	UpdatedAt  time.Time
}

// With runs fn while holding the game's lock.
func (s *GameState) With(fn func(g *chess.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.Game)
}

func (s *GameState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *GameState) snapshotLocked() Snapshot {
	g := s.Game
	return Snapshot{
		ID:         s.ID,
		FEN:        g.EncodeFEN(),
		Board:      g.Board().String(),
		ToMove:     g.ToMove(),
		Status:     g.Status(g.ToMove()),
		LegalMoves: g.LegalMoves(g.ToMove()),
		Hash:       g.Hash(),
		Plies:      len(s.History),
		UpdatedAt:  s.UpdatedAt,
	}
}
