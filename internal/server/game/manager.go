package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"chessrules/internal/chess"
	"chessrules/internal/engine"
)

var log = slog.Default().With("package", "game")

var ErrGameNotFound = errors.New("game not found")

// Manager hosts games in memory, keyed by UUID.
type Manager struct {
	mu     sync.RWMutex
	games  map[string]*GameState
	subs   map[string]map[chan Snapshot]struct{}
	engine *engine.Engine
}

func NewManager(eng *engine.Engine) *Manager {
	if eng == nil {
		eng = engine.NewEngine()
	}
	return &Manager{
		games:  make(map[string]*GameState),
		subs:   make(map[string]map[chan Snapshot]struct{}),
		engine: eng,
	}
}

func (m *Manager) NewGame() *GameState {
	return m.add(chess.NewGame())
}

// NewGameFromFEN hosts a game starting from an arbitrary position.
func (m *Manager) NewGameFromFEN(fen string) (*GameState, error) {
	g, err := chess.DecodeFEN(fen)
	if err != nil {
		return nil, err
	}
	return m.add(g), nil
}

func (m *Manager) add(g *chess.Game) *GameState {
	now := time.Now()
	s := &GameState{
		ID:        uuid.NewString(),
		Game:      g,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.mu.Lock()
	m.games[s.ID] = s
	m.mu.Unlock()
	log.Info("game created", "id", s.ID)
	return s
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	for ch := range m.subs[id] {
		close(ch)
	}
	delete(m.subs, id)
	log.Info("game deleted", "id", id)
	return nil
}

// Len is the number of hosted games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Play applies a move for the side to move.
func (m *Manager) Play(id string, from, to chess.Location, promo chess.Kind) (Snapshot, error) {
	s, err := m.Get(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	mover := s.Game.ToMove()
	p := s.Game.PieceAt(from)
	wasPawn := p != nil && p.Kind() == chess.Pawn
	st, err := s.Game.Play(from, to, promo)
	if err != nil {
		s.mu.Unlock()
		return Snapshot{}, err
	}
	promo = chess.KindNone
	if q := s.Game.PieceAt(to); wasPawn && q != nil && q.Kind() != chess.Pawn {
		promo = q.Kind()
	}
	s.record(mover, from, to, promo, st)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	m.publish(snap)
	return snap, nil
}

// AIMove lets the engine play for the side to move.
func (m *Manager) AIMove(id string) (Snapshot, engine.SearchResult, error) {
	s, err := m.Get(id)
	if err != nil {
		return Snapshot{}, engine.SearchResult{}, err
	}

	s.mu.Lock()
	mover := s.Game.ToMove()
	res, st, err := m.engine.Play(s.Game)
	if err != nil {
		s.mu.Unlock()
		return Snapshot{}, res, err
	}
	s.record(mover, res.Move.From, res.Move.To, res.Promotion, st)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	m.publish(snap)
	return snap, res, nil
}

func (s *GameState) record(by chess.Color, from, to chess.Location, promo chess.Kind, st chess.Status) {
	now := time.Now()
	s.History = append(s.History, MoveRecord{
		By:        by,
		From:      from,
		To:        to,
		Promotion: promo,
		Status:    st,
		At:        now,
	})
	s.UpdatedAt = now
	log.Debug("move", "id", s.ID, "by", by, "from", from, "to", to, "status", st)
}

func (m *Manager) Save(id string, w io.Writer) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	return s.With(func(g *chess.Game) error { return g.Save(w) })
}

// Load hosts a game read from a save file under a fresh ID.
func (m *Manager) Load(r io.Reader) (*GameState, error) {
	g, err := chess.Load(r)
	if err != nil {
		return nil, err
	}
	return m.add(g), nil
}

// Subscribe delivers a snapshot after every change to the game. Slow
// receivers miss updates rather than block the mover. The channel is closed
// by cancel or when the game is deleted.
func (m *Manager) Subscribe(id string) (<-chan Snapshot, func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	ch := make(chan Snapshot, 8)
	if m.subs[id] == nil {
		m.subs[id] = make(map[chan Snapshot]struct{})
	}
	m.subs[id][ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.subs[id][ch]; ok {
				delete(m.subs[id], ch)
				close(ch)
			}
		})
	}
	return ch, cancel, nil
}

func (m *Manager) publish(snap Snapshot) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for ch := range m.subs[snap.ID] {
		select {
		case ch <- snap:
		default:
			log.Warn("subscriber too slow, update dropped", "id", snap.ID)
		}
	}
}
