package chess

import (
	"encoding/json"
	"fmt"
	"io"
)

// The save format holds the players' piece lists and the side to move. The
// board is rebuilt on load and never written.
type saveFile struct {
	ToMove  string       `json:"to_move"`
	Players []playerSave `json:"players"`
}

type playerSave struct {
	Color  string      `json:"color"`
	Pieces []pieceSave `json:"pieces"`
	Lost   []pieceSave `json:"lost,omitempty"`
}

type pieceSave struct {
	Kind       string   `json:"kind"`
	Location   Location `json:"location"`
	Moved      bool     `json:"moved,omitempty"`
	Direction  int      `json:"direction,omitempty"`
	Vulnerable bool     `json:"vulnerable,omitempty"`
}

func (g *Game) Save(w io.Writer) error {
	sf := saveFile{ToMove: g.toMove.String()}
	for _, pl := range g.players {
		ps := playerSave{Color: pl.color.String()}
		for _, p := range pl.pieces {
			ps.Pieces = append(ps.Pieces, savePiece(p))
		}
		for _, p := range pl.lost {
			ps.Lost = append(ps.Lost, savePiece(p))
		}
		sf.Players = append(sf.Players, ps)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sf)
}

func savePiece(p *Piece) pieceSave {
	return pieceSave{
		Kind:       p.kind.String(),
		Location:   p.loc,
		Moved:      p.moved,
		Direction:  p.direction,
		Vulnerable: p.vulnerable,
	}
}

// Load reads a game written by Save.
func Load(r io.Reader) (*Game, error) {
	var sf saveFile
	if err := json.NewDecoder(r).Decode(&sf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSave, err)
	}
	toMove, ok := parseColor(sf.ToMove)
	if !ok {
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidSave, sf.ToMove)
	}
	if len(sf.Players) != 2 {
		return nil, fmt.Errorf("%w: want 2 players, got %d", ErrInvalidSave, len(sf.Players))
	}

	g := NewEmptyGame()
	g.toMove = toMove
	seen := make(map[Location]bool)
	var colors [2]bool
	for _, ps := range sf.Players {
		c, ok := parseColor(ps.Color)
		if !ok {
			return nil, fmt.Errorf("%w: color %q", ErrInvalidSave, ps.Color)
		}
		if colors[c] {
			return nil, fmt.Errorf("%w: duplicate player %s", ErrInvalidSave, c)
		}
		colors[c] = true
		pl := g.players[c]
		for _, s := range ps.Pieces {
			p, err := loadPiece(pl, s)
			if err != nil {
				return nil, err
			}
			if seen[p.loc] {
				return nil, fmt.Errorf("%w: two pieces on %s", ErrInvalidSave, p.loc)
			}
			seen[p.loc] = true
			pl.pieces = append(pl.pieces, p)
		}
		for _, s := range ps.Lost {
			p, err := loadPiece(pl, s)
			if err != nil {
				return nil, err
			}
			pl.lost = append(pl.lost, p)
		}
	}
	g.board.Refresh()
	return g, nil
}

func loadPiece(pl *Player, s pieceSave) (*Piece, error) {
	kind, ok := ParseKind(s.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidSave, s.Kind)
	}
	if !s.Location.Valid() {
		return nil, fmt.Errorf("%w: location %v", ErrInvalidSave, s.Location)
	}
	p := newPiece(pl, kind, s.Location)
	p.moved = s.Moved
	if kind == Pawn {
		if s.Direction != 1 && s.Direction != -1 {
			return nil, fmt.Errorf("%w: pawn direction %d", ErrInvalidSave, s.Direction)
		}
		p.direction = s.Direction
		p.vulnerable = s.Vulnerable
	}
	return p, nil
}

func parseColor(s string) (Color, bool) {
	switch s {
	case "white":
		return White, true
	case "black":
		return Black, true
	}
	return NoColor, false
}
