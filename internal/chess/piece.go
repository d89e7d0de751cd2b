package chess

import (
	"fmt"
	"unicode"
)

// Piece is one chessman. The owning Player's list holds it; the piece only
// refers back to its owner.
type Piece struct {
	kind   Kind
	player *Player
	loc    Location
	moved  bool

	// pawn only
	direction  int
	vulnerable bool
}

func newPiece(pl *Player, kind Kind, loc Location) *Piece {
	p := &Piece{kind: kind, player: pl, loc: loc}
	if kind == Pawn {
		p.direction = pawnDirection(pl.color, loc.Row)
	}
	return p
}

// pawnDirection is fixed once at creation: a pawn on row 1 marches toward
// row 7, one on row 6 toward row 0. Pawns placed elsewhere follow their color.
func pawnDirection(c Color, row int) int {
	switch row {
	case 1:
		return 1
	case Size - 2:
		return -1
	}
	if c == Black {
		return 1
	}
	return -1
}

func (p *Piece) Kind() Kind { return p.kind }
func (p *Piece) Player() *Player { return p.player }
func (p *Piece) Color() Color { return p.player.color }
func (p *Piece) Location() Location { return p.loc }
func (p *Piece) Moved() bool { return p.moved }
func (p *Piece) Direction() int { return p.direction }
func (p *Piece) VulnerableToEnPassant() bool { return p.vulnerable }

func (p *Piece) game() *Game { return p.player.game }

var kindLetters = [...]rune{King: 'k', Queen: 'q', Rook: 'r', Bishop: 'b', Knight: 'n', Pawn: 'p'}

// Letter is the FEN letter: upper case for White.
func (p *Piece) Letter() rune {
	ch := kindLetters[p.kind]
	if p.player.color == White {
		return unicode.ToUpper(ch)
	}
	return ch
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s@%s", p.player.color, p.kind, p.loc)
}

// candidates is the pseudo-legal shape of the piece from the given square,
// already stripped of the origin and off-board squares. Castling is not part
// of the shape.
func (p *Piece) candidates(from Location) []Location {
	var moves []Location
	switch p.kind {
	case King:
		moves = stepMoves(from, kingOffsets[:])
	case Queen:
		moves = rayMoves(from, queenDirs[:])
	case Rook:
		moves = rayMoves(from, rookDirs[:])
	case Bishop:
		moves = rayMoves(from, bishopDirs[:])
	case Knight:
		moves = stepMoves(from, knightOffsets[:])
	case Pawn:
		moves = p.pawnMoves(from)
	default:
		panic(fmt.Sprintf("chess: unknown piece kind %d", p.kind))
	}
	return cleanMoves(from, moves)
}

// PossibleMoves lists the destinations matching the piece's movement rule.
// With ForPlayerTurn, destinations that would leave the mover's king attacked
// are removed and castling destinations are added.
func (p *Piece) PossibleMoves(from Location, ctx MoveContext) []Location {
	moves := p.candidates(from)
	if ctx == ForAttackQuery {
		return moves
	}
	g := p.game()
	out := moves[:0]
	for _, m := range moves {
		if !g.MoveChecksSelf(p, m) {
			out = append(out, m)
		}
	}
	if p.kind == King {
		out = append(out, p.castleMoves()...)
	}
	return out
}

func (p *Piece) LegalMove(dest Location) bool {
	if containsLocation(p.candidates(p.loc), dest) {
		return !p.game().MoveChecksSelf(p, dest)
	}
	if p.kind == King {
		return containsLocation(p.castleMoves(), dest)
	}
	return false
}

// attackMoves is the set of squares the piece threatens by shape alone.
// Pawns threaten only their forward diagonals.
func (p *Piece) attackMoves(from Location) []Location {
	if p.kind == Pawn {
		return cleanMoves(from, []Location{
			from.Add(p.direction, -1),
			from.Add(p.direction, 1),
		})
	}
	return p.candidates(from)
}

func (p *Piece) CanAttackLocation(dest Location) bool {
	if !containsLocation(p.attackMoves(p.loc), dest) {
		return false
	}
	return p.game().Reachable(p, dest)
}

func (p *Piece) CanAttackKing() bool {
	loc, ok := p.game().EnemyKingLocation(p.player)
	if !ok {
		return false
	}
	return p.CanAttackLocation(loc)
}

func (p *Piece) CanMove() bool {
	g := p.game()
	for _, m := range p.candidates(p.loc) {
		if g.Available(p.player, m) && g.Reachable(p, m) && !g.MoveChecksSelf(p, m) {
			return true
		}
	}
	return p.kind == King && len(p.castleMoves()) > 0
}

// Move relocates the piece. A test move changes only the location; a real
// move also marks the piece as moved and performs castling and en passant.
func (p *Piece) Move(dest Location, test bool) {
	if !test {
		switch p.kind {
		case King:
			if abs(dest.Col-p.loc.Col) == 2 {
				p.moveCastlingRook(dest)
			}
		case Pawn:
			p.captureEnPassant(dest)
			if abs(dest.Row-p.loc.Row) == 2 {
				p.vulnerable = true
			}
		}
		p.moved = true
	}
	p.loc = dest
}

func (p *Piece) EligibleForPromotion() bool {
	if p.kind != Pawn {
		return false
	}
	if p.direction > 0 {
		return p.loc.Row == Size-1
	}
	return p.loc.Row == 0
}

func cleanMoves(from Location, moves []Location) []Location {
	out := moves[:0]
	for _, m := range moves {
		if m == from || !m.Valid() {
			continue
		}
		out = append(out, m)
	}
	return out
}

func containsLocation(moves []Location, l Location) bool {
	for _, m := range moves {
		if m == l {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
