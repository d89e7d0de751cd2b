package chess

import (
	"fmt"
	"strings"
	"unicode"
)

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// EncodeFEN writes the position in Forsyth-Edwards form. Move clocks are not
// tracked and are always written as "0 1".
func (g *Game) EncodeFEN() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Size; c++ {
			p := g.board.PieceAt(Loc(r, c))
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	sb.WriteByte(' ')
	if g.toMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}

	sb.WriteByte(' ')
	rights := g.castlingRights()
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	sb.WriteByte(' ')
	sb.WriteString(g.enPassantTarget())
	sb.WriteString(" 0 1")
	return sb.String()
}

func (g *Game) castlingRights() string {
	var sb strings.Builder
	for _, c := range [2]Color{White, Black} {
		king := g.players[c].King()
		if king == nil || king.moved {
			continue
		}
		for _, side := range [2]struct {
			col    int
			letter rune
		}{{Size - 1, 'k'}, {0, 'q'}} {
			rook := g.board.PieceAt(Loc(king.loc.Row, side.col))
			if rook == nil || rook.kind != Rook || rook.player != king.player || rook.moved {
				continue
			}
			if c == White {
				sb.WriteRune(unicode.ToUpper(side.letter))
			} else {
				sb.WriteRune(side.letter)
			}
		}
	}
	return sb.String()
}

// enPassantTarget is the square behind a pawn of the side that just moved
// which is still exposed to en passant.
func (g *Game) enPassantTarget() string {
	for _, p := range g.players[g.toMove.Opposite()].pieces {
		if p.kind == Pawn && p.vulnerable {
			return p.loc.Add(-p.direction, 0).String()
		}
	}
	return "-"
}

// DecodeFEN builds a game from a FEN string. Kings and rooks without a
// castling right are marked as moved, as are pawns off their starting row.
func DecodeFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Size {
		return nil, ErrInvalidFEN
	}

	g := NewEmptyGame()
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Size {
				return nil, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			kind, ok := ParseKind(string(unicode.ToLower(ch)))
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			color := Black
			if unicode.IsUpper(ch) {
				color = White
			}
			pl := g.players[color]
			p := newPiece(pl, kind, Loc(r, c))
			if kind == Pawn {
				p.direction = 1
				if color == White {
					p.direction = -1
				}
				start := 1
				if color == White {
					start = Size - 2
				}
				p.moved = r != start
			}
			pl.pieces = append(pl.pieces, p)
			c++
		}
		if c != Size {
			return nil, ErrInvalidFEN
		}
	}

	switch parts[1] {
	case "w":
		g.toMove = White
	case "b":
		g.toMove = Black
	default:
		return nil, ErrInvalidFEN
	}
	g.board.Refresh()

	rights := "-"
	if len(parts) > 2 {
		rights = parts[2]
	}
	g.applyCastlingRights(rights)

	if len(parts) > 3 && parts[3] != "-" {
		target, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
		}
		mover := g.toMove.Opposite()
		dir := g.players[mover].pawnDirection()
		if p := g.board.PieceAt(target.Add(dir, 0)); p != nil && p.kind == Pawn && p.player.color == mover {
			p.vulnerable = true
		}
	}
	return g, nil
}

func (g *Game) applyCastlingRights(rights string) {
	for _, c := range [2]Color{White, Black} {
		king := g.players[c].King()
		if king == nil {
			continue
		}
		short, long := 'k', 'q'
		if c == White {
			short, long = 'K', 'Q'
		}
		hasShort := strings.ContainsRune(rights, short)
		hasLong := strings.ContainsRune(rights, long)
		king.moved = !hasShort && !hasLong
		for _, rook := range g.players[c].pieces {
			if rook.kind != Rook {
				continue
			}
			switch {
			case rook.loc.Row == king.loc.Row && rook.loc.Col == Size-1:
				rook.moved = !hasShort
			case rook.loc.Row == king.loc.Row && rook.loc.Col == 0:
				rook.moved = !hasLong
			default:
				rook.moved = true
			}
		}
	}
}

func (pl *Player) pawnDirection() int {
	if pl.color == Black {
		return 1
	}
	return -1
}
