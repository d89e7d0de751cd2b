package chess

import "fmt"

type Color int8

const (
	NoColor Color = -1
	White   Color = 0
	Black   Color = 1
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

type Kind int8

const (
	KindNone Kind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

var kindNames = [...]string{
	KindNone: "none",
	King:     "king",
	Queen:    "queen",
	Rook:     "rook",
	Bishop:   "bishop",
	Knight:   "knight",
	Pawn:     "pawn",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
	return kindNames[k]
}

// ParseKind accepts the lower-case kind name or its FEN letter.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "king", "k", "K":
		return King, true
	case "queen", "q", "Q":
		return Queen, true
	case "rook", "r", "R":
		return Rook, true
	case "bishop", "b", "B":
		return Bishop, true
	case "knight", "n", "N":
		return Knight, true
	case "pawn", "p", "P":
		return Pawn, true
	}
	return KindNone, false
}

const Size = 8

// Location is (row, column). Row 0 is Black's back rank, row 7 White's.
type Location struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Loc(row, col int) Location { return Location{Row: row, Col: col} }

func (l Location) Valid() bool {
	return l.Row >= 0 && l.Row < Size && l.Col >= 0 && l.Col < Size
}

func (l Location) Add(dr, dc int) Location {
	return Location{Row: l.Row + dr, Col: l.Col + dc}
}

// String renders the square in file/rank form, e.g. (7,4) -> "e1".
func (l Location) String() string {
	if !l.Valid() {
		return fmt.Sprintf("(%d,%d)", l.Row, l.Col)
	}
	return string([]byte{byte('a' + l.Col), byte('1' + (Size - 1 - l.Row))})
}

// ParseSquare is the inverse of Location.String.
func ParseSquare(s string) (Location, error) {
	if len(s) != 2 {
		return Location{}, fmt.Errorf("%w: %q", ErrInvalidLocation, s)
	}
	col := int(s[0]) - 'a'
	rank := int(s[1]) - '1'
	l := Location{Row: Size - 1 - rank, Col: col}
	if !l.Valid() {
		return Location{}, fmt.Errorf("%w: %q", ErrInvalidLocation, s)
	}
	return l, nil
}

// MoveContext tells move generation why it is being asked. Attack queries skip
// the self-check filter and castling; otherwise check detection would recurse
// into itself through the enemy's candidate moves.
type MoveContext int8

const (
	ForPlayerTurn MoveContext = iota
	ForAttackQuery
)

type Move struct {
	Piece *Piece   `json:"-"`
	From  Location `json:"from"`
	To    Location `json:"to"`
	Test  bool     `json:"-"`
}

type Status int8

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

func (s Status) Over() bool { return s == Checkmate || s == Stalemate }
