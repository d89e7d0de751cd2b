package chess

import (
	"errors"
	"testing"
)

func TestStartingMoveCount(t *testing.T) {
	g := NewGame()
	if got := len(g.LegalMoves(White)); got != 20 {
		t.Fatalf("white moves: got=%d want=20", got)
	}
	if got := len(g.LegalMoves(Black)); got != 20 {
		t.Fatalf("black moves: got=%d want=20", got)
	}
}

func TestPawnMoves(t *testing.T) {
	g := NewEmptyGame()
	mustPlace(t, g, White, King, Loc(7, 7))
	mustPlace(t, g, Black, King, Loc(0, 7))
	pawn := mustPlace(t, g, White, Pawn, Loc(6, 4))

	got := g.ValidMoves(pawn)
	if len(got) != 2 || !containsLocation(got, Loc(5, 4)) || !containsLocation(got, Loc(4, 4)) {
		t.Fatalf("unmoved pawn: %v", got)
	}

	blocker := mustPlace(t, g, Black, Knight, Loc(5, 4))
	if got := g.ValidMoves(pawn); len(got) != 0 {
		t.Fatalf("a pawn cannot move or capture straight ahead: %v", got)
	}

	mustPlace(t, g, Black, Bishop, Loc(5, 3))
	got = g.ValidMoves(pawn)
	if len(got) != 1 || got[0] != Loc(5, 3) {
		t.Fatalf("pawn should only capture on (5,3): %v", got)
	}

	g.Player(Black).RemovePiece(blocker)
	g.Board().Refresh()
	g.MovePiece(pawn, Loc(5, 4))
	if !pawn.Moved() {
		t.Fatalf("pawn should be marked moved")
	}
	if containsLocation(g.ValidMoves(pawn), Loc(3, 4)) {
		t.Fatalf("a moved pawn has no double step")
	}
}

func TestPawnDirection(t *testing.T) {
	tests := []struct {
		color Color
		row   int
		want  int
	}{
		{White, 6, -1},
		{Black, 1, 1},
		{White, 1, 1},
		{Black, 6, -1},
		{White, 4, -1},
		{Black, 4, 1},
	}
	for _, tt := range tests {
		g := NewEmptyGame()
		p := mustPlace(t, g, tt.color, Pawn, Loc(tt.row, 2))
		if p.Direction() != tt.want {
			t.Fatalf("%s pawn on row %d: direction=%d want=%d", tt.color, tt.row, p.Direction(), tt.want)
		}
	}
}

func TestCastlingBlockedByAttack(t *testing.T) {
	setup := func(attacked bool) (*Game, *Piece, *Piece) {
		g := NewEmptyGame()
		king := mustPlace(t, g, Black, King, Loc(0, 4))
		rook := mustPlace(t, g, Black, Rook, Loc(0, 7))
		mustPlace(t, g, White, King, Loc(7, 0))
		if attacked {
			mustPlace(t, g, White, Rook, Loc(7, 5))
		}
		return g, king, rook
	}

	g, king, rook := setup(true)
	if !g.InCheckAt(g.Player(Black), Loc(0, 5)) {
		t.Fatalf("(0,5) should be attacked by the rook on (7,5)")
	}
	if king.CanCastle(rook) {
		t.Fatalf("king may not pass an attacked square")
	}
	if containsLocation(king.PossibleMoves(king.Location(), ForPlayerTurn), Loc(0, 6)) {
		t.Fatalf("castling destination offered through an attacked square")
	}

	_, king, rook = setup(false)
	if !king.CanCastle(rook) {
		t.Fatalf("castling should be allowed")
	}
	if !king.LegalMove(Loc(0, 6)) {
		t.Fatalf("(0,6) should be a legal king move")
	}
	if containsLocation(king.PossibleMoves(king.Location(), ForAttackQuery), Loc(0, 6)) {
		t.Fatalf("the attack view never castles")
	}
}

func TestCastlingRefused(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"in check", "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1"},
		{"path blocked", "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1"},
		{"pieces moved", "4k3/8/8/8/8/8/8/R3K2R w - - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustFEN(t, tt.fen)
			king := g.Player(White).King()
			for _, l := range []Location{Loc(7, 2), Loc(7, 6)} {
				if g.ValidMove(king, l) {
					t.Fatalf("castling to %v should be refused", l)
				}
			}
		})
	}
}

func TestCastlingLandingAttacked(t *testing.T) {
	g := mustFEN(t, "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	king := g.Player(White).King()
	if g.ValidMove(king, Loc(7, 6)) {
		t.Fatalf("g1 is attacked by the rook on g8")
	}
	if !g.ValidMove(king, Loc(7, 2)) {
		t.Fatalf("queen side castling is still available")
	}
}

func TestCastlingExecution(t *testing.T) {
	g := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mustPlay(t, g, Loc(7, 4), Loc(7, 6))
	if p := g.PieceAt(Loc(7, 6)); p == nil || p.Kind() != King {
		t.Fatalf("white king should be on g1")
	}
	if p := g.PieceAt(Loc(7, 5)); p == nil || p.Kind() != Rook || !p.Moved() {
		t.Fatalf("white rook should be on f1 and marked moved")
	}
	if g.PieceAt(Loc(7, 7)) != nil {
		t.Fatalf("h1 should be empty")
	}

	mustPlay(t, g, Loc(0, 4), Loc(0, 2))
	if p := g.PieceAt(Loc(0, 2)); p == nil || p.Kind() != King {
		t.Fatalf("black king should be on c8")
	}
	if p := g.PieceAt(Loc(0, 3)); p == nil || p.Kind() != Rook {
		t.Fatalf("black rook should be on d8")
	}

	want := "2kr3r/8/8/8/8/8/8/R4RK1 w - - 0 1"
	if got := g.EncodeFEN(); got != want {
		t.Fatalf("fen: got=%q want=%q", got, want)
	}
}

// openForEnPassant plays 1.e4 a6 2.e5 d5, leaving the d5 pawn exposed.
func openForEnPassant(t *testing.T) *Game {
	t.Helper()
	g := NewGame()
	mustPlay(t, g, Loc(6, 4), Loc(4, 4))
	mustPlay(t, g, Loc(1, 0), Loc(2, 0))
	mustPlay(t, g, Loc(4, 4), Loc(3, 4))
	mustPlay(t, g, Loc(1, 3), Loc(3, 3))
	return g
}

func TestEnPassantCapture(t *testing.T) {
	g := openForEnPassant(t)
	victim := g.PieceAt(Loc(3, 3))
	if !victim.VulnerableToEnPassant() {
		t.Fatalf("double-stepped pawn should be exposed")
	}
	pawn := g.PieceAt(Loc(3, 4))
	if !containsLocation(g.ValidMoves(pawn), Loc(2, 3)) {
		t.Fatalf("en passant capture missing: %v", g.ValidMoves(pawn))
	}

	mustPlay(t, g, Loc(3, 4), Loc(2, 3))
	if g.PieceAt(Loc(3, 3)) != nil {
		t.Fatalf("captured pawn still on the board")
	}
	lost := g.Player(Black).LostPieces()
	if len(lost) != 1 || lost[0] != victim {
		t.Fatalf("black lost pieces: %v", lost)
	}
	if got := len(g.Player(Black).Pieces()); got != 15 {
		t.Fatalf("black pieces: got=%d want=15", got)
	}
}

func TestEnPassantExpires(t *testing.T) {
	g := openForEnPassant(t)
	mustPlay(t, g, Loc(7, 6), Loc(5, 5))
	mustPlay(t, g, Loc(2, 0), Loc(3, 0))

	if g.PieceAt(Loc(3, 3)).VulnerableToEnPassant() {
		t.Fatalf("exposure should end once black moves again")
	}
	_, err := g.Play(Loc(3, 4), Loc(2, 3), KindNone)
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("late en passant: got=%v want=%v", err, ErrIllegalMove)
	}
}

func TestPromotion(t *testing.T) {
	g := NewEmptyGame()
	pawn := mustPlace(t, g, Black, Pawn, Loc(6, 1))
	if pawn.Direction() != -1 {
		t.Fatalf("pawn created on row 6 heads to row 0")
	}
	pawn.Move(Loc(0, 1), true)
	if !pawn.EligibleForPromotion() {
		t.Fatalf("pawn on row 0 should be eligible")
	}
	pawn.Move(Loc(1, 1), true)
	if pawn.EligibleForPromotion() {
		t.Fatalf("pawn on row 1 is not eligible")
	}

	g = NewEmptyGame()
	pawn = mustPlace(t, g, White, Pawn, Loc(1, 1))
	if pawn.EligibleForPromotion() {
		t.Fatalf("pawn placed on row 1 heads to row 7 and is not eligible")
	}
	if _, err := g.Promote(pawn, Queen); !errors.Is(err, ErrInvalidPromotion) {
		t.Fatalf("promote ineligible: got=%v", err)
	}
}

func TestPlayPromotes(t *testing.T) {
	const fen = "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1"

	g := mustFEN(t, fen)
	before := len(g.Player(White).Pieces())
	st, err := g.Play(Loc(1, 1), Loc(0, 1), KindNone)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	q := g.PieceAt(Loc(0, 1))
	if q == nil || q.Kind() != Queen || q.Color() != White {
		t.Fatalf("expected a white queen on b8, got %v", q)
	}
	if st != Check {
		t.Fatalf("queen on b8 checks e8: status=%s", st)
	}
	if got := len(g.Player(White).Pieces()); got != before {
		t.Fatalf("piece count changed: %d -> %d", before, got)
	}
	if lost := g.Player(White).LostPieces(); len(lost) != 1 || lost[0].Kind() != Pawn {
		t.Fatalf("pawn should be kept as lost: %v", lost)
	}

	g = mustFEN(t, fen)
	if _, err := g.Play(Loc(1, 1), Loc(0, 1), Knight); err != nil {
		t.Fatalf("under-promotion: %v", err)
	}
	if p := g.PieceAt(Loc(0, 1)); p == nil || p.Kind() != Knight {
		t.Fatalf("expected a knight on b8")
	}

	g = mustFEN(t, fen)
	if _, err := g.Play(Loc(1, 1), Loc(0, 1), King); !errors.Is(err, ErrInvalidPromotion) {
		t.Fatalf("promote to king: got=%v", err)
	}
	if p := g.PieceAt(Loc(1, 1)); p == nil || p.Kind() != Pawn {
		t.Fatalf("a refused promotion must leave the board alone")
	}
}

func TestPlayRejects(t *testing.T) {
	g := NewGame()
	if _, err := g.Play(Loc(4, 4), Loc(3, 4), KindNone); !errors.Is(err, ErrNoPiece) {
		t.Fatalf("empty square: got=%v", err)
	}
	if _, err := g.Play(Loc(1, 4), Loc(3, 4), KindNone); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("black on white's turn: got=%v", err)
	}
	if _, err := g.Play(Loc(6, 4), Loc(3, 4), KindNone); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("triple step: got=%v", err)
	}
	if g.ToMove() != White {
		t.Fatalf("rejected moves must not pass the turn")
	}
}

func TestUnknownKindPanics(t *testing.T) {
	g := NewEmptyGame()
	p := newPiece(g.Player(White), Kind(42), Loc(4, 4))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for an unknown kind")
		}
	}()
	p.candidates(p.Location())
}
