package chess

import (
	"errors"
	"testing"
)

func TestStartFENRoundTrip(t *testing.T) {
	if got := NewGame().EncodeFEN(); got != StartFEN {
		t.Fatalf("start position: got=%q want=%q", got, StartFEN)
	}
	g := mustFEN(t, StartFEN)
	if got := g.EncodeFEN(); got != StartFEN {
		t.Fatalf("decoded start: got=%q want=%q", got, StartFEN)
	}
	if got, want := g.Board().String(), NewGame().Board().String(); got != want {
		t.Fatalf("board:\n%s\nwant:\n%s", got, want)
	}
}

func TestFENAfterDoubleStep(t *testing.T) {
	g := NewGame()
	mustPlay(t, g, Loc(6, 4), Loc(4, 4))
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := g.EncodeFEN(); got != want {
		t.Fatalf("fen: got=%q want=%q", got, want)
	}

	decoded := mustFEN(t, want)
	if !decoded.PieceAt(Loc(4, 4)).VulnerableToEnPassant() {
		t.Fatalf("e3 target should expose the e4 pawn")
	}
	if decoded.Hash() != g.Hash() {
		t.Fatalf("hash: decoded=%d played=%d", decoded.Hash(), g.Hash())
	}

	mustPlay(t, g, Loc(0, 6), Loc(2, 5))
	if got := g.EncodeFEN(); got != "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1" {
		t.Fatalf("target should expire after black's reply: %q", got)
	}
}

func TestDecodeFENPieces(t *testing.T) {
	g := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if got := len(g.Player(White).Pieces()); got != 16 {
		t.Fatalf("white pieces: got=%d want=16", got)
	}
	if got := len(g.Player(Black).Pieces()); got != 16 {
		t.Fatalf("black pieces: got=%d want=16", got)
	}
	for _, pl := range g.Players() {
		for _, p := range pl.Pieces() {
			if p.Kind() != Pawn {
				continue
			}
			want := -1
			if p.Color() == Black {
				want = 1
			}
			if p.Direction() != want {
				t.Fatalf("%s: direction=%d want=%d", p, p.Direction(), want)
			}
		}
	}
	if p := g.PieceAt(Loc(3, 3)); p == nil || !p.Moved() {
		t.Fatalf("advanced pawn on d5 should count as moved")
	}
}

func TestDecodeFENErrors(t *testing.T) {
	for _, fen := range []string{
		"",
		"8/8/8/8/8/8/8 w - - 0 1",
		"9/8/8/8/8/8/8/8 w - - 0 1",
		"7/8/8/8/8/8/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w - - 0 1",
		"8/8/8/8/8/8/8/8 x - - 0 1",
		"8/8/8/8/8/8/8/8 w - z9 0 1",
	} {
		if _, err := DecodeFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Fatalf("DecodeFEN(%q): got=%v want=%v", fen, err, ErrInvalidFEN)
		}
	}
}

func TestHashInitializedFromStartAndFEN(t *testing.T) {
	if NewGame().Hash() != mustFEN(t, StartFEN).Hash() {
		t.Fatalf("start hash differs between NewGame and DecodeFEN")
	}
	if NewGame().Hash() == mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1").Hash() {
		t.Fatalf("side to move must change the hash")
	}
}

func TestHashTransposition(t *testing.T) {
	a := NewGame()
	mustPlay(t, a, Loc(7, 6), Loc(5, 5))
	mustPlay(t, a, Loc(0, 1), Loc(2, 2))
	mustPlay(t, a, Loc(7, 1), Loc(5, 2))
	mustPlay(t, a, Loc(0, 6), Loc(2, 5))

	b := NewGame()
	mustPlay(t, b, Loc(7, 1), Loc(5, 2))
	mustPlay(t, b, Loc(0, 6), Loc(2, 5))
	mustPlay(t, b, Loc(7, 6), Loc(5, 5))
	mustPlay(t, b, Loc(0, 1), Loc(2, 2))

	if a.Hash() != b.Hash() {
		t.Fatalf("transposed positions hash differently: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Hash() == NewGame().Hash() {
		t.Fatalf("hash did not change after four plies")
	}
}

func TestHashIgnoresBoardCache(t *testing.T) {
	g := NewGame()
	want := g.Hash()
	g.Board().Update(Loc(4, 4), g.PieceAt(Loc(7, 3)))
	if got := g.Hash(); got != want {
		t.Fatalf("hash followed the board cache: got=%d want=%d", got, want)
	}
}

func TestHashAfterRandomPlies(t *testing.T) {
	g := NewGame()
	for ply := 0; ply < 24; ply++ {
		moves := g.LegalMoves(g.ToMove())
		if len(moves) == 0 {
			return
		}
		mv := moves[len(moves)/2]
		if _, err := g.Play(mv.From, mv.To, KindNone); err != nil {
			t.Fatalf("ply %d %s-%s: %v", ply, mv.From, mv.To, err)
		}
		if got, want := g.Board().Occupied(), len(g.Player(White).Pieces())+len(g.Player(Black).Pieces()); got != want {
			t.Fatalf("ply %d: board holds %d pieces, lists hold %d", ply, got, want)
		}
		decoded := mustFEN(t, g.EncodeFEN())
		if decoded.EncodeFEN() != g.EncodeFEN() {
			t.Fatalf("ply %d: fen round trip %q -> %q", ply, g.EncodeFEN(), decoded.EncodeFEN())
		}
	}
}
