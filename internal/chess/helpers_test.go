package chess

import "testing"

func mustPlace(t *testing.T, g *Game, c Color, k Kind, l Location) *Piece {
	t.Helper()
	p, err := g.Place(c, k, l)
	if err != nil {
		t.Fatalf("place %s %s at %v: %v", c, k, l, err)
	}
	return p
}

func mustFEN(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := DecodeFEN(fen)
	if err != nil {
		t.Fatalf("decode %q: %v", fen, err)
	}
	return g
}

func mustPlay(t *testing.T, g *Game, from, to Location) Status {
	t.Helper()
	st, err := g.Play(from, to, KindNone)
	if err != nil {
		t.Fatalf("play %s-%s: %v", from, to, err)
	}
	return st
}
