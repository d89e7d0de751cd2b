package chess_test

import (
	"sort"
	"testing"

	chesslib "github.com/corentings/chess/v2"
	"github.com/dylhunn/dragontoothmg"

	"chessrules/internal/chess"
)

var oraclePositions = []struct {
	name string
	fen  string
}{
	{"start", chess.StartFEN},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
	{"endgame pins", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"},
	{"promotions", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"},
	{"en passant", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"},
	{"black to move", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1"},
	{"checkmated", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"},
}

func ourMoves(t *testing.T, fen string) []string {
	t.Helper()
	g, err := chess.DecodeFEN(fen)
	if err != nil {
		t.Fatalf("decode %q: %v", fen, err)
	}
	seen := make(map[string]bool)
	for _, m := range g.LegalMoves(g.ToMove()) {
		seen[m.From.String()+m.To.String()] = true
	}
	return sortedKeys(seen)
}

// dragontoothmg numbers squares from a1 = 0 along ranks.
func dragontoothMoves(fen string) []string {
	b := dragontoothmg.ParseFen(fen)
	seen := make(map[string]bool)
	for _, m := range b.GenerateLegalMoves() {
		seen[squareName(m.From())+squareName(m.To())] = true
	}
	return sortedKeys(seen)
}

func squareName(sq uint8) string {
	return chess.Loc(chess.Size-1-int(sq)/chess.Size, int(sq)%chess.Size).String()
}

func corentingsMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := chesslib.FEN(fen)
	if err != nil {
		t.Fatalf("oracle FEN %q: %v", fen, err)
	}
	g := chesslib.NewGame(opt)
	moves := g.ValidMoves()
	seen := make(map[string]bool)
	for i := range moves {
		// UCI form, with a promotion letter appended when present.
		seen[moves[i].String()[:4]] = true
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func diffMoves(got, want []string) (missing, extra []string) {
	have := make(map[string]bool, len(got))
	for _, m := range got {
		have[m] = true
	}
	need := make(map[string]bool, len(want))
	for _, m := range want {
		need[m] = true
		if !have[m] {
			missing = append(missing, m)
		}
	}
	for _, m := range got {
		if !need[m] {
			extra = append(extra, m)
		}
	}
	return missing, extra
}

func TestLegalMovesMatchDragontooth(t *testing.T) {
	for _, tt := range oraclePositions {
		t.Run(tt.name, func(t *testing.T) {
			got := ourMoves(t, tt.fen)
			want := dragontoothMoves(tt.fen)
			if missing, extra := diffMoves(got, want); len(missing) > 0 || len(extra) > 0 {
				t.Fatalf("missing=%v extra=%v", missing, extra)
			}
		})
	}
}

func TestLegalMovesMatchCorentings(t *testing.T) {
	for _, tt := range oraclePositions {
		t.Run(tt.name, func(t *testing.T) {
			got := ourMoves(t, tt.fen)
			want := corentingsMoves(t, tt.fen)
			if missing, extra := diffMoves(got, want); len(missing) > 0 || len(extra) > 0 {
				t.Fatalf("missing=%v extra=%v", missing, extra)
			}
		})
	}
}

func TestKnownMoveCounts(t *testing.T) {
	tests := []struct {
		fen  string
		want int
	}{
		{chess.StartFEN, 20},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 48},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 14},
	}
	for _, tt := range tests {
		if got := len(ourMoves(t, tt.fen)); got != tt.want {
			t.Fatalf("%q: got=%d want=%d", tt.fen, got, tt.want)
		}
	}
}
