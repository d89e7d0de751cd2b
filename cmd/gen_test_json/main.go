package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"chessrules/internal/chess"
	"chessrules/internal/engine"
)

// TestCase is one position from a random game. Stage 0 masks the squares
// holding a piece that can move; stage 1 masks the destinations of the piece
// the game went on to move.
type TestCase struct {
	FEN    string    `json:"fen"`
	ToMove string    `json:"to_move"`
	Stage  int       `json:"stage"`
	From   string    `json:"from,omitempty"`
	Mask   [64]uint8 `json:"mask"`
	Status string    `json:"status"`
}

func maskIndex(l chess.Location) int {
	return l.Row*chess.Size + l.Col
}

func main() {
	numGames := flag.Int("games", 10, "random games to sample")
	maxPlies := flag.Int("maxplies", 300, "plies per game")
	seed := flag.Int64("seed", 1, "engine seed")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	e := engine.NewEngine(engine.WithSeed(*seed))
	var testCases []TestCase

	for g := 0; g < *numGames; g++ {
		game := chess.NewGame()
		for ply := 0; ply < *maxPlies; ply++ {
			legal := game.LegalMoves(game.ToMove())
			if len(legal) == 0 {
				break
			}
			fen := game.EncodeFEN()
			status := game.Status(game.ToMove()).String()

			stage0 := TestCase{FEN: fen, ToMove: game.ToMove().String(), Stage: 0, Status: status}
			for _, mv := range legal {
				stage0.Mask[maskIndex(mv.From)] = 1
			}
			testCases = append(testCases, stage0)

			res, ok := e.PickMove(game)
			if !ok {
				break
			}
			stage1 := TestCase{FEN: fen, ToMove: game.ToMove().String(), Stage: 1, From: res.Move.From.String(), Status: status}
			for _, mv := range legal {
				if mv.From == res.Move.From {
					stage1.Mask[maskIndex(mv.To)] = 1
				}
			}
			testCases = append(testCases, stage1)

			if _, err := game.Play(res.Move.From, res.Move.To, res.Promotion); err != nil {
				log.Fatalf("game %d ply %d: %v", g+1, ply, err)
			}
		}
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, file, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *numGames, *out)
}
