package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"chessrules/internal/chess"
	"chessrules/internal/engine"
	"chessrules/internal/render"
)

func main() {
	totalGames := flag.Int("games", 1, "number of games to play")
	maxPlies := flag.Int("maxplies", 400, "plies before a game is called a draw")
	seed := flag.Int64("seed", seedFromEnv(), "engine seed, 0 for time-based (CHESS_SEED)")
	verbose := flag.Bool("v", false, "print the board after every ply")
	color := flag.Bool("color", false, "ANSI colored boards")
	flag.Parse()

	var opts []engine.Option
	if *seed != 0 {
		opts = append(opts, engine.WithSeed(*seed))
	}
	e := engine.NewEngine(opts...)

	var textOpts []render.TextOption
	if *color {
		textOpts = append(textOpts, render.WithColor())
	}

	whiteWins, blackWins, draws := 0, 0, 0
	for g := 0; g < *totalGames; g++ {
		fmt.Printf("\n=== Game %d ===\n", g+1)
		game := chess.NewGame()
		result := playGame(e, game, *maxPlies, func(ply int, res engine.SearchResult, st chess.Status) {
			if !*verbose {
				return
			}
			fmt.Printf("%d. %s %s-%s (%s)\n", ply, res.Move.Piece.Color(), res.Move.From, res.Move.To, st)
			fmt.Print(render.Text(game.Board(), textOpts...))
		})
		fmt.Print(render.Text(game.Board(), textOpts...))
		fmt.Println("FEN:", game.EncodeFEN())

		switch result {
		case chess.White:
			whiteWins++
			fmt.Println("Result: white wins")
		case chess.Black:
			blackWins++
			fmt.Println("Result: black wins")
		default:
			draws++
			fmt.Println("Result: draw")
		}
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("White: %d\n", whiteWins)
	fmt.Printf("Black: %d\n", blackWins)
	fmt.Printf("Draws: %d\n", draws)
	log.Printf("engine generated %d move lists, %d cache hits", e.Nodes(), e.CacheHits())
}

// playGame runs the turn loop until mate, stalemate or maxPlies. It returns
// the winner, or NoColor for a draw.
func playGame(e *engine.Engine, g *chess.Game, maxPlies int, onPly func(int, engine.SearchResult, chess.Status)) chess.Color {
	for ply := 1; ply <= maxPlies; ply++ {
		mover := g.ToMove()
		res, st, err := e.Play(g)
		if errors.Is(err, chess.ErrGameOver) {
			if st == chess.Checkmate {
				return mover.Opposite()
			}
			return chess.NoColor
		}
		if err != nil {
			log.Fatalf("ply %d: %v", ply, err)
		}
		onPly(ply, res, st)

		switch st {
		case chess.Checkmate:
			return mover
		case chess.Stalemate:
			return chess.NoColor
		}
	}
	return chess.NoColor
}

func seedFromEnv() int64 {
	v, err := strconv.ParseInt(os.Getenv("CHESS_SEED"), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
