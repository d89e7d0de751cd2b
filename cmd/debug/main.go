package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"chessrules/internal/chess"
	"chessrules/internal/render"
)

func main() {
	fen := flag.String("fen", chess.StartFEN, "position to inspect")
	square := flag.String("moves", "", "list the valid moves of the piece on this square, e.g. g1")
	color := flag.Bool("color", false, "ANSI colored board")
	flag.Parse()

	g, err := chess.DecodeFEN(*fen)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	var opts []render.TextOption
	if *color {
		opts = append(opts, render.WithColor())
	}

	var marks []chess.Location
	if *square != "" {
		l, err := chess.ParseSquare(*square)
		if err != nil {
			log.Fatalf("square: %v", err)
		}
		p := g.PieceAt(l)
		if p == nil {
			fmt.Fprintf(os.Stderr, "no piece on %s\n", l)
			os.Exit(1)
		}
		marks = g.ValidMoves(p)
		names := make([]string, len(marks))
		for i, m := range marks {
			names[i] = m.String()
		}
		fmt.Printf("%s: %s\n", p, strings.Join(names, " "))
		opts = append(opts, render.WithHighlight(marks...))
	}

	fmt.Print(render.Text(g.Board(), opts...))
	fmt.Println("FEN:", g.EncodeFEN())
	fmt.Printf("Hash: %016x\n", g.Hash())
	fmt.Println("To move:", g.ToMove())
	fmt.Println("Legal moves:", len(g.LegalMoves(g.ToMove())))
	fmt.Println("Status:", g.Status(g.ToMove()))
}
