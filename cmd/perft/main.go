// Command perft runs the move-count correctness oracle against a FEN
// position and prints either the leaf-node total or a per-move split.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/corvid/chesscore"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("perft: ")
	log.SetFlags(0)

	fen := flag.String("fen", "", "FEN to start from (defaults to the standard starting position)")
	depth := flag.Int("depth", 1, "search depth in plies")
	split := flag.Bool("split", false, "print a per-move node count instead of just the total")
	flag.Parse()

	board, err := chesscore.FromFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}
	if *depth < 0 {
		log.Fatalf("depth must be non-negative, got %d", *depth)
	}

	if !*split {
		fmt.Println(board.Perft(*depth))
		return
	}

	total, byMove := board.PerftSplit(*depth)
	moves := maps.Keys(byMove)
	sort.Strings(moves)
	for _, m := range moves {
		fmt.Printf("%s: %d\n", m, byMove[m])
	}
	fmt.Println("total:", total)
}
