// owlctl is a one-shot command line driver for the search-and-evaluation
// kernel: load a position, optionally play a move, then search and print
// the engine's reply. Grounded on the shape of
// cmd/bernstein and cmd/sargon mains, trimmed to a single request/response
// call since UCI/console protocol drivers are out of scope here.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/seekerror/logw"

	"github.com/owlchess/kernel/pkg/board/fen"
	"github.com/owlchess/kernel/pkg/engine"
	"github.com/owlchess/kernel/pkg/search"
)

var (
	position = flag.String("fen", fen.Initial, "Position to start from, in FEN")
	move     = flag.String("move", "", "Opponent move to play before searching, e.g. \"e2-e4\"")
	depth    = flag.Int("depth", 4, "Search depth limit, in plies")
	features = flag.String("features", "alphabeta,sort,killer", "Comma-separated search features: alphabeta, sort, killer")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: owlctl [options]

owlctl loads a position, optionally plays an opponent move, searches for the
best reply at the configured depth, and prints the resulting FEN, the chosen
move, and its evaluation.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	f, err := parseFeatures(*features)
	if err != nil {
		logw.Exitf(ctx, "Invalid -features: %v", err)
	}

	e := engine.New(ctx, "OWLCTL", "owlchess",
		engine.WithOptions(engine.Options{Depth: *depth, Features: f}),
	)

	if err := e.Reset(ctx, *position); err != nil {
		logw.Exitf(ctx, "Invalid -fen: %v", err)
	}

	if *move != "" {
		if err := e.Move(ctx, *move); err != nil {
			logw.Exitf(ctx, "Invalid -move: %v", err)
		}
	}

	best, value, err := e.Think(ctx)
	if err != nil {
		logw.Exitf(ctx, "Search failed: %v", err)
	}

	fmt.Printf("move: %v\n", best)
	fmt.Printf("value: %v\n", value)
	fmt.Printf("fen: %v\n", e.Position())
}

func parseFeatures(s string) (search.Feature, error) {
	var f search.Feature
	for _, tok := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(tok)) {
		case "":
			continue
		case "alphabeta":
			f |= search.AlphaBetaFeature
		case "sort":
			f |= search.Sort
		case "killer":
			f |= search.Killer
		default:
			return 0, fmt.Errorf("unknown feature %q", tok)
		}
	}
	return f, nil
}
