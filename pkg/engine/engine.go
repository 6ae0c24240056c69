// Package engine wraps the board/eval/search kernel in a mutex-guarded,
// synchronous API suitable for a single caller driving one game at a time.
// There is deliberately no iterative deepening, time management, or
// concurrent search here: just a direct, single-shot SearchMove call per
// Think.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/owlchess/kernel/pkg/board"
	"github.com/owlchess/kernel/pkg/board/fen"
	"github.com/owlchess/kernel/pkg/eval"
	"github.com/owlchess/kernel/pkg/search"
)

var version = build.NewVersion(0, 1, 0)

// Options configure an Engine's default search behavior.
type Options struct {
	Depth    int
	Features search.Feature
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, features=%v}", o.Depth, o.Features)
}

// Engine holds one game in progress: the current position and the
// repetition history needed to detect a threefold-repetition draw.
type Engine struct {
	name, author string
	zt           *board.ZobristTable
	opts         Options

	pos        *board.Position
	repetition *search.RepetitionTracker

	mu sync.Mutex
}

// Option is an engine construction option.
type Option func(*Engine)

// WithOptions sets the engine's default search options.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// WithZobrist configures the engine to use the given random seed for its
// repetition fingerprints instead of the default seed of zero.
func WithZobrist(seed int64) Option {
	return func(e *Engine) { e.zt = board.NewZobristTable(seed) }
}

// New builds an Engine, reset to the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		opts:   Options{Depth: 4, Features: search.AlphaBetaFeature | search.Sort | search.Killer},
	}
	for _, fn := range opts {
		fn(e)
	}
	if e.zt == nil {
		e.zt = board.NewZobristTable(0)
	}
	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the engine author.
func (e *Engine) Author() string {
	return e.author
}

// Options returns the engine's current search options.
func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

// SetDepth changes the search depth used by future Think calls.
func (e *Engine) SetDepth(depth int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.Depth = depth
}

// Position returns the current position in FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fen.Encode(e.pos)
}

// Reset replaces the current game with the position described by the given
// FEN string, clearing repetition history.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := fen.Decode(position)
	if err != nil {
		return err
	}
	e.pos = pos
	e.repetition = search.NewRepetitionTracker(e.zt)

	logw.Infof(ctx, "Reset %v, depth=%v", position, e.opts.Depth)
	return nil
}

// Move plays move (in "<file><rank><sep><file><rank>[promo]" form) against
// the current position, usually an opponent's move.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := fen.ParseMoveString(e.pos, move)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	var legal board.Move
	found := false
	for _, m := range e.pos.LegalMoves(e.pos.SideToMove()) {
		if m.Equals(candidate) {
			legal = m
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("illegal move: %v", candidate)
	}

	e.pos.Make(legal)
	e.repetition.AddPosition(e.pos)

	logw.Infof(ctx, "Move %v: %v", legal, fen.Encode(e.pos))
	return nil
}

// Think searches the current position at the engine's configured depth,
// plays the best move found, and returns it along with its evaluation.
func (e *Engine) Think(ctx context.Context) (board.Move, eval.Score, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pos.GameState() != board.Active {
		return board.Move{}, eval.Zero, fmt.Errorf("game over: %v", e.pos.GameState())
	}

	result := search.SearchMove(ctx, e.pos, e.opts.Depth, e.opts.Features, e.repetition)
	if result.Best.IsZero() {
		return board.Move{}, result.Value, fmt.Errorf("no legal move available")
	}

	e.pos.Make(result.Best)

	logw.Infof(ctx, "Think %v: %v (%v)", result.Best, fen.Encode(e.pos), result.Value)
	return result.Best, result.Value, nil
}
