package searcher

import (
	"context"
	"fmt"
	"math"

	"isolation/game"
)

type Method int

const (
	Minimax Method = iota
	AlphaBeta
)

func (m Method) String() string {
	switch m {
	case AlphaBeta:
		return "alphabeta"
	default:
		return "minimax"
	}
}

// ParseMethod accepts the names produced by Method.String.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "minimax":
		return Minimax, nil
	case "alphabeta":
		return AlphaBeta, nil
	default:
		return Minimax, fmt.Errorf("unknown search method %q", name)
	}
}

// Result pairs the best move with its backed-up value. Move is game.NoMove
// when the player to move has no legal move.
type Result struct {
	Move  game.Move
	Value float64
	Depth int // Depth the result was searched to
	Nodes int // Nodes visited
}

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// run holds the bookkeeping of one fixed-depth search. The deadline is polled
// through ctx at every node.
type run struct {
	ctx         context.Context
	evaluate    game.Evaluate
	perspective game.Player
	nodes       int
	cutoff      bool // Some non-terminal node was scored by the heuristic
}

func newRun(ctx context.Context, evaluate game.Evaluate, b *game.Board, maximizing bool) *run {
	perspective := b.Active()
	if !maximizing {
		perspective = b.Inactive()
	}
	return &run{
		ctx:         ctx,
		evaluate:    evaluate,
		perspective: perspective,
	}
}

func (r *run) visit() error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	r.nodes++
	return nil
}

// expand returns the moves to search from b, or the value of b when it ends
// the search: ±Inf on a decided board, the heuristic at the depth cutoff.
func (r *run) expand(b *game.Board, depth int) (moves []game.Move, value float64, leaf bool) {
	moves = b.LegalMoves(b.Active())
	if len(moves) == 0 {
		return nil, b.Utility(r.perspective), true
	}
	if depth <= 0 {
		r.cutoff = true
		return nil, r.evaluate(b, r.perspective), true
	}
	return moves, 0, false
}

func (r *run) forecast(b *game.Board, move game.Move) (*game.Board, error) {
	child, err := b.Forecast(move)
	if err != nil {
		return nil, fmt.Errorf("failed to expand %v: %w", move, err)
	}
	return child, nil
}
