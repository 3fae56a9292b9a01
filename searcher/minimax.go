package searcher

import (
	"context"

	"isolation/game"
)

// Minimax searches the game tree below b to depth plies. When maximizing,
// values are from the point of view of the player to move, otherwise from
// its opponent's. Ties go to the first move in legal move order.
func (s *Searcher) Minimax(ctx context.Context, b *game.Board, depth int, maximizing bool) (Result, error) {
	r := newRun(ctx, s.evaluate, b, maximizing)
	move, value, err := r.minimax(b, depth, maximizing)
	if err != nil {
		return Result{Move: game.NoMove, Nodes: r.nodes}, err
	}
	return Result{Move: move, Value: value, Depth: depth, Nodes: r.nodes}, nil
}

func (r *run) minimax(b *game.Board, depth int, maximizing bool) (game.Move, float64, error) {
	if err := r.visit(); err != nil {
		return game.NoMove, 0, err
	}
	moves, value, leaf := r.expand(b, depth)
	if leaf {
		return game.NoMove, value, nil
	}

	bestMove := game.NoMove
	bestValue := negInf
	if !maximizing {
		bestValue = posInf
	}
	for _, move := range moves {
		child, err := r.forecast(b, move)
		if err != nil {
			return game.NoMove, 0, err
		}
		_, value, err := r.minimax(child, depth-1, !maximizing)
		if err != nil {
			return game.NoMove, 0, err
		}

		// Strict comparisons keep the first of equally good moves
		if bestMove == game.NoMove ||
			(maximizing && value > bestValue) ||
			(!maximizing && value < bestValue) {
			bestMove, bestValue = move, value
		}
	}
	return bestMove, bestValue, nil
}
