package searcher

import (
	"context"
	"math"

	"isolation/game"
)

// AlphaBeta returns the same move and value as Minimax while skipping
// subtrees that cannot change the decision.
func (s *Searcher) AlphaBeta(ctx context.Context, b *game.Board, depth int, maximizing bool) (Result, error) {
	r := newRun(ctx, s.evaluate, b, maximizing)
	move, value, err := r.alphaBeta(b, depth, negInf, posInf, maximizing)
	if err != nil {
		return Result{Move: game.NoMove, Nodes: r.nodes}, err
	}
	return Result{Move: move, Value: value, Depth: depth, Nodes: r.nodes}, nil
}

func (r *run) alphaBeta(b *game.Board, depth int, alpha, beta float64, maximizing bool) (game.Move, float64, error) {
	if err := r.visit(); err != nil {
		return game.NoMove, 0, err
	}
	moves, value, leaf := r.expand(b, depth)
	if leaf {
		return game.NoMove, value, nil
	}

	bestMove := game.NoMove
	if maximizing {
		bestValue := negInf
		for _, move := range moves {
			child, err := r.forecast(b, move)
			if err != nil {
				return game.NoMove, 0, err
			}
			_, value, err := r.alphaBeta(child, depth-1, alpha, beta, false)
			if err != nil {
				return game.NoMove, 0, err
			}
			if bestMove == game.NoMove || value > bestValue {
				bestMove, bestValue = move, value
			}
			alpha = math.Max(alpha, bestValue)
			if alpha >= beta { // beta cut-off
				break
			}
		}
		return bestMove, bestValue, nil
	}

	bestValue := posInf
	for _, move := range moves {
		child, err := r.forecast(b, move)
		if err != nil {
			return game.NoMove, 0, err
		}
		_, value, err := r.alphaBeta(child, depth-1, alpha, beta, true)
		if err != nil {
			return game.NoMove, 0, err
		}
		if bestMove == game.NoMove || value < bestValue {
			bestMove, bestValue = move, value
		}
		beta = math.Min(beta, bestValue)
		if beta <= alpha { // alpha cut-off
			break
		}
	}
	return bestMove, bestValue, nil
}
