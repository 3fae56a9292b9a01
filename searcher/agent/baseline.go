package agent

import (
	"fmt"
	"time"

	"isolation/experiments/metrics"
	"isolation/game"

	"lukechampine.com/frand"
)

type randomAgent struct{}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
func NewRandomAgent() Agent {
	return randomAgent{}
}

func (a randomAgent) FindMove(b *game.Board, timeLeft time.Duration) (game.Move, metrics.SearchMetric) {
	moves := b.LegalMoves(b.Active())
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{Method: "random"}
	}
	return moves[frand.Intn(len(moves))], metrics.SearchMetric{Method: "random"}
}

type greedyAgent struct {
	evaluate game.Evaluate
}

// NewGreedyAgent returns an agent that looks one move ahead and keeps the
// first move with the best score.
func NewGreedyAgent(evaluate game.Evaluate) Agent {
	if evaluate == nil {
		evaluate = game.ImprovedScore
	}
	return greedyAgent{evaluate: evaluate}
}

func (a greedyAgent) FindMove(b *game.Board, timeLeft time.Duration) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	player := b.Active()
	moves := b.LegalMoves(player)
	bestMove := game.NoMove
	bestScore := 0.0
	for _, move := range moves {
		next, err := b.Forecast(move)
		if err != nil {
			// Unreachable for a move taken from LegalMoves
			panic(fmt.Errorf("failed to expand %v: %w", move, err))
		}
		if score := a.evaluate(next, player); bestMove == game.NoMove || score > bestScore {
			bestMove, bestScore = move, score
		}
	}
	return bestMove, metrics.SearchMetric{
		Method:   "greedy",
		Depth:    1,
		Nodes:    len(moves),
		Duration: time.Since(start),
	}
}
