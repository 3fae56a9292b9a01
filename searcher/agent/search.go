package agent

import (
	"context"
	"time"

	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
)

type searchAgent struct {
	searcher  *searcher.Searcher
	threshold time.Duration
}

// NewSearchAgent returns an agent that searches with s until threshold
// before its time runs out. A non-positive threshold falls back to
// meta.TIMER_THRESHOLD.
func NewSearchAgent(s *searcher.Searcher, threshold time.Duration) Agent {
	if threshold <= 0 {
		threshold = meta.TIMER_THRESHOLD
	}
	return searchAgent{searcher: s, threshold: threshold}
}

func (a searchAgent) FindMove(b *game.Board, timeLeft time.Duration) (game.Move, metrics.SearchMetric) {
	ctx, cancel := context.WithTimeout(context.Background(), timeLeft-a.threshold)
	defer cancel()

	result, metric := a.searcher.Search(ctx, b)
	return result.Move, metric
}
