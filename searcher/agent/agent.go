package agent

import (
	"time"

	"isolation/experiments/metrics"
	"isolation/game"
)

type Agent interface {
	// FindMove returns a move for the active player of the board and search
	// metrics (if collected). It must return within timeLeft. game.NoMove
	// means the agent forfeits.
	FindMove(b *game.Board, timeLeft time.Duration) (game.Move, metrics.SearchMetric)
}
