package experiments

import (
	"math"

	"isolation/experiments/metrics"
	"isolation/game"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat/distuv"
)

// Summary is the standing of one agent over the games it played.
type Summary struct {
	ID       int
	Name     string
	Games    int
	Wins     int
	Losses   int
	WinRate  float64
	Margin   float64        // Half width of the win rate confidence interval
	Outcomes map[string]int // Games by how they ended
}

// ZVal returns the two-tailed Z-value associated with a specific confidence interval.
// The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + (confidenceInterval / 100)) / 2
	return dist.Quantile(area)
}

// WinnerID returns the id of the agent that won the game.
func WinnerID(record metrics.GameRecord) int {
	if record.Winner == game.Player1 {
		return record.Agent1
	}
	return record.Agent2
}

// Summarize tallies the games played by the agent with a normal
// approximation interval around its win rate.
func Summarize(config metrics.AgentConfig, records []metrics.GameRecord, confidence float64) Summary {
	played := lo.Filter(records, func(r metrics.GameRecord, _ int) bool {
		return r.Agent1 == config.ID || r.Agent2 == config.ID
	})
	wins := lo.CountBy(played, func(r metrics.GameRecord) bool {
		return WinnerID(r) == config.ID
	})

	summary := Summary{
		ID:     config.ID,
		Name:   config.Name,
		Games:  len(played),
		Wins:   wins,
		Losses: len(played) - wins,
		Outcomes: lo.CountValuesBy(played, func(r metrics.GameRecord) string {
			return r.Outcome
		}),
	}
	if summary.Games == 0 {
		return summary
	}

	n := float64(summary.Games)
	p := float64(wins) / n
	summary.WinRate = p
	summary.Margin = ZVal(confidence) * math.Sqrt(p*(1-p)/n)
	return summary
}

// TotalMoves sums the moves of all games.
func TotalMoves(records []metrics.GameRecord) int {
	return lo.SumBy(records, func(r metrics.GameRecord) int {
		return r.TotalMoves
	})
}
