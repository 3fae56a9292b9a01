package experiments

import (
	"math"
	"testing"

	"isolation/experiments/metrics"
	"isolation/game"

	"github.com/matryer/is"
)

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(math.Abs(ZVal(95)-1.959964) < 1e-5)
	is.True(math.Abs(ZVal(99)-2.575829) < 1e-5)
}

func TestSummarize(t *testing.T) {
	is := is.New(t)
	records := []metrics.GameRecord{
		{ID: 1, Agent1: 1, Agent2: 10, GameMetric: metrics.GameMetric{Winner: game.Player1, Outcome: "normal", TotalMoves: 10}},
		{ID: 2, Agent1: 10, Agent2: 1, GameMetric: metrics.GameMetric{Winner: game.Player2, Outcome: "normal", TotalMoves: 12}},
		{ID: 3, Agent1: 1, Agent2: 11, GameMetric: metrics.GameMetric{Winner: game.Player2, Outcome: "timeout", TotalMoves: 7}},
		{ID: 4, Agent1: 11, Agent2: 1, GameMetric: metrics.GameMetric{Winner: game.Player2, Outcome: "normal", TotalMoves: 9}},
		{ID: 5, Agent1: 2, Agent2: 11, GameMetric: metrics.GameMetric{Winner: game.Player1, Outcome: "normal", TotalMoves: 5}},
	}

	summary := Summarize(metrics.AgentConfig{ID: 1, Name: "ID_Improved"}, records, 95)

	is.Equal(summary.Name, "ID_Improved")
	is.Equal(summary.Games, 4)
	is.Equal(summary.Wins, 3)
	is.Equal(summary.Losses, 1)
	is.Equal(summary.WinRate, 0.75)
	is.True(math.Abs(summary.Margin-ZVal(95)*math.Sqrt(0.75*0.25/4)) < 1e-12)
	is.Equal(summary.Outcomes, map[string]int{"normal": 3, "timeout": 1})
	is.Equal(TotalMoves(records), 43)
}

func TestSummarizeWithoutGames(t *testing.T) {
	is := is.New(t)

	summary := Summarize(metrics.AgentConfig{ID: 3, Name: "Idle"}, nil, 95)

	is.Equal(summary.Games, 0)
	is.Equal(summary.WinRate, 0.0)
	is.Equal(summary.Margin, 0.0)
}
