package engine

import (
	"isolation/experiments/metrics"
	"isolation/game"
)

// Outcome tells how a game ended.
type Outcome string

const (
	OutcomeNormal      Outcome = "normal"       // Loser had no legal moves
	OutcomeTimeout     Outcome = "timeout"      // Loser ran over the time limit
	OutcomeIllegalMove Outcome = "illegal_move" // Loser played a move outside its legal moves
)

// Record is the result of a finished game.
type Record struct {
	Winner      game.Player
	Loser       game.Player
	Outcome     Outcome
	History     []game.Move // Every applied move, openings included
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

type Engine interface {
	// Run plays the game until a player loses and returns the record
	Run() Record
}
