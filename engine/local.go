package engine

import (
	"time"

	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Local struct {
	board     *game.Board
	agents    [2]agent.Agent // Indexed by player, Player1 first
	timeLimit time.Duration
	history   []game.Move
}

var _ Engine = (*Local)(nil)

// LocalEngine runs games in-process between two agents. The engine owns b
// and agents only ever receive copies of it.
func LocalEngine(agents [2]agent.Agent, b *game.Board, timeLimit time.Duration) *Local {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	if b == nil {
		panic("need a board")
	}
	if timeLimit <= 0 {
		panic("time limit must be positive")
	}
	return &Local{
		board:     b,
		agents:    agents,
		timeLimit: timeLimit,
	}
}

// Open plays the opening moves on behalf of the agents, starting with the
// active player.
func (e *Local) Open(moves ...game.Move) error {
	for _, move := range moves {
		if err := e.board.Apply(move); err != nil {
			return err
		}
		e.history = append(e.history, move)
	}
	return nil
}

func (e *Local) Board() *game.Board {
	return e.board
}

// Run executes the game loop until the active player has no legal moves,
// exceeds the time limit or plays an illegal move.
func (e *Local) Run() Record {
	start := time.Now()
	starting := e.board.Active()
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("%v is starting", starting)

	for step := 1; ; step++ {
		player := e.board.Active()
		legal := e.board.LegalMoves(player)
		if len(legal) == 0 {
			return e.finish(player, OutcomeNormal, start, starting, moveMetrics)
		}

		moveStart := time.Now()
		move, searchMetric := e.agents[player-1].FindMove(e.board.Copy(), e.timeLimit)
		elapsed := time.Since(moveStart)

		if elapsed > e.timeLimit {
			log.Debug().Stringer("player", player).Dur("elapsed", elapsed).Msg("time limit exceeded")
			return e.finish(player, OutcomeTimeout, start, starting, moveMetrics)
		}
		if !slices.Contains(legal, move) {
			log.Debug().Stringer("player", player).Stringer("move", move).Msg("illegal move")
			return e.finish(player, OutcomeIllegalMove, start, starting, moveMetrics)
		}

		if err := e.board.Apply(move); err != nil {
			// Unreachable once the move is among the legal ones
			panic(err)
		}
		e.history = append(e.history, move)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			Hash:         e.board.Hash(),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Stringer("player", player).Stringer("move", move).
			Int("depth", searchMetric.Depth).Msg("applied move")
	}
}

func (e *Local) finish(loser game.Player, outcome Outcome, start time.Time, starting game.Player, moveMetrics []metrics.MoveMetric) Record {
	end := time.Now()
	winner := loser.Opponent()
	log.Info().Msgf("%v wins against %v by %s after %d moves", winner, loser, outcome, len(e.history))

	return Record{
		Winner:  winner,
		Loser:   loser,
		Outcome: outcome,
		History: slices.Clone(e.history),
		GameMetric: metrics.GameMetric{
			StartingPlayer: starting,
			Winner:         winner,
			Outcome:        string(outcome),
			StartTime:      start,
			EndTime:        end,
			Duration:       end.Sub(start),
			TotalMoves:     len(e.history),
		},
		MoveMetrics: moveMetrics,
	}
}
