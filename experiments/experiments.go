package experiments

import (
	"context"
	"fmt"

	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

// Result holds everything recorded by a tournament.
type Result struct {
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Summaries []Summary // One per test agent, in config order
}

// job is one game of a match, seats already assigned.
type job struct {
	id      int
	first   metrics.AgentConfig
	second  metrics.AgentConfig
	opening [2]game.Move
}

// RunTournament plays every test agent against every opponent. Each match
// starts from a random opening and is played twice with seats swapped, so
// both agents get the same positions.
func RunTournament(ctx context.Context, config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	jobs := scheduleGames(config)

	log.Info().Msgf("starting %s with %d games...", config.Name, len(jobs))

	games := make([]metrics.GameRecord, len(jobs))
	moves := make([][]metrics.MoveRecord, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.Parallelism)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, err := runGame(config, j)
			if err != nil {
				return fmt.Errorf("game %d: %w", j.id, err)
			}

			games[i] = metrics.GameRecord{
				ID:         j.id,
				Agent1:     j.first.ID,
				Agent2:     j.second.ID,
				GameMetric: record.GameMetric,
			}
			moves[i] = make([]metrics.MoveRecord, 0, len(record.MoveMetrics))
			for _, mm := range record.MoveMetrics {
				moves[i] = append(moves[i], metrics.MoveRecord{
					Game:       j.id,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed game %d of %d: %s vs %s, winner %s by %s",
				j.id, len(jobs), j.first.Name, j.second.Name, winnerName(j, record.Winner), record.Outcome)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Games: games}
	for _, m := range moves {
		result.Moves = append(result.Moves, m...)
	}
	for _, testAgent := range config.TestAgents {
		summary := Summarize(testAgent, games, config.Confidence)
		result.Summaries = append(result.Summaries, summary)
		log.Info().Msgf("%s won %d of %d games: %.2f%% ± %.2f%%",
			summary.Name, summary.Wins, summary.Games, 100*summary.WinRate, 100*summary.Margin)
	}

	log.Info().Msgf("completed %s after %d moves", config.Name, TotalMoves(games))
	return result, nil
}

func scheduleGames(config Config) []job {
	jobs := []job{}
	for _, testAgent := range config.TestAgents {
		for _, opponent := range config.Opponents {
			for m := 0; m < config.Matches; m++ {
				opening := randomOpening(game.NewBoard(config.Rows, config.Cols))
				jobs = append(jobs,
					job{id: len(jobs) + 1, first: testAgent, second: opponent, opening: opening},
					job{id: len(jobs) + 2, first: opponent, second: testAgent, opening: opening},
				)
			}
		}
	}
	return jobs
}

// randomOpening picks two distinct open cells for the first placements.
func randomOpening(b *game.Board) [2]game.Move {
	cells := b.BlankCells()
	i := frand.Intn(len(cells))
	j := frand.Intn(len(cells) - 1)
	if j >= i {
		j++
	}
	return [2]game.Move{cells[i], cells[j]}
}

// runGame executes a single game between two freshly built agents
func runGame(config Config, j job) (engine.Record, error) {
	first, err := BuildAgent(j.first)
	if err != nil {
		return engine.Record{}, err
	}
	second, err := BuildAgent(j.second)
	if err != nil {
		return engine.Record{}, err
	}

	e := engine.LocalEngine([2]agent.Agent{first, second}, game.NewBoard(config.Rows, config.Cols), config.TimeLimit)
	if err := e.Open(j.opening[:]...); err != nil {
		return engine.Record{}, err
	}
	return e.Run(), nil
}

func winnerName(j job, winner game.Player) string {
	if winner == game.Player1 {
		return j.first.Name
	}
	return j.second.Name
}
