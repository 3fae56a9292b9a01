package experiments

import (
	"fmt"

	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"
)

const (
	KindSearch = "search"
	KindRandom = "random"
	KindGreedy = "greedy"
)

// BuildAgent returns a new agent for the config. Agents are built per game so
// that no state is shared between concurrent games.
func BuildAgent(config metrics.AgentConfig) (agent.Agent, error) {
	switch config.Kind {
	case KindSearch:
		s, err := createSearcher(config)
		if err != nil {
			return nil, err
		}
		return agent.NewSearchAgent(s, config.Threshold), nil
	case KindRandom:
		return agent.NewRandomAgent(), nil
	case KindGreedy:
		evaluate, err := lookupHeuristic(config)
		if err != nil {
			return nil, err
		}
		return agent.NewGreedyAgent(evaluate), nil
	default:
		return nil, fmt.Errorf("agent %q: unknown kind %q", config.Name, config.Kind)
	}
}

func createSearcher(config metrics.AgentConfig) (*searcher.Searcher, error) {
	method, err := searcher.ParseMethod(config.Method)
	if err != nil {
		return nil, fmt.Errorf("agent %q: %w", config.Name, err)
	}
	evaluate, err := lookupHeuristic(config)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{
		searcher.WithMethod(method),
		searcher.WithIterative(config.Iterative),
		searcher.WithEvaluationFn(evaluate),
	}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewSearcher(options...), nil
}

func lookupHeuristic(config metrics.AgentConfig) (game.Evaluate, error) {
	if config.Heuristic == "" {
		return game.ImprovedScore, nil
	}
	evaluate, err := game.LookupEvaluate(config.Heuristic)
	if err != nil {
		return nil, fmt.Errorf("agent %q: %w", config.Name, err)
	}
	return evaluate, nil
}
