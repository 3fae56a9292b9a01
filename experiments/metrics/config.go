package metrics

import "time"

// AgentConfig describes how to build one tournament participant.
type AgentConfig struct {
	ID        int           `yaml:"id"`
	Name      string        `yaml:"name"`
	Kind      string        `yaml:"kind"`   // search, random or greedy
	Method    string        `yaml:"method"` // minimax or alphabeta
	Iterative bool          `yaml:"iterative"`
	Depth     int           `yaml:"depth"`
	Heuristic string        `yaml:"heuristic"`
	Threshold time.Duration `yaml:"threshold"` // Time kept in reserve when searching against a deadline
}
