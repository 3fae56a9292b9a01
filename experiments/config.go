package experiments

import (
	"fmt"
	"os"
	"time"

	"isolation/experiments/metrics"
	"isolation/meta"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes a tournament: every test agent plays Matches matches
// against every opponent, each match being two games with seats swapped.
type Config struct {
	Name        string                `yaml:"name"`
	Rows        int                   `yaml:"rows"`
	Cols        int                   `yaml:"cols"`
	TimeLimit   time.Duration         `yaml:"time_limit"`
	Matches     int                   `yaml:"matches"`
	Parallelism int                   `yaml:"parallelism"` // Games played at once
	Confidence  float64               `yaml:"confidence"`  // Percent, for the win rate interval
	TestAgents  []metrics.AgentConfig `yaml:"test_agents"`
	Opponents   []metrics.AgentConfig `yaml:"opponents"`
}

func DefaultConfig() Config {
	return Config{
		Name:        "tournament",
		Rows:        meta.BOARD_ROWS,
		Cols:        meta.BOARD_COLS,
		TimeLimit:   meta.TIME_LIMIT,
		Matches:     meta.NUM_MATCHES,
		Parallelism: 1,
		Confidence:  95,
		TestAgents: []metrics.AgentConfig{
			{ID: 1, Name: "ID_Improved", Kind: KindSearch, Method: "alphabeta", Iterative: true, Heuristic: "improved", Threshold: meta.TIMER_THRESHOLD},
			{ID: 2, Name: "Student", Kind: KindSearch, Method: "alphabeta", Iterative: true, Heuristic: "combined_improved", Threshold: meta.TIMER_THRESHOLD},
		},
		Opponents: []metrics.AgentConfig{
			{ID: 10, Name: "Random", Kind: KindRandom},
			{ID: 11, Name: "MM_Null", Kind: KindSearch, Method: "minimax", Depth: meta.SEARCH_DEPTH, Heuristic: "null", Threshold: meta.TIMER_THRESHOLD},
			{ID: 12, Name: "MM_Open", Kind: KindSearch, Method: "minimax", Depth: meta.SEARCH_DEPTH, Heuristic: "open", Threshold: meta.TIMER_THRESHOLD},
			{ID: 13, Name: "MM_Improved", Kind: KindSearch, Method: "minimax", Depth: meta.SEARCH_DEPTH, Heuristic: "improved", Threshold: meta.TIMER_THRESHOLD},
			{ID: 14, Name: "AB_Null", Kind: KindSearch, Method: "alphabeta", Depth: meta.SEARCH_DEPTH, Heuristic: "null", Threshold: meta.TIMER_THRESHOLD},
			{ID: 15, Name: "AB_Open", Kind: KindSearch, Method: "alphabeta", Depth: meta.SEARCH_DEPTH, Heuristic: "open", Threshold: meta.TIMER_THRESHOLD},
			{ID: 16, Name: "AB_Improved", Kind: KindSearch, Method: "alphabeta", Depth: meta.SEARCH_DEPTH, Heuristic: "improved", Threshold: meta.TIMER_THRESHOLD},
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Lists given in the
// file replace the default rosters.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := config.Validate(); err != nil {
		return config, errors.Wrapf(err, "invalid config %s", path)
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 || c.Rows*c.Cols < 2 {
		return fmt.Errorf("board of %dx%d cannot seat two players", c.Rows, c.Cols)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("time limit must be positive, got %v", c.TimeLimit)
	}
	if c.Matches <= 0 {
		return fmt.Errorf("matches must be positive, got %d", c.Matches)
	}
	if c.Parallelism <= 0 {
		return fmt.Errorf("parallelism must be positive, got %d", c.Parallelism)
	}
	if c.Confidence <= 0 || c.Confidence >= 100 {
		return fmt.Errorf("confidence must be within (0, 100), got %v", c.Confidence)
	}
	if len(c.TestAgents) == 0 || len(c.Opponents) == 0 {
		return errors.New("need at least one test agent and one opponent")
	}

	ids := map[int]bool{}
	for _, config := range append(append([]metrics.AgentConfig{}, c.TestAgents...), c.Opponents...) {
		if ids[config.ID] {
			return fmt.Errorf("duplicate agent id %d", config.ID)
		}
		ids[config.ID] = true
		if _, err := BuildAgent(config); err != nil {
			return err
		}
	}
	return nil
}
