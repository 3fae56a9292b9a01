package experiments

import (
	"isolation/experiments/metrics"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// WriteReport stores the agent configs and the records of the tournament as
// CSV files under root and returns the directory written to. Every file is
// attempted even if an earlier one fails.
func WriteReport(root string, config Config, result *Result) (string, error) {
	writer, err := metrics.NewWriter(root, config.Name)
	if err != nil {
		return "", errors.Wrap(err, "failed to create experiment writer")
	}

	var errs error
	configs := append(append([]metrics.AgentConfig{}, config.TestAgents...), config.Opponents...)
	if err := writer.WriteAgentConfigs(configs); err != nil {
		errs = multierror.Append(errs, err)
	} else {
		log.Info().Msg("stored agent configs")
	}
	if err := writer.WriteGameRecords(result.Games); err != nil {
		errs = multierror.Append(errs, err)
	} else {
		log.Info().Msg("stored game records")
	}
	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		errs = multierror.Append(errs, err)
	} else {
		log.Info().Msg("stored move records")
	}
	if errs != nil {
		return writer.Dir(), errs
	}
	return writer.Dir(), nil
}
