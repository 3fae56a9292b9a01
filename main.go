package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"isolation/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	level := flag.String("log", "info", "Lowest level to log: debug, info, warn or error")
	configPath := flag.String("config", "", "YAML tournament config, defaults to the built-in roster")
	outDir := flag.String("out", "results", "Directory to write the tournament records to")
	flag.Parse()

	setupLogger(*level)

	config := experiments.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info().Msg("starting isolation")
	result, err := experiments.RunTournament(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}

	dir, err := experiments.WriteReport(*outDir, config, result)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("failed to write report")
	}
	log.Info().Str("dir", dir).Msg("finished isolation")
}

func setupLogger(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		log.Fatal().Str("level", level).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(parsed)
}
