package main

import (
	"context"
	"flag"
	"isolation/agent"
	"isolation/config"
	"isolation/engine"
	"isolation/experiments"
	"isolation/experiments/metrics"
	"isolation/game"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults apply when empty)")
	mode := flag.String("mode", "match", "What to run: match or experiment")
	level := flag.String("log-level", "info", "Log level")
	record := flag.String("record", "", "Directory to store match records in (none when empty)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "match":
		err = runMatch(ctx, cfg, *record)
	case "experiment":
		err = runExperiment(ctx, cfg)
	default:
		err = errors.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

// runMatch plays a single game between the two configured agents
func runMatch(ctx context.Context, cfg config.Config, recordDir string) error {
	var agents [2]agent.Agent
	for i, agentConfig := range cfg.Agents {
		a, err := agentConfig.Build()
		if err != nil {
			return errors.Wrapf(err, "failed to build agent %s", agentConfig.Name)
		}
		agents[i] = a
	}

	e := engine.NewLocalEngine(cfg.NewBoard(), agents,
		engine.WithTimeLimit(cfg.TimeLimit()),
		engine.WithMaxMoves(cfg.MaxMoves))
	outcome, err := e.Run(ctx)
	if err != nil {
		return err
	}

	// A fresh board always starts with Player1
	names := map[game.Player]string{
		game.NoPlayer: "nobody",
		game.Player1:  cfg.Agents[0].Name,
		game.Player2:  cfg.Agents[1].Name,
	}
	log.Info().Msgf("winner: %s (%s)", names[outcome.Winner], outcome.Reason)

	if recordDir == "" {
		return nil
	}
	writer, err := metrics.NewWriter(recordDir)
	if err != nil {
		return errors.Wrap(err, "failed to create match writer")
	}
	gameRecord := metrics.GameRecord{ID: 1, Agent1: cfg.Agents[0].Name, Agent2: cfg.Agents[1].Name, GameMetric: outcome.GameMetric}
	if err := writer.WriteGameRecords([]metrics.GameRecord{gameRecord}); err != nil {
		return err
	}
	moveRecords := make([]metrics.MoveRecord, 0, len(outcome.MoveMetrics))
	for _, mm := range outcome.MoveMetrics {
		moveRecords = append(moveRecords, metrics.MoveRecord{Game: 1, MoveMetric: mm})
	}
	return writer.WriteMoveRecords(moveRecords)
}

func runExperiment(ctx context.Context, cfg config.Config) error {
	records, err := experiments.RunPruning(ctx, cfg.Board, cfg.Experiment)
	if err != nil {
		return err
	}
	if cfg.Experiment.OutputDir == "" {
		return nil
	}
	_, err = experiments.WritePruning(cfg.Experiment.OutputDir, records)
	return err
}
