package experiments

import (
	"context"
	"isolation/agent"
	"isolation/config"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// RunPruning searches random positions with both minimax and alpha-beta at
// every depth up to cfg.MaxDepth, without a deadline, and records how many
// nodes each visited and whether their results agree.
func RunPruning(ctx context.Context, board config.BoardConfig, cfg config.ExperimentConfig) ([]metrics.PruningRecord, error) {
	var evaluator game.Evaluator = game.LookAhead
	if cfg.Heuristic != "" {
		var err error
		evaluator, err = game.EvaluatorByName(cfg.Heuristic)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().Msgf("starting pruning experiment over %d positions up to depth %d...", cfg.Positions, cfg.MaxDepth)

	results := make([][]metrics.PruningRecord, cfg.Positions)
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i := 0; i < cfg.Positions; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			state := randomPosition(board, cfg.OpeningPlies, cfg.Seed+uint64(i))
			records, err := comparePosition(ctx, i, state, evaluator, cfg.MaxDepth)
			if err != nil {
				return errors.Wrapf(err, "position %d", i)
			}
			results[i] = records
			log.Info().Msgf("completed position %d of %d", i+1, cfg.Positions)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := []metrics.PruningRecord{}
	for _, r := range results {
		records = append(records, r...)
	}

	log.Info().Msgf("completed pruning experiment: %d records, %d disagreements", len(records), countDisagreements(records))
	return records, nil
}

// WritePruning stores records under dir and returns the directory used.
func WritePruning(dir string, records []metrics.PruningRecord) (string, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return "", errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WritePruningRecords(records); err != nil {
		return "", errors.Wrap(err, "failed to store pruning records")
	}
	log.Info().Msgf("stored pruning records in %s", writer.Dir())
	return writer.Dir(), nil
}

// randomPosition plays plies random moves from an empty board, stopping early
// if the game ends.
func randomPosition(board config.BoardConfig, plies int, seed uint64) *game.Board {
	state := game.NewBoard(board.Width, board.Height)
	player := agent.NewRandomAgent(seed)
	for ply := 0; ply < plies; ply++ {
		if len(state.LegalMoves(state.ActivePlayer())) == 0 {
			break
		}
		move, _ := player.FindMove(state, searcher.Unlimited())
		state = state.Play(move)
	}
	return state
}

func comparePosition(ctx context.Context, position int, state game.State, evaluator game.Evaluator, maxDepth int) ([]metrics.PruningRecord, error) {
	minimaxMetrics := metrics.NewCollector()
	alphaBetaMetrics := metrics.NewCollector()
	minimax := searcher.NewSearcher(searcher.WithEvaluator(evaluator), searcher.WithMetrics(minimaxMetrics))
	alphaBeta := searcher.NewSearcher(searcher.WithEvaluator(evaluator), searcher.WithMetrics(alphaBetaMetrics),
		searcher.WithMethod(searcher.MethodAlphaBeta))

	records := []metrics.PruningRecord{}
	for depth := 1; depth <= maxDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		minimaxMetrics.Start(string(searcher.MethodMinimax), false)
		want, err := minimax.Minimax(state, depth, searcher.Unlimited())
		if err != nil {
			return nil, err
		}
		minimaxMetric := minimaxMetrics.Complete()

		alphaBetaMetrics.Start(string(searcher.MethodAlphaBeta), false)
		got, err := alphaBeta.AlphaBeta(state, depth, searcher.Unlimited())
		if err != nil {
			return nil, err
		}
		alphaBetaMetric := alphaBetaMetrics.Complete()

		records = append(records, metrics.PruningRecord{
			Position:       position,
			Depth:          depth,
			Move:           want.Move.String(),
			MinimaxScore:   want.Score,
			AlphaBetaScore: got.Score,
			MinimaxNodes:   minimaxMetric.Nodes,
			AlphaBetaNodes: alphaBetaMetric.Nodes,
			Cutoffs:        alphaBetaMetric.Cutoffs,
			Agree:          want == got,
		})
	}
	return records, nil
}

func countDisagreements(records []metrics.PruningRecord) int {
	count := 0
	for _, r := range records {
		if !r.Agree {
			count++
		}
	}
	return count
}
