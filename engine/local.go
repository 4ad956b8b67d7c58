package engine

import (
	"context"
	"isolation/agent"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
	"isolation/utils"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// LocalEngine referees a game between two in-process agents.
type LocalEngine struct {
	board     *game.Board
	agents    map[game.Player]agent.Agent
	timeLimit time.Duration
	maxMoves  int
}

func WithTimeLimit(limit time.Duration) Option {
	return func(e *LocalEngine) {
		if limit > 0 {
			e.timeLimit = limit
		}
	}
}

func WithMaxMoves(moves int) Option {
	return func(e *LocalEngine) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// NewLocalEngine starts a game on board; agents[0] plays the board's active
// player and agents[1] its opponent.
func NewLocalEngine(board *game.Board, agents [2]agent.Agent, options ...Option) *LocalEngine {
	if board == nil {
		panic("board must not be nil")
	}
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}

	first := board.ActivePlayer()
	e := &LocalEngine{ // Default values
		board: board,
		agents: map[game.Player]agent.Agent{
			first:                 agents[0],
			board.Opponent(first): agents[1],
		},
		timeLimit: meta.TIME_LIMIT_MS * time.Millisecond,
		maxMoves:  meta.MAX_MOVES,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until a player loses or the move cap is hit.
// Every call plays a new game from the starting board.
func (e *LocalEngine) Run(ctx context.Context) (Outcome, error) {
	board := e.board
	outcome := Outcome{}
	gameMetric := metrics.GameMetric{
		StartingPlayer: board.ActivePlayer().String(),
		StartTime:      time.Now(),
	}

	log.Info().Msgf("%v is starting on a %dx%d board", board.ActivePlayer(), board.Width(), board.Height())

	for step := 1; ; step++ {
		if err := ctx.Err(); err != nil {
			return outcome, errors.Wrapf(err, "game interrupted at step %d", step)
		}

		player := board.ActivePlayer()
		if e.maxMoves > 0 && step > e.maxMoves {
			outcome.Reason = ReasonMaxMoves
			break
		}

		legalMoves := board.LegalMoves(player)
		if len(legalMoves) == 0 {
			e.decide(&outcome, player, ReasonNoMoves)
			break
		}

		current := e.agents[player]
		start := time.Now()
		move, ok := current.FindMove(board, searcher.Until(start.Add(e.timeLimit)))
		elapsed := time.Since(start)

		outcome.MoveMetrics = append(outcome.MoveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			SearchMetric: current.LastMetric(),
		})

		if reason, lost := e.judge(move, ok, legalMoves, elapsed); lost {
			log.Info().Msgf("step %d: %v loses by %s (move %v after %v)", step, player, reason, move, elapsed)
			e.decide(&outcome, player, reason)
			break
		}

		board = board.Play(move)
		outcome.History = append(outcome.History, move)
		log.Info().Msgf("step %d: %v moved to %v in %v", step, player, move, elapsed)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(outcome.History)
	gameMetric.Reason = string(outcome.Reason)
	gameMetric.Winner = outcome.Winner.String()
	outcome.GameMetric = gameMetric
	outcome.Board = board

	log.Info().Msgf("game over after %d moves: winner %v (%s)\n%s", len(outcome.History), outcome.Winner, outcome.Reason, board)
	return outcome, nil
}

// judge checks a returned move against the rules of play
func (e *LocalEngine) judge(move game.Move, ok bool, legalMoves []game.Move, elapsed time.Duration) (Reason, bool) {
	switch {
	case elapsed > e.timeLimit:
		return ReasonTimeout, true
	case !ok:
		return ReasonForfeit, true
	case !utils.Contains(legalMoves, move):
		return ReasonIllegalMove, true
	}
	return "", false
}

func (e *LocalEngine) decide(outcome *Outcome, loser game.Player, reason Reason) {
	outcome.Loser = loser
	outcome.Winner = e.board.Opponent(loser)
	outcome.Reason = reason
}
