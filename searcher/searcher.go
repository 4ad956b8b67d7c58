package searcher

import (
	"fmt"
	"isolation/experiments/metrics"
	"isolation/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Searcher picks moves for the player to move in a given state. A Searcher
// keeps the metric of its last search, so concurrent callers each need their
// own.
type Searcher struct {
	config  Config
	metrics metrics.Collector
	last    metrics.SearchMetric
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		config: Config{
			Depth:     DefaultDepth,
			Evaluator: game.LookAhead,
			Method:    DefaultMethod,
			Iterative: true,
			Threshold: DefaultThreshold,
		},
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.config.Depth < 1 {
		panic(fmt.Sprintf("search depth must be positive, got %d", s.config.Depth))
	}
	if !s.config.Method.valid() {
		panic(fmt.Sprintf("unknown search method %q", s.config.Method))
	}
	return s
}

func (s *Searcher) Config() Config {
	return s.config
}

// LastMetric returns the metrics of the most recent SelectMove call.
func (s *Searcher) LastMetric() metrics.SearchMetric {
	return s.last
}

// SelectMove returns the best move found for the active player before time
// runs out. With no legal moves it returns game.NoMove right away. The second
// return value is false when not even one search completed in time, in which
// case the caller has nothing to play and forfeits.
func (s *Searcher) SelectMove(state game.State, legalMoves []game.Move, timeLeft TimeLeft) (game.Move, bool) {
	if len(legalMoves) == 0 {
		s.last = metrics.SearchMetric{}
		return game.NoMove, true
	}

	s.metrics.Start(string(s.config.Method), s.config.Iterative)
	defer func() {
		s.last = s.metrics.Complete()
	}()

	if !s.config.Iterative {
		result, err := s.Search(state, s.config.Depth, timeLeft)
		if err != nil {
			s.onTimeout(err, s.config.Depth)
			return game.NoMove, false
		}
		s.metrics.CompleteDepth(s.config.Depth)
		return result.Move, true
	}

	return s.deepen(state, timeLeft)
}

// deepen runs searches at depth 1, 2, 3... and keeps the move of the deepest
// one that completed.
func (s *Searcher) deepen(state game.State, timeLeft TimeLeft) (game.Move, bool) {
	best, found := game.NoMove, false
	for depth := 1; s.config.MaxDepth == 0 || depth <= s.config.MaxDepth; depth++ {
		sr := s.newSearch(state, timeLeft)
		result, err := sr.run(state, depth)
		if err != nil {
			s.onTimeout(err, depth)
			break
		}
		best, found = result.Move, true
		s.metrics.CompleteDepth(depth)
		log.Debug().Msgf("completed depth %d: move %v score %v", depth, result.Move, result.Score)

		// Deeper searches cannot change a proven outcome, nor a tree that
		// ended before reaching any leaf.
		if isDecided(result.Score) || sr.leaves == 0 {
			break
		}
	}
	return best, found
}

func (s *Searcher) onTimeout(err error, depth int) {
	if !errors.Is(err, ErrTimeout) {
		panic(err)
	}
	s.metrics.SetTimedOut()
	log.Debug().Msgf("search timed out at depth %d", depth)
}

// Search runs one fixed-depth search with the configured method.
func (s *Searcher) Search(state game.State, depth int, timeLeft TimeLeft) (Result, error) {
	return s.newSearch(state, timeLeft).run(state, depth)
}

// Minimax searches state to depth without pruning, for the active player.
func (s *Searcher) Minimax(state game.State, depth int, timeLeft TimeLeft) (Result, error) {
	return s.newSearch(state, timeLeft).minimax(state, depth, true)
}

// AlphaBeta searches state to depth with alpha-beta pruning, for the active player.
func (s *Searcher) AlphaBeta(state game.State, depth int, timeLeft TimeLeft) (Result, error) {
	return s.newSearch(state, timeLeft).alphabeta(state, depth, game.LossScore, game.WinScore, true)
}

// search holds what one tree walk needs; the root player's point of view
// scores every node.
type search struct {
	config   Config
	player   game.Player
	timeLeft TimeLeft
	metrics  metrics.Collector
	leaves   int
}

func (s *Searcher) newSearch(state game.State, timeLeft TimeLeft) *search {
	return &search{
		config:   s.config,
		player:   state.ActivePlayer(),
		timeLeft: timeLeft,
		metrics:  s.metrics,
	}
}

func (sr *search) run(state game.State, depth int) (Result, error) {
	if sr.config.Method == MethodAlphaBeta {
		return sr.alphabeta(state, depth, game.LossScore, game.WinScore, true)
	}
	return sr.minimax(state, depth, true)
}

// enter is the checkpoint at the top of every recursive call.
func (sr *search) enter() error {
	if sr.timeLeft() < sr.config.Threshold {
		return ErrTimeout
	}
	sr.metrics.AddNode()
	return nil
}

func (sr *search) evaluate(state game.State) Result {
	sr.leaves++
	sr.metrics.AddLeaf()
	return Result{Score: sr.config.Evaluator.Evaluate(state, sr.player)}
}

// terminal scores a node whose player to move has no legal moves.
func (sr *search) terminal(state game.State) Result {
	return Result{Score: state.Utility(sr.player), Move: game.NoMove, HasMove: true}
}
