package searcher

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"time"
)

// Defaults for a search session

const DefaultDepth = 3
const DefaultThreshold = 10 * time.Millisecond
const DefaultMethod = MethodMinimax

type Method string

const (
	MethodMinimax   Method = "minimax"
	MethodAlphaBeta Method = "alphabeta"
)

func (m Method) valid() bool {
	return m == MethodMinimax || m == MethodAlphaBeta
}

// Config is fixed when the Searcher is built.
type Config struct {
	Depth     int            // Fixed search depth, used when Iterative is false
	Evaluator game.Evaluator // Leaf heuristic
	Method    Method
	Iterative bool
	Threshold time.Duration // Minimum time left before a search aborts
	MaxDepth  int           // Iterative deepening stops after this depth; 0 means no limit
}

type Option func(s *Searcher)

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		s.config.Depth = depth
	}
}

func WithEvaluator(evaluator game.Evaluator) Option {
	return func(s *Searcher) {
		if evaluator != nil {
			s.config.Evaluator = evaluator
		}
	}
}

func WithMethod(method Method) Option {
	return func(s *Searcher) {
		s.config.Method = method
	}
}

func WithIterative(iterative bool) Option {
	return func(s *Searcher) {
		s.config.Iterative = iterative
	}
}

func WithThreshold(threshold time.Duration) Option {
	return func(s *Searcher) {
		if threshold >= 0 {
			s.config.Threshold = threshold
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.config.MaxDepth = depth
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}
