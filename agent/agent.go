package agent

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
)

type Agent interface {
	// FindMove returns the move to play in state, or false when the agent
	// found nothing to play before its time ran out.
	FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, bool)
	// LastMetric returns the metrics of the previous FindMove call, if collected.
	LastMetric() metrics.SearchMetric
}

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns an agent that plays the moves chosen by s.
func NewSearchAgent(s *searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, bool) {
	legalMoves := state.LegalMoves(state.ActivePlayer())
	return a.searcher.SelectMove(state, legalMoves, timeLeft)
}

func (a searchAgent) LastMetric() metrics.SearchMetric {
	return a.searcher.LastMetric()
}
