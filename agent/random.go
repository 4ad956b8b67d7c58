package agent

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly random legal moves.
// Agents built with the same seed play the same games.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State, _ searcher.TimeLeft) (game.Move, bool) {
	moves := state.LegalMoves(state.ActivePlayer())
	if len(moves) == 0 {
		return game.NoMove, true
	}
	return moves[a.rng.Intn(len(moves))], true
}

func (a *randomAgent) LastMetric() metrics.SearchMetric {
	return metrics.SearchMetric{Method: "random"}
}
