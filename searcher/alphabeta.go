package searcher

import (
	"isolation/game"
	"math"
)

// alphabeta returns the same root result as minimax. Below the root a node
// whose window closes returns a bound rather than its exact value, which is
// enough for its parent to discard it.
func (sr *search) alphabeta(state game.State, depth int, alpha, beta float64, maximizing bool) (Result, error) {
	if err := sr.enter(); err != nil {
		return Result{}, err
	}

	if depth == 0 {
		return sr.evaluate(state), nil
	}

	moves := state.LegalMoves(state.ActivePlayer())
	if len(moves) == 0 {
		return sr.terminal(state), nil
	}

	best := Result{}
	for i, move := range moves {
		child, err := sr.alphabeta(state.Forecast(move), depth-1, alpha, beta, !maximizing)
		if err != nil {
			return Result{}, err
		}
		if !best.HasMove || improves(child.Score, best.Score, maximizing) {
			best = Result{Score: child.Score, Move: move, HasMove: true}
		}

		if maximizing {
			alpha = math.Max(alpha, best.Score)
		} else {
			beta = math.Min(beta, best.Score)
		}
		if alpha >= beta {
			if i < len(moves)-1 {
				sr.metrics.AddCutoff()
			}
			break
		}
	}
	return best, nil
}
