package searcher

import (
	"isolation/game"
)

func (sr *search) minimax(state game.State, depth int, maximizing bool) (Result, error) {
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
	for _, move := range moves {
		child, err := sr.minimax(state.Forecast(move), depth-1, !maximizing)
		if err != nil {
			return Result{}, err
		}
		if !best.HasMove || improves(child.Score, best.Score, maximizing) {
			best = Result{Score: child.Score, Move: move, HasMove: true}
		}
	}
	return best, nil
}
