package game

import (
	"math"

	"github.com/pkg/errors"
)

// CornerWeight is subtracted from a player's mobility while it stands on a corner.
const CornerWeight = 2

// Null scores every undecided state as 0.
var Null = EvaluatorFunc(func(state State, player Player) float64 {
	if score, decided := outcome(state, player); decided {
		return score
	}
	return 0
})

// OpenMove scores a state by the player's own mobility.
var OpenMove = EvaluatorFunc(func(state State, player Player) float64 {
	if score, decided := outcome(state, player); decided {
		return score
	}
	return float64(len(state.LegalMoves(player)))
})

// Improved scores a state by the difference in mobility between the player
// and its opponent.
var Improved = EvaluatorFunc(func(state State, player Player) float64 {
	if score, decided := outcome(state, player); decided {
		return score
	}
	own, opp := mobility(state, player)
	return float64(own - opp)
})

// PenalizeCorners is Improved, but discourages the player from standing on a
// board corner where it has the fewest escape routes.
var PenalizeCorners = EvaluatorFunc(func(state State, player Player) float64 {
	if score, decided := outcome(state, player); decided {
		return score
	}
	own, opp := mobility(state, player)
	if isCorner(state, state.PlayerLocation(player)) {
		own -= CornerWeight
	}
	return float64(own - opp)
})

// FavorRunAway is Improved plus the euclidean distance between both players,
// ranking higher the positions far away from the opponent.
var FavorRunAway = EvaluatorFunc(func(state State, player Player) float64 {
	if score, decided := outcome(state, player); decided {
		return score
	}
	own, opp := mobility(state, player)
	return float64(own) + distance(state, player) - float64(opp)
})

// LookAhead adds to each side's mobility the number of moves reachable from
// each of its legal moves, then takes the difference.
var LookAhead = EvaluatorFunc(func(state State, player Player) float64 {
	if score, decided := outcome(state, player); decided {
		return score
	}
	own := reach(state, player)
	opp := reach(state, state.Opponent(player))
	return float64(own - opp)
})

var evaluators = map[string]Evaluator{
	"null":             Null,
	"open_move":        OpenMove,
	"improved":         Improved,
	"penalize_corners": PenalizeCorners,
	"favor_run_away":   FavorRunAway,
	"look_ahead":       LookAhead,
}

// EvaluatorByName resolves the configuration name of a heuristic.
func EvaluatorByName(name string) (Evaluator, error) {
	evaluator, ok := evaluators[name]
	if !ok {
		return nil, errors.Errorf("unknown heuristic %q", name)
	}
	return evaluator, nil
}

// outcome returns the sentinel score of a decided game for player
func outcome(state State, player Player) (float64, bool) {
	if state.IsLoser(player) {
		return LossScore, true
	}
	if state.IsWinner(player) {
		return WinScore, true
	}
	return 0, false
}

func mobility(state State, player Player) (own, opp int) {
	own = len(state.LegalMoves(player))
	opp = len(state.LegalMoves(state.Opponent(player)))
	return own, opp
}

func reach(state State, player Player) int {
	moves := state.LegalMoves(player)
	total := len(moves)
	for _, m := range moves {
		total += len(state.MovesFrom(m))
	}
	return total
}

func isCorner(state State, loc Move) bool {
	if loc == NoMove {
		return false
	}
	lastRow, lastCol := state.Height()-1, state.Width()-1
	return (loc.Row == 0 || loc.Row == lastRow) && (loc.Col == 0 || loc.Col == lastCol)
}

func distance(state State, player Player) float64 {
	own := state.PlayerLocation(player)
	opp := state.PlayerLocation(state.Opponent(player))
	if own == NoMove || opp == NoMove {
		return 0
	}
	return math.Hypot(float64(own.Row-opp.Row), float64(own.Col-opp.Col))
}
