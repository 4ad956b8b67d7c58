package engine

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
)

type Engine interface {
	// Run plays a game till one player loses
	Run(ctx context.Context) (Outcome, error)
}

// Reason tells why a game ended.
type Reason string

const (
	ReasonNoMoves     Reason = "no_moves"     // Player to move was isolated
	ReasonTimeout     Reason = "timeout"      // Agent answered after its time limit
	ReasonForfeit     Reason = "forfeit"      // Agent had legal moves but returned none
	ReasonIllegalMove Reason = "illegal_move" // Agent returned a move not among the legal ones
	ReasonMaxMoves    Reason = "max_moves"    // Move cap reached, no winner
)

type Outcome struct {
	Winner      game.Player // game.NoPlayer if the game was stopped by the move cap
	Loser       game.Player
	Reason      Reason
	History     []game.Move
	Board       *game.Board // Final position
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}
