package game

import (
	"fmt"
	"math"
)

// Move is a zero-based (row, column) board coordinate. It doubles as a
// player location.
type Move struct {
	Row int
	Col int
}

// NoMove is returned when a player has no legal move, and is the location of
// a player whose token has not been placed yet.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "none"
}

// Score sentinels for a decided game. They dominate every finite evaluation.
var (
	WinScore  = math.Inf(1)
	LossScore = math.Inf(-1)
)

// State should be immutable - Forecast always returns a new copy
type State interface {
	ActivePlayer() Player
	InactivePlayer() Player
	Opponent(p Player) Player
	// LegalMoves enumerates in a deterministic order; searchers break ties by it.
	LegalMoves(p Player) []Move
	// MovesFrom lists the cells a token standing on loc could move to.
	MovesFrom(loc Move) []Move
	// Forecast applies the move for the active player.
	Forecast(m Move) State
	IsWinner(p Player) bool
	IsLoser(p Player) bool
	Utility(p Player) float64
	PlayerLocation(p Player) Move
	Width() int
	Height() int
}

// Evaluator scores a state from the point of view of player. Implementations
// return LossScore iff player has lost, WinScore iff player has won, and a
// finite value otherwise.
type Evaluator interface {
	Evaluate(state State, player Player) float64
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(state State, player Player) float64

func (f EvaluatorFunc) Evaluate(state State, player Player) float64 {
	return f(state, player)
}
