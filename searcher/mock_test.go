package searcher

import (
	"isolation/game"
	"time"
)

// node is a hand-built game tree. Scores are from the root player's point of
// view: the heuristic value of a node reached at depth 0, or the utility of a
// node without children reached earlier.
type node struct {
	name     string
	score    float64
	children []*node
}

func leaf(name string, score float64) *node {
	return &node{name: name, score: score}
}

func branch(name string, children ...*node) *node {
	return &node{name: name, children: children}
}

// treeState walks a node tree as a game.State. Child i is reached by
// Move{0, i}; every forecast is recorded in visited.
type treeState struct {
	node    *node
	active  game.Player
	visited *[]string
}

func newTreeState(root *node) *treeState {
	return &treeState{node: root, active: game.Player1, visited: &[]string{}}
}

func (s *treeState) ActivePlayer() game.Player {
	return s.active
}

func (s *treeState) InactivePlayer() game.Player {
	return s.Opponent(s.active)
}

func (s *treeState) Opponent(p game.Player) game.Player {
	if p == game.Player1 {
		return game.Player2
	}
	return game.Player1
}

func (s *treeState) LegalMoves(_ game.Player) []game.Move {
	moves := make([]game.Move, 0, len(s.node.children))
	for i := range s.node.children {
		moves = append(moves, game.Move{Row: 0, Col: i})
	}
	return moves
}

func (s *treeState) MovesFrom(_ game.Move) []game.Move {
	return nil
}

func (s *treeState) Forecast(m game.Move) game.State {
	child := s.node.children[m.Col]
	*s.visited = append(*s.visited, child.name)
	return &treeState{node: child, active: s.InactivePlayer(), visited: s.visited}
}

func (s *treeState) IsWinner(_ game.Player) bool {
	return false
}

func (s *treeState) IsLoser(_ game.Player) bool {
	return false
}

func (s *treeState) Utility(_ game.Player) float64 {
	return s.node.score
}

func (s *treeState) PlayerLocation(_ game.Player) game.Move {
	return game.NoMove
}

func (s *treeState) Width() int {
	return 0
}

func (s *treeState) Height() int {
	return 0
}

// treeScore evaluates a tree node by its stored score
var treeScore = game.EvaluatorFunc(func(state game.State, _ game.Player) float64 {
	return state.(*treeState).node.score
})

// budget allows the given number of checkpoints before time runs out
func budget(calls int) TimeLeft {
	return func() time.Duration {
		if calls <= 0 {
			return 0
		}
		calls--
		return time.Hour
	}
}
