package game

import (
	"strings"
)

// directions a token may step in, in enumeration order
var directions = [8]Move{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is the isolation game state. A player's first move places its token
// on any empty cell; every later move steps one cell in any of eight
// directions. Cells a token has occupied stay blocked for the rest of the
// game.
type Board struct {
	width     int
	height    int
	blocked   []bool // Indexed by row*width + col
	locations [3]Move
	active    Player
	moveCount int
}

// NewBoard returns an empty board with Player1 to move.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("board dimensions must be positive")
	}
	return &Board{
		width:     width,
		height:    height,
		blocked:   make([]bool, width*height),
		locations: [3]Move{NoMove, NoMove, NoMove},
		active:    Player1,
	}
}

func (b *Board) Copy() *Board {
	blockedCopy := make([]bool, len(b.blocked))
	copy(blockedCopy, b.blocked)

	return &Board{
		width:     b.width,
		height:    b.height,
		blocked:   blockedCopy,
		locations: b.locations,
		active:    b.active,
		moveCount: b.moveCount,
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) MoveCount() int { return b.moveCount }

func (b *Board) ActivePlayer() Player { return b.active }

func (b *Board) InactivePlayer() Player { return b.Opponent(b.active) }

func (b *Board) Opponent(p Player) Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	panic("unknown player")
}

func (b *Board) PlayerLocation(p Player) Move {
	return b.locations[p]
}

func (b *Board) inBounds(m Move) bool {
	return m.Row >= 0 && m.Row < b.height && m.Col >= 0 && m.Col < b.width
}

// IsEmpty reports whether m is on the board and no token has ever occupied it.
func (b *Board) IsEmpty(m Move) bool {
	return b.inBounds(m) && !b.blocked[m.Row*b.width+m.Col]
}

// EmptyCells lists the open cells in row-major order.
func (b *Board) EmptyCells() []Move {
	cells := []Move{}
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if !b.blocked[row*b.width+col] {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}
	return cells
}

func (b *Board) LegalMoves(p Player) []Move {
	loc := b.locations[p]
	if loc == NoMove {
		return b.EmptyCells()
	}
	return b.MovesFrom(loc)
}

func (b *Board) MovesFrom(loc Move) []Move {
	moves := make([]Move, 0, len(directions))
	for _, d := range directions {
		next := Move{Row: loc.Row + d.Row, Col: loc.Col + d.Col}
		if b.IsEmpty(next) {
			moves = append(moves, next)
		}
	}
	return moves
}

// Play returns a copy of the board with m applied for the active player. It
// does not check legality; callers that accept untrusted moves check against
// LegalMoves first.
func (b *Board) Play(m Move) *Board {
	next := b.Copy()
	next.blocked[m.Row*next.width+m.Col] = true
	next.locations[next.active] = m
	next.active = next.Opponent(next.active)
	next.moveCount++
	return next
}

func (b *Board) Forecast(m Move) State {
	return b.Play(m)
}

// IsLoser reports whether p is to move and cannot.
func (b *Board) IsLoser(p Player) bool {
	return p == b.active && len(b.LegalMoves(b.active)) == 0
}

// IsWinner reports whether p's opponent is to move and cannot.
func (b *Board) IsWinner(p Player) bool {
	return p == b.InactivePlayer() && len(b.LegalMoves(b.active)) == 0
}

func (b *Board) Utility(p Player) float64 {
	if b.IsLoser(p) {
		return LossScore
	}
	if b.IsWinner(p) {
		return WinScore
	}
	return 0
}

// String renders the board one row per line: "1" and "2" mark the players,
// "-" a blocked cell and "." an open one.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			cell := Move{Row: row, Col: col}
			switch {
			case cell == b.locations[Player1]:
				sb.WriteByte('1')
			case cell == b.locations[Player2]:
				sb.WriteByte('2')
			case b.blocked[row*b.width+col]:
				sb.WriteByte('-')
			default:
				sb.WriteByte('.')
			}
			if col < b.width-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
