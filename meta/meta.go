// meta/meta.go
package meta

// BOARD_WIDTH defines the default number of board columns.
const BOARD_WIDTH = 7

// BOARD_HEIGHT defines the default number of board rows.
const BOARD_HEIGHT = 7

// TIME_LIMIT_MS defines the default time per move in milliseconds.
const TIME_LIMIT_MS = 150

// MAX_MOVES caps a match; 0 lets the board decide.
const MAX_MOVES = 0
