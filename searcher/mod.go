package searcher

import (
	"isolation/game"
	"math"
	"time"

	"github.com/pkg/errors"
)

// ErrTimeout unwinds a search whose time budget fell under the threshold.
var ErrTimeout = errors.New("search timed out")

// TimeLeft reports the time remaining in the current turn. It is queried on
// every recursive call.
type TimeLeft func() time.Duration

// Until counts down to deadline.
func Until(deadline time.Time) TimeLeft {
	return func() time.Duration {
		return time.Until(deadline)
	}
}

// Unlimited never runs out.
func Unlimited() TimeLeft {
	return func() time.Duration {
		return time.Duration(math.MaxInt64)
	}
}

// Result is the outcome of searching one node. HasMove is false only for a
// leaf evaluated at depth 0; a node without legal moves reports game.NoMove.
type Result struct {
	Score   float64
	Move    game.Move
	HasMove bool
}

// improves reports whether score beats best for the layer. Ties keep the
// earlier move.
func improves(score, best float64, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

func isDecided(score float64) bool {
	return math.IsInf(score, 0)
}
