package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start("alphabeta", true)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddNode()
					c.AddLeaf()
				}
				c.AddCutoff()
			}()
		}
		wg.Wait()
		c.CompleteDepth(3)
		c.SetTimedOut()

		m := c.Complete()
		require.Equal(t, "alphabeta", m.Method)
		require.True(t, m.Iterative)
		require.Equal(t, 800, m.Nodes)
		require.Equal(t, 800, m.Leaves)
		require.Equal(t, 8, m.Cutoffs)
		require.Equal(t, 3, m.Depth)
		require.True(t, m.TimedOut)
	})

	t.Run("start resets", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax", false)
		c.AddNode()
		c.SetTimedOut()

		c.Start("minimax", false)
		m := c.Complete()

		require.Zero(t, m.Nodes)
		require.False(t, m.TimedOut)
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("minimax", true)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
