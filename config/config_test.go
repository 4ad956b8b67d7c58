package config

import (
	"isolation/searcher"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	require.Equal(t, 7, cfg.NewBoard().Width())
	require.Equal(t, 150*time.Millisecond, cfg.TimeLimit())
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
board:
  width: 5
  height: 4
time_limit_ms: 300
agents:
  - name: deep
    kind: search
    method: minimax
    depth: 2
    iterative: false
    heuristic: improved
    threshold_ms: 5
  - name: dice
    kind: random
    seed: 9
experiment:
  max_depth: 3
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, BoardConfig{Width: 5, Height: 4}, cfg.Board)
		require.Equal(t, 300*time.Millisecond, cfg.TimeLimit())
		require.Len(t, cfg.Agents, 2)
		require.Equal(t, "deep", cfg.Agents[0].Name)
		require.NotNil(t, cfg.Agents[0].Iterative)
		require.False(t, *cfg.Agents[0].Iterative)
		require.Equal(t, uint64(9), cfg.Agents[1].Seed)
		require.Equal(t, 3, cfg.Experiment.MaxDepth)
		require.Equal(t, Default().Experiment.Positions, cfg.Experiment.Positions, "Unset keys should keep their defaults")
	})

	t.Run("search agent without method or depth gets the searcher defaults", func(t *testing.T) {
		path := writeConfig(t, `
agents:
  - name: plain
    kind: search
  - name: dice
    kind: random
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		s, err := cfg.Agents[0].NewSearcher()
		require.NoError(t, err)
		require.Equal(t, searcher.DefaultMethod, s.Config().Method)
		require.Equal(t, searcher.DefaultDepth, s.Config().Depth)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "board: [1, 2"))
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "time_limit_ms: 0\n"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"empty board", func(c *Config) { c.Board.Width = 0 }},
		{"negative time limit", func(c *Config) { c.TimeLimitMs = -1 }},
		{"one agent", func(c *Config) { c.Agents = c.Agents[:1] }},
		{"unknown kind", func(c *Config) { c.Agents[0].Kind = "oracle" }},
		{"unknown method", func(c *Config) { c.Agents[0].Method = "negamax" }},
		{"negative depth", func(c *Config) { c.Agents[0].Depth = -1 }},
		{"unknown heuristic", func(c *Config) { c.Agents[0].Heuristic = "aggressive" }},
		{"zero experiment depth", func(c *Config) { c.Experiment.MaxDepth = 0 }},
		{"negative positions", func(c *Config) { c.Experiment.Positions = -1 }},
		{"negative opening plies", func(c *Config) { c.Experiment.OpeningPlies = -2 }},
		{"negative workers", func(c *Config) { c.Experiment.Workers = -1 }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.modify(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestBuild(t *testing.T) {
	t.Run("search agent", func(t *testing.T) {
		iterative := false
		a := AgentConfig{Kind: KindSearch, Method: "alphabeta", Depth: 4, Iterative: &iterative,
			Heuristic: "open_move", ThresholdMs: 2, MaxDepth: 6}

		s, err := a.NewSearcher()
		require.NoError(t, err)
		config := s.Config()
		require.Equal(t, searcher.MethodAlphaBeta, config.Method)
		require.Equal(t, 4, config.Depth)
		require.False(t, config.Iterative)
		require.Equal(t, 2*time.Millisecond, config.Threshold)
		require.Equal(t, 6, config.MaxDepth)

		built, err := a.Build()
		require.NoError(t, err)
		require.NotNil(t, built)
	})

	t.Run("random agent", func(t *testing.T) {
		built, err := AgentConfig{Kind: KindRandom, Seed: 3}.Build()
		require.NoError(t, err)
		require.Equal(t, "random", built.LastMetric().Method)
	})

	t.Run("invalid agent", func(t *testing.T) {
		_, err := AgentConfig{Kind: KindSearch, Method: "minimax", Depth: -1}.Build()
		require.Error(t, err, "Negative depth should not build")
	})
}
