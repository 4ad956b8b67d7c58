package config

import (
	"isolation/agent"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	KindSearch = "search"
	KindRandom = "random"
)

type Config struct {
	Board       BoardConfig      `yaml:"board"`
	TimeLimitMs int              `yaml:"time_limit_ms"`
	MaxMoves    int              `yaml:"max_moves"`
	Agents      []AgentConfig    `yaml:"agents"`
	Experiment  ExperimentConfig `yaml:"experiment"`
}

type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type AgentConfig struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	Method      string `yaml:"method"`
	Depth       int    `yaml:"depth"`
	Iterative   *bool  `yaml:"iterative"` // nil keeps the searcher default
	Heuristic   string `yaml:"heuristic"`
	ThresholdMs int    `yaml:"threshold_ms"`
	MaxDepth    int    `yaml:"max_depth"`
	Seed        uint64 `yaml:"seed"`
}

type ExperimentConfig struct {
	Positions    int    `yaml:"positions"`     // Random positions to search
	OpeningPlies int    `yaml:"opening_plies"` // Random moves played to reach each position
	MaxDepth     int    `yaml:"max_depth"`
	Seed         uint64 `yaml:"seed"`
	Workers      int    `yaml:"workers"`
	Heuristic    string `yaml:"heuristic"`
	OutputDir    string `yaml:"output_dir"`
}

// Default is a full match between an alpha-beta agent and a random one.
func Default() Config {
	return Config{
		Board:       BoardConfig{Width: meta.BOARD_WIDTH, Height: meta.BOARD_HEIGHT},
		TimeLimitMs: meta.TIME_LIMIT_MS,
		MaxMoves:    meta.MAX_MOVES,
		Agents: []AgentConfig{
			{Name: "searcher", Kind: KindSearch, Method: string(searcher.MethodAlphaBeta), Depth: searcher.DefaultDepth, Heuristic: "look_ahead", ThresholdMs: int(searcher.DefaultThreshold / time.Millisecond)},
			{Name: "random", Kind: KindRandom, Seed: 1},
		},
		Experiment: ExperimentConfig{
			Positions:    20,
			OpeningPlies: 6,
			MaxDepth:     4,
			Seed:         1,
			Workers:      4,
			Heuristic:    "look_ahead",
			OutputDir:    "experiments/pruning",
		},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return errors.Errorf("board must be at least 1x1, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.TimeLimitMs <= 0 {
		return errors.Errorf("time_limit_ms must be positive, got %d", c.TimeLimitMs)
	}
	if len(c.Agents) != 2 {
		return errors.Errorf("need exactly two agents, got %d", len(c.Agents))
	}
	for i, a := range c.Agents {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "agent %d", i+1)
		}
	}
	return c.Experiment.Validate()
}

func (e ExperimentConfig) Validate() error {
	if e.MaxDepth < 1 {
		return errors.Errorf("experiment max_depth must be positive, got %d", e.MaxDepth)
	}
	if e.Positions < 0 || e.OpeningPlies < 0 || e.Workers < 0 {
		return errors.Errorf("experiment positions, opening_plies and workers must not be negative, got %d, %d and %d",
			e.Positions, e.OpeningPlies, e.Workers)
	}
	return nil
}

func (a AgentConfig) Validate() error {
	switch a.Kind {
	case KindRandom:
		return nil
	case KindSearch:
	default:
		return errors.Errorf("unknown agent kind %q", a.Kind)
	}
	// Unset method and depth fall back to the searcher defaults
	if method := searcher.Method(a.Method); method != "" && method != searcher.MethodMinimax && method != searcher.MethodAlphaBeta {
		return errors.Errorf("unknown search method %q", a.Method)
	}
	if a.Depth < 0 {
		return errors.Errorf("search depth must not be negative, got %d", a.Depth)
	}
	if a.Heuristic != "" {
		if _, err := game.EvaluatorByName(a.Heuristic); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) NewBoard() *game.Board {
	return game.NewBoard(c.Board.Width, c.Board.Height)
}

func (c Config) TimeLimit() time.Duration {
	return time.Duration(c.TimeLimitMs) * time.Millisecond
}

// Build creates the agent described by the configuration.
func (a AgentConfig) Build() (agent.Agent, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if a.Kind == KindRandom {
		return agent.NewRandomAgent(a.Seed), nil
	}
	s, err := a.NewSearcher()
	if err != nil {
		return nil, err
	}
	return agent.NewSearchAgent(s), nil
}

// NewSearcher creates the searcher of a search agent, collecting metrics.
func (a AgentConfig) NewSearcher() (*searcher.Searcher, error) {
	options := []searcher.Option{searcher.WithMetrics(metrics.NewCollector())}
	if a.Method != "" {
		options = append(options, searcher.WithMethod(searcher.Method(a.Method)))
	}
	if a.Depth > 0 {
		options = append(options, searcher.WithDepth(a.Depth))
	}
	if a.Heuristic != "" {
		evaluator, err := game.EvaluatorByName(a.Heuristic)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithEvaluator(evaluator))
	}
	if a.Iterative != nil {
		options = append(options, searcher.WithIterative(*a.Iterative))
	}
	if a.ThresholdMs > 0 {
		options = append(options, searcher.WithThreshold(time.Duration(a.ThresholdMs)*time.Millisecond))
	}
	if a.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(a.MaxDepth))
	}
	return searcher.NewSearcher(options...), nil
}
