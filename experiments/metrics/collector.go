package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Method    string
	Iterative bool
	Duration  time.Duration
	Nodes     int // Recursive search calls, including the root
	Leaves    int // Heuristic evaluations at depth 0
	Cutoffs   int // Alpha-beta sibling enumerations stopped early
	Depth     int // Deepest fully completed search
	TimedOut  bool
}

type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(method string, iterative bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	CompleteDepth(depth int)
	SetTimedOut()
	Complete() SearchMetric
}

type collector struct {
	method    string
	iterative bool
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
	depth     atomic.Int32
	timedOut  atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(method string, iterative bool) {
	m.method = method
	m.iterative = iterative
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.depth.Store(0)
	m.timedOut.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) CompleteDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) SetTimedOut() {
	m.timedOut.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Method:    m.method,
		Iterative: m.iterative,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Leaves:    int(m.leaves.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
		Depth:     int(m.depth.Load()),
		TimedOut:  m.timedOut.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(method string, iterative bool) {}
func (m *dummyCollector) AddNode()                           {}
func (m *dummyCollector) AddLeaf()                           {}
func (m *dummyCollector) AddCutoff()                         {}
func (m *dummyCollector) CompleteDepth(depth int)            {}
func (m *dummyCollector) SetTimedOut()                       {}
func (m *dummyCollector) Complete() SearchMetric             { return SearchMetric{} }
