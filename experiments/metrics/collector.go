package metrics

import (
	"time"

	"isolation/game"
)

type SearchMetric struct {
	Method    string
	Iterative bool
	Depth     int // Deepest fully completed depth
	Nodes     int // Nodes visited across all depths, including an abandoned one
	Duration  time.Duration
	TimedOut  bool
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	Hash   uint64 // Board hash after the move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player
	Outcome        string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(method string, iterative bool)
	AddDepth(depth, nodes int)
	AddNodes(nodes int)
	SetTimedOut()
	Complete() SearchMetric
}

type collector struct {
	method    string
	iterative bool
	startTime time.Time
	depth     int
	nodes     int
	timedOut  bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(method string, iterative bool) {
	*m = collector{
		method:    method,
		iterative: iterative,
		startTime: time.Now(),
	}
}

// AddDepth records a depth that completed after visiting nodes.
func (m *collector) AddDepth(depth, nodes int) {
	m.depth = depth
	m.nodes += nodes
}

// AddNodes records nodes visited by a depth that did not complete.
func (m *collector) AddNodes(nodes int) {
	m.nodes += nodes
}

func (m *collector) SetTimedOut() {
	m.timedOut = true
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Method:    m.method,
		Iterative: m.iterative,
		Depth:     m.depth,
		Nodes:     m.nodes,
		Duration:  time.Since(m.startTime),
		TimedOut:  m.timedOut,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(method string, iterative bool) {}
func (m *dummyCollector) AddDepth(depth, nodes int)           {}
func (m *dummyCollector) AddNodes(nodes int)                  {}
func (m *dummyCollector) SetTimedOut()                        {}
func (m *dummyCollector) Complete() SearchMetric              { return SearchMetric{} }
