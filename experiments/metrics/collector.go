package metrics

import (
	"sync/atomic"
	"time"
)

// DecisionMetric describes how one move was picked.
type DecisionMetric struct {
	Candidates int
	Duration   time.Duration
}

type MoveMetric struct {
	Step   int
	Round  int
	Player string
	Move   string
	Weight int
	DecisionMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty on a draw
	Scores         map[string]int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start()
	AddCandidate()
	Complete() DecisionMetric
}

type collector struct {
	startTime  time.Time
	candidates atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.candidates.Store(0)
}

func (m *collector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *collector) Complete() DecisionMetric {
	return DecisionMetric{
		Candidates: int(m.candidates.Load()),
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                   {}
func (m *dummyCollector) AddCandidate()            {}
func (m *dummyCollector) Complete() DecisionMetric { return DecisionMetric{} }
