package metrics

import (
	"time"
)

// Outcome describes how a decision was reached.
type Outcome int

const (
	OutcomeNone              Outcome = iota
	OutcomeReactive                  // Random or greedy one-ply decision
	OutcomeWin                       // A winning state was popped or found by the fallback scan
	OutcomeTruncated                 // Budget exhausted, best remaining candidate chosen
	OutcomeExhaustedFrontier         // Frontier emptied without a win, no-op returned
	OutcomeForced                    // Root offered a single legal action
	OutcomeFailed                    // Typed failure returned to the caller
)

var outcomeNames = []string{"none", "reactive", "win", "truncated", "exhausted-frontier", "forced", "failed"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

type SearchMetric struct {
	Policy     string
	Duration   time.Duration
	Expansions int // Nodes popped and expanded
	Generated  int // Successor states produced
	Outcome    Outcome
}

type MoveMetric struct {
	Step   int
	Action string
	Score  int
	SearchMetric
}

type GameMetric struct {
	Policy     string
	Layout     string
	Seed       uint64
	Won        bool
	Lost       bool
	Score      int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Result renders the game outcome as win, loss or timeout.
func (g GameMetric) Result() string {
	switch {
	case g.Won:
		return "win"
	case g.Lost:
		return "loss"
	default:
		return "timeout"
	}
}

type Collector interface {
	Start(policy string)
	AddExpansion()
	AddGenerated(n int)
	SetOutcome(outcome Outcome)
	Complete() SearchMetric
}

// Decisions are synchronous, so a collector is only ever driven by one
// goroutine at a time.
type collector struct {
	policy     string
	startTime  time.Time
	expansions int
	generated  int
	outcome    Outcome
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(policy string) {
	m.policy = policy
	m.startTime = time.Now()
	m.expansions = 0
	m.generated = 0
	m.outcome = OutcomeNone
}

func (m *collector) AddExpansion() {
	m.expansions++
}

func (m *collector) AddGenerated(n int) {
	m.generated += n
}

func (m *collector) SetOutcome(outcome Outcome) {
	m.outcome = outcome
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Policy:     m.policy,
		Duration:   time.Since(m.startTime),
		Expansions: m.expansions,
		Generated:  m.generated,
		Outcome:    m.outcome,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(policy string)        {}
func (m *dummyCollector) AddExpansion()              {}
func (m *dummyCollector) AddGenerated(n int)         {}
func (m *dummyCollector) SetOutcome(outcome Outcome) {}
func (m *dummyCollector) Complete() SearchMetric     { return SearchMetric{} }
