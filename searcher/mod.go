package searcher

import (
	"errors"
	"fmt"
	"lookahead/experiments/metrics"
	"lookahead/game"
	"strings"
	"time"

	"golang.org/x/exp/rand"
)

var (
	// ErrNoLegalAction is returned when the root state offers no action to choose from.
	ErrNoLegalAction = errors.New("no legal action")
	// ErrNoCandidate is returned when a truncated search has nothing left to
	// fall back on once losing states are pruned.
	ErrNoCandidate = errors.New("no candidate left after pruning losing states")
)

// Decider picks one action for the agent from the current state. Every call
// is an independent search, nothing is kept between calls.
type Decider interface {
	RegisterInitialState(state game.State)
	Decide(state game.State) (game.Action, error)
}

type Policy int

const (
	Random Policy = iota
	Greedy
	Breadth
	Depth
	CostWeighted
)

var policyNames = map[Policy]string{
	Random:       "random",
	Greedy:       "greedy",
	Breadth:      "breadth",
	Depth:        "depth",
	CostWeighted: "costWeighted",
}

var policyAliases = map[string]Policy{
	"random":       Random,
	"greedy":       Greedy,
	"breadth":      Breadth,
	"bfs":          Breadth,
	"depth":        Depth,
	"dfs":          Depth,
	"costweighted": CostWeighted,
	"astar":        CostWeighted,
}

// Policies lists every policy in declaration order.
var Policies = []Policy{Random, Greedy, Breadth, Depth, CostWeighted}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

func ParsePolicy(s string) (Policy, error) {
	if p, ok := policyAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	return Random, fmt.Errorf("unknown policy %q", s)
}

type Option func(c *config)

type config struct {
	rand     *rand.Rand
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// WithRand sets the generator used for random draws and tie breaks.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rand = rand.New(rand.NewSource(seed))
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func newConfig(options []Option) *config {
	c := &config{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(c)
	}
	if c.rand == nil {
		c.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return c
}

func (c *config) requireEvaluate(policy Policy) {
	if c.evaluate == nil {
		panic(fmt.Sprintf("%s policy requires an evaluation function", policy))
	}
}

// New builds the decider for policy. Policies other than Random need
// WithEvaluationFn.
func New(policy Policy, options ...Option) (Decider, error) {
	c := newConfig(options)
	if policy != Random && c.evaluate == nil {
		return nil, fmt.Errorf("%s policy requires an evaluation function", policy)
	}

	switch policy {
	case Random:
		return newRandom(c), nil
	case Greedy:
		return newGreedy(c), nil
	case Breadth:
		return newBreadthFirst(c), nil
	case Depth:
		return newDepthFirst(c), nil
	case CostWeighted:
		return newCostWeighted(c), nil
	default:
		return nil, fmt.Errorf("unknown policy %d", int(policy))
	}
}

func NewRandom(options ...Option) Decider {
	return newRandom(newConfig(options))
}

func NewGreedy(options ...Option) Decider {
	c := newConfig(options)
	c.requireEvaluate(Greedy)
	return newGreedy(c)
}

func NewBreadthFirst(options ...Option) Decider {
	c := newConfig(options)
	c.requireEvaluate(Breadth)
	return newBreadthFirst(c)
}

func NewDepthFirst(options ...Option) Decider {
	c := newConfig(options)
	c.requireEvaluate(Depth)
	return newDepthFirst(c)
}

func NewCostWeighted(options ...Option) Decider {
	c := newConfig(options)
	c.requireEvaluate(CostWeighted)
	return newCostWeighted(c)
}
