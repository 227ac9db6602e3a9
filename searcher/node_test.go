package searcher

import (
	"errors"
	"fmt"
	"lookahead/game"
	"testing"

	"github.com/stretchr/testify/require"
)

var errBroken = errors.New("broken simulator")

type mockEdge struct {
	action game.Action
	to     int
}

type mockNode struct {
	edges  []mockEdge
	score  float64
	win    bool
	lose   bool
	broken bool // Successor fails with a non-budget error
}

// mockGraph is a hand-built state graph. limit caps the number of
// successful Successor calls, 0 means unlimited.
type mockGraph struct {
	nodes map[int]mockNode
	limit int
	calls int
}

func (g *mockGraph) root() mockState {
	return mockState{id: 0, graph: g}
}

func (g *mockGraph) reset() {
	g.calls = 0
}

type mockState struct {
	id    int
	graph *mockGraph
}

func (m mockState) node() mockNode {
	return m.graph.nodes[m.id]
}

func (m mockState) LegalActions() []game.Action {
	if game.IsTerminal(m) {
		panic(fmt.Sprintf("legal actions queried on terminal state %d", m.id))
	}
	actions := []game.Action{}
	for _, edge := range m.node().edges {
		actions = append(actions, edge.action)
	}
	return actions
}

func (m mockState) Successor(action game.Action) (game.State, error) {
	if m.node().broken {
		return nil, errBroken
	}
	if m.graph.limit > 0 && m.graph.calls >= m.graph.limit {
		return nil, game.ErrExhausted
	}
	for _, edge := range m.node().edges {
		if edge.action == action {
			m.graph.calls++
			return mockState{id: edge.to, graph: m.graph}, nil
		}
	}
	return nil, fmt.Errorf("illegal action %s from state %d", action, m.id)
}

func (m mockState) IsWin() bool {
	return m.node().win
}

func (m mockState) IsLose() bool {
	return m.node().lose
}

func (m mockState) Hash() game.StateHash {
	return game.StateHash(m.id)
}

func mockEvaluate(s game.State) float64 {
	m := s.(mockState)
	return m.node().score
}

func TestProvenanceRecord(t *testing.T) {
	g := &mockGraph{nodes: map[int]mockNode{}}
	state := mockState{id: 7, graph: g}
	seen := provenance{}

	got := seen.record(state, origin{action: game.North, depth: 0})
	require.Equal(t, origin{action: game.North, depth: 0}, got, "First discovery should be recorded")

	got = seen.record(state, origin{action: game.South, depth: 3})
	require.Equal(t, origin{action: game.North, depth: 0}, got, "Rediscovery should keep the first origin")

	require.Len(t, seen, 1)

	got = seen.record(mockState{id: 8, graph: g}, origin{action: game.East, depth: 1})
	require.Equal(t, origin{action: game.East, depth: 1}, got, "Another state gets its own origin")
	require.Len(t, seen, 2)
}

// collidingState hashes every state to the same value.
type collidingState struct {
	mockState
}

func (c collidingState) Hash() game.StateHash {
	return 42
}

func TestProvenanceHashCollision(t *testing.T) {
	g := &mockGraph{nodes: map[int]mockNode{}}
	seen := provenance{}

	seen.record(collidingState{mockState{id: 1, graph: g}}, origin{action: game.North, depth: 0})
	got := seen.record(collidingState{mockState{id: 2, graph: g}}, origin{action: game.West, depth: 2})

	require.Equal(t, origin{action: game.North, depth: 0}, got, "States are identified by hash alone, a collision shares the first origin")
	require.Len(t, seen, 1)
}
