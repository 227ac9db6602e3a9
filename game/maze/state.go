package maze

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"lookahead/game"
)

const (
	FoodReward  = 10
	TimePenalty = 1
	WinReward   = 500
	LosePenalty = 500
)

var (
	ErrGameOver      = errors.New("game is over")
	ErrIllegalAction = errors.New("illegal action")
)

// budget caps the number of successors generated from one root. It is
// shared by every state derived from that root.
type budget struct {
	limit int // 0 means unlimited
	spent int
}

func (b *budget) spend() bool {
	if b.limit > 0 && b.spent >= b.limit {
		return false
	}
	b.spent++
	return true
}

// State is one position of a maze game. States are immutable; the food grid
// is copied only when a pellet is eaten.
type State struct {
	layout   *Layout
	pos      Position
	food     []bool
	foodLeft int
	score    int
	moves    int
	won      bool
	lost     bool
	budget   *budget
}

func NewState(l *Layout) *State {
	food := make([]bool, len(l.food))
	copy(food, l.food)
	return &State{
		layout:   l,
		pos:      l.Start,
		food:     food,
		foodLeft: l.FoodCount(),
		budget:   &budget{},
	}
}

// copy shares the layout, food grid and budget with s.
func (s *State) copy() *State {
	c := *s
	return &c
}

// WithBudget returns the same position with a fresh successor budget of n
// calls. n <= 0 means unlimited.
func (s *State) WithBudget(n int) *State {
	c := s.copy()
	c.budget = &budget{limit: max(n, 0)}
	return c
}

func (s *State) Layout() *Layout    { return s.layout }
func (s *State) Position() Position { return s.pos }
func (s *State) Score() int         { return s.score }
func (s *State) Moves() int         { return s.moves }
func (s *State) FoodLeft() int      { return s.foodLeft }
func (s *State) BudgetSpent() int   { return s.budget.spent }

func (s *State) HasFood(p Position) bool {
	return s.layout.inBounds(p) && s.food[s.layout.index(p)]
}

func (s *State) IsWin() bool {
	return s.won
}

func (s *State) IsLose() bool {
	return s.lost
}

// LegalActions lists the moves that do not walk into a wall. Stop is never
// offered although Apply accepts it.
func (s *State) LegalActions() []game.Action {
	if s.won || s.lost {
		return nil
	}
	actions := make([]game.Action, 0, len(game.Actions))
	for _, action := range game.Actions {
		if !s.layout.IsWall(move(s.pos, action)) {
			actions = append(actions, action)
		}
	}
	return actions
}

func move(p Position, action game.Action) Position {
	dx, dy := action.Delta()
	return Position{p.X + dx, p.Y + dy}
}

// Successor spends one unit of budget and applies action.
func (s *State) Successor(action game.Action) (game.State, error) {
	if !s.budget.spend() {
		return nil, game.ErrExhausted
	}
	next, err := s.Apply(action)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// Apply plays action without touching the budget. The engine uses it to
// advance the real game.
func (s *State) Apply(action game.Action) (*State, error) {
	if s.won || s.lost {
		return nil, ErrGameOver
	}
	target := move(s.pos, action)
	if s.layout.IsWall(target) {
		return nil, fmt.Errorf("%w: %s into a wall at (%d, %d)", ErrIllegalAction, action, target.X, target.Y)
	}

	next := s.copy()
	next.pos = target
	next.moves++
	next.score -= TimePenalty

	if s.layout.IsGhost(target) {
		next.lost = true
		next.score -= LosePenalty
		return next, nil
	}

	if s.HasFood(target) {
		food := make([]bool, len(s.food))
		copy(food, s.food)
		food[s.layout.index(target)] = false
		next.food = food
		next.foodLeft--
		next.score += FoodReward
		if next.foodLeft == 0 {
			next.won = true
			next.score += WinReward
		}
	}
	return next, nil
}

// Hash covers the agent position, the remaining food and the score.
func (s *State) Hash() game.StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(s.pos.X))
	binary.Write(hasher, binary.LittleEndian, int64(s.pos.Y))
	binary.Write(hasher, binary.LittleEndian, int64(s.score))

	var word uint64
	for i, f := range s.food {
		if f {
			word |= 1 << (i % 64)
		}
		if i%64 == 63 || i == len(s.food)-1 {
			binary.Write(hasher, binary.LittleEndian, word)
			word = 0
		}
	}

	return game.StateHash(hasher.Sum64())
}
