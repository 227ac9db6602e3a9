package maze

import (
	"fmt"
	"lookahead/game"
	"sort"
)

// ScoreEvaluation is the game score of the state.
func ScoreEvaluation(s game.State) float64 {
	ms, ok := s.(*State)
	if !ok {
		panic("unexpected state type")
	}
	return float64(ms.score)
}

// FoodDistanceEvaluation is the game score minus the maze distance to the
// nearest remaining food, so states closer to food rank higher.
func FoodDistanceEvaluation(s game.State) float64 {
	ms, ok := s.(*State)
	if !ok {
		panic("unexpected state type")
	}
	if ms.won || ms.lost || ms.foodLeft == 0 {
		return float64(ms.score)
	}
	return float64(ms.score - ms.nearestFood())
}

// Just BFS, ghosts are avoided
func (s *State) nearestFood() int {
	l := s.layout
	visited := make([]bool, l.Width*l.Height)
	queue := []Position{s.pos}
	visited[l.index(s.pos)] = true
	for distance := 0; len(queue) > 0; distance++ {
		next := []Position{}
		for _, p := range queue {
			if s.HasFood(p) {
				return distance
			}
			for _, action := range game.Actions {
				q := move(p, action)
				if l.IsWall(q) || l.IsGhost(q) || visited[l.index(q)] {
					continue
				}
				visited[l.index(q)] = true
				next = append(next, q)
			}
		}
		queue = next
	}
	// Remaining food is walled off, fall back on the straight-line distance
	nearest := l.Width + l.Height
	for i, f := range s.food {
		if f {
			nearest = min(nearest, s.pos.manhattan(Position{i % l.Width, i / l.Width}))
		}
	}
	return nearest
}

var evaluators = map[string]game.Evaluate{
	"score":         ScoreEvaluation,
	"food-distance": FoodDistanceEvaluation,
}

func Evaluator(name string) (game.Evaluate, error) {
	evaluate, ok := evaluators[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluator %q", name)
	}
	return evaluate, nil
}

func EvaluatorNames() []string {
	names := make([]string, 0, len(evaluators))
	for name := range evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
