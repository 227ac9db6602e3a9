package engine

import (
	"errors"
	"fmt"
	"io"
	"lookahead/experiments/metrics"
	"lookahead/game"
	"lookahead/game/maze"
	"lookahead/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

type LocalEngine struct {
	State    *maze.State
	Agent    agent.Agent
	maxTurns int
	budget   int
	render   io.Writer
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithBudget sets the successor calls allowed per decision. Searches only
// end on a win or an empty frontier otherwise, so non-positive values are
// ignored.
func WithBudget(budget int) Option {
	return func(e *LocalEngine) {
		if budget > 0 {
			e.budget = budget
		}
	}
}

// WithRenderer draws the board after every move.
func WithRenderer(w io.Writer) Option {
	return func(e *LocalEngine) {
		e.render = w
	}
}

func New(a agent.Agent, state *maze.State, options ...Option) *LocalEngine {
	if a == nil {
		panic("engine needs an agent")
	}
	e := &LocalEngine{ // Default values
		State:    state,
		Agent:    a,
		maxTurns: DefaultMaxTurns,
		budget:   DefaultBudget,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game ends or the turn limit is hit.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Layout:    e.State.Layout().Name,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	e.Agent.RegisterInitialState(e.State)
	e.draw()

	for turn := 1; !game.IsTerminal(e.State) && turn <= e.maxTurns; turn++ {
		// Every decision starts from a fresh budget
		root := e.State.WithBudget(e.budget)
		action, searchMetric := e.Agent.FindMove(root)
		if gameMetric.Policy == "" {
			gameMetric.Policy = searchMetric.Policy
		}

		next, played, err := e.play(action)
		if err != nil {
			panic(fmt.Sprintf("cannot advance game: %v", err))
		}
		e.State = next

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Action:       played.String(),
			Score:        e.State.Score(),
			SearchMetric: searchMetric,
		})
		e.draw()
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Won = e.State.IsWin()
	gameMetric.Lost = e.State.IsLose()
	gameMetric.Score = e.State.Score()
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game on %s over after %d moves: %s with score %d",
		gameMetric.Layout, gameMetric.TotalMoves, gameMetric.Result(), gameMetric.Score)

	return gameMetric, moveMetrics
}

// play applies the agent's action, replacing an illegal one with Stop.
func (e *LocalEngine) play(action game.Action) (*maze.State, game.Action, error) {
	next, err := e.State.Apply(action)
	if err == nil {
		return next, action, nil
	}
	if !errors.Is(err, maze.ErrIllegalAction) {
		return nil, action, err
	}

	log.Warn().Err(err).Msg("agent chose an illegal action, playing stop")
	next, err = e.State.Apply(game.Stop)
	return next, game.Stop, err
}

func (e *LocalEngine) draw() {
	if e.render == nil {
		return
	}
	if err := maze.Render(e.render, e.State); err != nil {
		log.Warn().Err(err).Msg("failed to render board")
	}
}
