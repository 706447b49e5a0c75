package engine

import (
	"autobattle/experiments/metrics"
	"autobattle/game"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Update is what an observer receives after creation and after every advance. State is
// a private copy, so observers may keep it across turns.
type Update struct {
	State  *game.Match
	Events []game.Event // appended by the last advance
	Hash   game.StateHash
}

type Observer func(u Update)

// Engine drives one match until it ends.
type Engine struct {
	Match    *game.Match
	silent   bool
	observer Observer
	metrics  metrics.Collector
}

// WithSilent suppresses narration for the whole run.
func WithSilent() Option {
	return func(e *Engine) {
		e.silent = true
	}
}

func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		if observer != nil {
			e.observer = observer
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

func New(cfg game.Config, options ...Option) *Engine {
	return FromMatch(game.NewMatch(cfg), options...)
}

// FromMatch wraps an existing match, e.g. a replay or a match advanced by hand.
func FromMatch(m *game.Match, options ...Option) *Engine {
	e := &Engine{ // Default values
		Match:   m,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run advances the match to its end and returns the outcome with its metrics.
func (e *Engine) Run() (game.Outcome, metrics.MatchMetric) {
	m := e.Match
	log.Info().Msgf("match %d starting on %s board (%d units, %s formation): %s vs %s",
		m.Seed, m.Config.Preset, m.Config.InitialUnits, m.Config.Formation, m.Red().Leader, m.Blue().Leader)

	if m.Turn == 0 {
		e.notify(0)
	}

	e.metrics.Start(m)
	opts := game.AdvanceOptions{Silent: e.silent}
	for !m.Ended {
		seen := len(m.Events)
		m.Advance(opts)
		e.metrics.AddTurn(m)
		e.notify(seen)
	}
	metric := e.metrics.Complete(m)

	log.Info().Msgf("match %d ended after %d turns with winner: %s", m.Seed, m.Turn, m.Winner)
	return m.Winner, metric
}

func (e *Engine) notify(seen int) {
	if e.observer == nil {
		return
	}
	state := e.Match.Copy()
	e.observer(Update{
		State:  state,
		Events: state.Events[seen:],
		Hash:   state.Hash(),
	})
}
