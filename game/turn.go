package game

import (
	"fmt"

	"autobattle/meta"
)

// AdvanceOptions tune a single advance.
type AdvanceOptions struct {
	// Silent suppresses narration. It never changes outcomes or random draws.
	Silent bool
}

// Advance plays one full turn: movement, combat, siege, succession, reinforcement and
// the victory check. It mutates and returns m. Advancing an ended match is a no-op.
func Advance(m *Match, opts AdvanceOptions) *Match {
	if m.Ended {
		return m
	}
	n := narrator{m: m, silent: opts.Silent}
	m.Turn++
	report := TurnReport{Turn: m.Turn}

	resolveMovement(m)

	cells, deaths := resolveCombat(m, n)
	report.FightCells, report.Deaths = cells, deaths
	decayHighlights(m)
	for _, c := range cells {
		m.Highlights = append(m.Highlights, Highlight{Cell: c, TTL: meta.FIGHT_HIGHLIGHT_TTL})
		last := c
		m.Stats.LastFightCell = &last
	}
	if len(cells) > 0 {
		m.Stats.FightStreak++
		m.Stats.NoFightStreak = 0
	} else {
		m.Stats.NoFightStreak++
		m.Stats.FightStreak = 0
	}

	resolveSiege(m, n)
	report.Heirs = resolveSuccession(m, n)
	report.Spawned = resolveReinforcements(m, n)
	resolveVictory(m, n)

	m.LastTurn = report
	if err := m.CheckInvariants(); err != nil {
		panic(fmt.Sprintf("turn %d: %v", m.Turn, err))
	}
	return m
}

// Advance is shorthand for Advance(m, opts).
func (m *Match) Advance(opts AdvanceOptions) *Match {
	return Advance(m, opts)
}

// RunToEnd advances until the match ends.
func (m *Match) RunToEnd(opts AdvanceOptions) *Match {
	for !m.Ended {
		Advance(m, opts)
	}
	return m
}

func decayHighlights(m *Match) {
	next := m.Highlights[:0]
	for _, h := range m.Highlights {
		if h.TTL-1 > 0 {
			next = append(next, Highlight{Cell: h.Cell, TTL: h.TTL - 1})
		}
	}
	m.Highlights = next
}
