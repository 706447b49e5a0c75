package metrics

import (
	"time"

	"autobattle/game"
)

// MatchMetric summarizes one match played to the end.
type MatchMetric struct {
	Seed       uint32
	Winner     game.Outcome
	Turns      int
	FightTurns int // turns with at least one fight
	Fights     int // contested cells over the whole match
	Deaths     int
	Spawned    int
	Heirs      int
	PeakUnits  int
	FinalRed   int
	FinalBlue  int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

type Collector interface {
	Start(m *game.Match)
	AddTurn(m *game.Match)
	Complete(m *game.Match) MatchMetric
}

type collector struct {
	seed       uint32
	startTime  time.Time
	fightTurns int
	fights     int
	deaths     int
	spawned    int
	heirs      int
	peakUnits  int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(m *game.Match) {
	*c = collector{
		seed:      m.Seed,
		startTime: time.Now(),
		peakUnits: m.UnitCount(),
	}
}

func (c *collector) AddTurn(m *game.Match) {
	report := m.LastTurn
	if len(report.FightCells) > 0 {
		c.fightTurns++
	}
	c.fights += len(report.FightCells)
	c.deaths += report.Deaths
	c.spawned += report.Spawned
	c.heirs += report.Heirs
	c.peakUnits = max(c.peakUnits, m.UnitCount())
}

func (c *collector) Complete(m *game.Match) MatchMetric {
	end := time.Now()
	return MatchMetric{
		Seed:       c.seed,
		Winner:     m.Winner,
		Turns:      m.Turn,
		FightTurns: c.fightTurns,
		Fights:     c.fights,
		Deaths:     c.deaths,
		Spawned:    c.spawned,
		Heirs:      c.heirs,
		PeakUnits:  c.peakUnits,
		FinalRed:   len(m.Red().Units),
		FinalBlue:  len(m.Blue().Units),
		StartTime:  c.startTime,
		EndTime:    end,
		Duration:   end.Sub(c.startTime),
	}
}

// dummyCollector only records the outcome.
type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(m *game.Match)   {}
func (c *dummyCollector) AddTurn(m *game.Match) {}
func (c *dummyCollector) Complete(m *game.Match) MatchMetric {
	return MatchMetric{Seed: m.Seed, Winner: m.Winner, Turns: m.Turn}
}
