package game

import (
	"errors"
	"fmt"
	"strings"

	"autobattle/meta"
	"autobattle/utils"
)

var (
	ErrUnknownPreset    = errors.New("unknown board preset")
	ErrUnknownFormation = errors.New("unknown formation")
)

// Preset selects a fixed board layout.
type Preset string

const (
	PresetCompact Preset = "compact"
	PresetOffset  Preset = "offset"
	PresetLarge   Preset = "large"
)

var presets = []Preset{PresetCompact, PresetOffset, PresetLarge}

// Layout is the board extent and both capital corners of a preset.
type Layout struct {
	Size int
	Red  Cell
	Blue Cell
}

var layouts = map[Preset]Layout{
	PresetCompact: {Size: 10, Red: Cell{X: 0, Y: 0}, Blue: Cell{X: 9, Y: 9}},
	PresetOffset:  {Size: 10, Red: Cell{X: 2, Y: 2}, Blue: Cell{X: 7, Y: 7}},
	PresetLarge:   {Size: 14, Red: Cell{X: 0, Y: 0}, Blue: Cell{X: 13, Y: 13}},
}

// LayoutFor resolves a preset, falling back to compact.
func LayoutFor(p Preset) Layout {
	if l, ok := layouts[p]; ok {
		return l
	}
	return layouts[PresetCompact]
}

// ParsePreset strictly parses a preset name.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	if utils.FindIndex(presets, p) < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
	return p, nil
}

// Formation is the initial spawn geometry.
type Formation string

const (
	Clustered Formation = "clustered"
	Line      Formation = "line"
	Wedge     Formation = "wedge"
)

var formations = []Formation{Clustered, Line, Wedge}

// ParseFormation strictly parses a formation name.
func ParseFormation(s string) (Formation, error) {
	f := Formation(strings.ToLower(strings.TrimSpace(s)))
	if utils.FindIndex(formations, f) < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormation, s)
	}
	return f, nil
}

// Config is the immutable per-match configuration.
type Config struct {
	Preset         Preset    `yaml:"preset" json:"preset"`
	InitialUnits   int       `yaml:"initial_units" json:"initialUnits"`
	RNGSpread      int       `yaml:"rng_spread" json:"rngSpread"`
	TurnLimit      int       `yaml:"turn_limit" json:"turnLimit"`
	Formation      Formation `yaml:"formation" json:"formation"`
	ReinforceEvery int       `yaml:"reinforce_every" json:"reinforceEvery"`
	ArmyCap        int       `yaml:"army_cap" json:"armyCap"`
	// Seed replays a match when set; otherwise a fresh seed is drawn at creation.
	Seed *uint32 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Preset:         PresetCompact,
		InitialUnits:   meta.DEFAULT_INITIAL_UNITS,
		RNGSpread:      meta.DEFAULT_RNG_SPREAD,
		TurnLimit:      meta.DEFAULT_TURN_LIMIT,
		Formation:      Clustered,
		ReinforceEvery: meta.DEFAULT_REINFORCE_EVERY,
		ArmyCap:        meta.DEFAULT_ARMY_CAP,
	}
}

// WithSeed returns a copy of c pinned to seed.
func (c Config) WithSeed(seed uint32) Config {
	c.Seed = &seed
	return c
}

// Normalize clamps out-of-range or missing values. A malformed value never fails a match.
func (c Config) Normalize() Config {
	if _, ok := layouts[c.Preset]; !ok {
		c.Preset = PresetCompact
	}
	if utils.FindIndex(formations, c.Formation) < 0 {
		c.Formation = Clustered
	}
	if c.InitialUnits < 1 {
		c.InitialUnits = meta.DEFAULT_INITIAL_UNITS
	}
	c.InitialUnits = min(c.InitialUnits, meta.MAX_INITIAL_UNITS)
	c.RNGSpread = utils.Clamp(c.RNGSpread, 0, meta.MAX_RNG_SPREAD)
	if c.TurnLimit < 1 {
		c.TurnLimit = meta.DEFAULT_TURN_LIMIT
	}
	if c.ReinforceEvery < 0 {
		c.ReinforceEvery = 0
	}
	if c.ArmyCap < 1 {
		c.ArmyCap = meta.DEFAULT_ARMY_CAP
	}
	if c.Seed != nil {
		seed := *c.Seed
		c.Seed = &seed
	}
	return c
}
