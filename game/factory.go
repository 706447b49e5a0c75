package game

// NewMatch creates a match from cfg. The configuration is clamped first, and a fresh
// seed is drawn when cfg carries none.
//
// Random draws at creation happen in this order: red leader, blue leader, red
// formation, blue formation.
func NewMatch(cfg Config) *Match {
	cfg = cfg.Normalize()
	seed := FreshSeed()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	cfg = cfg.WithSeed(seed)

	layout := LayoutFor(cfg.Preset)
	m := &Match{
		Size:   layout.Size,
		Config: cfg,
		Seed:   seed,
		rng:    NewRand(seed),
	}
	for _, k := range FactionKeys {
		capital := layout.Red
		if k == Blue {
			capital = layout.Blue
		}
		m.Factions[k] = &Faction{
			Key:     k,
			Capital: Capital{X: capital.X, Y: capital.Y, Alive: true},
		}
	}
	for _, k := range FactionKeys {
		f := m.Factions[k]
		f.Leader = randomLeader(m.rng)
		f.Leaders = []Leader{f.Leader}
	}
	for _, k := range FactionKeys {
		spawnFormation(m, k)
	}

	n := narrator{m: m}
	for _, k := range FactionKeys {
		n.say(EventLeader, "%s are led by %s", k.Label(), m.Factions[k].Leader)
	}
	return m
}

// Replay builds a fresh match with the same configuration and seed.
func (m *Match) Replay() *Match {
	return NewMatch(m.Config.WithSeed(m.Seed))
}
