package game

// blankMatch returns a seeded compact match with both rosters emptied and both
// leaders set to the given trait.
func blankMatch(cfg Config, trait Trait) *Match {
	m := NewMatch(cfg.WithSeed(1))
	for _, f := range m.Factions {
		f.Units = nil
		f.Leader = Leader{Name: "Test", Trait: trait}
		f.Leaders = []Leader{f.Leader}
	}
	m.Events = nil
	return m
}

func place(m *Match, k FactionKey, x, y int) *Unit {
	u := m.newUnit(k, Cell{X: x, Y: y})
	m.Factions[k].Units = append(m.Factions[k].Units, u)
	return u
}

func setTrait(m *Match, k FactionKey, trait Trait) {
	f := m.Factions[k]
	f.Leader = Leader{Name: "Test", Trait: trait}
	f.Leaders[len(f.Leaders)-1] = f.Leader
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ReinforceEvery = 0
	return cfg
}

func eventsOfKind(m *Match, kind EventKind) []Event {
	var out []Event
	for _, e := range m.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
