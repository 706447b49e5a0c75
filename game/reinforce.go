package game

// resolveReinforcements drips new units next to living capitals every ReinforceEvery
// turns. A greedy leader levies a second unit when there is room.
func resolveReinforcements(m *Match, n narrator) (spawned int) {
	every := m.Config.ReinforceEvery
	if every == 0 || m.Turn == 0 || m.Turn%every != 0 {
		return 0
	}

	occupied := map[Cell]bool{}
	for _, f := range m.Factions {
		for _, u := range f.Units {
			occupied[u.Cell()] = true
		}
	}

	for _, k := range FactionKeys {
		f := m.Factions[k]
		if !f.Capital.Alive || len(f.Units) >= m.Config.ArmyCap {
			continue
		}
		home := f.Capital
		other := m.Factions[k.Enemy()].Capital.Cell()
		var neighbours []Cell
		for _, c := range []Cell{
			{X: home.X + 1, Y: home.Y},
			{X: home.X - 1, Y: home.Y},
			{X: home.X, Y: home.Y + 1},
			{X: home.X, Y: home.Y - 1},
		} {
			if m.inBounds(c.X, c.Y) {
				neighbours = append(neighbours, c)
			}
		}
		free := func() []Cell {
			var out []Cell
			for _, c := range neighbours {
				if !occupied[c] && c != other {
					out = append(out, c)
				}
			}
			return out
		}

		cells := free()
		if len(cells) == 0 {
			continue
		}
		c := cells[m.rng.Intn(len(cells))]
		f.Units = append(f.Units, m.newUnit(k, c))
		occupied[c] = true
		spawned++
		n.say(EventReinforce, "%s+ reinforcement @ %d,%d", k.Mark(), c.X, c.Y)

		if f.Leader.Trait == Greedy && len(f.Units) < m.Config.ArmyCap {
			if cells := free(); len(cells) > 0 {
				c := cells[m.rng.Intn(len(cells))]
				f.Units = append(f.Units, m.newUnit(k, c))
				occupied[c] = true
				spawned++
				n.say(EventReinforce, "%s+ greedy levy @ %d,%d", k.Mark(), c.X, c.Y)
			}
		}
	}
	return spawned
}
