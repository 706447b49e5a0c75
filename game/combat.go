package game

// fightStack holds the units of both sides on one cell.
type fightStack struct {
	cell  Cell
	sides [2][]*Unit
}

// groupByCell returns stacks in order of first appearance, red roster first.
func groupByCell(m *Match) []*fightStack {
	index := map[Cell]*fightStack{}
	var stacks []*fightStack
	for _, f := range m.Factions {
		for _, u := range f.Units {
			c := u.Cell()
			s, ok := index[c]
			if !ok {
				s = &fightStack{cell: c}
				index[c] = s
				stacks = append(stacks, s)
			}
			s.sides[u.Faction] = append(s.sides[u.Faction], u)
		}
	}
	return stacks
}

// resolveCombat fights every cell that hosts both sides and returns the fight cells.
// Dead units are removed from the rosters in one pass after all cells resolve.
func resolveCombat(m *Match, n narrator) (cells []Cell, deaths int) {
	spread := m.Config.RNGSpread
	dead := [2]map[int]bool{{}, {}}

	for _, s := range groupByCell(m) {
		red, blue := s.sides[Red], s.sides[Blue]
		if len(red) == 0 || len(blue) == 0 {
			continue
		}
		cells = append(cells, s.cell)
		m.rng.Shuffle(len(red), func(i, j int) { red[i], red[j] = red[j], red[i] })
		m.rng.Shuffle(len(blue), func(i, j int) { blue[i], blue[j] = blue[j], blue[i] })

		// One shared index walks both lists; a pair with an already dead member is
		// skipped but still consumes its index.
		for i := 0; i < len(red) && i < len(blue); i++ {
			r, b := red[i], blue[i]
			if dead[Red][r.ID] || dead[Blue][b.ID] {
				continue
			}
			rRoll := r.Strength + m.rng.IntRange(0, spread)
			bRoll := b.Strength + m.rng.IntRange(0, spread)

			switch {
			case rRoll == bRoll:
				r.HP = max(1, r.HP-bRoll/4)
				b.HP = max(1, b.HP-rRoll/4)
				n.say(EventCombat, "%s ~ %s (R=%d, B=%d)", r.Label(), b.Label(), r.HP, b.HP)
			case rRoll > bRoll:
				r.HP = max(1, r.HP-bRoll/2)
				dead[Blue][b.ID] = true
				m.Stats.Kills[Red]++
				m.Stats.Losses[Blue]++
				n.say(EventCombat, "%s defeats %s (HP=%d)", r.Label(), b.Label(), r.HP)
			default:
				b.HP = max(1, b.HP-rRoll/2)
				dead[Red][r.ID] = true
				m.Stats.Kills[Blue]++
				m.Stats.Losses[Red]++
				n.say(EventCombat, "%s defeats %s (HP=%d)", b.Label(), r.Label(), b.HP)
			}
		}
	}

	for _, k := range FactionKeys {
		if len(dead[k]) == 0 {
			continue
		}
		f := m.Factions[k]
		alive := f.Units[:0]
		for _, u := range f.Units {
			if !dead[k][u.ID] {
				alive = append(alive, u)
			}
		}
		// drop references held past the new length
		for i := len(alive); i < len(f.Units); i++ {
			f.Units[i] = nil
		}
		f.Units = alive
		deaths += len(dead[k])
	}
	return cells, deaths
}
