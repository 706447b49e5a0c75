package game

import "autobattle/meta"

// resolveSuccession grants an heir to every faction whose capital is down, which still
// has units and has never had an heir. The check runs every turn, not only on the turn
// the capital fell.
//
// Draw order per heir: leader name, leader trait, anchor unit, relocation cell.
func resolveSuccession(m *Match, n narrator) (heirs int) {
	for _, k := range FactionKeys {
		f := m.Factions[k]
		if f.Capital.Alive || len(f.Units) == 0 || f.HadHeir {
			continue
		}
		heir := randomLeader(m.rng)
		anchor := f.Units[m.rng.Intn(len(f.Units))]
		other := m.Factions[k.Enemy()].Capital

		var valid []Cell
		for r := 1; r <= 2; r++ {
			for _, c := range []Cell{
				{X: anchor.X + r, Y: anchor.Y},
				{X: anchor.X - r, Y: anchor.Y},
				{X: anchor.X, Y: anchor.Y + r},
				{X: anchor.X, Y: anchor.Y - r},
			} {
				// clamping may yield duplicates; they stay as extra weight
				c = m.clampCell(c.X, c.Y)
				if m.occupied(c) || (other.Alive && c == other.Cell()) {
					continue
				}
				valid = append(valid, c)
			}
		}
		place := anchor.Cell()
		if len(valid) > 0 {
			place = valid[m.rng.Intn(len(valid))]
		}

		f.Capital = Capital{X: place.X, Y: place.Y, Alive: true}
		f.HadHeir = true
		f.Leader = heir
		f.Leaders = append(f.Leaders, heir)
		m.Highlights = append(m.Highlights, Highlight{Cell: place, TTL: meta.HEIR_HIGHLIGHT_TTL})
		heirs++
		n.say(EventSuccession, "%s lost their capital; new leader %s rules from %s", k.Label(), heir, place)
	}
	return heirs
}
