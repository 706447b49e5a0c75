package game

import "autobattle/utils"

// resolveMovement moves every unit one orthogonal step toward its target. Units of both
// sides are processed in a freshly shuffled order, so whoever reaches a contested cell
// first is decided by the random stream.
func resolveMovement(m *Match) {
	red, blue := m.Red(), m.Blue()
	all := make([]*Unit, 0, m.UnitCount())
	all = append(all, red.Units...)
	all = append(all, blue.Units...)
	m.rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

	for _, u := range all {
		own, enemy := m.Factions[u.Faction], m.Factions[u.Faction.Enemy()]
		t := chooseTarget(m, u, own, enemy)
		if t.Kind == TargetNone {
			continue
		}
		// a unit holding its own capital still takes the axis draw and steps in place
		if t.Kind != TargetHome && t.Cell == u.Cell() {
			continue
		}
		step(m, u, t.Cell)
	}
}

// step moves u one cell along the axis with the larger remaining distance; ties pick
// an axis at random. Stepping onto the current cell draws and leaves u in place.
func step(m *Match, u *Unit, to Cell) {
	distX, distY := utils.Abs(to.X-u.X), utils.Abs(to.Y-u.Y)
	alongX := distX > distY
	if distX == distY {
		alongX = m.rng.Float64() < 0.5
	}
	if alongX {
		u.X = utils.Clamp(u.X+utils.Sign(to.X-u.X), 0, m.Size-1)
	} else {
		u.Y = utils.Clamp(u.Y+utils.Sign(to.Y-u.Y), 0, m.Size-1)
	}
}
