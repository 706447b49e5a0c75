package game

import (
	"autobattle/meta"
	"autobattle/utils"
)

// formationCells lists candidate spawn cells for a faction. The list may contain
// out-of-bounds and capital cells; placement filters them.
func formationCells(m *Match, k FactionKey, formation Formation) []Cell {
	own := m.Factions[k].Capital
	enemy := m.Factions[k.Enemy()].Capital
	dx := utils.Sign(enemy.X - own.X)
	dy := utils.Sign(enemy.Y - own.Y)
	alongX := utils.Abs(enemy.X-own.X) >= utils.Abs(enemy.Y-own.Y)
	sx, sy := 0, 0
	if alongX {
		sx = dx
		if sx == 0 {
			sx = 1
		}
	} else {
		sy = dy
		if sy == 0 {
			sy = 1
		}
	}

	switch formation {
	case Line:
		cells := make([]Cell, 0, m.Size)
		for d := 1; d <= m.Size; d++ {
			cells = append(cells, Cell{X: own.X + sx*d, Y: own.Y + sy*d})
		}
		return cells
	case Wedge:
		rows := max(4, (m.Config.InitialUnits+1)/2)
		var cells []Cell
		for r := 1; r <= rows; r++ {
			// row r is r cells wide, centred on the dominant axis
			for off := -((r - 1) / 2); off <= r/2; off++ {
				if alongX {
					cells = append(cells, Cell{X: own.X + sx*r, Y: own.Y + off})
				} else {
					cells = append(cells, Cell{X: own.X + off, Y: own.Y + sy*r})
				}
			}
		}
		return cells
	}

	// clustered: random unique offsets within Chebyshev radius 2
	var cells []Cell
	seen := map[Cell]bool{}
	for attempts := 0; len(cells) < m.Config.InitialUnits*3 && attempts < meta.PLACEMENT_TRIES; attempts++ {
		c := m.clampCell(own.X+m.rng.IntRange(-2, 2), own.Y+m.rng.IntRange(-2, 2))
		if !seen[c] && c != own.Cell() {
			cells = append(cells, c)
			seen[c] = true
		}
	}
	return cells
}

// spawnFormation places the initial army of a faction, falling back to bounded random
// placement near the capital when the formation runs out of usable cells.
func spawnFormation(m *Match, k FactionKey) {
	f := m.Factions[k]
	own := f.Capital.Cell()
	enemy := m.Factions[k.Enemy()].Capital.Cell()
	placed := map[Cell]bool{own: true}
	want := m.Config.InitialUnits

	for _, c := range formationCells(m, k, m.Config.Formation) {
		if len(f.Units) >= want {
			break
		}
		if !m.inBounds(c.X, c.Y) || placed[c] || c == enemy {
			continue
		}
		placed[c] = true
		f.Units = append(f.Units, m.newUnit(k, c))
	}

	for tries := 0; len(f.Units) < want && tries < meta.PLACEMENT_TRIES; tries++ {
		c := m.clampCell(own.X+m.rng.IntRange(-2, 2), own.Y+m.rng.IntRange(-2, 2))
		if placed[c] || c == enemy {
			continue
		}
		placed[c] = true
		f.Units = append(f.Units, m.newUnit(k, c))
	}
}
