package game

// resolveSiege runs after combat: a capital falls when a surviving enemy unit stands
// on it. Both capitals may fall in the same turn.
func resolveSiege(m *Match, n narrator) {
	var fallen []FactionKey
	for _, k := range FactionKeys {
		capital := m.Factions[k].Capital
		if !capital.Alive {
			continue
		}
		for _, u := range m.Factions[k.Enemy()].Units {
			if u.X == capital.X && u.Y == capital.Y {
				fallen = append(fallen, k)
				break
			}
		}
	}
	for _, k := range fallen {
		m.Factions[k].Capital.Alive = false
	}

	switch len(fallen) {
	case 2:
		n.say(EventCapture, "Both capitals fell in the same turn")
	case 1:
		k := fallen[0]
		n.say(EventCapture, "%s captured the capital of %s", k.Enemy().Label(), k.Label())
	}
}
