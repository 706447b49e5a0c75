package game

import "strings"

// resolveVictory ends the match when the turn limit is hit with both capitals standing,
// or when at most one capital stands.
func resolveVictory(m *Match, n narrator) {
	redAlive, blueAlive := m.Red().Capital.Alive, m.Blue().Capital.Alive

	switch {
	case redAlive && blueAlive:
		if m.Turn < m.Config.TurnLimit {
			return
		}
		m.Winner = Draw
		n.say(EventConclusion, "Draw by turn limit (%d)", m.Config.TurnLimit)
	case redAlive:
		m.Winner = RedWins
	case blueAlive:
		m.Winner = BlueWins
	default:
		m.Winner = Draw
	}
	m.Ended = true
	conclude(m, n)
}

func conclude(m *Match, n narrator) {
	s := m.Stats
	n.say(EventConclusion, "Result: %s (%d turns)", resultLabel(m.Winner), m.Turn)
	n.say(EventConclusion, "Exchanges: R +%d/-%d, B +%d/-%d",
		s.Kills[Red], s.Losses[Red], s.Kills[Blue], s.Losses[Blue])
	if s.LastFightCell != nil {
		n.say(EventConclusion, "Key battle @ %s", *s.LastFightCell)
	}
	n.say(EventConclusion, "Winning dynasty: %s", resultLabel(m.Winner))
	for _, k := range FactionKeys {
		n.say(EventConclusion, "%s leaders: %s", k.Label(), lineage(m.Factions[k].Leaders))
	}
}

func resultLabel(o Outcome) string {
	switch o {
	case RedWins:
		return Red.Label()
	case BlueWins:
		return Blue.Label()
	case Draw:
		return "Draw"
	}
	return "-"
}

func lineage(leaders []Leader) string {
	if len(leaders) == 0 {
		return "-"
	}
	names := make([]string, len(leaders))
	for i, l := range leaders {
		names[i] = l.String()
	}
	return strings.Join(names, " -> ")
}
