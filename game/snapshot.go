package game

import (
	"encoding/json"
	"fmt"
)

// CellStack counts units of each side on one cell.
type CellStack struct {
	Cell
	Red  int `json:"red"`
	Blue int `json:"blue"`
}

// FactionView is the render-facing summary of a faction.
type FactionView struct {
	Capital Capital  `json:"capital"`
	Units   int      `json:"units"`
	Kills   int      `json:"kills"`
	Losses  int      `json:"losses"`
	Leader  Leader   `json:"leader"`
	Leaders []Leader `json:"leaders"`
	HadHeir bool     `json:"hadHeir"`
}

// Snapshot is everything a renderer needs between two advances.
type Snapshot struct {
	Size          int            `json:"size"`
	Turn          int            `json:"turn"`
	Seed          uint32         `json:"seed"`
	Ended         bool           `json:"ended"`
	Winner        Outcome        `json:"winner"`
	Factions      [2]FactionView `json:"factions"`
	Stacks        []CellStack    `json:"stacks"`
	FightStreak   int            `json:"fightStreak"`
	NoFightStreak int            `json:"noFightStreak"`
	Highlights    []Highlight    `json:"highlights"`
	Events        []Event        `json:"events"`
}

// Snapshot copies the observable state. The result shares nothing with m.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Size:          m.Size,
		Turn:          m.Turn,
		Seed:          m.Seed,
		Ended:         m.Ended,
		Winner:        m.Winner,
		FightStreak:   m.Stats.FightStreak,
		NoFightStreak: m.Stats.NoFightStreak,
		Highlights:    append([]Highlight(nil), m.Highlights...),
		Events:        append([]Event(nil), m.Events...),
	}
	for _, k := range FactionKeys {
		f := m.Factions[k]
		s.Factions[k] = FactionView{
			Capital: f.Capital,
			Units:   len(f.Units),
			Kills:   m.Stats.Kills[k],
			Losses:  m.Stats.Losses[k],
			Leader:  f.Leader,
			Leaders: append([]Leader(nil), f.Leaders...),
			HadHeir: f.HadHeir,
		}
	}

	// row-major order
	counts := map[Cell]*CellStack{}
	for _, f := range m.Factions {
		for _, u := range f.Units {
			c := u.Cell()
			st, ok := counts[c]
			if !ok {
				st = &CellStack{Cell: c}
				counts[c] = st
			}
			if u.Faction == Red {
				st.Red++
			} else {
				st.Blue++
			}
		}
	}
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			if st, ok := counts[Cell{X: x, Y: y}]; ok {
				s.Stacks = append(s.Stacks, *st)
			}
		}
	}
	return s
}

// MarshalPretty renders v as indented JSON.
func MarshalPretty(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}
