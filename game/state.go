package game

import (
	"fmt"

	"autobattle/meta"
	"autobattle/utils"
)

// FactionKey identifies one of the two sides.
type FactionKey int

const (
	Red FactionKey = iota
	Blue
)

// FactionKeys lists both sides in processing order.
var FactionKeys = [2]FactionKey{Red, Blue}

func (k FactionKey) String() string {
	if k == Red {
		return "red"
	}
	return "blue"
}

// Mark is the one-letter tag used in narration ("R7", "B3").
func (k FactionKey) Mark() string {
	if k == Red {
		return "R"
	}
	return "B"
}

// Label is the display name of the side.
func (k FactionKey) Label() string {
	if k == Red {
		return "Red"
	}
	return "Blue"
}

func (k FactionKey) Enemy() FactionKey {
	return 1 - k
}

func (k FactionKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is the match result.
type Outcome int

const (
	Unset Outcome = iota
	RedWins
	BlueWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case RedWins:
		return "red"
	case BlueWins:
		return "blue"
	case Draw:
		return "draw"
	}
	return "unset"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func winnerOf(k FactionKey) Outcome {
	if k == Red {
		return RedWins
	}
	return BlueWins
}

// Cell is a board coordinate.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func manhattan(a, b Cell) int {
	return utils.Abs(a.X-b.X) + utils.Abs(a.Y-b.Y)
}

// Capital is a faction's critical cell.
type Capital struct {
	X     int  `json:"x"`
	Y     int  `json:"y"`
	Alive bool `json:"alive"`
}

func (c Capital) Cell() Cell {
	return Cell{X: c.X, Y: c.Y}
}

// Unit is a combatant. HP never drops below 1; a defeated unit is removed.
type Unit struct {
	ID       int        `json:"id"`
	Faction  FactionKey `json:"faction"`
	X        int        `json:"x"`
	Y        int        `json:"y"`
	HP       int        `json:"hp"`
	Strength int        `json:"strength"`
}

func (u *Unit) Cell() Cell {
	return Cell{X: u.X, Y: u.Y}
}

// Label is the narration tag of the unit, e.g. "R12".
func (u *Unit) Label() string {
	return fmt.Sprintf("%s%d", u.Faction.Mark(), u.ID)
}

// Faction is one side of the match.
type Faction struct {
	Key     FactionKey `json:"key"`
	Capital Capital    `json:"capital"`
	Units   []*Unit    `json:"units"`
	Leader  Leader     `json:"leader"`
	Leaders []Leader   `json:"leaders"` // append-only lineage
	HadHeir bool       `json:"hadHeir"`
}

// Stats are the running tallies of a match.
type Stats struct {
	Kills         [2]int `json:"kills"`
	Losses        [2]int `json:"losses"`
	FightStreak   int    `json:"fightStreak"`
	NoFightStreak int    `json:"noFightStreak"`
	LastFightCell *Cell  `json:"lastFightCell,omitempty"`
}

// Highlight marks a recently fought cell for the renderer.
type Highlight struct {
	Cell
	TTL int `json:"ttl"`
}

// TurnReport summarizes what the last advance did.
type TurnReport struct {
	Turn       int    `json:"turn"`
	FightCells []Cell `json:"fightCells"`
	Deaths     int    `json:"deaths"`
	Spawned    int    `json:"spawned"`
	Heirs      int    `json:"heirs"`
}

// Match is the root aggregate of one match. It is exclusively owned by its caller and
// mutated only through Advance.
type Match struct {
	Size       int         `json:"size"`
	Turn       int         `json:"turn"`
	Factions   [2]*Faction `json:"factions"`
	Ended      bool        `json:"ended"`
	Winner     Outcome     `json:"winner"`
	Config     Config      `json:"config"`
	Seed       uint32      `json:"seed"`
	Stats      Stats       `json:"stats"`
	Highlights []Highlight `json:"highlights"`
	Events     []Event     `json:"events"`
	LastTurn   TurnReport  `json:"lastTurn"`

	rng    *Rand
	nextID int
}

func (m *Match) Faction(k FactionKey) *Faction {
	return m.Factions[k]
}

func (m *Match) Red() *Faction {
	return m.Factions[Red]
}

func (m *Match) Blue() *Faction {
	return m.Factions[Blue]
}

// UnitCount returns the number of living units on both sides.
func (m *Match) UnitCount() int {
	return len(m.Factions[Red].Units) + len(m.Factions[Blue].Units)
}

func (m *Match) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Size && y < m.Size
}

func (m *Match) clampCell(x, y int) Cell {
	return Cell{X: utils.Clamp(x, 0, m.Size-1), Y: utils.Clamp(y, 0, m.Size-1)}
}

func (m *Match) newUnit(k FactionKey, c Cell) *Unit {
	m.nextID++
	return &Unit{
		ID:       m.nextID,
		Faction:  k,
		X:        c.X,
		Y:        c.Y,
		HP:       meta.UNIT_HP,
		Strength: meta.UNIT_STRENGTH,
	}
}

// occupied reports whether any unit of either side stands on c.
func (m *Match) occupied(c Cell) bool {
	for _, f := range m.Factions {
		for _, u := range f.Units {
			if u.X == c.X && u.Y == c.Y {
				return true
			}
		}
	}
	return false
}

// Copy returns a deep copy, including the random stream position.
func (m *Match) Copy() *Match {
	c := *m
	for i, f := range m.Factions {
		fc := *f
		fc.Units = make([]*Unit, len(f.Units))
		for j, u := range f.Units {
			uc := *u
			fc.Units[j] = &uc
		}
		fc.Leaders = append([]Leader(nil), f.Leaders...)
		c.Factions[i] = &fc
	}
	if m.Stats.LastFightCell != nil {
		cell := *m.Stats.LastFightCell
		c.Stats.LastFightCell = &cell
	}
	c.Highlights = append([]Highlight(nil), m.Highlights...)
	c.Events = append([]Event(nil), m.Events...)
	c.LastTurn.FightCells = append([]Cell(nil), m.LastTurn.FightCells...)
	if m.Config.Seed != nil {
		seed := *m.Config.Seed
		c.Config.Seed = &seed
	}
	if m.rng != nil {
		c.rng = m.rng.copy()
	}
	return &c
}
