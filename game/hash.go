package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// StateHash fingerprints a match state.
type StateHash uint64

// Hash fingerprints everything that influences future turns, plus the tallies.
// Two runs from the same seed and configuration hash identically turn by turn.
func (m *Match) Hash() StateHash {
	hasher := fnv.New64a()
	write := func(v int64) {
		binary.Write(hasher, binary.LittleEndian, v)
	}
	boolean := func(b bool) int64 {
		if b {
			return 1
		}
		return 0
	}

	write(int64(m.Size))
	write(int64(m.Turn))
	write(boolean(m.Ended))
	write(int64(m.Winner))
	write(int64(m.nextID))
	if m.rng != nil {
		write(int64(m.rng.state))
	}

	for _, f := range m.Factions {
		write(int64(f.Capital.X))
		write(int64(f.Capital.Y))
		write(boolean(f.Capital.Alive))
		write(boolean(f.HadHeir))
		write(int64(f.Leader.Trait))
		hasher.Write([]byte(f.Leader.Name))
		write(int64(len(f.Leaders)))
		write(int64(len(f.Units)))
		for _, u := range f.Units {
			write(int64(u.ID))
			write(int64(u.X))
			write(int64(u.Y))
			write(int64(u.HP))
			write(int64(u.Strength))
		}
	}

	for _, k := range FactionKeys {
		write(int64(m.Stats.Kills[k]))
		write(int64(m.Stats.Losses[k]))
	}
	write(int64(m.Stats.FightStreak))
	write(int64(m.Stats.NoFightStreak))
	for _, h := range m.Highlights {
		write(int64(h.X))
		write(int64(h.Y))
		write(int64(h.TTL))
	}

	return StateHash(hasher.Sum64())
}

// CheckInvariants reports the first broken structural invariant. Any error is an
// engine bug.
func (m *Match) CheckInvariants() error {
	if m.Factions[Red] == nil || m.Factions[Blue] == nil {
		return fmt.Errorf("match must have exactly two factions")
	}
	seen := map[int]bool{}
	for _, k := range FactionKeys {
		f := m.Factions[k]
		if f.Key != k {
			return fmt.Errorf("faction %s stored under key %s", f.Key, k)
		}
		if len(f.Leaders) < 1 {
			return fmt.Errorf("faction %s has no leader history", k)
		}
		if f.Leaders[len(f.Leaders)-1] != f.Leader {
			return fmt.Errorf("faction %s ruling leader is not the last of its lineage", k)
		}
		if !m.inBounds(f.Capital.X, f.Capital.Y) {
			return fmt.Errorf("faction %s capital %s out of bounds", k, f.Capital.Cell())
		}
		for _, u := range f.Units {
			if u == nil {
				return fmt.Errorf("faction %s roster holds a nil unit", k)
			}
			if u.Faction != k {
				return fmt.Errorf("unit %s listed under faction %s", u.Label(), k)
			}
			if !m.inBounds(u.X, u.Y) {
				return fmt.Errorf("unit %s at %s out of bounds", u.Label(), u.Cell())
			}
			if u.HP < 1 {
				return fmt.Errorf("unit %s alive with hp %d", u.Label(), u.HP)
			}
			if seen[u.ID] {
				return fmt.Errorf("unit id %d appears twice", u.ID)
			}
			if u.ID > m.nextID {
				return fmt.Errorf("unit id %d was never assigned", u.ID)
			}
			seen[u.ID] = true
		}
	}
	return nil
}
