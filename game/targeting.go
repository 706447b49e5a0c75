package game

// TargetKind tells why a unit moves where it does.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetUnit
	TargetEnemyCapital
	TargetHome
)

func (t TargetKind) String() string {
	switch t {
	case TargetUnit:
		return "nearest-unit"
	case TargetEnemyCapital:
		return "enemy-capital"
	case TargetHome:
		return "own-capital"
	}
	return "none"
}

// Target is a movement decision.
type Target struct {
	Cell Cell
	Kind TargetKind
}

// chooseTarget applies the ruling leader's trait, then falls back to the nearest enemy
// unit (lowest hp on distance ties, first found on further ties) and finally the enemy
// capital. Only a brave leader draws from the random stream.
func chooseTarget(m *Match, u *Unit, own, enemy *Faction) Target {
	var best *Unit
	bestDist := 0
	for _, e := range enemy.Units {
		d := manhattan(u.Cell(), e.Cell())
		if best == nil || d < bestDist {
			best, bestDist = e, d
		} else if d == bestDist && e.HP < best.HP {
			best = e
		}
	}

	home := Target{Cell: own.Capital.Cell(), Kind: TargetHome}
	switch own.Leader.Trait {
	case Cautious:
		if manhattan(u.Cell(), own.Capital.Cell()) > 3 {
			return home
		}
	case Greedy:
		if len(own.Units) < max(2, m.Config.ArmyCap-2) {
			return home
		}
	case Brave:
		if enemy.Capital.Alive && m.rng.Float64() < 0.7 {
			return Target{Cell: enemy.Capital.Cell(), Kind: TargetEnemyCapital}
		}
	}

	if best != nil {
		return Target{Cell: best.Cell(), Kind: TargetUnit}
	}
	if enemy.Capital.Alive {
		return Target{Cell: enemy.Capital.Cell(), Kind: TargetEnemyCapital}
	}
	return Target{Kind: TargetNone}
}
