// meta/meta.go
package meta

// DEFAULT_INITIAL_UNITS defines the number of units each faction starts with.
const DEFAULT_INITIAL_UNITS = 6

// MAX_INITIAL_UNITS caps the starting army size.
const MAX_INITIAL_UNITS = 40

// DEFAULT_RNG_SPREAD defines the upper bound of the random combat bonus.
const DEFAULT_RNG_SPREAD = 20

// MAX_RNG_SPREAD caps the random combat bonus.
const MAX_RNG_SPREAD = 100

// DEFAULT_TURN_LIMIT defines the turn after which a match with two standing capitals is drawn.
const DEFAULT_TURN_LIMIT = 200

// DEFAULT_REINFORCE_EVERY defines the reinforcement interval in turns (0 = off).
const DEFAULT_REINFORCE_EVERY = 20

// DEFAULT_ARMY_CAP defines the army size above which no reinforcements arrive.
const DEFAULT_ARMY_CAP = 12

// UNIT_HP and UNIT_STRENGTH are the base stats of every spawned unit.
const UNIT_HP = 100
const UNIT_STRENGTH = 10

// FIGHT_HIGHLIGHT_TTL and HEIR_HIGHLIGHT_TTL are the display lifetimes of highlighted cells.
const FIGHT_HIGHLIGHT_TTL = 2
const HEIR_HIGHLIGHT_TTL = 3

// PLACEMENT_TRIES bounds the random searches used for initial placement.
const PLACEMENT_TRIES = 200

// SERIES_GAMES is the default number of matches in a series (best of 5).
const SERIES_GAMES = 5
