package game

import (
	"fmt"
	"strings"
)

// Trait is the behavioural modifier of a faction's ruling leader.
type Trait int

const (
	Brave Trait = iota
	Cautious
	Greedy
)

var traits = []Trait{Brave, Cautious, Greedy}

var traitNames = []string{"brave", "cautious", "greedy"}

func (t Trait) String() string {
	if int(t) < 0 || int(t) >= len(traitNames) {
		return fmt.Sprintf("Trait(%d)", int(t))
	}
	return traitNames[t]
}

func (t Trait) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

var namePool = []string{
	"Ragnvald", "Olaf", "Yaropolk", "Sviatopolk", "Ingvar", "Ivar", "Boris",
	"Harald", "Gleb", "Mstislav", "Vladimir", "Oleg", "Igor", "Rurik", "Sven",
	"Eirik", "Yaroslav", "Dobrynya", "Rostislav", "Gorm", "Tryggve",
}

// Leader is a faction's ruling identity.
type Leader struct {
	Name  string `json:"name"`
	Trait Trait  `json:"trait"`
}

func (l Leader) String() string {
	return fmt.Sprintf("%s the %s", l.Name, titleCase(l.Trait.String()))
}

// randomLeader draws the name first, then the trait.
func randomLeader(r *Rand) Leader {
	name := namePool[r.Intn(len(namePool))]
	trait := traits[r.Intn(len(traits))]
	return Leader{Name: name, Trait: trait}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
