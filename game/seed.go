package game

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

var (
	seederMu sync.Mutex
	seeder   = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
)

// FreshSeed draws a seed for a match that was not given one.
func FreshSeed() uint32 {
	seederMu.Lock()
	defer seederMu.Unlock()
	return seeder.Uint32()
}
