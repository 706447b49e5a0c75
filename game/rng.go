package game

// Rand is a Mulberry32 generator. Every stochastic decision of a match draws from
// a single Rand in a fixed per-stage order, which makes a seed a full replay.
type Rand struct {
	state uint32
}

// NewRand seeds a generator. A zero seed is coerced to 1.
func NewRand(seed uint32) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

// Float64 returns a number in [0,1).
func (r *Rand) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (1 | t)
	t ^= t + (t^(t>>7))*(61|t)
	return float64(t^(t>>14)) / 4294967296.0
}

// IntRange returns an integer in [min,max] inclusive.
func (r *Rand) IntRange(min, max int) int {
	return int(r.Float64()*float64(max-min+1)) + min
}

// Intn returns an integer in [0,n). n must be positive.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("Intn called with non-positive n")
	}
	return int(r.Float64() * float64(n))
}

// Shuffle permutes n elements with a backwards Fisher-Yates pass.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(r.Float64() * float64(i+1))
		swap(i, j)
	}
}

func (r *Rand) copy() *Rand {
	return &Rand{state: r.state}
}
