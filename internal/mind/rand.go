package mind

import (
	"math/rand"
	"sync"
	"time"
)

// Dice is the per-agent randomness source. Every probabilistic gate in the
// behavioral core draws from one of these instead of the package-global RNG,
// so a seeded agent is reproducible and tests can force gates open. Safe for
// concurrent use.
type Dice struct {
	mu     sync.Mutex
	rng    *rand.Rand
	forced bool
}

// NewDice returns a Dice seeded with seed; seed 0 means "seed from clock".
func NewDice(seed int64) *Dice {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Dice{rng: rand.New(rand.NewSource(seed))}
}

// ForcedDice returns a Dice whose probability gates always fire (any p > 0).
// Selections among alternatives stay seeded-random.
func ForcedDice(seed int64) *Dice {
	d := NewDice(seed)
	d.forced = true
	return d
}

// Chance draws one uniform sample against p.
func (d *Dice) Chance(p float64) bool {
	if d.forced {
		return p > 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Float64() < p
}

// Float returns a uniform sample in [0,1).
func (d *Dice) Float() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Float64()
}

// Between returns a uniform sample in [min,max].
func (d *Dice) Between(min, max float64) float64 {
	if max <= min {
		return min
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return min + d.rng.Float64()*(max-min)
}

// IntBetween returns a uniform integer in [min,max].
func (d *Dice) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return min + d.rng.Intn(max-min+1)
}

// Intn returns a uniform integer in [0,n).
func (d *Dice) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Intn(n)
}

// Pick returns a uniformly chosen element of items; empty items yield "".
func (d *Dice) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return items[d.rng.Intn(len(items))]
}

// Perm returns a random permutation of [0,n).
func (d *Dice) Perm(n int) []int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Perm(n)
}
