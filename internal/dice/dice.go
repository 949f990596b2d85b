package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

// Roller is the randomness source behind every outcome draw
type Roller interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64

	// Intn returns a value in [0, n). n must be greater than zero.
	Intn(n int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible seasons
	Seed int64
}

// RandomRoller is the production Roller backed by a seeded math/rand source
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = newSeed()
	}

	return &RandomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a uniform value in [0.0, 1.0)
func (r *RandomRoller) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

// Intn returns a uniform value in [0, n)
func (r *RandomRoller) Intn(n int) int {
	if n < 1 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// newSeed reads a seed from crypto/rand, falling back to the clock
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Chance reports true with probability p
func Chance(r Roller, p float64) bool {
	return r.Float64() < p
}

// Pick returns a uniformly chosen element, or the zero value for an empty slice
func Pick[T any](r Roller, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.Intn(len(items))]
}

// PickTwo returns two distinct elements. items must hold at least two values.
func PickTwo[T any](r Roller, items []T) (T, T) {
	i := r.Intn(len(items))
	j := r.Intn(len(items) - 1)
	if j >= i {
		j++
	}
	return items[i], items[j]
}

// Shuffle returns a shuffled copy of items
func Shuffle[T any](r Roller, items []T) []T {
	out := append([]T(nil), items...)
	for i := len(out) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
