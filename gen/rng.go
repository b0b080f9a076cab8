package gen

import (
	"hash/fnv"
	"math/rand"
)

// RNG subsystem names. Each subsystem owns an isolated random stream so
// that, e.g., changing how many draws traffic generation makes does not
// perturb the engagement trials of a seeded run.
const (
	// SubsystemTraffic drives visit synthesis: source address, user agent,
	// referrer and comment handles.
	SubsystemTraffic = "traffic"

	// SubsystemEngagement drives the per-tick Bernoulli trials and the
	// comment pool draw.
	SubsystemEngagement = "engagement"

	// SubsystemPacing drives the inter-tick wait sampling.
	SubsystemPacing = "pacing"
)

// PartitionedRNG hands out deterministically-seeded RNG streams per
// subsystem. Two runs with the same master seed and configuration produce
// bit-for-bit identical output.
//
// Thread-safety: NOT thread-safe. The scheduler is the only caller.
type PartitionedRNG struct {
	seed    int64
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:    seed,
		streams: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the RNG stream for the named subsystem, creating it
// on first use. The same name always returns the same *rand.Rand instance.
// Derivation: masterSeed XOR fnv1a64(name).
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.streams[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.seed ^ fnv1a64(name)))
	p.streams[name] = rng
	return rng
}

// Seed returns the master seed this PartitionedRNG was created with.
func (p *PartitionedRNG) Seed() int64 {
	return p.seed
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
