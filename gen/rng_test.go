package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionedRNG_SameSeedSameStreams(t *testing.T) {
	a := NewPartitionedRNG(42)
	b := NewPartitionedRNG(42)
	for _, sub := range []string{SubsystemTraffic, SubsystemEngagement, SubsystemPacing} {
		ra, rb := a.ForSubsystem(sub), b.ForSubsystem(sub)
		for i := 0; i < 100; i++ {
			assert.Equal(t, ra.Int63(), rb.Int63(), "subsystem %s diverged at draw %d", sub, i)
		}
	}
}

func TestPartitionedRNG_SubsystemsAreIsolated(t *testing.T) {
	p := NewPartitionedRNG(42)
	traffic := p.ForSubsystem(SubsystemTraffic)
	engagement := p.ForSubsystem(SubsystemEngagement)

	same := true
	for i := 0; i < 10; i++ {
		if traffic.Int63() != engagement.Int63() {
			same = false
			break
		}
	}
	assert.False(t, same, "traffic and engagement streams should differ")
}

func TestPartitionedRNG_CachesStreams(t *testing.T) {
	p := NewPartitionedRNG(7)
	assert.Same(t, p.ForSubsystem(SubsystemPacing), p.ForSubsystem(SubsystemPacing))
	assert.Equal(t, int64(7), p.Seed())
}
