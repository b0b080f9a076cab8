package gen

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// DisplayZone is the fixed UTC+8 zone all timestamps are rendered in.
var DisplayZone = time.FixedZone("CST", 8*60*60)

// Clock supplies the current instant. Injectable so tests can drive
// simulated time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().In(DisplayZone)
}

// Sleeper suspends the loop between ticks. The real implementation wakes
// early when ctx is cancelled; cancellation is only ever observed between
// ticks, so a started tick always runs to completion.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration)
}

type realSleeper struct{}

func (realSleeper) Sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Scheduler is the single control loop: it fabricates one visit per tick,
// persists its log line, runs the engagement trials, and re-renders the
// site artifact. It is the sole owner and mutator of the EngagementState.
type Scheduler struct {
	cfg        *Config
	state      *EngagementState
	pool       []string
	rng        *PartitionedRNG
	accessLog  *Appender
	commentLog *Appender
	renderer   *SiteRenderer
	imageRel   string

	clock    Clock
	sleeper  Sleeper
	maxTicks int

	Metrics *Metrics
}

// NewScheduler wires a Scheduler with the real clock and sleeper. pool must
// be non-empty (use EffectivePool).
func NewScheduler(cfg *Config, pool []string, rng *PartitionedRNG,
	accessLog, commentLog *Appender, renderer *SiteRenderer, imageRel string, maxTicks int) *Scheduler {
	return &Scheduler{
		cfg:        cfg,
		state:      NewEngagementState(),
		pool:       pool,
		rng:        rng,
		accessLog:  accessLog,
		commentLog: commentLog,
		renderer:   renderer,
		imageRel:   imageRel,
		clock:      realClock{},
		sleeper:    realSleeper{},
		maxTicks:   maxTicks,
		Metrics:    NewMetrics(),
	}
}

// State exposes the engagement state for inspection. Callers must not
// mutate it; the scheduler owns it.
func (s *Scheduler) State() *EngagementState {
	return s.state
}

// Run executes ticks until ctx is cancelled or maxTicks is reached
// (maxTicks <= 0 means run until cancelled). A tick failure is fatal to the
// run: continuing would silently produce a corrupt or absent artifact.
func (s *Scheduler) Run(ctx context.Context) error {
	pacing := s.rng.ForSubsystem(SubsystemPacing)
	for {
		if ctx.Err() != nil {
			return nil
		}
		if s.maxTicks > 0 && s.Metrics.Ticks >= s.maxTicks {
			return nil
		}
		if err := s.tick(); err != nil {
			return err
		}

		wait := s.sampleWait(pacing)
		logrus.Infof("tick %d complete, next visit in %s (~%s)",
			s.Metrics.Ticks, wait, s.clock.Now().Add(wait).Format("15:04:05"))
		s.Metrics.TotalSleep += wait
		s.sleeper.Sleep(ctx, wait)
	}
}

// tick runs one full iteration: capture time, fabricate a visit, append the
// access-log line (before any state mutation, so the audit trail survives a
// later failure), apply the engagement trials, append a fired comment, and
// re-render the artifact.
func (s *Scheduler) tick() error {
	now := s.clock.Now()
	traffic := s.rng.ForSubsystem(SubsystemTraffic)

	visit, err := NewVisit(now, traffic, s.cfg)
	if err != nil {
		return fmt.Errorf("generating visit: %w", err)
	}
	if err := s.accessLog.Append(visit.AccessLogLine(s.cfg.URLPath, s.cfg.ResponseBytes)); err != nil {
		return err
	}

	delta := s.state.ApplyEvent(s.rng.ForSubsystem(SubsystemEngagement), s.cfg.Probabilities, s.pool, now)
	if delta.Comment != nil {
		line := fmt.Sprintf("[%s] %s: %s", delta.Comment.DisplayTime, delta.Comment.Handle, delta.Comment.Text)
		if err := s.commentLog.Append(line); err != nil {
			return err
		}
	}

	if err := s.renderer.Render(s.cfg, s.imageRel, s.state); err != nil {
		return err
	}

	s.Metrics.Record(delta)
	logrus.Debugf("visit from %s (likes=%d bookmarks=%d shares=%d comments=%d)",
		visit.SourceAddress, s.state.Likes, s.state.Bookmarks, s.state.Shares, s.state.CommentCount)
	return nil
}

// sampleWait draws an integer number of seconds uniformly in
// [MinWaitS, MaxWaitS], inclusive on both ends.
func (s *Scheduler) sampleWait(rng *rand.Rand) time.Duration {
	span := s.cfg.MaxWaitS - s.cfg.MinWaitS + 1
	return time.Duration(s.cfg.MinWaitS+rng.Intn(span)) * time.Second
}
