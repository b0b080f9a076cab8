package gen

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Metrics accumulates run statistics for the end-of-run summary.
type Metrics struct {
	Ticks         int
	Likes         int
	Bookmarks     int
	Shares        int
	CommentsFired int
	TotalSleep    time.Duration
	StartedAt     time.Time
}

// NewMetrics returns a Metrics stamped with the current wall clock.
func NewMetrics() *Metrics {
	return &Metrics{StartedAt: time.Now()}
}

// Record folds one tick's delta into the totals.
func (m *Metrics) Record(d Delta) {
	m.Ticks++
	if d.Liked {
		m.Likes++
	}
	if d.Bookmarked {
		m.Bookmarks++
	}
	if d.Shared {
		m.Shares++
	}
	if d.Comment != nil {
		m.CommentsFired++
	}
}

// Log prints the run summary.
func (m *Metrics) Log() {
	logrus.Infof("run summary: %d ticks in %s (slept %s)",
		m.Ticks, time.Since(m.StartedAt).Round(time.Second), m.TotalSleep)
	logrus.Infof("engagement generated: %d likes, %d bookmarks, %d shares, %d comments",
		m.Likes, m.Bookmarks, m.Shares, m.CommentsFired)
}
