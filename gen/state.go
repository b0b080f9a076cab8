package gen

import (
	"math/rand"
	"time"
)

// commentTimeLayout is the human-facing timestamp shown next to comments
// on the page and in the comment usage log.
const commentTimeLayout = "2006-01-02 15:04"

// CommentEntry is one rendered comment. Entries are only ever appended.
type CommentEntry struct {
	DisplayTime string
	Handle      string
	Text        string
}

// EngagementState is the cumulative simulated audience interaction: four
// monotonically non-decreasing counters plus the ordered comment list.
// Invariant: CommentCount == len(Comments) at all times.
//
// The scheduler is the sole owner; mutation happens only inside ApplyEvent,
// between ticks.
type EngagementState struct {
	Likes        int
	Bookmarks    int
	Shares       int
	CommentCount int
	Comments     []CommentEntry
}

// NewEngagementState returns an empty state.
func NewEngagementState() *EngagementState {
	return &EngagementState{Comments: make([]CommentEntry, 0)}
}

// Delta reports what one tick changed.
type Delta struct {
	Liked      bool
	Bookmarked bool
	Shared     bool
	// Comment is the appended entry when the comment trial fired, nil
	// otherwise.
	Comment *CommentEntry
}

// ApplyEvent runs the four independent Bernoulli trials for one tick and
// mutates the state accordingly. The draw order is fixed (like, bookmark,
// share, comment) so that a seeded run is reproducible. When the comment
// trial fires, one pool entry is drawn uniformly, stamped with now and a
// fresh handle, and appended.
//
// pool must be non-empty; the provider guarantees that by falling back to
// the default pool.
func (s *EngagementState) ApplyEvent(rng *rand.Rand, probs Probabilities, pool []string, now time.Time) Delta {
	var d Delta
	if rng.Float64() < probs.Like {
		s.Likes++
		d.Liked = true
	}
	if rng.Float64() < probs.Bookmark {
		s.Bookmarks++
		d.Bookmarked = true
	}
	if rng.Float64() < probs.Share {
		s.Shares++
		d.Shared = true
	}
	if rng.Float64() < probs.Comment {
		entry := CommentEntry{
			DisplayTime: now.Format(commentTimeLayout),
			Handle:      GenerateHandle(rng),
			Text:        pool[rng.Intn(len(pool))],
		}
		s.Comments = append(s.Comments, entry)
		s.CommentCount++
		d.Comment = &s.Comments[len(s.Comments)-1]
	}
	return d
}
