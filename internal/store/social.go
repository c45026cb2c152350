package store

import (
	"math"

	"github.com/oceanguardio/oceanguard/internal/domain"
)

// SentimentBreakdown holds per-category percentages of the social
// collection. Each percentage is rounded independently, so the three values
// sum to 100 ± a small rounding error.
type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// SocialStore is the canonical collection of social-media posts. Posts are
// immutable once created and never deleted.
type SocialStore struct {
	posts     []domain.SocialPost
	listeners []func()
}

// NewSocialStore creates an empty social store.
func NewSocialStore() *SocialStore {
	return &SocialStore{}
}

// OnChange registers a listener invoked once after every mutation.
func (s *SocialStore) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *SocialStore) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}

// Add inserts a new post from a draft, assigning the next integer id and
// prepending. Listeners fire once per call.
func (s *SocialStore) Add(draft domain.PostDraft) domain.SocialPost {
	post := domain.SocialPost{
		ID:         s.nextID(),
		Username:   draft.Username,
		Content:    draft.Content,
		Timestamp:  clockNow(),
		Sentiment:  draft.Sentiment,
		Platform:   draft.Platform,
		Engagement: draft.Engagement,
		Verified:   draft.Verified,
	}

	s.posts = append([]domain.SocialPost{post}, s.posts...)
	s.notify()
	return post
}

// Load replaces the store contents with pre-built posts for startup
// hydration. Listeners fire once.
func (s *SocialStore) Load(posts []domain.SocialPost) {
	s.posts = append([]domain.SocialPost(nil), posts...)
	s.notify()
}

// List returns a newest-first copy of the collection.
func (s *SocialStore) List() []domain.SocialPost {
	return append([]domain.SocialPost(nil), s.posts...)
}

// Len returns the number of posts in the store.
func (s *SocialStore) Len() int {
	return len(s.posts)
}

// Breakdown computes the sentiment percentages of the collection. An empty
// collection yields all zeros rather than dividing by zero.
func (s *SocialStore) Breakdown() SentimentBreakdown {
	total := len(s.posts)
	if total == 0 {
		return SentimentBreakdown{}
	}

	var positive, neutral, negative int
	for _, p := range s.posts {
		switch p.Sentiment {
		case domain.SentimentPositive:
			positive++
		case domain.SentimentNegative:
			negative++
		default:
			neutral++
		}
	}

	return SentimentBreakdown{
		Positive: roundPercent(positive, total),
		Neutral:  roundPercent(neutral, total),
		Negative: roundPercent(negative, total),
	}
}

// TotalEngagement sums the engagement counts across all posts.
func (s *SocialStore) TotalEngagement() int {
	sum := 0
	for _, p := range s.posts {
		sum += p.Engagement
	}
	return sum
}

func (s *SocialStore) nextID() int {
	maxID := 0
	for _, p := range s.posts {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

func roundPercent(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}
