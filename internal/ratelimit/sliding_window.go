package ratelimit

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"mapa-astral-api/internal/interfaces"
	"mapa-astral-api/internal/metrics"
)

// Defaults for the mapa-astral endpoint.
const (
	DefaultMaxRequests = 10
	DefaultWindow      = 60 * time.Second
)

// Ensure SlidingWindow implements interfaces.RateLimiter
var _ interfaces.RateLimiter = (*SlidingWindow)(nil)

// SlidingWindow admits at most maxRequests per client identity within a
// true sliding window: a denial does not reset the window, it clears one
// recorded timestamp at a time as they age out. Timestamps are pruned
// lazily on each check, never swept proactively. State is per process; each
// instance enforces its own limit under horizontal scaling.
type SlidingWindow struct {
	maxRequests int
	window      time.Duration
	logger      *zap.Logger

	mu      sync.Mutex
	windows map[string][]time.Time

	now func() time.Time
}

// NewSlidingWindow creates a limiter. Non-positive arguments fall back to
// the defaults.
func NewSlidingWindow(maxRequests int, window time.Duration, logger *zap.Logger) *SlidingWindow {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}

	return &SlidingWindow{
		maxRequests: maxRequests,
		window:      window,
		logger:      logger,
		windows:     make(map[string][]time.Time),
		now:         time.Now,
	}
}

// Allow prunes timestamps older than the window for clientID, then admits
// and records the request if the remaining count is under the limit. Denied
// requests are not recorded.
func (s *SlidingWindow) Allow(clientID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-s.window)

	recorded := s.windows[clientID]
	kept := recorded[:0]
	for _, ts := range recorded {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= s.maxRequests {
		s.windows[clientID] = kept
		metrics.RateLimitDenials.Inc()
		s.logger.Debug("Rate limit exceeded",
			zap.String("client_id", clientID),
			zap.Int("recorded", len(kept)))
		return false
	}

	s.windows[clientID] = append(kept, now)
	metrics.RateLimitClients.Set(float64(len(s.windows)))
	return true
}

// ActiveClients returns the number of client identities currently tracked
func (s *SlidingWindow) ActiveClients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}

// Reset drops all recorded windows
func (s *SlidingWindow) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows = make(map[string][]time.Time)
	metrics.RateLimitClients.Set(0)
}
