package interfaces

//go:generate mockgen -package=mock -source=ratelimit.go -destination=mock/ratelimit.go

// RateLimiter guards the expensive endpoint with a per-client sliding
// window. Client identity is an opaque string; unknown identities are a
// valid (coarse) bucket.
type RateLimiter interface {
	Allow(clientID string) bool
	ActiveClients() int
	Reset()
}
