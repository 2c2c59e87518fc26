package ratelimit

import (
	"strings"
	"time"
)

// EndpointLimit is the rate limit of one route. Paths ending in "/" match by
// prefix.
type EndpointLimit struct {
	Method string
	Path   string
	Limit  int           // requests per window, 0 means unlimited
	Window time.Duration // refill window
	Burst  int           // bucket capacity, defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Allowlist       map[string]bool
	Denylist        map[string]bool
	Endpoints       []EndpointLimit
}

// DefaultEndpoints returns the per-route limits of the matching API.
// Routes that score every open job are more expensive than plain reads.
func DefaultEndpoints() []EndpointLimit {
	return []EndpointLimit{
		{Method: "POST", Path: "/seed-data", Limit: 5, Window: time.Hour, Burst: 1},

		{Method: "POST", Path: "/assessments/", Limit: 30, Window: time.Minute, Burst: 5},
		{Method: "POST", Path: "/webhooks/assessment/", Limit: 60, Window: time.Minute, Burst: 10},
		{Method: "POST", Path: "/jobs/", Limit: 30, Window: time.Minute, Burst: 5},
		{Method: "POST", Path: "/users", Limit: 100, Window: time.Minute, Burst: 10},

		{Method: "GET", Path: "/users/", Limit: 300, Window: time.Minute, Burst: 30},
	}
}

// ParseIPList parses a comma separated list of client IPs.
func ParseIPList(list string) map[string]bool {
	out := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			out[ip] = true
		}
	}
	return out
}
