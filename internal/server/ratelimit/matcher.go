package ratelimit

import (
	"strings"
)

// unlimited is returned for routes that are never limited.
var unlimited = EndpointLimit{}

// MatchEndpoint returns the limit of the route or nil when the default limit
// applies. Exact paths win over prefixes; among prefixes the longest wins.
func MatchEndpoint(method, path string, limits []EndpointLimit) *EndpointLimit {
	if method == "GET" && path == "/health" {
		return &unlimited
	}

	var best *EndpointLimit
	for i := range limits {
		l := &limits[i]
		if l.Method != method {
			continue
		}
		if l.Path == path {
			return l
		}
		if strings.HasSuffix(l.Path, "/") && strings.HasPrefix(path, l.Path) {
			if best == nil || len(l.Path) > len(best.Path) {
				best = l
			}
		}
	}
	return best
}
