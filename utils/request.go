package utils

import (
	"net"
	"net/http"
	"strings"
)

// GetUserAgent returns the User-Agent string from the request
func GetUserAgent(r *http.Request) string {
	return r.Header.Get("User-Agent")
}

// GetIP returns the client address. trustedHops is the number of proxies in
// front of the server; each appends one X-Forwarded-For entry, so the entry
// trustedHops from the right is the one the outermost proxy saw. Entries to
// its left come from the client and are ignored. With no trusted proxies,
// or a header too short to have passed through all of them, RemoteAddr is
// used.
func GetIP(r *http.Request, trustedHops int) string {
	if trustedHops > 0 {
		if hops := forwardedFor(r); len(hops) >= trustedHops {
			return hops[len(hops)-trustedHops]
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func forwardedFor(r *http.Request) []string {
	var hops []string
	for _, v := range r.Header.Values("X-Forwarded-For") {
		for _, h := range strings.Split(v, ",") {
			if h = strings.TrimSpace(h); h != "" {
				hops = append(hops, h)
			}
		}
	}
	return hops
}
