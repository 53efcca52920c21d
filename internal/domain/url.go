package domain

import (
	"net/url"
	"strings"
)

// CanonicalURL validates raw and returns its canonical form. Only absolute
// http and https URLs with a host are accepted. Canonicalization lowercases
// the scheme and host and strips the fragment; path, query and everything
// else pass through untouched so that two saves of the same link always
// collide on the same string. The boolean is false for anything unusable.
func CanonicalURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", false
	}
	if u.Host == "" {
		return "", false
	}
	u.Scheme = scheme
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	return u.String(), true
}

// HostTitle derives a display title from a URL for content that arrived
// without one. It is the bare hostname; if the URL cannot be parsed the raw
// string itself is returned so the record never ends up blank.
func HostTitle(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}
	return u.Hostname()
}
