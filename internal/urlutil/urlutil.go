// Package urlutil normalizes user-entered URLs before they are stored.
package urlutil

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var (
	// ErrEmptyURL is returned when the input is empty or whitespace.
	ErrEmptyURL = errors.New("url is empty")
	// ErrBadScheme is returned for schemes other than http/https.
	ErrBadScheme = errors.New("unsupported url scheme")
	// ErrNoHost is returned when the URL has no host component.
	ErrNoHost = errors.New("url has no host")
)

// schemeRe matches a leading URI scheme like "https://" or "ftp://".
var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// Normalize trims the input and defaults the scheme to https when missing,
// so "example.com" becomes "https://example.com". Only http and https URLs
// with a host are accepted.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyURL
	}

	if !schemeRe.MatchString(raw) {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrBadScheme
	}
	if u.Host == "" {
		return "", ErrNoHost
	}

	return u.String(), nil
}

// Host returns the host component of a URL, or "" when it cannot be parsed.
// Used as the default bookmark title.
func Host(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
