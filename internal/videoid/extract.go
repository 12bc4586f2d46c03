// Package videoid turns the many shapes a YouTube video reference can
// take (bare ID, youtu.be short link, watch/shorts/embed URLs) into the
// canonical 11-character video ID.
package videoid

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnrecognized means the input is neither a bare video ID nor
	// any known YouTube URL shape.
	ErrUnrecognized = errors.New("not a recognizable YouTube video reference")

	// ErrMissingVideoParam means a /watch URL had no v query parameter.
	ErrMissingVideoParam = errors.New("watch URL is missing the v parameter")
)

const idLength = 11

var watchHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
}

var pathPrefixes = []string{"/shorts/", "/embed/", "/v/"}

// Extract returns the canonical video ID embedded in raw. A string that
// already looks like a bare ID (11 characters, no space or slash) is
// returned unchanged.
func Extract(raw string) (string, error) {
	if utf8.RuneCountInString(raw) == idLength && !strings.ContainsAny(raw, " /") {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", ErrUnrecognized
	}

	host := strings.ToLower(u.Hostname())

	if host == "youtu.be" {
		if id := strings.TrimPrefix(u.Path, "/"); id != "" {
			return id, nil
		}
		return "", ErrUnrecognized
	}

	if watchHosts[host] {
		if u.Path == "/watch" {
			id := u.Query().Get("v")
			if id == "" {
				return "", ErrMissingVideoParam
			}
			return id, nil
		}
		for _, prefix := range pathPrefixes {
			if strings.HasPrefix(u.Path, prefix) {
				seg, _, _ := strings.Cut(strings.TrimPrefix(u.Path, prefix), "/")
				if seg == "" {
					return "", ErrUnrecognized
				}
				return seg, nil
			}
		}
	}

	return "", ErrUnrecognized
}
