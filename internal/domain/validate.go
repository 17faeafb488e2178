package domain

import (
	"net/url"
	"strings"
)

// CleanName trims free-text input. Callers must reject an empty result before
// it reaches any store operation.
func CleanName(name string) string {
	return strings.TrimSpace(name)
}

// IsYouTubeLink reports whether raw is a URL this app can embed. Links that
// fail this check are kept in the document but rendered as "invalid link".
func IsYouTubeLink(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if u.Path == "/watch" {
			return u.Query().Get("v") != ""
		}
		return strings.HasPrefix(u.Path, "/embed/") || strings.HasPrefix(u.Path, "/shorts/")
	case "youtu.be":
		return len(strings.Trim(u.Path, "/")) > 0
	}
	return false
}

// AddLink appends a trimmed link to links unless it is empty or already
// present. Duplicate links are silently dropped, matching the planner's
// link-manager behavior.
func AddLink(links []string, raw string) []string {
	link := strings.TrimSpace(raw)
	if link == "" {
		return links
	}
	for _, l := range links {
		if l == link {
			return links
		}
	}
	out := make([]string, len(links), len(links)+1)
	copy(out, links)
	return append(out, link)
}
