package web

import (
	"strings"

	"blox/internal/domain"
)

// embedPayload is the body of POST /api/embed and the fields of the
// editor form.
type embedPayload struct {
	URL      string `json:"url" form:"url"`
	Platform string `json:"platform" form:"platform"`
	Content  string `json:"-" form:"content"`
}

// ParsePlatformHint maps the platform field of a request to a hint.
// Empty and "auto" mean auto-detect. ok is false for a key that names
// no platform.
func ParsePlatformHint(key string) (hint domain.Platform, ok bool) {
	key = strings.TrimSpace(key)
	if key == "" || strings.EqualFold(key, "auto") {
		return domain.PlatformNone, true
	}
	return domain.ParsePlatform(key)
}

// appendEmbed inserts markup at the end of the document, the way the
// editor inserts at a collapsed cursor after the last block.
func appendEmbed(content, markup string) string {
	if content == "" {
		return markup
	}
	return content + "\n" + markup
}
