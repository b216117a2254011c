// Package embed turns social-media URLs into embeddable markup.
//
// Detection walks a fixed, ordered rule table and picks the first rule
// whose pattern matches. Generation re-validates the URL against the
// chosen rule, pulls the identifier out of its capture groups and fills
// a per-platform template. Everything here is pure: no I/O, no shared
// mutable state, safe for concurrent use.
package embed

import (
	"regexp"

	"blox/internal/domain"
)

// prefix is shared by every pattern: optional scheme, optional www.
const prefix = `(?:https?://)?(?:www\.)?`

type rule struct {
	meta    domain.PlatformRule
	pattern *regexp.Regexp
}

// rules is in declaration order; DetectPlatform depends on it.
// Capture groups, per platform:
//
//	instagram  1 post type (p, reel, tv)   2 post id
//	twitter    1 host (twitter.com, x.com) 2 user      3 status id
//	youtube    1 video id
//	tiktok     1 user                      2 video id
//	vimeo      1 video id
//	facebook   1 share id (not used; the whole URL is embedded)
//	linkedin   1 post slug (not used; see linkedInPostID)
var rules = []rule{
	{
		meta: domain.PlatformRule{
			Platform:    domain.PlatformInstagram,
			DisplayName: "Instagram",
			IconID:      "embed",
			Placeholder: "https://www.instagram.com/p/ABC123/",
		},
		pattern: regexp.MustCompile(prefix + `instagram\.com/(p|reel|tv)/([a-zA-Z0-9_-]+)/?`),
	},
	{
		meta: domain.PlatformRule{
			Platform:    domain.PlatformTwitter,
			DisplayName: "X (Twitter)",
			IconID:      "comment",
			Placeholder: "https://twitter.com/username/status/123456",
		},
		pattern: regexp.MustCompile(prefix + `(twitter\.com|x\.com)/([a-zA-Z0-9_]+)/status/(\d+)`),
	},
	{
		meta: domain.PlatformRule{
			Platform:    domain.PlatformYouTube,
			DisplayName: "YouTube",
			IconID:      "embed-page",
			Placeholder: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		pattern: regexp.MustCompile(prefix + `(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]+)`),
	},
	{
		meta: domain.PlatformRule{
			Platform:    domain.PlatformTikTok,
			DisplayName: "TikTok",
			IconID:      "video",
			Placeholder: "https://www.tiktok.com/@username/video/123456",
		},
		pattern: regexp.MustCompile(prefix + `tiktok\.com/@([a-zA-Z0-9_.]+)/video/(\d+)`),
	},
	{
		meta: domain.PlatformRule{
			Platform:    domain.PlatformVimeo,
			DisplayName: "Vimeo",
			IconID:      "embed-page",
			Placeholder: "https://vimeo.com/123456789",
		},
		pattern: regexp.MustCompile(prefix + `vimeo\.com/(\d+)`),
	},
	{
		meta: domain.PlatformRule{
			Platform:    domain.PlatformFacebook,
			DisplayName: "Facebook",
			IconID:      "comment",
			Placeholder: "https://www.facebook.com/share/v/123456",
		},
		pattern: regexp.MustCompile(prefix + `facebook\.com/share/v/([a-zA-Z0-9]+)/?`),
	},
	{
		meta: domain.PlatformRule{
			Platform:    domain.PlatformLinkedIn,
			DisplayName: "LinkedIn",
			IconID:      "comment",
			Placeholder: "https://www.linkedin.com/posts/username-123",
		},
		pattern: regexp.MustCompile(prefix + `linkedin\.com/posts/([a-zA-Z0-9_-]+)`),
	},
}

// linkedInPostPattern is what the embed endpoint needs. It does not
// correspond to the /posts/{slug} shape accepted by detection, so for
// most detected URLs it finds nothing.
var linkedInPostPattern = regexp.MustCompile(`ugcPost-(\d+)`)

func lookup(p domain.Platform) (*rule, bool) {
	for i := range rules {
		if rules[i].meta.Platform == p {
			return &rules[i], true
		}
	}
	return nil, false
}
