// Package domain contains the core entities shared by the embed engine
// and the hosts that drive it.
package domain

import "strings"

// Platform identifies a supported social platform. The set is closed;
// the zero value PlatformNone means "no platform".
type Platform uint8

const (
	PlatformNone Platform = iota
	PlatformInstagram
	PlatformTwitter
	PlatformYouTube
	PlatformTikTok
	PlatformVimeo
	PlatformFacebook
	PlatformLinkedIn

	platformEnd
)

var platformKeys = [...]string{
	PlatformNone:      "",
	PlatformInstagram: "instagram",
	PlatformTwitter:   "twitter",
	PlatformYouTube:   "youtube",
	PlatformTikTok:    "tiktok",
	PlatformVimeo:     "vimeo",
	PlatformFacebook:  "facebook",
	PlatformLinkedIn:  "linkedin",
}

// Platforms returns every supported platform in declaration order.
func Platforms() []Platform {
	out := make([]Platform, 0, platformEnd-1)
	for p := PlatformNone + 1; p < platformEnd; p++ {
		out = append(out, p)
	}
	return out
}

// String returns the platform key ("youtube", ...), or "" for none.
func (p Platform) String() string {
	if !p.Valid() {
		return ""
	}
	return platformKeys[p]
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	return p > PlatformNone && p < platformEnd
}

// ParsePlatform resolves a key, case-insensitively. "x" is accepted as
// an alias for twitter.
func ParsePlatform(key string) (Platform, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "x" {
		return PlatformTwitter, true
	}
	for p := PlatformNone + 1; p < platformEnd; p++ {
		if platformKeys[p] == key {
			return p, true
		}
	}
	return PlatformNone, false
}

// MarshalText encodes the platform as its key.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText accepts a key; the empty string decodes to PlatformNone.
func (p *Platform) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*p = PlatformNone
		return nil
	}
	parsed, ok := ParsePlatform(string(text))
	if !ok {
		return ErrUnrecognizedPlatform
	}
	*p = parsed
	return nil
}

// PlatformRule is the UI-facing description of a platform. The compiled
// pattern lives with the matcher; this is what menus and dialogs need.
type PlatformRule struct {
	Platform    Platform
	DisplayName string
	IconID      string
	// Placeholder is an example URL shown in the embed dialog.
	Placeholder string
}

// Key is the rule's symbolic identifier.
func (r PlatformRule) Key() string {
	return r.Platform.String()
}

// Tooltip is the toolbar hint for the platform's button.
func (r PlatformRule) Tooltip() string {
	return "Insert " + r.DisplayName + " Embed"
}
