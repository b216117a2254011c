package embed

import "blox/internal/domain"

// DetectPlatform returns the first platform, in declaration order, whose
// pattern matches rawURL.
func DetectPlatform(rawURL string) (domain.Platform, bool) {
	for i := range rules {
		if rules[i].pattern.MatchString(rawURL) {
			return rules[i].meta.Platform, true
		}
	}
	return domain.PlatformNone, false
}

// Validate reports whether rawURL is accepted by p's pattern. Unknown
// platforms accept nothing.
func Validate(rawURL string, p domain.Platform) bool {
	r, ok := lookup(p)
	if !ok {
		return false
	}
	return r.pattern.MatchString(rawURL)
}

// Rules lists the platform rules in declaration order. The slice is a
// copy; callers may keep or modify it.
func Rules() []domain.PlatformRule {
	out := make([]domain.PlatformRule, len(rules))
	for i := range rules {
		out[i] = rules[i].meta
	}
	return out
}

// Rule returns the rule for p.
func Rule(p domain.Platform) (domain.PlatformRule, bool) {
	r, ok := lookup(p)
	if !ok {
		return domain.PlatformRule{}, false
	}
	return r.meta, true
}
