package embed

import (
	"strings"

	"blox/internal/domain"
)

// Generator renders embed markup. The zero value is not useful; use
// NewGenerator or the package-level Generate.
type Generator struct {
	strictLinkedIn bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithStrictLinkedIn makes a LinkedIn URL without a ugcPost-<digits>
// token fail with ExtractionFailed instead of producing an iframe with
// an empty post id.
func WithStrictLinkedIn() Option {
	return func(g *Generator) { g.strictLinkedIn = true }
}

// NewGenerator returns a Generator with the given options applied.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate renders rawURL for platform p with the default generator.
func Generate(rawURL string, p domain.Platform) domain.EmbedResult {
	return defaultGenerator.Generate(rawURL, p)
}

// Generate validates rawURL against p, extracts its identifier and
// renders p's template. Failures are reported in the result, never
// as a panic. Identical inputs give byte-identical output.
func (g *Generator) Generate(rawURL string, p domain.Platform) domain.EmbedResult {
	r, ok := lookup(p)
	if !ok {
		return domain.Failed(domain.PlatformNone, domain.KindUnrecognizedPlatform)
	}

	m := r.pattern.FindStringSubmatchIndex(rawURL)
	if m == nil {
		return domain.Failed(p, domain.KindURLPatternMismatch)
	}
	group := func(n int) string {
		if m[2*n] < 0 {
			return ""
		}
		return rawURL[m[2*n]:m[2*n+1]]
	}
	extractionFailed := domain.Failed(p, domain.KindExtractionFailed)

	var html string
	switch p {
	case domain.PlatformInstagram:
		postType, id := group(1), group(2)
		if id == "" {
			return extractionFailed
		}
		html = instagramMarkup(postType, id)

	case domain.PlatformTwitter:
		if group(3) == "" {
			return extractionFailed
		}
		link := rawURL
		if group(1) == "x.com" {
			link = rawURL[:m[2]] + "twitter.com" + rawURL[m[3]:]
		}
		html = twitterMarkup(withScheme(link))

	case domain.PlatformYouTube:
		id := group(1)
		if id == "" {
			return extractionFailed
		}
		html = youTubeMarkup(id)

	case domain.PlatformTikTok:
		id := group(2)
		if id == "" {
			return extractionFailed
		}
		html = tikTokMarkup(rawURL, id)

	case domain.PlatformVimeo:
		id := group(1)
		if id == "" {
			return extractionFailed
		}
		html = vimeoMarkup(id)

	case domain.PlatformFacebook:
		html = facebookMarkup(rawURL)

	case domain.PlatformLinkedIn:
		id := linkedInPostID(rawURL)
		if id == "" && g.strictLinkedIn {
			return extractionFailed
		}
		html = linkedInMarkup(id)

	default:
		return domain.Failed(domain.PlatformNone, domain.KindUnrecognizedPlatform)
	}

	return domain.Succeeded(p, html)
}

// linkedInPostID returns the digits of a ugcPost-<digits> token, or "".
func linkedInPostID(rawURL string) string {
	m := linkedInPostPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// withScheme makes a schemeless link absolute.
func withScheme(link string) string {
	lower := strings.ToLower(link)
	if strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://") {
		return link
	}
	return "https://" + link
}
