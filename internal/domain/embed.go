package domain

// ErrorKind classifies why an embed could not be produced.
type ErrorKind uint8

const (
	KindNone ErrorKind = iota
	KindUnrecognizedPlatform
	KindURLPatternMismatch
	KindExtractionFailed
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnrecognizedPlatform:
		return "UnrecognizedPlatform"
	case KindURLPatternMismatch:
		return "UrlPatternMismatch"
	case KindExtractionFailed:
		return "ExtractionFailed"
	default:
		return ""
	}
}

// MarshalText encodes the kind by name.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Err maps the kind to its sentinel error, or nil for KindNone.
func (k ErrorKind) Err() error {
	switch k {
	case KindUnrecognizedPlatform:
		return ErrUnrecognizedPlatform
	case KindURLPatternMismatch:
		return ErrURLPatternMismatch
	case KindExtractionFailed:
		return ErrExtractionFailed
	default:
		return nil
	}
}

// EmbedRequest is a URL submitted from the embed dialog.
// PlatformHint is PlatformNone when the user asked for auto-detection.
type EmbedRequest struct {
	URL          string
	PlatformHint Platform
}

// EmbedResult is the outcome of one generation. When OK is false only
// Kind is meaningful (Platform is kept when it was known).
type EmbedResult struct {
	OK       bool
	HTML     string
	Platform Platform
	Kind     ErrorKind
}

// Succeeded builds a successful result.
func Succeeded(p Platform, html string) EmbedResult {
	return EmbedResult{OK: true, HTML: html, Platform: p}
}

// Failed builds a failed result.
func Failed(p Platform, kind ErrorKind) EmbedResult {
	return EmbedResult{Platform: p, Kind: kind}
}

// Err returns nil on success and the sentinel for Kind otherwise.
func (r EmbedResult) Err() error {
	if r.OK {
		return nil
	}
	return r.Kind.Err()
}
