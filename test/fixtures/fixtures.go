// Package fixtures provides URLs and documents shared by tests.
package fixtures

// PlatformURL is a URL known to belong to a platform.
type PlatformURL struct {
	Name     string
	Platform string
	URL      string
	// ID is the identifier that must show up in the rendered markup;
	// empty when the platform embeds the whole URL instead.
	ID string
}

// ValidURLs returns at least one realistic URL per platform and URL shape.
func ValidURLs() []PlatformURL {
	return []PlatformURL{
		{Name: "instagram post", Platform: "instagram", URL: "https://www.instagram.com/p/CxYz_12-a/", ID: "CxYz_12-a"},
		{Name: "instagram reel", Platform: "instagram", URL: "https://www.instagram.com/reel/ABC123/", ID: "ABC123"},
		{Name: "instagram tv", Platform: "instagram", URL: "instagram.com/tv/B9q-xyz", ID: "B9q-xyz"},
		{Name: "twitter", Platform: "twitter", URL: "https://twitter.com/jack/status/20", ID: "20"},
		{Name: "x", Platform: "twitter", URL: "https://x.com/acgfbr/status/2006396789411172607?s=20", ID: "2006396789411172607"},
		{Name: "youtube watch", Platform: "youtube", URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", ID: "dQw4w9WgXcQ"},
		{Name: "youtube short link", Platform: "youtube", URL: "https://youtu.be/dQw4w9WgXcQ?t=42", ID: "dQw4w9WgXcQ"},
		{Name: "youtube embed", Platform: "youtube", URL: "https://www.youtube.com/embed/a1_b2-C3", ID: "a1_b2-C3"},
		{Name: "tiktok", Platform: "tiktok", URL: "https://www.tiktok.com/@scout2015/video/6718335390845095173", ID: "6718335390845095173"},
		{Name: "vimeo", Platform: "vimeo", URL: "https://vimeo.com/123456789", ID: "123456789"},
		{Name: "facebook share", Platform: "facebook", URL: "https://www.facebook.com/share/v/1AbCdEf/"},
		{Name: "linkedin post", Platform: "linkedin", URL: "https://www.linkedin.com/posts/someone-123"},
	}
}

// UnsupportedURLs match none of the platform rules.
func UnsupportedURLs() []string {
	return []string{
		"",
		"not-a-url",
		"https://google.com",
		"https://twitter.com/jack",
		"https://twitter.com/jack/status/abc",
		"https://www.instagram.com/explore/",
		"https://www.tiktok.com/@someone",
		"https://vimeo.com/channels/staffpicks",
		"https://www.facebook.com/zuck",
		"https://www.linkedin.com/in/someone",
		"https://www.youtube.com/@channel",
	}
}

// EditorDocument is the starting content of the editor page.
func EditorDocument() string {
	return "<p>Hello World!</p>"
}
