package embed

import (
	"fmt"
	"html"
	"net/url"
	"strings"
)

// Templates follow each platform's published embed snippet. Identifiers
// come from restricted character classes; anything taken verbatim from
// the user's URL goes through attr.

const (
	instagramTemplate = `<iframe src="https://www.instagram.com/%s/%s/embed/" width="400" height="500" frameborder="0" scrolling="no" allowtransparency="true" allow="encrypted-media" sandbox="allow-scripts allow-same-origin allow-popups" loading="lazy" style="border: 1px solid #dbdbdb; border-radius: 4px; margin: 10px auto; display: block; max-width: 100%%;"></iframe>`

	twitterTemplate = `<blockquote class="twitter-tweet" data-width="550" style="margin: 10px auto;">
  <a href="%s"></a>
</blockquote>
<script async src="https://platform.twitter.com/widgets.js" charset="utf-8"></script>`

	youTubeTemplate = `<iframe width="560" height="315" src="https://www.youtube.com/embed/%s" frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen loading="lazy" style="margin: 10px auto; display: block; max-width: 100%%;"></iframe>`

	tikTokTemplate = `<blockquote class="tiktok-embed" cite="%[1]s" data-video-id="%[2]s" style="max-width: 605px; min-width: 325px; margin: 10px auto;">
  <section>
    <a target="_blank" href="%[1]s">View on TikTok</a>
  </section>
</blockquote>
<script async src="https://www.tiktok.com/embed.js"></script>`

	vimeoTemplate = `<iframe src="https://player.vimeo.com/video/%s" width="640" height="360" frameborder="0" allow="autoplay; fullscreen; picture-in-picture" allowfullscreen loading="lazy" style="margin: 10px auto; display: block; max-width: 100%%;"></iframe>`

	facebookTemplate = `<iframe src="https://www.facebook.com/plugins/post.php?href=%s&show_text=true&width=500" width="500" height="600" style="border:none; overflow:hidden; margin: 10px auto; display: block; max-width: 100%%;" scrolling="no" frameborder="0" allowfullscreen="true" allow="autoplay; clipboard-write; encrypted-media; picture-in-picture; web-share" loading="lazy"></iframe>`

	linkedInTemplate = `<iframe src="https://www.linkedin.com/embed/feed/update/urn:li:ugcPost:%s?collapsed=1" height="895" width="504" frameborder="0" allowfullscreen="" title="Embedded post"></iframe>`
)

func instagramMarkup(postType, id string) string {
	return fmt.Sprintf(instagramTemplate, postType, id)
}

func twitterMarkup(link string) string {
	return fmt.Sprintf(twitterTemplate, attr(link))
}

func youTubeMarkup(id string) string {
	return fmt.Sprintf(youTubeTemplate, id)
}

func tikTokMarkup(rawURL, id string) string {
	return fmt.Sprintf(tikTokTemplate, attr(rawURL), id)
}

func vimeoMarkup(id string) string {
	return fmt.Sprintf(vimeoTemplate, id)
}

func facebookMarkup(rawURL string) string {
	return fmt.Sprintf(facebookTemplate, encodeURIComponent(rawURL))
}

func linkedInMarkup(postID string) string {
	return fmt.Sprintf(linkedInTemplate, postID)
}

func attr(s string) string {
	return html.EscapeString(s)
}

var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ),
// which is what embed endpoints expect in their href parameter.
func encodeURIComponent(s string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(s))
}
