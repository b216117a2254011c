package usecases

import (
	"context"
	"strings"
	"time"

	"blox/internal/domain"
	"blox/internal/embed"
	"blox/pkg/log"
)

// Notifier shows short-lived messages to the user. Hosts implement it
// with whatever they have: a toast, a status line, stderr.
type Notifier interface {
	Notify(ctx context.Context, notice domain.Notice)
}

// EmbedGenerator renders markup for a URL already known to match p.
type EmbedGenerator interface {
	Generate(rawURL string, p domain.Platform) domain.EmbedResult
}

const (
	errorTimeout   = 3 * time.Second
	successTimeout = 2 * time.Second
)

// InsertEmbedUseCase is the submit step of the embed dialog: resolve the
// platform from the hint or the URL, validate, generate, and tell the
// user how it went.
type InsertEmbedUseCase struct {
	generator EmbedGenerator
}

// NewInsertEmbedUseCase creates a new InsertEmbedUseCase.
func NewInsertEmbedUseCase(generator EmbedGenerator) *InsertEmbedUseCase {
	return &InsertEmbedUseCase{generator: generator}
}

// Execute runs the submit flow. The result is returned whether or not it
// succeeded; notifier receives exactly one notice either way.
func (uc *InsertEmbedUseCase) Execute(ctx context.Context, req domain.EmbedRequest, notifier Notifier) domain.EmbedResult {
	url := strings.TrimSpace(req.URL)
	res := uc.resolve(url, req.PlatformHint)

	if res.OK {
		log.InfoCtx(ctx, "embed generated", "platform", res.Platform.String(), "hinted", req.PlatformHint.Valid())
	} else {
		log.WarnCtx(ctx, "embed rejected",
			"url", url,
			"hint", req.PlatformHint.String(),
			"platform", res.Platform.String(),
			"kind", res.Kind.String(),
		)
	}

	notifier.Notify(ctx, NoticeFor(res))
	return res
}

func (uc *InsertEmbedUseCase) resolve(url string, hint domain.Platform) domain.EmbedResult {
	p := hint
	if p == domain.PlatformNone {
		detected, ok := embed.DetectPlatform(url)
		if !ok {
			return domain.Failed(domain.PlatformNone, domain.KindUnrecognizedPlatform)
		}
		p = detected
	}
	if !p.Valid() {
		return domain.Failed(domain.PlatformNone, domain.KindUnrecognizedPlatform)
	}
	if !embed.Validate(url, p) {
		return domain.Failed(p, domain.KindURLPatternMismatch)
	}
	return uc.generator.Generate(url, p)
}

// NoticeFor turns a result into the message shown to the user.
func NoticeFor(res domain.EmbedResult) domain.Notice {
	name := "Social Media"
	if rule, ok := embed.Rule(res.Platform); ok {
		name = rule.DisplayName
	}

	if res.OK {
		return domain.Notice{
			Severity: domain.SeveritySuccess,
			Text:     name + " embed inserted successfully!",
			Timeout:  successTimeout,
		}
	}

	text := "Failed to create embed. Please check the URL."
	switch res.Kind {
	case domain.KindUnrecognizedPlatform:
		text = "Could not detect platform. Please use a valid social media URL."
	case domain.KindURLPatternMismatch:
		text = "Invalid " + name + " URL. Please check the format."
	}
	return domain.Notice{
		Severity: domain.SeverityError,
		Text:     text,
		Timeout:  errorTimeout,
	}
}

// Discard is a Notifier that drops every notice.
var Discard Notifier = discardNotifier{}

type discardNotifier struct{}

func (discardNotifier) Notify(context.Context, domain.Notice) {}
