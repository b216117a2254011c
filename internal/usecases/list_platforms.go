package usecases

import (
	"strings"

	"blox/internal/domain"
	"blox/internal/embed"
)

// Dialog describes the embed dialog for a toolbar button.
type Dialog struct {
	Platform    domain.Platform
	Title       string
	Placeholder string
	// Supported lists every platform by name; only set for auto-detect.
	Supported string
}

// ListPlatformsUseCase feeds the toolbar, the menu and the dialogs.
type ListPlatformsUseCase struct{}

// NewListPlatformsUseCase creates a new ListPlatformsUseCase.
func NewListPlatformsUseCase() *ListPlatformsUseCase {
	return &ListPlatformsUseCase{}
}

// Execute returns one rule per platform, in toolbar order.
func (uc *ListPlatformsUseCase) Execute() []domain.PlatformRule {
	return embed.Rules()
}

// Dialog builds the dialog for hint; PlatformNone gives the auto-detect
// dialog.
func (uc *ListPlatformsUseCase) Dialog(hint domain.Platform) Dialog {
	if rule, ok := embed.Rule(hint); ok {
		return Dialog{
			Platform:    hint,
			Title:       "Insert " + rule.DisplayName + " Embed",
			Placeholder: rule.Placeholder,
		}
	}

	rules := embed.Rules()
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.DisplayName
	}
	return Dialog{
		Title:       "Insert Social Media Embed",
		Placeholder: "Paste any social media URL...",
		Supported:   "Supports: " + strings.Join(names, ", "),
	}
}

// Detect reports which platform rule accepts rawURL, if any.
func (uc *ListPlatformsUseCase) Detect(rawURL string) (domain.PlatformRule, bool) {
	p, ok := embed.DetectPlatform(strings.TrimSpace(rawURL))
	if !ok {
		return domain.PlatformRule{}, false
	}
	return embed.Rule(p)
}
