package web

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"blox/internal/domain"
	"blox/internal/usecases"
	"blox/pkg/log"
	"blox/templates/components"
	"blox/templates/pages"
	"blox/templates/partials"
)

// EditorSettings are the page-level options of the editor.
type EditorSettings struct {
	Title          string
	ScriptSrc      string
	HTMXSrc        string
	InitialContent string
}

// Handlers contains the HTTP handlers for the web application.
type Handlers struct {
	insertEmbed *usecases.InsertEmbedUseCase
	platforms   *usecases.ListPlatformsUseCase
	editor      EditorSettings
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(insertEmbed *usecases.InsertEmbedUseCase, platforms *usecases.ListPlatformsUseCase, editor EditorSettings) *Handlers {
	return &Handlers{
		insertEmbed: insertEmbed,
		platforms:   platforms,
		editor:      editor,
	}
}

// render is a helper to render templ components.
func render(c *fiber.Ctx, component templ.Component) error {
	c.Set("Content-Type", "text/html")
	return adaptor.HTTPHandler(templ.Handler(component))(c)
}

func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

func (h *Handlers) editorData(content string, dialog usecases.Dialog, notices []domain.Notice) pages.EditorData {
	return pages.EditorData{
		Title:     h.editor.Title,
		ScriptSrc: h.editor.ScriptSrc,
		HTMXSrc:   h.editor.HTMXSrc,
		Rules:     h.platforms.Execute(),
		Dialog:    dialog,
		Content:   content,
		Notices:   notices,
	}
}

// Home renders the editor with the auto-detect dialog open.
func (h *Handlers) Home(c *fiber.Ctx) error {
	dialog := h.platforms.Dialog(domain.PlatformNone)
	return render(c, pages.Editor(h.editorData(h.editor.InitialContent, dialog, nil)))
}

// EmbedDialog renders the dialog for a toolbar button. An unknown
// platform falls back to auto-detect.
func (h *Handlers) EmbedDialog(c *fiber.Ctx) error {
	hint, ok := ParsePlatformHint(c.Query("platform"))
	if !ok {
		log.DebugCtx(c.UserContext(), "unknown dialog platform", "platform", c.Query("platform"))
		hint = domain.PlatformNone
	}
	return render(c, partials.Dialog(h.platforms.Dialog(hint)))
}

// SubmitEmbed handles the dialog form. HTMX requests get the document
// partial with the toasts swapped out of band; plain posts get the page.
func (h *Handlers) SubmitEmbed(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var p embedPayload
	if err := c.BodyParser(&p); err != nil {
		log.WarnCtx(ctx, "invalid embed form", "error", err)
		return h.renderError(c, fiber.StatusBadRequest, domain.ErrInvalidRequest)
	}

	toasts := &ToastNotifier{}
	res, hint := h.insert(ctx, "form", p, toasts)

	content := p.Content
	if res.OK {
		content = appendEmbed(content, res.HTML)
	}

	if isHTMX(c) {
		header, err := toasts.TriggerHeader()
		if err != nil {
			log.ErrorCtx(ctx, "encode toast trigger", "error", err)
		} else if header != "" {
			c.Set("HX-Trigger", header)
		}
		return render(c, templ.Join(
			partials.Document(content),
			components.Toasts(toasts.Notices(), true),
		))
	}

	// A failed insert keeps the dialog the user was in.
	dialog := h.platforms.Dialog(domain.PlatformNone)
	if !res.OK {
		dialog = h.platforms.Dialog(hint)
	}
	return render(c, pages.Editor(h.editorData(content, dialog, toasts.Notices())))
}

// insert runs the use case, turning an unknown platform key into the
// same failure a detection miss produces. Entries logged on the way
// carry the surface (form or api) and the raw platform field.
func (h *Handlers) insert(ctx context.Context, surface string, p embedPayload, n usecases.Notifier) (domain.EmbedResult, domain.Platform) {
	ctx = log.WithFields(ctx, "surface", surface, "platform_field", p.Platform)
	hint, ok := ParsePlatformHint(p.Platform)
	if !ok {
		log.WarnCtx(ctx, "unknown platform hint", "platform", p.Platform)
		res := domain.Failed(domain.PlatformNone, domain.KindUnrecognizedPlatform)
		n.Notify(ctx, usecases.NoticeFor(res))
		return res, domain.PlatformNone
	}
	res := h.insertEmbed.Execute(ctx, domain.EmbedRequest{URL: p.URL, PlatformHint: hint}, n)
	return res, hint
}

type platformResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Placeholder string `json:"placeholder"`
	Tooltip     string `json:"tooltip"`
}

func newPlatformResponse(r domain.PlatformRule) platformResponse {
	return platformResponse{
		Key:         r.Key(),
		Name:        r.DisplayName,
		Icon:        r.IconID,
		Placeholder: r.Placeholder,
		Tooltip:     r.Tooltip(),
	}
}

// APIPlatforms lists the platforms in toolbar order.
func (h *Handlers) APIPlatforms(c *fiber.Ctx) error {
	rules := h.platforms.Execute()
	out := make([]platformResponse, len(rules))
	for i, r := range rules {
		out[i] = newPlatformResponse(r)
	}
	return c.JSON(out)
}

type detectResponse struct {
	Detected bool              `json:"detected"`
	Platform *platformResponse `json:"platform"`
}

// APIDetect reports which platform a URL belongs to.
func (h *Handlers) APIDetect(c *fiber.Ctx) error {
	url := c.Query("url")
	if strings.TrimSpace(url) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Message: "url query parameter is required"})
	}

	rule, ok := h.platforms.Detect(url)
	if !ok {
		return c.JSON(detectResponse{})
	}
	p := newPlatformResponse(rule)
	return c.JSON(detectResponse{Detected: true, Platform: &p})
}

type embedResponse struct {
	OK        bool             `json:"ok"`
	HTML      string           `json:"html,omitempty"`
	Platform  string           `json:"platform,omitempty"`
	ErrorKind domain.ErrorKind `json:"error_kind,omitempty"`
	Message   string           `json:"message"`
}

type errorResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// APIEmbed generates markup for a JSON request. Failures are 422 with the
// error kind and the message the editor would show.
func (h *Handlers) APIEmbed(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var p embedPayload
	if err := c.BodyParser(&p); err != nil {
		log.WarnCtx(ctx, "invalid embed payload", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Message: friendlyError(domain.ErrInvalidRequest)})
	}

	toasts := &ToastNotifier{}
	res, _ := h.insert(ctx, "api", p, toasts)

	resp := embedResponse{
		OK:        res.OK,
		HTML:      res.HTML,
		Platform:  res.Platform.String(),
		ErrorKind: res.Kind,
	}
	if notices := toasts.Notices(); len(notices) > 0 {
		resp.Message = notices[len(notices)-1].Text
	}

	status := fiber.StatusOK
	if !res.OK {
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(resp)
}

// RateLimited answers a request the rate limiter refused.
func (h *Handlers) RateLimited(c *fiber.Ctx) error {
	msg := friendlyError(domain.ErrRateLimited)
	c.Status(fiber.StatusTooManyRequests)

	switch {
	case strings.HasPrefix(c.Path(), "/api/"):
		return c.JSON(errorResponse{Message: msg})
	case isHTMX(c):
		toasts := &ToastNotifier{}
		toasts.Notify(c.UserContext(), domain.Notice{Severity: domain.SeverityWarning, Text: msg, Timeout: 3 * time.Second})
		if header, err := toasts.TriggerHeader(); err == nil {
			c.Set("HX-Trigger", header)
		}
		return render(c, components.ErrorMessage(msg))
	default:
		return render(c, pages.Error(msg))
	}
}

// renderError renders a full-page error.
func (h *Handlers) renderError(c *fiber.Ctx, status int, err error) error {
	c.Status(status)
	return render(c, pages.Error(friendlyError(err)))
}

// friendlyError returns a neutral, non-blaming error message.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return "Too many embeds in a short time. Please wait a moment and try again."
	case errors.Is(err, domain.ErrInvalidRequest):
		return "That request couldn't be read. Please send a url and an optional platform."
	case errors.Is(err, domain.ErrUnrecognizedPlatform):
		return "Could not detect platform. Please use a valid social media URL."
	case errors.Is(err, domain.ErrURLPatternMismatch):
		return "That URL doesn't match the selected platform. Please check the format."
	case errors.Is(err, domain.ErrExtractionFailed):
		return "Failed to create embed. Please check the URL."
	default:
		return "Something went wrong. Please try again in a moment."
	}
}
