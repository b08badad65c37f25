// Package index renders the start page showing a fresh salt.
package index

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/toolbox/internal/config"
	"github.com/GoPowerDNS-Admin/toolbox/internal/remoteaddr"
	"github.com/GoPowerDNS-Admin/toolbox/internal/salt"
	"github.com/GoPowerDNS-Admin/toolbox/internal/web/handler"
)

const (
	// Path is the path of the start page.
	Path = handler.RootPath

	// TemplateName is the name of the start page template.
	TemplateName = "index"
)

// Service is the start page handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	defaults salt.Request
	gen      *salt.Generator
}

// Handler is the start page handler.
var Handler = Service{}

// Init initializes the start page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config) error {
	if app == nil || cfg == nil {
		return handler.ErrNilAppOrConfig
	}

	defaults, err := cfg.Salt.Request()
	if err != nil {
		return err //nolint:wrapcheck
	}

	s.cfg = cfg
	s.defaults = defaults
	s.gen = salt.NewGenerator(nil)

	app.Get(Path, s.Get)

	return nil
}

// Get renders the start page.
func (s *Service) Get(c *fiber.Ctx) error {
	out, err := s.gen.GenerateRequest(s.defaults)
	if err != nil {
		log.Error().Err(err).Msg("configured salt defaults can not be satisfied")

		return fiber.NewError(fiber.StatusInternalServerError, "salt defaults are invalid")
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Salt":       out,
		"Length":     s.defaults.Length,
		"Strict":     s.defaults.Strict,
		"Charset":    s.defaults.Charset.String(),
		"RemoteAddr": remoteaddr.FromLocals(c),
	})
}
