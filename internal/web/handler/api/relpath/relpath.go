// Package relpathapi serves relative paths between two absolute paths as json.
package relpathapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GoPowerDNS-Admin/toolbox/internal/config"
	"github.com/GoPowerDNS-Admin/toolbox/internal/relpath"
	"github.com/GoPowerDNS-Admin/toolbox/internal/web/handler"
)

const (
	// Path is the path of the relpath endpoint.
	Path = handler.APIPath + "/relpath"
)

// Query holds the query parameters of a relpath request.
type Query struct {
	From string `query:"from" validate:"required"`
	To   string `query:"to" validate:"required"`
}

// Response is the json body of a successful relpath request.
type Response struct {
	From string `json:"from"`
	To   string `json:"to"`
	Path string `json:"path"`
}

// Service is the relpath api handler service.
type Service struct {
	handler.Service
	validator *handler.XValidator
}

// Handler is the relpath api handler.
var Handler = Service{}

// Init initializes the relpath api handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config) error {
	if app == nil || cfg == nil {
		return handler.ErrNilAppOrConfig
	}

	s.validator = handler.NewValidator()

	app.Get(Path, s.Get)

	return nil
}

// Get handles GET /api/relpath. Paths in the query always use "/" as separator.
func (s *Service) Get(c *fiber.Ctx) error {
	var q Query

	if err := c.QueryParser(&q); err != nil {
		return handler.BadRequest(c, err.Error())
	}

	if fields := s.validator.Validate(q); fields != nil {
		return handler.BadRequest(c, "invalid query", fields...)
	}

	return c.JSON(Response{
		From: q.From,
		To:   q.To,
		Path: relpath.ResolveSep(q.From, q.To, '/'),
	})
}
