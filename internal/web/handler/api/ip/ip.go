// Package ipapi tells the caller its own network address.
package ipapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GoPowerDNS-Admin/toolbox/internal/config"
	"github.com/GoPowerDNS-Admin/toolbox/internal/remoteaddr"
	"github.com/GoPowerDNS-Admin/toolbox/internal/web/handler"
)

// Path is the path of the ip endpoint.
const Path = handler.APIPath + "/ip"

// Response is the json body of the ip endpoint.
type Response struct {
	IP string `json:"ip"`
}

// Service is the ip api handler service.
type Service struct {
	handler.Service
}

// Handler is the ip api handler.
var Handler = Service{}

// Init initializes the ip api handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config) error {
	if app == nil || cfg == nil {
		return handler.ErrNilAppOrConfig
	}

	app.Get(Path, s.Get)

	return nil
}

// Get handles GET /api/ip.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.JSON(Response{IP: remoteaddr.FromLocals(c)})
}
