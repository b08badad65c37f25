// Package saltapi serves random salts as json.
package saltapi

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/toolbox/internal/config"
	"github.com/GoPowerDNS-Admin/toolbox/internal/salt"
	"github.com/GoPowerDNS-Admin/toolbox/internal/web/handler"
)

const (
	// Path is the path of the salt endpoint.
	Path = handler.APIPath + "/salt"
)

// generated counts salt requests by strict mode and result.
var generated = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "toolbox_salts_generated_total",
		Help: "Number of salt requests, differentiated by strict mode and result.",
	},
	[]string{"strict", "result"},
)

// Query holds the query parameters of a salt request.
// Absent parameters keep the configured defaults.
type Query struct {
	Length  int    `query:"length" validate:"min=0"`
	Strict  bool   `query:"strict"`
	Charset string `query:"charset"`
	Sets    string `query:"sets"` // comma separated categories
}

// Response is the json body of a successful salt request.
type Response struct {
	Salt   string `json:"salt"`
	Length int    `json:"length"`
	Strict bool   `json:"strict"`
}

// Service is the salt api handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	gen       *salt.Generator
	validator *handler.XValidator
	defaults  salt.Request
}

// Handler is the salt api handler.
var Handler = Service{}

// Init initializes the salt api handler.
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
	s.validator = handler.NewValidator()

	if s.gen == nil {
		s.gen = salt.NewGenerator(nil)
	}

	app.Get(Path, s.Get)

	return nil
}

// SetGenerator replaces the generator, mainly for tests.
func (s *Service) SetGenerator(gen *salt.Generator) {
	s.gen = gen
}

// Get handles GET /api/salt.
func (s *Service) Get(c *fiber.Ctx) error {
	q := Query{Length: s.defaults.Length, Strict: s.defaults.Strict}

	if err := c.QueryParser(&q); err != nil {
		return handler.BadRequest(c, err.Error())
	}

	if fields := s.validator.Validate(q); fields != nil {
		return handler.BadRequest(c, "invalid query", fields...)
	}

	if q.Length > s.cfg.Webserver.MaxSaltLength {
		return handler.BadRequest(c, "length exceeds "+strconv.Itoa(s.cfg.Webserver.MaxSaltLength))
	}

	req := salt.Request{Length: q.Length, Strict: q.Strict, Charset: s.defaults.Charset}

	switch {
	case c.Request().URI().QueryArgs().Has("charset"):
		req.Charset = salt.Chars(q.Charset)
	case q.Sets != "":
		cats, err := salt.ParseCategories(strings.Split(q.Sets, ",")...)
		if err != nil {
			return handler.BadRequest(c, err.Error())
		}

		req.Charset = salt.Categories(cats...)
	}

	out, err := s.gen.GenerateRequest(req)
	if err != nil {
		generated.WithLabelValues(strconv.FormatBool(req.Strict), "error").Inc()

		var cfgErr *salt.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Debug().Err(err).Str("charset", req.Charset.String()).Msg("salt request rejected")

			return handler.BadRequest(c, cfgErr.Error())
		}

		return err //nolint:wrapcheck
	}

	generated.WithLabelValues(strconv.FormatBool(req.Strict), "ok").Inc()

	return c.JSON(Response{Salt: out, Length: req.Length, Strict: req.Strict})
}
