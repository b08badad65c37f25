// Package web implements the fiber based web service of toolbox.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/toolbox/internal/config"
	accesslog "github.com/GoPowerDNS-Admin/toolbox/internal/logger/adapter/fiber"
	"github.com/GoPowerDNS-Admin/toolbox/internal/remoteaddr"
	"github.com/GoPowerDNS-Admin/toolbox/internal/web/handler"
	ipapi "github.com/GoPowerDNS-Admin/toolbox/internal/web/handler/api/ip"
	relpathapi "github.com/GoPowerDNS-Admin/toolbox/internal/web/handler/api/relpath"
	saltapi "github.com/GoPowerDNS-Admin/toolbox/internal/web/handler/api/salt"
	"github.com/GoPowerDNS-Admin/toolbox/internal/web/handler/index"
)

const (
	// CheckAlivePath answers 200 while the service accepts traffic.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address and blocks until it is shut down.
func (s *Service) Start(addr string) error {
	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the service down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown lets checkalive fail for Webserver.ShutDownTime seconds, so load balancers
// can remove this instance, and stops the http server afterwards.
func (s *Service) Shutdown() {
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive answers 200 while alive and 503 during shutdown.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		return nil, handler.ErrNilAppOrConfig
	}

	templateEngine := html.NewFileSystem(http.FS(templateEmbedFS{embeddedTemplates}), ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192, //nolint:mnd
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			ProxyHeader:    cfg.Webserver.ProxyHeader,
			Views:          templateEngine,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.DevMode,
	}

	service.alive.Store(true)

	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))
	app.Use(remoteaddr.Middleware())

	app.Get(CheckAlivePath, service.CheckAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// handlers register their own routes
	for _, h := range []handler.Service{
		&index.Handler,
		&saltapi.Handler,
		&relpathapi.Handler,
		&ipapi.Handler,
	} {
		if err := h.Init(app, cfg); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	return service, nil
}
