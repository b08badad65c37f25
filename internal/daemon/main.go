// Package daemon wires config, logging and the web service together.
package daemon

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/toolbox/internal/config"
	"github.com/GoPowerDNS-Admin/toolbox/internal/logger"
	"github.com/GoPowerDNS-Admin/toolbox/internal/web"
)

// ErrNilConfig is returned by New if no config was given.
var ErrNilConfig = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// New initializes the logger and creates a Daemon with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	zerolog.ErrorHandler = logger.ErrorHandler

	if err := logger.Init(cfg.Log); err != nil {
		return nil, errors.Wrap(err, "failed to init logger")
	}

	webService, err := web.New(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create web service")
	}

	return &Daemon{
		cfg:        cfg,
		webService: webService,
	}, nil
}

// Addr returns the listen address of the web service.
func (d *Daemon) Addr() string {
	return fmt.Sprintf(":%d", d.cfg.Webserver.Port)
}

// Start runs the web service until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	log.Info().Str("addr", d.Addr()).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	return d.webService.Start(d.Addr())
}
