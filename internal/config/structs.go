package config

import (
	"github.com/GoPowerDNS-Admin/toolbox/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Log       logger.Log
	Title     string
	Webserver Webserver
	Salt      Salt
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // seconds to answer checkalive with 503 before shutdown
	URL            string // base url for the webserver
	ProxyHeader    string // header holding the client ip behind a reverse proxy, e.g. X-Forwarded-For
	MaxSaltLength  int    // upper limit for the length accepted by the salt api
}

// Salt holds the defaults for generated salts.
type Salt struct {
	Length     int      // default length
	Strict     bool     // no character is repeated
	Charset    string   // literal character set, wins over Categories
	Categories []string // lower, upper, num, special, extra or alpha; empty selects all
}
