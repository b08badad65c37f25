package daemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/toolbox/internal/config"
	"github.com/GoPowerDNS-Admin/toolbox/internal/logger"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		Title: "toolbox",
		Log: logger.Log{
			LogLevel:    "error",
			AppName:     "toolbox",
			ServiceName: "toolbox",
		},
		Webserver: config.Webserver{Port: 8181, URL: "http://localhost:8181"},
		Salt:      config.Salt{Length: 16, Strict: true},
	}

	d, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, ":8181", d.Addr())
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	// logger without service name
	_, err = New(&config.Config{Log: logger.Log{LogLevel: "info", AppName: "toolbox"}})
	assert.ErrorIs(t, err, logger.ErrServiceNameIsEmpty)
}
