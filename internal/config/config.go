// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/GoPowerDNS-Admin/toolbox/internal/salt"
)

const (
	// EnvConfigJSON names the env variable holding a json config overriding the toml file.
	EnvConfigJSON = "TOOLBOX_CONFIG_JSON"

	// DefaultPath is the config directory used if none is given.
	DefaultPath = "./etc/"

	defaultShutDownTime  = 5
	defaultMaxSaltLength = 4096
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c   Config
		err error
	)

	if path == "" {
		path = DefaultPath
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	if configJSON := os.Getenv(EnvConfigJSON); configJSON != "" {
		if c, err = decodeAndMergeConfig(c, configJSON); err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	if err := json.Unmarshal([]byte(configAsJSON), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint:wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint:wrapcheck
	}

	return buffer.String(), nil
}

// validate the config and set defaults for optional values.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Salt.Length < 0 {
		return errors.Wrap(ErrNegativeSaltLength, invalidErrMessage)
	}

	if _, err := salt.ParseCategories(c.Salt.Categories...); err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.MaxSaltLength == 0 {
		c.Webserver.MaxSaltLength = defaultMaxSaltLength
	}

	return nil
}

// Request turns the salt defaults into a generation request.
func (s Salt) Request() (salt.Request, error) {
	req := salt.Request{Length: s.Length, Strict: s.Strict, Charset: salt.All()}

	switch {
	case s.Charset != "":
		req.Charset = salt.Chars(s.Charset)
	case len(s.Categories) > 0:
		cats, err := salt.ParseCategories(s.Categories...)
		if err != nil {
			return salt.Request{}, err //nolint:wrapcheck
		}

		req.Charset = salt.Categories(cats...)
	}

	return req, nil
}
