package relpathapi_test

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/toolbox/internal/config"
	"github.com/GoPowerDNS-Admin/toolbox/internal/web/handler"
	relpathapi "github.com/GoPowerDNS-Admin/toolbox/internal/web/handler/api/relpath"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	s := &relpathapi.Service{}
	require.NoError(t, s.Init(app, &config.Config{}))

	return app
}

func target(from, to string) string {
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}

	if to != "" {
		q.Set("to", to)
	}

	return relpathapi.Path + "?" + q.Encode()
}

func TestGet(t *testing.T) {
	tests := []struct {
		from, to, want string
	}{
		{"/a/b/c", "/a/b/d", "../d"},
		{"/a/b", "/a/b", ""},
		{"/a/b/c/d", "/a/x", "../../../x"},
		{"/a/", "/a/b/", "b"},
	}

	app := newTestApp(t)

	for _, tc := range tests {
		t.Run(tc.from+" "+tc.to, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target(tc.from, tc.to), nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			var body relpathapi.Response
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.want, body.Path)
			assert.Equal(t, tc.from, body.From)
			assert.Equal(t, tc.to, body.To)
		})
	}
}

func TestGet_MissingParameter(t *testing.T) {
	app := newTestApp(t)

	for _, tc := range []string{target("/a", ""), target("", "/a"), target("", "")} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body handler.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "invalid query", body.Error)
		assert.NotEmpty(t, body.Fields)
	}
}
