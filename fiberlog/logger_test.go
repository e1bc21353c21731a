package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestApp(buf *bytes.Buffer, tags ...string) *fiber.App {
	logger := log.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&log.JSONFormatter{})
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(New(Config{Logger: logger, Tags: tags, SkipPrefixes: []string{"/static"}}))
	app.Get("/static/app.css", func(c *fiber.Ctx) error {
		return c.SendString("body{}")
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "fail"})
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).SendString("bad")
	})
	return app
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestLogger(t *testing.T) {
	t.Run(`configured tags are logged`, func(t *testing.T) {
		buf := new(bytes.Buffer)
		app := newTestApp(buf, TagMethod, TagPath, TagStatus, TagQuery, TagResBody, RequestID)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok?search=go", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		entry := lastEntry(t, buf)
		require.Equal(t, "info", entry["level"])
		require.Equal(t, "запрос api", entry["msg"])
		require.Equal(t, "GET", entry[TagMethod])
		require.Equal(t, "/ok", entry[TagPath])
		require.Equal(t, float64(200), entry[TagStatus])
		require.Equal(t, "search=go", entry[TagQuery])
		require.Contains(t, entry[TagResBody], "ok")
		require.NotEmpty(t, entry[RequestID])
		require.NotContains(t, entry, TagLatency)
	})

	t.Run(`error status is logged as warning`, func(t *testing.T) {
		buf := new(bytes.Buffer)
		app := newTestApp(buf, TagStatus, TagResBody, TagLatency)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/bad", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		entry := lastEntry(t, buf)
		require.Equal(t, "warning", entry["level"])
		require.Equal(t, float64(400), entry[TagStatus])
		// не json ответ в лог не попадает
		require.NotContains(t, entry, TagResBody)
		require.NotEmpty(t, entry[TagLatency])
	})

	t.Run(`server error is logged as error`, func(t *testing.T) {
		buf := new(bytes.Buffer)
		app := newTestApp(buf, TagStatus)
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/fail", nil))
		require.NoError(t, err)
		require.Equal(t, "error", lastEntry(t, buf)["level"])
	})

	t.Run(`skipped prefixes are not logged`, func(t *testing.T) {
		buf := new(bytes.Buffer)
		app := newTestApp(buf, TagStatus)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/static/app.css", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Zero(t, buf.Len())
	})

	t.Run(`options requests are skipped`, func(t *testing.T) {
		buf := new(bytes.Buffer)
		app := newTestApp(buf, TagStatus)
		_, err := app.Test(httptest.NewRequest(fiber.MethodOptions, "/ok", nil))
		require.NoError(t, err)
		require.Zero(t, buf.Len())
	})
}

func TestTruncate(t *testing.T) {
	t.Run(`long body is cut`, func(t *testing.T) {
		result := truncate(bytes.Repeat([]byte("a"), maxBodyLogLen+10))
		require.Len(t, result, maxBodyLogLen+3)
	})
}
