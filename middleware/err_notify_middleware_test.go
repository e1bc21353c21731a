package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type notification struct {
	Code   int    `json:"code"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Error  string `json:"error"`
}

func newNotifyServer(t *testing.T) (*httptest.Server, chan notification) {
	received := make(chan notification, 4)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		item := notification{}
		if json.Unmarshal(body, &item) == nil {
			received <- item
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server, received
}

func newTestApp(addr string) *fiber.App {
	app := fiber.New()
	app.Use(ErrNotify(addr))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "fail", "message": "Failed to load candidates"})
	})
	return app
}

func TestErrNotify(t *testing.T) {
	t.Run(`server error is sent`, func(t *testing.T) {
		server, received := newNotifyServer(t)
		app := newTestApp(server.URL)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/items/7", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		select {
		case item := <-received:
			require.Equal(t, 500, item.Code)
			require.Equal(t, "GET", item.Method)
			require.Equal(t, "/items/:id", item.Path)
			require.Equal(t, "Failed to load candidates", item.Error)
		case <-time.After(3 * time.Second):
			require.Fail(t, "уведомление не получено")
		}
	})

	t.Run(`success is not sent`, func(t *testing.T) {
		server, received := newNotifyServer(t)
		app := newTestApp(server.URL)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		select {
		case <-received:
			require.Fail(t, "лишнее уведомление")
		case <-time.After(200 * time.Millisecond):
		}
	})

	t.Run(`empty address disables notify`, func(t *testing.T) {
		app := newTestApp("")
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/items/1", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
