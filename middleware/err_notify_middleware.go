package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

var notifyClient = &http.Client{Timeout: 5 * time.Second}

// ErrNotify отправляет ошибки 5xx на addr. Пустой addr отключает отправку.
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if addr == "" {
			return err
		}
		statusCode := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				statusCode = fiberErr.Code
			} else {
				statusCode = fiber.StatusInternalServerError
			}
		}

		if statusCode >= http.StatusInternalServerError {
			body := string(c.Response().Body())

			var data struct {
				Status  string `json:"status"`
				Message string `json:"message"`
			}
			unmErr := json.Unmarshal(c.Response().Body(), &data)
			if unmErr != nil {
				log.WithError(unmErr).Debug("ответ с ошибкой не в формате api")
			}

			method := c.Method()
			path := c.OriginalURL()
			if r := c.Route(); r != nil {
				path = r.Path
			}

			msg := data.Message
			if msg == "" {
				msg = body
			}
			if msg == "" && err != nil {
				msg = err.Error()
			}

			go func() {
				payload := fmt.Sprintf(
					`{"code":%d,"method":%q,"path":%q,"error":%q}`,
					statusCode, method, path, msg)
				resp, reqErr := notifyClient.Post(addr, fiber.MIMEApplicationJSON, strings.NewReader(payload))
				if reqErr != nil {
					log.WithError(reqErr).Warn("ошибка отправки уведомления об ошибке")
					return
				}
				_ = resp.Body.Close()
			}()
		}

		return err
	}
}
