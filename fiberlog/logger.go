package fiberlog

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func fields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields, len(ftm))
	for k, ft := range ftm {
		value := ft(c, d)
		if strValue, ok := value.(string); ok && strValue == "" {
			continue
		}
		f[k] = value
	}
	return f
}

// New middleware логирования запросов
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) != 0 {
		cfg = config[0]
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions || skip(cfg.SkipPrefixes, c.Path()) {
			return c.Next()
		}
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()

		status := c.Response().StatusCode()
		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		}
		entry := logger.WithFields(fields(ftm, c, d))
		if err != nil {
			entry = entry.WithError(err)
		}
		message := getMessage(c)
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error(message)
		case status >= fiber.StatusMultipleChoices:
			entry.Warn(message)
		default:
			entry.Info(message)
		}
		return err
	}
}

func skip(prefixes []string, path string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func getMessage(c *fiber.Ctx) string {
	if c.Get(fiber.HeaderUpgrade) != "" {
		return "запрос websocket"
	}
	return "запрос api"
}
