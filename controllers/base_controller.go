package controllers

import (
	apimodels "candidate-browser/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) QueryParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.QueryParser(out); err != nil {
		log.WithError(err).Warn("ошибка распознавания параметров запроса")
		return errors.New("failed to read query parameters")
	}
	return nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithFields(log.Fields{
		"method": ctx.Method(),
		"path":   ctx.Path(),
	})
	if requestID := ctx.GetRespHeader(fiber.HeaderXRequestID); requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}
	return logger
}

// SendError детали ошибки пишутся в лог, клиенту уходит только сообщение
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}
