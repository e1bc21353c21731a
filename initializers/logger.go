package initializers

import (
	"candidate-browser/fiberlog"
	"os"

	log "github.com/sirupsen/logrus"
)

func jsonFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

// InitLogger уровень пакетного логгера из LOG_LEVEL, по умолчанию info.
// Конфиг на этот момент еще не загружен, поэтому переменная окружения читается напрямую.
func InitLogger() *fiberlog.Config {
	log.SetFormatter(jsonFormatter())
	level := log.InfoLevel
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		parsed, err := log.ParseLevel(value)
		if err != nil {
			log.WithError(err).Warn("некорректный LOG_LEVEL, используется info")
		} else {
			level = parsed
		}
	}
	log.SetLevel(level)

	logger := log.New()
	logger.SetFormatter(jsonFormatter())
	logger.SetLevel(log.InfoLevel)
	return &fiberlog.Config{
		Logger: logger,
		Tags: []string{
			fiberlog.TagResBody,
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagQuery,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.RequestID,
		},
		SkipPrefixes: []string{"/static", "/swagger"},
	}
}
