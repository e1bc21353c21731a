package fiberlog

import "github.com/sirupsen/logrus"

// Config настройки middleware. Logger = nil - пакетный логгер logrus.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// SkipPrefixes запросы с этими префиксами пути не логируются (статика, swagger)
	SkipPrefixes []string
}

var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
}
