package initializers

import (
	"candidate-browser/config"
	filestorage "candidate-browser/lib/file-storage"
	s3client "candidate-browser/s3"
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// InitS3 хранилище отчетов опционально, без endpoint сохранение отчетов отключено
func InitS3(ctx context.Context) {
	if !config.Conf.S3Enabled() {
		log.Info("S3 не настроен, сохранение отчетов отключено")
		return
	}
	minioClient, err := s3client.NewClient(ctx, config.Conf)
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	storage := filestorage.NewHandler(minioClient, config.Conf.S3.BucketName, time.Duration(config.Conf.S3.UrlExpireMin)*time.Minute)
	if err = storage.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("Ошибка создания бакета для отчетов")
		return
	}
	filestorage.Instance = storage
	log.Info("S3 клиент успешно инициализирован")
}
