package s3client

import (
	"candidate-browser/config"
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// NewClient minio клиент по настройкам хранилища отчетов
func NewClient(ctx context.Context, conf *config.Configuration) (*minio.Client, error) {
	useSSL := conf.S3.UseSSL != nil && *conf.S3.UseSSL
	minioClient, err := minio.New(conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.S3.AccessKeyID, conf.S3.SecretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка инициализации клиента S3")
	}
	// проверка соединения
	if _, err = minioClient.ListBuckets(ctx); err != nil {
		return nil, errors.Wrap(err, "S3 соединение не удалось")
	}
	return minioClient, nil
}
