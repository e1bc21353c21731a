package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// UploadReport сохраняет отчет и возвращает временную ссылку на скачивание
	UploadReport(ctx context.Context, fileName string, file []byte, contentType string) (string, error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

// ObjectClient методы minio клиента, которыми пользуется хранилище
type ObjectClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

type impl struct {
	client     ObjectClient
	bucketName string
	urlExpire  time.Duration
}

const location = "us-east-1"

func (i impl) UploadReport(ctx context.Context, fileName string, file []byte, contentType string) (string, error) {
	objectName := fmt.Sprintf("reports/%s/%s", time.Now().Format("2006-01-02"), fileName)
	_, err := i.client.PutObject(ctx, i.bucketName, objectName, bytes.NewReader(file), int64(len(file)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки отчета в хранилище")
	}
	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	link, err := i.client.PresignedGetObject(ctx, i.bucketName, objectName, i.urlExpire, params)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения ссылки на отчет")
	}
	log.WithField("object", objectName).Info("отчет загружен в хранилище")
	return link.String(), nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	exists, err := i.client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return errors.Wrap(err, "ошибка проверки бакета")
	}
	if exists {
		return nil
	}
	err = i.client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return errors.Wrap(err, "ошибка создания бакета")
	}
	return nil
}

func NewHandler(client ObjectClient, bucketName string, urlExpire time.Duration) Provider {
	return &impl{
		client:     client,
		bucketName: bucketName,
		urlExpire:  urlExpire,
	}
}

func NewInstance(client ObjectClient, bucketName string, urlExpire time.Duration) {
	Instance = NewHandler(client, bucketName, urlExpire)
}
