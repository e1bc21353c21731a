package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type ListingMode string

const (
	ListingModeRemote ListingMode = "remote"
	ListingModeLocal  ListingMode = "local"
)

type Configuration struct {
	App struct {
		ListenAddr    string `default:"" env:"APP_HOST"`
		Port          int    `default:"8080"  env:"APP_PORT" validate:"min=1,max=65535"`
		ErrNotifyAddr string `default:"" env:"ERR_NOTIFY_ADDR"`
	}
	Listing struct {
		Mode          ListingMode `default:"local" env:"LISTING_MODE" validate:"oneof=remote local"`
		BaseUrl       string      `default:"http://127.0.0.1:8080/api" env:"LISTING_BASE_URL"`
		FixturePath   string      `default:"static/candidates.json" env:"LISTING_FIXTURE_PATH"`
		PerPage       int         `default:"5" env:"LISTING_PER_PAGE" validate:"min=1,max=100"`
		ExportPerPage int         `default:"100" env:"LISTING_EXPORT_PER_PAGE" validate:"min=1,max=1000"`
		TimeoutSec    int         `default:"10" env:"LISTING_TIMEOUT_SEC" validate:"min=1"`
		RateLimit     float64     `default:"20" env:"LISTING_RATE_LIMIT" validate:"gt=0"`
		RateBurst     int         `default:"5" env:"LISTING_RATE_BURST" validate:"min=1"`
		// отдавать фикстуру по контракту listing api (/api/...), удобно для remote режима на одном сервисе
		ServeMock *bool `default:"true" env:"LISTING_SERVE_MOCK"`
	}
	Browse struct {
		DebounceMs           int `default:"300" env:"BROWSE_DEBOUNCE_MS" validate:"min=0"`
		VocabularyRefreshMin int `default:"10" env:"BROWSE_VOCABULARY_REFRESH_MIN" validate:"min=1"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"candidate-reports" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		UrlExpireMin    int    `default:"60" env:"S3_URL_EXPIRE_MIN" validate:"min=1"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Debug("файл .env не найден, используются переменные окружения")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	if err = validator.New().Struct(conf); err != nil {
		panic(err)
	}
	Conf = conf
}

// S3Enabled хранилище отчетов подключается только при заданном endpoint
func (c *Configuration) S3Enabled() bool {
	return c.S3.Endpoint != ""
}
