package initializers

import (
	"candidate-browser/config"
	"candidate-browser/fiberlog"
	candidatehandler "candidate-browser/lib/candidate"
	candidatestore "candidate-browser/lib/candidate/store"
	pdfexport "candidate-browser/lib/export/pdf"
	xlsexport "candidate-browser/lib/export/xls"
	listingclient "candidate-browser/lib/external-services/listing/client"
	initchecker "candidate-browser/lib/utils/init-checker"
	vocabularyhandler "candidate-browser/lib/vocabulary"
	vocabularyworker "candidate-browser/lib/vocabulary/refresh-worker"
	connectionhub "candidate-browser/lib/ws/hub/connection-hub"
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

// LocalStore фикстура кандидатов, нужна и для local режима, и для mock listing api
var LocalStore candidatestore.Provider

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitLocalStore()
	source, fetcher := initListingSource()
	candidatehandler.NewHandler(source, config.Conf.Listing.PerPage, config.Conf.Listing.ExportPerPage)
	vocabularyhandler.NewHandler(fetcher)
	connectionhub.Init()
	xlsexport.NewHandler()
	pdfexport.NewHandler()
	InitS3(ctx)
	initchecker.CheckInit(
		"candidatehandler", candidatehandler.Instance,
		"vocabularyhandler", vocabularyhandler.Instance,
		"connectionhub", connectionhub.Instance,
		"xlsexport", xlsexport.Instance,
		"pdfexport", pdfexport.Instance,
	)
	go initWorkers(ctx)
}

func InitLocalStore() {
	list, err := candidatestore.LoadFixture(config.Conf.Listing.FixturePath)
	if err != nil {
		log.WithError(err).Warn("фикстура кандидатов не загружена, локальный список пуст")
	}
	LocalStore = candidatestore.NewInstance(list)
	log.WithField("count", len(LocalStore.All())).Info("фикстура кандидатов загружена")
}

func initListingSource() (candidatehandler.Source, vocabularyhandler.Fetcher) {
	if config.Conf.Listing.Mode == config.ListingModeLocal {
		log.Info("кандидаты из локальной фикстуры")
		return LocalStore, LocalStore
	}
	client := listingclient.NewProvider(listingclient.Config{
		Host:      config.Conf.Listing.BaseUrl,
		Timeout:   time.Duration(config.Conf.Listing.TimeoutSec) * time.Second,
		RateLimit: config.Conf.Listing.RateLimit,
		RateBurst: config.Conf.Listing.RateBurst,
	})
	log.WithField("base_url", config.Conf.Listing.BaseUrl).Info("кандидаты из listing api")
	return client, client
}

func initWorkers(ctx context.Context) {
	// в remote режиме mock listing api может подняться позже, воркер повторяет первую загрузку
	vocabularyworker.StartWorker(ctx, vocabularyhandler.Instance, time.Duration(config.Conf.Browse.VocabularyRefreshMin)*time.Minute)
}
