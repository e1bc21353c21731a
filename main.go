package main

import (
	"candidate-browser/config"
	apiv1 "candidate-browser/controllers/v1"
	"candidate-browser/controllers/v1/external"
	"candidate-browser/controllers/web"
	"candidate-browser/fiberlog"
	"candidate-browser/initializers"
	candidatehandler "candidate-browser/lib/candidate"
	vocabularyhandler "candidate-browser/lib/vocabulary"
	"candidate-browser/lib/ws"
	"candidate-browser/middleware"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		ReadTimeout: 30 * time.Second,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyAddr))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))
	apiv1.InitCandidateApiRouters(apiV1)

	// mock listing api из фикстуры
	if config.Conf.Listing.ServeMock != nil && *config.Conf.Listing.ServeMock {
		// без Use: префикс /api пересекается с /api/v1
		external.InitListingApiRouters(app.Group("/api"), initializers.LocalStore, config.Conf.Listing.PerPage)
	}

	//websocket
	ws.InitWs(app.Group("/ws"), ws.Config{
		Candidates: candidatehandler.Instance,
		Vocabulary: vocabularyhandler.Instance,
		Debounce:   time.Duration(config.Conf.Browse.DebounceMs) * time.Millisecond,
	})

	//страница
	app.Static("/static", "./static")
	web.InitPageRouters(app)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-c:
		case <-ctx.Done():
			return
		}
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
