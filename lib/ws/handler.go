package ws

import (
	"candidate-browser/lib/browse"
	candidatehandler "candidate-browser/lib/candidate"
	"candidate-browser/lib/query"
	"candidate-browser/lib/view"
	wsclient "candidate-browser/lib/ws/client"
	connectionhub "candidate-browser/lib/ws/hub/connection-hub"
	candidateapimodels "candidate-browser/models/api/candidate"
	wsmodels "candidate-browser/models/ws"
	"context"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Candidates candidatehandler.Provider
	Vocabulary browse.Vocabulary
	Debounce   time.Duration
}

const (
	sessionIDKey = "sessionID"
	stateKey     = "queryState"
)

func InitWs(app fiber.Router, cfg Config) {
	app.Use("", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		filter := candidateapimodels.CandidateFilter{}
		if err := ctx.QueryParser(&filter); err != nil {
			log.WithError(err).Warn("некорректные параметры сессии, используются значения по умолчанию")
		}
		ctx.Locals(sessionIDKey, uuid.NewString())
		ctx.Locals(stateKey, query.FromFilter(filter))
		return ctx.Next()
	})
	app.Get("/browse", websocket.New(func(c *websocket.Conn) {
		browseHandler(c, cfg)
	}))
}

// @Summary Сессия просмотра кандидатов
// @Tags Websocket
// @Description Сообщения клиента wsmodels.ClientMessage, ответ - перерисовка страницы
// @Param   search				query		string		false		"Поиск"
// @Param   sort				query		string		false		"Сортировка"
// @Param   page				query		int			false		"Страница"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 426
// @router /ws/browse [get]
func browseHandler(c *websocket.Conn, cfg Config) {
	sessionID := c.Locals(sessionIDKey).(string)
	state := c.Locals(stateKey).(query.State)
	logger := log.WithField("session_id", sessionID)

	connectionhub.Instance.AddClient(sessionID, c)
	defer connectionhub.Instance.DeleteClient(sessionID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session := browse.NewSession(browse.Options{
		ID:         sessionID,
		Candidates: cfg.Candidates,
		Vocabulary: cfg.Vocabulary,
		Debounce:   cfg.Debounce,
		Initial:    &state,
		Publish:    newPublisher(sessionID, connectionhub.Instance),
	})
	go session.Run(ctx)
	defer session.Close()

	logger.Debug("сессия открыта")
	wsclient.NewClient(sessionID, c, session, connectionhub.Instance).Dispatch()
}

func newPublisher(sessionID string, sender wsclient.Sender) func(snapshot browse.Snapshot) {
	logger := log.WithField("session_id", sessionID)
	return func(snapshot browse.Snapshot) {
		html, err := view.RenderApp(snapshot)
		if err != nil {
			logger.WithError(err).Error("ошибка формирования страницы")
			sender.SendMessage(wsmodels.ServerMessage{
				ToSessionID: sessionID,
				Time:        time.Now().Format("02.01.2006 15:04:05"),
				Code:        wsmodels.ServerError,
				Msg:         "render failed",
			})
			return
		}
		sender.SendMessage(wsmodels.ServerMessage{
			ToSessionID: sessionID,
			Time:        time.Now().Format("02.01.2006 15:04:05"),
			Code:        wsmodels.ServerRender,
			Html:        html,
			State:       snapshot,
		})
	}
}
