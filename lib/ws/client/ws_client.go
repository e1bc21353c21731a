package wsclient

import (
	"candidate-browser/lib/browse"
	"candidate-browser/models"
	wsmodels "candidate-browser/models/ws"
	"encoding/json"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Dispatcher получатель действий пользователя
type Dispatcher interface {
	Dispatch(intent browse.Intent) bool
}

// Sender ответ клиенту об ошибке разбора сообщения
type Sender interface {
	SendMessage(msg wsmodels.ServerMessage)
}

func NewClient(sessionID string, c *websocket.Conn, session Dispatcher, sender Sender) *WsClient {
	return &WsClient{
		conn:      c,
		sessionID: sessionID,
		session:   session,
		sender:    sender,
	}
}

type WsClient struct {
	conn      *websocket.Conn
	sessionID string
	session   Dispatcher
	sender    Sender
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

// Dispatch читает сообщения до закрытия соединения
func (c *WsClient) Dispatch() {
	logger := log.WithField("session_id", c.sessionID)
	for {
		if c.conn == nil {
			return
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				logger.WithError(err).Error("ошибка получения сообщения")
			}
			break
		}
		if !c.HandleMessage(data) {
			break
		}
	}
}

// HandleMessage false - сессия закрыта
func (c *WsClient) HandleMessage(data []byte) bool {
	logger := log.WithField("session_id", c.sessionID)
	msg := wsmodels.ClientMessage{}
	if err := json.Unmarshal(data, &msg); err != nil {
		logger.WithError(err).Warn("некорректное сообщение клиента")
		c.sendError("malformed message")
		return true
	}
	intent, err := ToIntent(msg)
	if err != nil {
		logger.WithError(err).WithField("ws_message_type", msg.Type).Warn("неизвестное сообщение клиента")
		c.sendError(err.Error())
		return true
	}
	logger.WithField("ws_message_type", msg.Type).Debug("ws-msg")
	return c.session.Dispatch(intent)
}

func (c *WsClient) sendError(text string) {
	if c.sender == nil {
		return
	}
	c.sender.SendMessage(wsmodels.ServerMessage{
		ToSessionID: c.sessionID,
		Time:        time.Now().Format("02.01.2006 15:04:05"),
		Code:        wsmodels.ServerError,
		Msg:         text,
	})
}

// ToIntent действие сессии по сообщению клиента
func ToIntent(msg wsmodels.ClientMessage) (browse.Intent, error) {
	switch msg.Type {
	case wsmodels.ClientSearchInput:
		return browse.SearchInput{Value: msg.Value}, nil
	case wsmodels.ClientToggleFullText:
		return browse.ToggleFullText{Checked: msg.Checked}, nil
	case wsmodels.ClientToggleFilter:
		return browse.ToggleFilter{Category: models.FilterCategory(msg.Category), Value: msg.Value, Checked: msg.Checked}, nil
	case wsmodels.ClientToggleSection:
		category := msg.Category
		if category == "" {
			category = msg.Value
		}
		return browse.ToggleSection{Category: models.FilterCategory(category)}, nil
	case wsmodels.ClientToggleSortMenu:
		return browse.ToggleSortMenu{}, nil
	case wsmodels.ClientSelectSort:
		return browse.SelectSort{Value: models.SortValue(msg.Value)}, nil
	case wsmodels.ClientSelectPage:
		return browse.SelectPage{Page: msg.Page}, nil
	case wsmodels.ClientToggleInterviewMenu:
		return browse.ToggleInterviewMenu{CandidateID: msg.CandidateID, Index: msg.Index}, nil
	case wsmodels.ClientPointerDown:
		return browse.PointerDown{Regions: msg.Regions}, nil
	case wsmodels.ClientResetFilters:
		return browse.ResetFilters{}, nil
	}
	return nil, errors.Errorf("unknown message type %q", msg.Type)
}
