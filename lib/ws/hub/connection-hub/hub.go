package connectionhub

import (
	wsmodels "candidate-browser/models/ws"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

type Provider interface {
	AddClient(sessionID string, conn *websocket.Conn)
	DeleteClient(sessionID string)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(sessionID string)
	IsConnected(sessionID string) bool
	Count() int
}

var Instance Provider

func Init() {
	Instance = NewInstance()
}

func NewInstance() Provider {
	return &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[sessionID]
}

func (i *impl) DeleteClient(sessionID string) {
	i.mu.Lock()
	sess, ok := i.clients[sessionID]
	if ok {
		delete(i.clients, sessionID)
	}
	i.mu.Unlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) AddClient(sessionID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[sessionID]
	i.clients[sessionID] = newSession(conn)
	i.mu.Unlock()
	if ok {
		oldSess.stop()
	}
}

// SendMessage не блокирует после отключения клиента
func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	sess, ok := i.clients[msg.ToSessionID]
	i.mu.RUnlock()
	if !ok {
		return
	}
	select {
	case sess.sendCh <- msg:
	case <-sess.done:
	}
}

func (i *impl) SendClose(sessionID string) {
	i.mu.RLock()
	sess, ok := i.clients[sessionID]
	i.mu.RUnlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(sessionID string) bool {
	i.mu.RLock()
	sess, ok := i.clients[sessionID]
	i.mu.RUnlock()
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	select {
	case <-sess.done:
		return false
	default:
	}
	return true
}

func (i *impl) Count() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.clients)
}
