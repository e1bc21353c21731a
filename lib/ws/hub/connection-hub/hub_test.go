package connectionhub

import (
	wsmodels "candidate-browser/models/ws"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnectionHub(t *testing.T) {
	t.Run(`message to unknown session is dropped`, func(t *testing.T) {
		hub := NewInstance()
		done := make(chan struct{})
		go func() {
			hub.SendMessage(wsmodels.ServerMessage{ToSessionID: "none", Code: wsmodels.ServerRender})
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("SendMessage blocked")
		}
	})

	t.Run(`client without connection`, func(t *testing.T) {
		hub := NewInstance()
		hub.AddClient("s1", nil)
		require.Equal(t, 1, hub.Count())
		require.False(t, hub.IsConnected("s1"))
		hub.SendMessage(wsmodels.ServerMessage{ToSessionID: "s1", Code: wsmodels.ServerRender})
		hub.DeleteClient("s1")
		require.Equal(t, 0, hub.Count())
		// сообщение после отключения не блокирует
		hub.SendMessage(wsmodels.ServerMessage{ToSessionID: "s1", Code: wsmodels.ServerRender})
	})

	t.Run(`re-adding a session replaces it`, func(t *testing.T) {
		hub := NewInstance()
		hub.AddClient("s1", nil)
		hub.AddClient("s1", nil)
		require.Equal(t, 1, hub.Count())
		hub.SendClose("s1")
		require.False(t, hub.IsConnected("s1"))
	})
}
