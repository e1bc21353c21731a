package ws

import (
	"candidate-browser/lib/browse"
	"candidate-browser/lib/query"
	candidateapimodels "candidate-browser/models/api/candidate"
	wsmodels "candidate-browser/models/ws"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	messages []wsmodels.ServerMessage
}

func (s *recordingSender) SendMessage(msg wsmodels.ServerMessage) {
	s.messages = append(s.messages, msg)
}

func TestPublisher(t *testing.T) {
	t.Run(`snapshot is rendered to the session`, func(t *testing.T) {
		sender := &recordingSender{}
		publish := newPublisher("s1", sender)
		snapshot := browse.NewStaticSnapshot(query.Default(), candidateapimodels.CandidatePageView{
			Candidates: []candidateapimodels.Candidate{{ID: 1, Name: "Alex Fin"}},
			Page:       1,
			TotalPages: 1,
		}, "", candidateapimodels.FiltersView{})
		publish(snapshot)

		require.Len(t, sender.messages, 1)
		msg := sender.messages[0]
		require.Equal(t, "s1", msg.ToSessionID)
		require.Equal(t, wsmodels.ServerRender, msg.Code)
		require.Contains(t, msg.Html, "Alex Fin")
		require.Equal(t, snapshot.State, msg.State.(browse.Snapshot).State)
	})
}
