package wsmodels

type ServerMessageCode string

const (
	ServerRender ServerMessageCode = "render" // перерисовка страницы
	ServerError  ServerMessageCode = "error"  // ошибка обработки сообщения клиента
)

type ServerMessage struct {
	ToSessionID string            `json:"-"`
	Time        string            `json:"time"`            // время события
	Code        ServerMessageCode `json:"code"`            // код события
	Html        string            `json:"html,omitempty"`  // разметка страницы
	State       interface{}       `json:"state,omitempty"` // состояние запроса
	Msg         string            `json:"msg,omitempty"`   // текст ошибки
}
