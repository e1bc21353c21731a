package wsmodels

type ClientMessageType string

const (
	ClientSearchInput         ClientMessageType = "search_input"          // ввод в строку поиска (черновик)
	ClientToggleFullText      ClientMessageType = "toggle_full_text"      // переключатель полнотекстового поиска
	ClientToggleFilter        ClientMessageType = "toggle_filter"         // чекбокс фильтра
	ClientToggleSection       ClientMessageType = "toggle_section"        // свернуть/развернуть группу фильтров
	ClientToggleSortMenu      ClientMessageType = "toggle_sort_menu"      // открыть/закрыть выбор сортировки
	ClientSelectSort          ClientMessageType = "select_sort"           // выбор сортировки
	ClientSelectPage          ClientMessageType = "select_page"           // выбор страницы
	ClientToggleInterviewMenu ClientMessageType = "toggle_interview_menu" // меню действий интервью
	ClientPointerDown         ClientMessageType = "pointer_down"          // нажатие указателя, regions - области вокруг цели
	ClientResetFilters        ClientMessageType = "reset_filters"         // сброс фильтров
)

type ClientMessage struct {
	Type        ClientMessageType `json:"type"`
	Value       string            `json:"value"`        // текст поиска, значение фильтра/сортировки, код группы
	Category    string            `json:"category"`     // категория фильтра
	Checked     bool              `json:"checked"`      // состояние чекбокса
	Page        int               `json:"page"`         // запрошенная страница
	CandidateID int               `json:"candidate_id"` // кандидат карточки
	Index       int               `json:"index"`        // позиция интервью в карточке
	Regions     []string          `json:"regions"`      // идентификаторы областей, содержащих цель нажатия
}
