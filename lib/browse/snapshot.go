package browse

import (
	"candidate-browser/lib/pagination"
	"candidate-browser/lib/query"
	"candidate-browser/models"
	candidateapimodels "candidate-browser/models/api/candidate"
	"fmt"
	"maps"
	"slices"
)

const SortMenuRegion = "sort-menu"

func InterviewMenuRegion(candidateID int) string {
	return fmt.Sprintf("interview-menu-%d", candidateID)
}

// Snapshot состояние страницы для отрисовки. Не разделяет данные с сессией.
type Snapshot struct {
	SessionID          string                               `json:"session_id"`
	Generation         uint64                               `json:"generation"`
	State              query.State                          `json:"state"`
	Draft              string                               `json:"draft"`                // текст в поле поиска, еще не примененный
	Loading            bool                                 `json:"loading"`
	Error              string                               `json:"error,omitempty"`
	Result             candidateapimodels.CandidatePageView `json:"result"`
	Pagination         pagination.View                      `json:"-"`
	Filters            candidateapimodels.FiltersView       `json:"filters"`
	SortMenuOpen       bool                                 `json:"sort_menu_open"`
	OpenSections       map[models.FilterCategory]bool       `json:"open_sections"`
	OpenInterviewMenus map[int]int                          `json:"open_interview_menus"` // идентификатор кандидата -> номер интервью
}

// ShownCount количество для счетчика "Showing N candidates"
func (s Snapshot) ShownCount() int {
	if s.Result.Total != nil {
		return *s.Result.Total
	}
	return len(s.Result.Candidates)
}

func (s Snapshot) SectionOpen(category models.FilterCategory) bool {
	return s.OpenSections[category]
}

// InterviewMenuOpen ok = false если у кандидата нет открытого меню
func (s Snapshot) InterviewMenuOpen(candidateID int) (index int, ok bool) {
	index, ok = s.OpenInterviewMenus[candidateID]
	return index, ok
}

func (s Snapshot) clone() Snapshot {
	s.State.ApplicationTypes = slices.Clone(s.State.ApplicationTypes)
	s.State.Sources = slices.Clone(s.State.Sources)
	s.Result.Candidates = slices.Clone(s.Result.Candidates)
	if s.Result.Total != nil {
		total := *s.Result.Total
		s.Result.Total = &total
	}
	s.Pagination.Pages = slices.Clone(s.Pagination.Pages)
	s.Filters.ApplicationTypes = slices.Clone(s.Filters.ApplicationTypes)
	s.Filters.Sources = slices.Clone(s.Filters.Sources)
	s.OpenSections = maps.Clone(s.OpenSections)
	s.OpenInterviewMenus = maps.Clone(s.OpenInterviewMenus)
	return s
}

// NewStaticSnapshot состояние страницы без сессии, для отрисовки на сервере по адресу запроса
func NewStaticSnapshot(state query.State, result candidateapimodels.CandidatePageView, errMsg string, filters candidateapimodels.FiltersView) Snapshot {
	if result.Candidates == nil {
		result.Candidates = []candidateapimodels.Candidate{}
	}
	if result.TotalPages < 1 {
		result.TotalPages = 1
	}
	snapshot := Snapshot{
		State:              state,
		Draft:              state.Search,
		Error:              errMsg,
		Result:             result,
		Pagination:         pagination.Build(state.Page, result.TotalPages),
		Filters:            filters,
		// без скриптов секции не раскрыть, поэтому открыты сразу
		OpenSections: map[models.FilterCategory]bool{
			models.FilterApplicationType: true,
			models.FilterSource:          true,
		},
		OpenInterviewMenus: map[int]int{},
	}
	return snapshot.clone()
}
