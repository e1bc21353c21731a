package browse

import "candidate-browser/models"

// Intent действие пользователя на странице
type Intent interface {
	intent()
}

type SearchInput struct {
	Value string
}

type ToggleFullText struct {
	Checked bool
}

type ToggleFilter struct {
	Category models.FilterCategory
	Value    string
	Checked  bool
}

type SelectSort struct {
	Value models.SortValue
}

type ToggleSortMenu struct{}

type ToggleSection struct {
	Category models.FilterCategory
}

type SelectPage struct {
	Page int
}

type ToggleInterviewMenu struct {
	CandidateID int
	Index       int
}

// PointerDown нажатие на странице, Regions - области, содержащие цель нажатия
type PointerDown struct {
	Regions []string
}

type ResetFilters struct{}

func (SearchInput) intent()         {}
func (ToggleFullText) intent()      {}
func (ToggleFilter) intent()        {}
func (SelectSort) intent()          {}
func (ToggleSortMenu) intent()      {}
func (ToggleSection) intent()       {}
func (SelectPage) intent()          {}
func (ToggleInterviewMenu) intent() {}
func (PointerDown) intent()         {}
func (ResetFilters) intent()        {}
