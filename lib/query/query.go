package query

import (
	"candidate-browser/lib/pagination"
	"candidate-browser/models"
	candidateapimodels "candidate-browser/models/api/candidate"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// State состояние запроса списка кандидатов.
// Неизменяемое: все изменения возвращают новую копию.
type State struct {
	Search           string           `json:"search"`            // подтвержденный текст поиска
	FullText         bool             `json:"full_text"`         // полнотекстовый поиск
	Sort             models.SortValue `json:"sort"`              // выбранная сортировка
	ApplicationTypes []string         `json:"application_types"` // выбранные типы заявки
	Sources          []string         `json:"sources"`           // выбранные источники
	Page             int              `json:"page"`              // страница, с 1
}

func Default() State {
	return State{
		Sort:             models.DefaultSort,
		ApplicationTypes: []string{},
		Sources:          []string{},
		Page:             1,
	}
}

// FromFilter состояние из параметров запроса, некорректные значения заменяются значениями по умолчанию
func FromFilter(f candidateapimodels.CandidateFilter) State {
	s := Default()
	s.Search = f.Search
	s.FullText = f.FullText
	if _, ok := models.FindSortOption(f.Sort); ok {
		s.Sort = f.Sort
	}
	for _, value := range f.ApplicationTypes {
		s.ApplicationTypes = Toggle(s.ApplicationTypes, value, true)
	}
	for _, value := range f.Sources {
		s.Sources = Toggle(s.Sources, value, true)
	}
	if f.Page > 1 {
		s.Page = f.Page
	}
	return s
}

// Toggle добавляет значение во множество при checked, иначе удаляет. Исходный срез не меняется.
func Toggle(set []string, value string, checked bool) []string {
	result := make([]string, 0, len(set)+1)
	for _, item := range set {
		if item != value {
			result = append(result, item)
		}
	}
	if checked && value != "" {
		result = append(result, value)
		slices.Sort(result)
	}
	return result
}

func (s State) WithSearch(search string) State {
	if s.Search == search {
		return s
	}
	s.Search = search
	s.Page = 1
	return s
}

func (s State) WithFullText(fullText bool) State {
	if s.FullText == fullText {
		return s
	}
	s.FullText = fullText
	s.Page = 1
	return s
}

// WithFilter ok = false для неизвестной категории
func (s State) WithFilter(category models.FilterCategory, value string, checked bool) (State, bool) {
	switch category {
	case models.FilterApplicationType:
		s.ApplicationTypes = Toggle(s.ApplicationTypes, value, checked)
	case models.FilterSource:
		s.Sources = Toggle(s.Sources, value, checked)
	default:
		return s, false
	}
	s.Page = 1
	return s, true
}

// WithSort неизвестное значение игнорируется, ok = false
func (s State) WithSort(value models.SortValue) (State, bool) {
	if _, ok := models.FindSortOption(value); !ok {
		return s, false
	}
	if s.Sort == value {
		return s, true
	}
	s.Sort = value
	s.Page = 1
	return s, true
}

// WithPage меняет только страницу, запрошенное значение приводится к [1, totalPages]
func (s State) WithPage(requested, totalPages int) State {
	s.Page = pagination.Clamp(requested, totalPages)
	return s
}

// Clamp страница после пересчета результата не должна превышать max(1, totalPages)
func (s State) Clamp(totalPages int) State {
	if totalPages < 1 {
		totalPages = 1
	}
	if s.Page > totalPages {
		s.Page = totalPages
	}
	if s.Page < 1 {
		s.Page = 1
	}
	return s
}

func (s State) Reset() State {
	return Default()
}

func (s State) IsSelected(category models.FilterCategory, value string) bool {
	switch category {
	case models.FilterApplicationType:
		return slices.Contains(s.ApplicationTypes, value)
	case models.FilterSource:
		return slices.Contains(s.Sources, value)
	}
	return false
}

func (s State) SortOption() models.SortOption {
	option, ok := models.FindSortOption(s.Sort)
	if !ok {
		option, _ = models.FindSortOption(models.DefaultSort)
	}
	return option
}

// Request запрос к источнику данных
func (s State) Request(perPage int) candidateapimodels.ListRequest {
	option := s.SortOption()
	return candidateapimodels.ListRequest{
		Page:             s.Page,
		PerPage:          perPage,
		SortBy:           option.SortField,
		SortOrder:        option.SortOrder,
		Search:           strings.TrimSpace(s.Search),
		ApplicationTypes: slices.Clone(s.ApplicationTypes),
		Sources:          slices.Clone(s.Sources),
	}
}

func (s State) Equal(other State) bool {
	return s.Search == other.Search &&
		s.FullText == other.FullText &&
		s.Sort == other.Sort &&
		s.Page == other.Page &&
		slices.Equal(s.ApplicationTypes, other.ApplicationTypes) &&
		slices.Equal(s.Sources, other.Sources)
}

// Values параметры адреса страницы, обратное к FromFilter
func (s State) Values() url.Values {
	values := url.Values{}
	if search := strings.TrimSpace(s.Search); search != "" {
		values.Set("search", search)
	}
	if s.FullText {
		values.Set("full_text", "true")
	}
	if s.Sort != models.DefaultSort && s.Sort != "" {
		values.Set("sort", string(s.Sort))
	}
	for _, value := range s.ApplicationTypes {
		values.Add("application_type", value)
	}
	for _, value := range s.Sources {
		values.Add("source", value)
	}
	if s.Page > 1 {
		values.Set("page", strconv.Itoa(s.Page))
	}
	return values
}
