package candidateapimodels

import (
	"candidate-browser/models"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type Interview struct {
	Name      string `json:"name"`      // Название интервью
	Scheduled bool   `json:"scheduled"` // Назначено
}

type Candidate struct {
	ID                 int                       `json:"id"`                            // Идентификатор кандидата
	Name               string                    `json:"name"`                          // Имя
	Position           string                    `json:"position"`                      // Текущая должность
	Company            string                    `json:"company"`                       // Текущая компания
	JobTitle           string                    `json:"job_title"`                     // Вакансия
	JobID              string                    `json:"job_id"`                        // Идентификатор вакансии
	Status             string                    `json:"status"`                        // Этап или роль
	StatusType         models.StatusType         `json:"status_type"`                   // stage/role
	LastActivity       string                    `json:"last_activity"`                 // Последняя активность
	ActionLink         string                    `json:"action_link"`                   // Текст ссылки действия
	HasAvailability    bool                      `json:"has_availability"`              // Запрашивалась доступность
	AvailabilityStatus models.AvailabilityStatus `json:"availability_status,omitempty"` // Статус доступности
	HasInterviews      bool                      `json:"has_interviews"`                // Есть интервью
	Interviews         []Interview               `json:"interviews,omitempty"`          // Интервью, порядок важен
	ApplicationType    models.ApplicationType    `json:"application_type"`              // active/archived
	Source             string                    `json:"source"`                        // Источник кандидата
}

// CandidateFilter параметры списка, совпадают с параметрами listing api
type CandidateFilter struct {
	Page             int              `query:"page" validate:"min=0"`                                     // Страница (1,2,3..)
	Search           string           `query:"search" validate:"max=200"`                                 // Поиск по имени/должности/компании/вакансии/статусу
	FullText         bool             `query:"full_text"`                                                 // Полнотекстовый поиск (резюме и заметки)
	Sort             models.SortValue `query:"sort" validate:"omitempty,oneof=activity_desc activity_asc name_asc name_desc"` // Сортировка
	ApplicationTypes []string         `query:"application_type" validate:"dive,max=100"`                  // Тип заявки, можно несколько
	Sources          []string         `query:"source" validate:"dive,max=100"`                            // Источник, можно несколько
}

var filterValidator = validator.New()

func (f CandidateFilter) Validate() error {
	if err := filterValidator.Struct(f); err != nil {
		return errors.Wrap(err, "некорректные параметры фильтра")
	}
	return nil
}

// ListRequest запрос страницы кандидатов к источнику данных
type ListRequest struct {
	Page             int
	PerPage          int
	SortBy           models.SortField
	SortOrder        models.SortOrder
	Search           string
	ApplicationTypes []string
	Sources          []string
}

// ListResult страница кандидатов от источника данных
type ListResult struct {
	Candidates []Candidate
	TotalPages int
	Total      int  // всего найдено, если источник его вернул
	TotalKnown bool // источник вернул общее количество
}

type CandidatePageView struct {
	Candidates []Candidate `json:"candidates"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalPages int         `json:"total_pages"`
	Total      *int        `json:"total,omitempty"`
}

type FiltersView struct {
	ApplicationTypes []string `json:"application_types"` // допустимые типы заявки
	Sources          []string `json:"sources"`           // допустимые источники
}
