package listingapimodels

import (
	"candidate-browser/models"
	candidateapimodels "candidate-browser/models/api/candidate"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ListResponse ответ GET {base}/candidates
type ListResponse struct {
	Data []candidateapimodels.Candidate `json:"data"`
	Meta *ListMeta                      `json:"meta"`
}

type ListMeta struct {
	TotalPages *int `json:"total_pages"`
	Total      *int `json:"total,omitempty"`
	Page       int  `json:"page,omitempty"`
	PerPage    int  `json:"per_page,omitempty"`
}

// GetTotalPages отсутствующее или некорректное значение считаем одной страницей
func (r ListResponse) GetTotalPages() int {
	if r.Meta == nil || r.Meta.TotalPages == nil || *r.Meta.TotalPages < 1 {
		return 1
	}
	return *r.Meta.TotalPages
}

func (r ListResponse) GetTotal() (total int, ok bool) {
	if r.Meta == nil || r.Meta.Total == nil {
		return 0, false
	}
	return *r.Meta.Total, true
}

// SourcesResponse ответ GET {base}/sources
type SourcesResponse struct {
	Sources []string `json:"sources"`
}

// ApplicationTypesResponse ответ GET {base}/application_types
type ApplicationTypesResponse struct {
	ApplicationType []string `json:"application_type"`
}

// ErrorData тело ответа listing api с ошибкой
type ErrorData struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Fixture статический файл с кандидатами
type Fixture struct {
	Candidates []candidateapimodels.Candidate `json:"candidates"`
}

// ListQuery параметры GET {base}/candidates
type ListQuery struct {
	Page             int              `query:"page" validate:"min=0"`
	PerPage          int              `query:"per_page" validate:"min=0,max=1000"`
	SortBy           models.SortField `query:"sort_by" validate:"omitempty,oneof=last_activity name"`
	SortOrder        models.SortOrder `query:"sort_order" validate:"omitempty,oneof=asc desc"`
	Search           string           `query:"search"`
	ApplicationTypes []string         `query:"application_type"`
	Sources          []string         `query:"source"`
}

var queryValidator = validator.New()

func (q ListQuery) Validate() error {
	if err := queryValidator.Struct(q); err != nil {
		return errors.Wrap(err, "некорректные параметры запроса")
	}
	return nil
}

// Request значения по умолчанию как у listing api
func (q ListQuery) Request(defaultPerPage int) candidateapimodels.ListRequest {
	req := candidateapimodels.ListRequest{
		Page:             q.Page,
		PerPage:          q.PerPage,
		SortBy:           q.SortBy,
		SortOrder:        q.SortOrder,
		Search:           q.Search,
		ApplicationTypes: q.ApplicationTypes,
		Sources:          q.Sources,
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = defaultPerPage
	}
	if req.SortBy == "" {
		req.SortBy = models.SortFieldLastActivity
	}
	if req.SortOrder == "" {
		req.SortOrder = models.SortOrderDesc
	}
	return req
}
