package candidatehandler

import (
	"candidate-browser/lib/query"
	"candidate-browser/lib/utils/helpers"
	candidateapimodels "candidate-browser/models/api/candidate"
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Source источник кандидатов: listing api или локальный файл.
// Поиск, фильтрация, сортировка и разбиение на страницы выполняются источником.
type Source interface {
	List(ctx context.Context, req candidateapimodels.ListRequest) (candidateapimodels.ListResult, error)
}

type Provider interface {
	// ListOfCandidate страница кандидатов по состоянию запроса.
	// Возвращает состояние с приведенной к допустимому диапазону страницей.
	ListOfCandidate(ctx context.Context, state query.State) (candidateapimodels.CandidatePageView, query.State, error)
	// ExportAll все кандидаты, подходящие под состояние запроса, без учета страницы
	ExportAll(ctx context.Context, state query.State) ([]candidateapimodels.Candidate, error)
	PerPage() int
}

var Instance Provider

func NewHandler(source Source, perPage, exportPerPage int) {
	Instance = NewInstance(source, perPage, exportPerPage)
}

func NewInstance(source Source, perPage, exportPerPage int) Provider {
	if perPage < 1 {
		perPage = 5
	}
	if exportPerPage < 1 {
		exportPerPage = 100
	}
	return &impl{
		source:        source,
		perPage:       perPage,
		exportPerPage: exportPerPage,
	}
}

// ограничение обхода страниц при выгрузке
const maxExportPages = 1000

// LoadErrorMessage сообщение пользователю при ошибке получения списка
const LoadErrorMessage = "Failed to load candidates"

type impl struct {
	source        Source
	perPage       int
	exportPerPage int
}

func (i impl) getLogger(state query.State) *log.Entry {
	return log.
		WithField("search", state.Search).
		WithField("sort", state.Sort).
		WithField("page", state.Page)
}

func (i impl) PerPage() int {
	return i.perPage
}

func (i impl) ListOfCandidate(ctx context.Context, state query.State) (candidateapimodels.CandidatePageView, query.State, error) {
	result, err := i.source.List(ctx, state.Request(i.perPage))
	if err != nil {
		i.getLogger(state).WithError(err).Error("ошибка получения списка кандидатов")
		return candidateapimodels.CandidatePageView{}, state, errors.Wrap(err, "ошибка получения списка кандидатов")
	}
	clamped := state.Clamp(result.TotalPages)
	if clamped.Page != state.Page {
		// страница вышла за пределы после пересчета, запрашиваем последнюю допустимую один раз
		i.getLogger(state).
			WithField("total_pages", result.TotalPages).
			Debug("страница приведена к допустимому диапазону")
		result, err = i.source.List(ctx, clamped.Request(i.perPage))
		if err != nil {
			i.getLogger(clamped).WithError(err).Error("ошибка получения списка кандидатов")
			return candidateapimodels.CandidatePageView{}, clamped, errors.Wrap(err, "ошибка получения списка кандидатов")
		}
	}
	return i.toView(clamped, result), clamped, nil
}

func (i impl) toView(state query.State, result candidateapimodels.ListResult) candidateapimodels.CandidatePageView {
	totalPages := result.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	view := candidateapimodels.CandidatePageView{
		Candidates: result.Candidates,
		Page:       state.Page,
		PerPage:    i.perPage,
		TotalPages: totalPages,
	}
	if view.Candidates == nil {
		view.Candidates = []candidateapimodels.Candidate{}
	}
	if result.TotalKnown {
		total := result.Total
		view.Total = &total
	}
	return view
}

func (i impl) ExportAll(ctx context.Context, state query.State) ([]candidateapimodels.Candidate, error) {
	logger := i.getLogger(state)
	list := []candidateapimodels.Candidate{}
	seen := map[int]struct{}{}
	page := 1
	totalPages := 1
	for page <= totalPages && page <= maxExportPages {
		if helpers.IsContextDone(ctx) {
			return nil, errors.Wrap(ctx.Err(), "выгрузка кандидатов прервана")
		}
		req := state.WithPage(page, page).Request(i.exportPerPage)
		result, err := i.source.List(ctx, req)
		if err != nil {
			logger.WithError(err).WithField("export_page", page).Error("ошибка выгрузки кандидатов")
			return nil, errors.Wrapf(err, "ошибка выгрузки страницы %d", page)
		}
		for _, item := range result.Candidates {
			if _, ok := seen[item.ID]; ok {
				continue
			}
			seen[item.ID] = struct{}{}
			list = append(list, item)
		}
		totalPages = result.TotalPages
		page++
	}
	logger.WithField("export_count", len(list)).Debug("кандидаты выгружены")
	return list, nil
}
