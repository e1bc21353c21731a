package candidatestore

import (
	"candidate-browser/lib/pagination"
	"candidate-browser/lib/utils/helpers"
	"candidate-browser/models"
	candidateapimodels "candidate-browser/models/api/candidate"
	listingapimodels "candidate-browser/models/api/listing"
	"cmp"
	"context"
	"encoding/json"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider кандидаты из статического файла, фильтрация, сортировка и разбиение на страницы в памяти
type Provider interface {
	List(ctx context.Context, req candidateapimodels.ListRequest) (candidateapimodels.ListResult, error)
	Sources(ctx context.Context) ([]string, error)
	ApplicationTypes(ctx context.Context) ([]string, error)
	All() []candidateapimodels.Candidate
}

func NewInstance(list []candidateapimodels.Candidate) Provider {
	return &impl{
		candidates: dedupe(list),
	}
}

// LoadFixture чтение документа {"candidates": [...]}
func LoadFixture(path string) ([]candidateapimodels.Candidate, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка чтения файла кандидатов %s", path)
	}
	fixture := listingapimodels.Fixture{}
	if err = json.Unmarshal(body, &fixture); err != nil {
		return nil, errors.Wrap(err, "ошибка разбора файла кандидатов")
	}
	if fixture.Candidates == nil {
		return []candidateapimodels.Candidate{}, nil
	}
	return fixture.Candidates, nil
}

type impl struct {
	// только чтение после создания
	candidates []candidateapimodels.Candidate
}

func (i impl) List(ctx context.Context, req candidateapimodels.ListRequest) (candidateapimodels.ListResult, error) {
	if err := ctx.Err(); err != nil {
		return candidateapimodels.ListResult{}, err
	}
	filtered := i.filter(req)
	sortCandidates(filtered, req.SortBy, req.SortOrder)

	total := len(filtered)
	totalPages := pagination.TotalPages(total, req.PerPage)
	page := pagination.Clamp(req.Page, totalPages)
	if page != req.Page {
		// страницу за пределами диапазона не отдаем, как и listing api
		return candidateapimodels.ListResult{
			Candidates: []candidateapimodels.Candidate{},
			TotalPages: totalPages,
			Total:      total,
			TotalKnown: true,
		}, nil
	}
	start, end := pagination.Slice(page, req.PerPage, total)
	return candidateapimodels.ListResult{
		Candidates: slices.Clone(filtered[start:end]),
		TotalPages: totalPages,
		Total:      total,
		TotalKnown: true,
	}, nil
}

func (i impl) Sources(ctx context.Context) ([]string, error) {
	return i.distinct(ctx, func(c candidateapimodels.Candidate) string { return c.Source })
}

func (i impl) ApplicationTypes(ctx context.Context) ([]string, error) {
	return i.distinct(ctx, func(c candidateapimodels.Candidate) string { return string(c.ApplicationType) })
}

func (i impl) All() []candidateapimodels.Candidate {
	return slices.Clone(i.candidates)
}

func (i impl) distinct(ctx context.Context, field func(c candidateapimodels.Candidate) string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := []string{}
	for _, c := range i.candidates {
		value := field(c)
		if value != "" && !slices.Contains(result, value) {
			result = append(result, value)
		}
	}
	slices.Sort(result)
	return result, nil
}

func (i impl) filter(req candidateapimodels.ListRequest) []candidateapimodels.Candidate {
	term := strings.ToLower(strings.TrimSpace(req.Search))
	result := make([]candidateapimodels.Candidate, 0, len(i.candidates))
	for _, c := range i.candidates {
		if !matchesSearch(c, term) {
			continue
		}
		if len(req.ApplicationTypes) != 0 && !slices.Contains(req.ApplicationTypes, string(c.ApplicationType)) {
			continue
		}
		if len(req.Sources) != 0 && !slices.Contains(req.Sources, c.Source) {
			continue
		}
		result = append(result, c)
	}
	return result
}

// matchesSearch подстрока без учета регистра в имени, должности, компании, вакансии или статусе.
// term уже в нижнем регистре, пустой term подходит всем.
func matchesSearch(c candidateapimodels.Candidate, term string) bool {
	if term == "" {
		return true
	}
	fields := []string{c.Name, c.Position, c.Company, c.JobTitle, c.Status}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func compareActivity(a, b string) int {
	ta, okA := helpers.ParseActivityTime(a)
	tb, okB := helpers.ParseActivityTime(b)
	if okA && okB {
		return ta.Compare(tb)
	}
	return strings.Compare(a, b)
}

func sortCandidates(list []candidateapimodels.Candidate, field models.SortField, order models.SortOrder) {
	slices.SortStableFunc(list, func(a, b candidateapimodels.Candidate) int {
		var result int
		switch field {
		case models.SortFieldName:
			result = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		default:
			result = compareActivity(a.LastActivity, b.LastActivity)
		}
		if order == models.SortOrderDesc {
			result = -result
		}
		if result == 0 {
			return cmp.Compare(a.ID, b.ID)
		}
		return result
	})
}

func dedupe(list []candidateapimodels.Candidate) []candidateapimodels.Candidate {
	result := make([]candidateapimodels.Candidate, 0, len(list))
	seen := make(map[int]struct{}, len(list))
	for _, c := range list {
		if _, ok := seen[c.ID]; ok {
			log.WithField("candidate_id", c.ID).Warn("повторяющийся идентификатор кандидата, запись пропущена")
			continue
		}
		seen[c.ID] = struct{}{}
		result = append(result, c)
	}
	return result
}
