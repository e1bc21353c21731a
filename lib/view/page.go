package view

import (
	"bytes"
	"candidate-browser/lib/browse"
	"candidate-browser/lib/pagination"
	"candidate-browser/lib/query"
	"candidate-browser/lib/utils/helpers"
	"candidate-browser/models"
	"embed"
	"html/template"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.New("candidates").ParseFS(templatesFS, "templates/*.html"))

type SortOptionView struct {
	Label    string
	Value    models.SortValue
	Selected bool
	Link     string
}

type FilterOptionView struct {
	Value   string
	Checked bool
}

type SectionView struct {
	Category models.FilterCategory
	Title    string
	Open     bool
	Options  []FilterOptionView
}

// FilterTagView выбранное значение фильтра, крестик снимает выбор
type FilterTagView struct {
	Category models.FilterCategory
	Value    string
	Link     string
}

type PageLinkView struct {
	pagination.Page
	Link string
}

type PageView struct {
	SessionID    string
	Search       string
	FullText     bool
	SortLabel    string
	SortMenuOpen bool
	SortOptions  []SortOptionView
	Sections     []SectionView
	Tags         []FilterTagView
	Loading      bool
	Error        string
	Empty        bool
	Cards        []CardView
	ShownCount   int
	ShownSuffix  string
	Pagination   pagination.View
	Pages        []PageLinkView
	PrevLink     string
	NextLink     string
	Query        string
	ReportXlsx   string
	ReportPdf    string
	SortRegion   string
}

var sectionTitles = map[models.FilterCategory]string{
	models.FilterApplicationType: "Application Type",
	models.FilterSource:          "Source",
}

func NewPageView(s browse.Snapshot) PageView {
	option := s.State.SortOption()
	page := PageView{
		SessionID:    s.SessionID,
		Search:       s.Draft,
		FullText:     s.State.FullText,
		SortLabel:    option.Label,
		SortMenuOpen: s.SortMenuOpen,
		Loading:      s.Loading,
		Error:        s.Error,
		ShownCount:   s.ShownCount(),
		Pagination:   s.Pagination,
		Query:        s.State.Values().Encode(),
		SortRegion:   browse.SortMenuRegion,
	}
	page.ShownSuffix = helpers.Plural(page.ShownCount)

	for _, item := range models.SortOptions {
		sorted, _ := s.State.WithSort(item.Value)
		page.SortOptions = append(page.SortOptions, SortOptionView{
			Label:    item.Label,
			Value:    item.Value,
			Selected: item.Value == option.Value,
			Link:     link(sorted),
		})
	}

	page.Sections = []SectionView{
		newSectionView(s, models.FilterApplicationType, s.Filters.ApplicationTypes),
		newSectionView(s, models.FilterSource, s.Filters.Sources),
	}

	page.Tags = append(newFilterTags(s.State, models.FilterApplicationType, s.State.ApplicationTypes),
		newFilterTags(s.State, models.FilterSource, s.State.Sources)...)

	// загрузка и ошибка важнее устаревших данных
	if !s.Loading && s.Error == "" {
		for _, item := range s.Result.Candidates {
			openMenu := -1
			if index, ok := s.InterviewMenuOpen(item.ID); ok {
				openMenu = index
			}
			page.Cards = append(page.Cards, NewCardView(item, openMenu))
		}
		page.Empty = len(page.Cards) == 0
	}

	for _, item := range s.Pagination.Pages {
		page.Pages = append(page.Pages, PageLinkView{Page: item, Link: link(s.State.WithPage(item.Number, s.Pagination.TotalPages))})
	}
	page.PrevLink = link(s.State.WithPage(s.Pagination.Prev, s.Pagination.TotalPages))
	page.NextLink = link(s.State.WithPage(s.Pagination.Next, s.Pagination.TotalPages))
	page.ReportXlsx = reportLink(s.State, "xlsx")
	page.ReportPdf = reportLink(s.State, "pdf")
	return page
}

func newSectionView(s browse.Snapshot, category models.FilterCategory, vocabulary []string) SectionView {
	section := SectionView{
		Category: category,
		Title:    sectionTitles[category],
		Open:     s.SectionOpen(category),
		Options:  make([]FilterOptionView, 0, len(vocabulary)),
	}
	for _, value := range vocabulary {
		section.Options = append(section.Options, FilterOptionView{
			Value:   value,
			Checked: s.State.IsSelected(category, value),
		})
	}
	return section
}

func newFilterTags(state query.State, category models.FilterCategory, selected []string) []FilterTagView {
	tags := make([]FilterTagView, 0, len(selected))
	for _, value := range selected {
		removed, _ := state.WithFilter(category, value, false)
		tags = append(tags, FilterTagView{Category: category, Value: value, Link: link(removed)})
	}
	return tags
}

func link(state query.State) string {
	values := state.Values()
	if len(values) == 0 {
		return "/"
	}
	return "/?" + values.Encode()
}

func reportLink(state query.State, format string) string {
	values := state.Values()
	values.Del("page")
	values.Set("format", format)
	return "/api/v1/candidates/report?" + values.Encode()
}

// RenderApp содержимое контейнера #app для отправки в websocket
func RenderApp(s browse.Snapshot) (string, error) {
	buf := new(bytes.Buffer)
	if err := pageTemplates.ExecuteTemplate(buf, "app", NewPageView(s)); err != nil {
		return "", errors.Wrap(err, "ошибка формирования страницы")
	}
	return buf.String(), nil
}

// RenderPage полный документ для первого открытия страницы
func RenderPage(s browse.Snapshot) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := pageTemplates.ExecuteTemplate(buf, "page", NewPageView(s)); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования страницы")
	}
	return buf.Bytes(), nil
}
