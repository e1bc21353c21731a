package view

import (
	"candidate-browser/lib/browse"
	"candidate-browser/lib/query"
	"candidate-browser/models"
	candidateapimodels "candidate-browser/models/api/candidate"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardView(t *testing.T) {
	t.Run(`status label by status type`, func(t *testing.T) {
		require.Equal(t, "Interview", StatusLabel(candidateapimodels.Candidate{Status: "Interview", StatusType: models.StatusTypeStage}))
		require.Equal(t, "Role: Hiring Manager", StatusLabel(candidateapimodels.Candidate{Status: "Hiring Manager", StatusType: models.StatusTypeRole}))
	})

	t.Run(`availability badge`, func(t *testing.T) {
		label, class := AvailabilityBadge("")
		require.Equal(t, "NA", label)
		require.Contains(t, class, "badge-na")
		_, class = AvailabilityBadge(models.AvailabilityAvailable)
		require.Contains(t, class, "badge-available")
		_, class = AvailabilityBadge(models.AvailabilityRequested)
		require.Contains(t, class, "badge-requested")
		_, class = AvailabilityBadge(models.AvailabilityNotRequested)
		require.Contains(t, class, "badge-not-requested")
		label, class = AvailabilityBadge("Pending")
		require.Equal(t, "Pending", label)
		require.Equal(t, "badge", class)
	})

	t.Run(`interviews keep order and open menu`, func(t *testing.T) {
		card := NewCardView(candidateapimodels.Candidate{
			ID:              3,
			HasAvailability: true,
			Interviews: []candidateapimodels.Interview{
				{Name: "Tech", Scheduled: true},
				{Name: "Final"},
			},
		}, 1)
		require.True(t, card.ShowDetails)
		require.Equal(t, "NA", card.AvailabilityLabel)
		require.Len(t, card.Interviews, 2)
		require.Equal(t, "Tech", card.Interviews[0].Name)
		require.Contains(t, card.Interviews[0].BadgeClass, "badge-scheduled")
		require.False(t, card.Interviews[0].MenuOpen)
		require.True(t, card.Interviews[1].MenuOpen)
		require.Equal(t, "interview-menu-3", card.Region)
	})

	t.Run(`card without availability and interviews has no details`, func(t *testing.T) {
		card := NewCardView(candidateapimodels.Candidate{ID: 1}, -1)
		require.False(t, card.ShowDetails)
	})
}

func testSnapshot() browse.Snapshot {
	total := 7
	state, _ := query.Default().WithFilter(models.FilterSource, "Referral", true)
	return browse.NewStaticSnapshot(state, candidateapimodels.CandidatePageView{
		Candidates: []candidateapimodels.Candidate{
			{ID: 1, Name: "Alex Fin", Position: "Backend Developer", Company: "Acme", JobTitle: "Go Engineer", Status: "Interview", StatusType: models.StatusTypeStage,
				HasAvailability: true, AvailabilityStatus: models.AvailabilityAvailable,
				HasInterviews: true, Interviews: []candidateapimodels.Interview{{Name: "Tech", Scheduled: true}, {Name: "Final"}}},
			{ID: 2, Name: "Rahul Jain", Position: "QA", Status: "Hiring Manager", StatusType: models.StatusTypeRole},
		},
		Page:       1,
		PerPage:    5,
		TotalPages: 2,
		Total:      &total,
	}, "", candidateapimodels.FiltersView{
		ApplicationTypes: []string{"active", "archived"},
		Sources:          []string{"LinkedIn", "Referral"},
	})
}

func TestRender(t *testing.T) {
	t.Run(`app contains cards, counter and pagination`, func(t *testing.T) {
		html, err := RenderApp(testSnapshot())
		require.NoError(t, err)
		require.Contains(t, html, "Showing 7 candidates applications")
		require.Contains(t, html, "Alex Fin")
		require.Contains(t, html, "Backend Developer at Acme")
		require.Contains(t, html, "Role: Hiring Manager")
		require.Contains(t, html, "Schedule manually")
		require.Contains(t, html, `data-region="interview-menu-1"`)
		require.Contains(t, html, `data-region="sort-menu"`)
		require.Contains(t, html, "Last Activity (new to old)")
		require.Contains(t, html, `data-page="2"`)
		require.Equal(t, 1, strings.Count(html, `class="page current"`))
		require.Contains(t, html, "Reset Filters")
	})

	t.Run(`selected filter is checked`, func(t *testing.T) {
		page := NewPageView(testSnapshot())
		require.Len(t, page.Sections, 2)
		source := page.Sections[1]
		require.Equal(t, "Source", source.Title)
		require.False(t, source.Options[0].Checked)
		require.True(t, source.Options[1].Checked)
		require.Equal(t, "source=Referral", page.Query)
		require.Contains(t, page.ReportXlsx, "format=xlsx")
		require.Contains(t, page.ReportXlsx, "source=Referral")
	})

	t.Run(`selected filters are shown as removable tags`, func(t *testing.T) {
		page := NewPageView(testSnapshot())
		require.Len(t, page.Tags, 1)
		require.Equal(t, models.FilterSource, page.Tags[0].Category)
		require.Equal(t, "Referral", page.Tags[0].Value)
		require.Equal(t, "/", page.Tags[0].Link)

		html, err := RenderApp(testSnapshot())
		require.NoError(t, err)
		require.Contains(t, html, `data-action="remove_filter" data-category="source" data-value="Referral"`)

		html, err = RenderApp(browse.NewStaticSnapshot(query.Default(), candidateapimodels.CandidatePageView{}, "", candidateapimodels.FiltersView{}))
		require.NoError(t, err)
		require.NotContains(t, html, "filter-tags")
	})

	t.Run(`loading and error take precedence`, func(t *testing.T) {
		s := testSnapshot()
		s.Loading = true
		html, err := RenderApp(s)
		require.NoError(t, err)
		require.Contains(t, html, "Loading...")
		require.NotContains(t, html, "Alex Fin")

		s = testSnapshot()
		s.Error = "Failed to load candidates"
		html, err = RenderApp(s)
		require.NoError(t, err)
		require.Contains(t, html, "Failed to load candidates")
		require.NotContains(t, html, "Alex Fin")
	})

	t.Run(`empty result message`, func(t *testing.T) {
		s := browse.NewStaticSnapshot(query.Default(), candidateapimodels.CandidatePageView{}, "", candidateapimodels.FiltersView{})
		html, err := RenderApp(s)
		require.NoError(t, err)
		require.Contains(t, html, "No candidates found")
		require.Contains(t, html, "Showing 0 candidates applications")
	})

	t.Run(`full page wraps the app`, func(t *testing.T) {
		body, err := RenderPage(testSnapshot())
		require.NoError(t, err)
		require.Contains(t, string(body), `<div id="app" data-query="source=Referral">`)
		require.Contains(t, string(body), "/static/js/browse.js")
	})
}
