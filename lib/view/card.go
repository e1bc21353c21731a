package view

import (
	"candidate-browser/lib/browse"
	"candidate-browser/models"
	candidateapimodels "candidate-browser/models/api/candidate"
	"fmt"
)

type InterviewView struct {
	Index      int
	Name       string
	Scheduled  bool
	BadgeClass string
	MenuOpen   bool
}

type CardView struct {
	ID                int
	Name              string
	Position          string
	Company           string
	JobTitle          string
	StatusLabel       string
	ActionLink        string
	Region            string
	ShowDetails       bool
	HasAvailability   bool
	AvailabilityLabel string
	AvailabilityClass string
	Interviews        []InterviewView
}

// StatusLabel этап выводится как есть, роль - "Role: <status>"
func StatusLabel(c candidateapimodels.Candidate) string {
	if c.StatusType == models.StatusTypeRole {
		return fmt.Sprintf("Role: %s", c.Status)
	}
	return c.Status
}

// AvailabilityBadge текст и класс значка доступности, пустой статус - красный "NA"
func AvailabilityBadge(status models.AvailabilityStatus) (label, class string) {
	switch status {
	case "":
		return "NA", "badge badge-na"
	case models.AvailabilityAvailable:
		return string(status), "badge badge-available"
	case models.AvailabilityRequested:
		return string(status), "badge badge-requested"
	case models.AvailabilityNotRequested:
		return string(status), "badge badge-not-requested"
	}
	return string(status), "badge"
}

func InterviewBadgeClass(scheduled bool) string {
	if scheduled {
		return "badge badge-scheduled"
	}
	return "badge badge-unscheduled"
}

// NewCardView openMenu - номер открытого меню интервью, -1 если закрыто
func NewCardView(c candidateapimodels.Candidate, openMenu int) CardView {
	card := CardView{
		ID:              c.ID,
		Name:            c.Name,
		Position:        c.Position,
		Company:         c.Company,
		JobTitle:        c.JobTitle,
		StatusLabel:     StatusLabel(c),
		ActionLink:      c.ActionLink,
		Region:          browse.InterviewMenuRegion(c.ID),
		HasAvailability: c.HasAvailability,
		ShowDetails:     c.HasAvailability || len(c.Interviews) != 0,
		Interviews:      make([]InterviewView, 0, len(c.Interviews)),
	}
	if c.HasAvailability {
		card.AvailabilityLabel, card.AvailabilityClass = AvailabilityBadge(c.AvailabilityStatus)
	}
	for idx, interview := range c.Interviews {
		card.Interviews = append(card.Interviews, InterviewView{
			Index:      idx,
			Name:       interview.Name,
			Scheduled:  interview.Scheduled,
			BadgeClass: InterviewBadgeClass(interview.Scheduled),
			MenuOpen:   idx == openMenu,
		})
	}
	return card
}
