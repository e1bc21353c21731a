package web

import (
	candidatehandler "candidate-browser/lib/candidate"
	candidatestore "candidate-browser/lib/candidate/store"
	vocabularyhandler "candidate-browser/lib/vocabulary"
	"candidate-browser/models"
	candidateapimodels "candidate-browser/models/api/candidate"
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) List(context.Context, candidateapimodels.ListRequest) (candidateapimodels.ListResult, error) {
	return candidateapimodels.ListResult{}, errors.New("listing unavailable")
}

func getPage(t *testing.T, target string) (int, string) {
	app := fiber.New()
	InitPageRouters(app)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestCandidatesPage(t *testing.T) {
	store := candidatestore.NewInstance([]candidateapimodels.Candidate{
		{ID: 1, Name: "Alex Fin", Position: "Backend Developer", Company: "Acme", Status: "Interview", StatusType: models.StatusTypeStage,
			LastActivity: "2024-05-02", ApplicationType: models.ApplicationTypeActive, Source: "Referral"},
		{ID: 2, Name: "Rahul Jain", Position: "QA", Status: "Hiring Manager", StatusType: models.StatusTypeRole,
			LastActivity: "2024-05-01", ApplicationType: models.ApplicationTypeArchived, Source: "LinkedIn"},
	})
	vocabularyhandler.NewHandler(store)
	require.NoError(t, vocabularyhandler.Instance.Refresh(context.Background()))

	t.Run(`page is rendered with candidates`, func(t *testing.T) {
		candidatehandler.NewHandler(store, 5, 100)
		status, body := getPage(t, "/")
		require.Equal(t, fiber.StatusOK, status)
		require.Contains(t, body, "<!DOCTYPE html>")
		require.Contains(t, body, "Alex Fin")
		require.Contains(t, body, "Role: Hiring Manager")
		require.Contains(t, body, "Showing 2 candidates applications")
	})

	t.Run(`query params select the state`, func(t *testing.T) {
		candidatehandler.NewHandler(store, 5, 100)
		status, body := getPage(t, "/?search=rahul")
		require.Equal(t, fiber.StatusOK, status)
		require.Contains(t, body, "Rahul Jain")
		require.NotContains(t, body, "Alex Fin")
		require.Contains(t, body, `data-query="search=rahul"`)
	})

	t.Run(`invalid params fall back to defaults`, func(t *testing.T) {
		candidatehandler.NewHandler(store, 5, 100)
		status, body := getPage(t, "/?sort=salary")
		require.Equal(t, fiber.StatusOK, status)
		require.Contains(t, body, "Alex Fin")
		require.Contains(t, body, "Rahul Jain")
	})

	t.Run(`listing error shows message`, func(t *testing.T) {
		candidatehandler.NewHandler(failingSource{}, 5, 100)
		status, body := getPage(t, "/")
		require.Equal(t, fiber.StatusOK, status)
		require.Contains(t, body, candidatehandler.LoadErrorMessage)
		require.NotContains(t, body, "Alex Fin")
	})
}
