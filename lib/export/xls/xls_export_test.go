package xlsexport

import (
	"candidate-browser/models"
	candidateapimodels "candidate-browser/models/api/candidate"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportCandidateList(t *testing.T) {
	NewHandler()

	t.Run(`header and rows`, func(t *testing.T) {
		buf, err := Instance.ExportCandidateList([]candidateapimodels.Candidate{
			{ID: 1, Name: "Alex Fin", Position: "Backend Developer", Company: "Acme", JobTitle: "Go Engineer", JobID: "J-1",
				Status: "Hiring Manager", StatusType: models.StatusTypeRole, LastActivity: "2024-03-01T10:00:00Z",
				ApplicationType: models.ApplicationTypeActive, Source: "Referral", HasAvailability: true,
				Interviews: []candidateapimodels.Interview{{Name: "Tech", Scheduled: true}, {Name: "Final"}}},
		})
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows(sheetName)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, candidateHeaders, rows[0])
		require.Equal(t, "Alex Fin", rows[1][0])
		require.Equal(t, "Role: Hiring Manager", rows[1][5])
		require.Equal(t, "01.03.2024", rows[1][6])
		require.Equal(t, "active", rows[1][7])
		require.Equal(t, "NA", rows[1][9])
		require.Equal(t, "Tech (Scheduled); Final", rows[1][10])
	})

	t.Run(`empty list has only header`, func(t *testing.T) {
		buf, err := Instance.ExportCandidateList(nil)
		require.NoError(t, err)
		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows(sheetName)
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})
}

func TestAvailabilityText(t *testing.T) {
	t.Run(`not requested availability is empty`, func(t *testing.T) {
		require.Equal(t, "", AvailabilityText(candidateapimodels.Candidate{}))
	})
	t.Run(`status is shown`, func(t *testing.T) {
		require.Equal(t, "Available", AvailabilityText(candidateapimodels.Candidate{HasAvailability: true, AvailabilityStatus: models.AvailabilityAvailable}))
	})
}
