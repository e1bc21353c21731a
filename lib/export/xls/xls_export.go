package xlsexport

import (
	"bytes"
	"candidate-browser/lib/utils/helpers"
	"candidate-browser/lib/view"
	candidateapimodels "candidate-browser/models/api/candidate"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCandidateList(list []candidateapimodels.Candidate) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const sheetName = "Candidates"

var candidateHeaders = []string{"Name", "Position", "Company", "Job", "Job ID", "Status", "Last Activity", "Application Type", "Source", "Availability", "Interviews"}

func (i impl) ExportCandidateList(list []candidateapimodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, sheetName); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
	}
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []candidateapimodels.Candidate, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.Name,
			item.Position,
			item.Company,
			item.JobTitle,
			item.JobID,
			view.StatusLabel(item),
			helpers.FormatActivityTime(item.LastActivity),
			string(item.ApplicationType),
			item.Source,
			AvailabilityText(item),
			InterviewsText(item.Interviews),
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

// AvailabilityText значение доступности для отчета
func AvailabilityText(item candidateapimodels.Candidate) string {
	if !item.HasAvailability {
		return ""
	}
	label, _ := view.AvailabilityBadge(item.AvailabilityStatus)
	return label
}

// InterviewsText интервью в исходном порядке, назначенные отмечены
func InterviewsText(list []candidateapimodels.Interview) string {
	parts := make([]string, 0, len(list))
	for _, interview := range list {
		if interview.Scheduled {
			parts = append(parts, interview.Name+" (Scheduled)")
			continue
		}
		parts = append(parts, interview.Name)
	}
	return strings.Join(parts, "; ")
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
