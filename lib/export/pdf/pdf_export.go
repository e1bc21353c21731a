package pdfexport

import (
	"bytes"
	"candidate-browser/lib/utils/helpers"
	"candidate-browser/lib/view"
	candidateapimodels "candidate-browser/models/api/candidate"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type Provider interface {
	ExportCandidateList(list []candidateapimodels.Candidate, generatedAt string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

type column struct {
	title string
	width float64
	value func(item candidateapimodels.Candidate) string
}

var columns = []column{
	{"Name", 38, func(item candidateapimodels.Candidate) string { return item.Name }},
	{"Position", 40, func(item candidateapimodels.Candidate) string {
		if item.Company == "" {
			return item.Position
		}
		return fmt.Sprintf("%s at %s", item.Position, item.Company)
	}},
	{"Job", 44, func(item candidateapimodels.Candidate) string { return item.JobTitle }},
	{"Status", 34, view.StatusLabel},
	{"Last Activity", 26, func(item candidateapimodels.Candidate) string { return helpers.FormatActivityTime(item.LastActivity) }},
	{"Type", 20, func(item candidateapimodels.Candidate) string { return string(item.ApplicationType) }},
	{"Source", 28, func(item candidateapimodels.Candidate) string { return item.Source }},
	{"Availability", 27, func(item candidateapimodels.Candidate) string {
		if !item.HasAvailability {
			return ""
		}
		label, _ := view.AvailabilityBadge(item.AvailabilityStatus)
		return label
	}},
}

const (
	rowHeight  = 7.0
	fontFamily = "Helvetica"
)

func (i impl) ExportCandidateList(list []candidateapimodels.Candidate, generatedAt string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportCandidateList panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", "")
	// встроенный шрифт, файлы шрифтов не нужны
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Candidates", true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AliasNbPages("")
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Candidates (%d)", len(list))), "", 1, "L", false, 0, "")
	if generatedAt != "" {
		pdf.SetFont(fontFamily, "", 9)
		pdf.CellFormat(0, 6, tr("Generated "+generatedAt), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	writeHeader(pdf, tr)
	pdf.SetFont(fontFamily, "", 8)
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for idx, item := range list {
		if pdf.GetY()+rowHeight > pageHeight-bottom-12 {
			pdf.AddPage()
			writeHeader(pdf, tr)
			pdf.SetFont(fontFamily, "", 8)
		}
		fill := idx%2 == 1
		pdf.SetFillColor(245, 247, 249)
		for _, col := range columns {
			pdf.CellFormat(col.width, rowHeight, fit(pdf, tr(col.value(item)), col.width), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(list) == 0 {
		pdf.SetFont(fontFamily, "I", 10)
		pdf.CellFormat(0, 10, "No candidates found", "", 1, "L", false, 0, "")
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFont(fontFamily, "B", 9)
	pdf.SetFillColor(232, 241, 239)
	for _, col := range columns {
		pdf.CellFormat(col.width, rowHeight, tr(col.title), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

// fit обрезает уже перекодированный текст по ширине колонки
func fit(pdf *fpdf.Fpdf, text string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(text) <= limit {
		return text
	}
	for len(text) > 0 && pdf.GetStringWidth(text+"...") > limit {
		text = text[:len(text)-1]
	}
	return text + "..."
}
