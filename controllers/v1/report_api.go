package apiv1

import (
	"candidate-browser/controllers"
	candidatehandler "candidate-browser/lib/candidate"
	pdfexport "candidate-browser/lib/export/pdf"
	xlsexport "candidate-browser/lib/export/xls"
	filestorage "candidate-browser/lib/file-storage"
	"candidate-browser/lib/utils/lock"
	apimodels "candidate-browser/models/api"
	candidateapimodels "candidate-browser/models/api/candidate"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type reportApiController struct {
	controllers.BaseAPIController
}

var reportController = reportApiController{}

const (
	reportFormatXlsx = "xlsx"
	reportFormatPdf  = "pdf"
	mimeXlsx         = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePdf          = "application/pdf"
	reportLockKey    = "candidate-report"
	reportLockWait   = 30 * time.Second
)

var errReportBusy = errors.New("report generation is busy, try again later")

type report struct {
	fileName    string
	contentType string
	body        []byte
}

// ReportLink ответ на сохранение отчета в хранилище
type ReportLink struct {
	Url string `json:"url"` // временная ссылка на скачивание
}

// @Summary Выгрузка отчета
// @Tags Кандидаты
// @Description Все кандидаты по текущим фильтрам и сортировке без разбиения на страницы
// @Param   format				query		string		true		"Формат: xlsx, pdf"
// @Param   search				query		string		false		"Поиск"
// @Param   sort				query		string		false		"Сортировка"
// @Param   application_type	query		[]string	false		"Тип заявки"
// @Param   source				query		[]string	false		"Источник"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/candidates/report [get]
func (c *reportApiController) download(ctx *fiber.Ctx) error {
	rep, status, err := c.build(ctx)
	if err != nil {
		if status != fiber.StatusInternalServerError {
			return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to generate report")
	}
	ctx.Attachment(rep.fileName)
	ctx.Set(fiber.HeaderContentType, rep.contentType)
	return ctx.Status(fiber.StatusOK).Send(rep.body)
}

// @Summary Сохранение отчета
// @Tags Кандидаты
// @Description Отчет сохраняется в S3, в ответе временная ссылка
// @Param   format				query		string		true		"Формат: xlsx, pdf"
// @Success 200 {object} apimodels.Response{data=apiv1.ReportLink}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/candidates/report [post]
func (c *reportApiController) upload(ctx *fiber.Ctx) error {
	if filestorage.Instance == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("report storage is not configured"))
	}
	rep, status, err := c.build(ctx)
	if err != nil {
		if status != fiber.StatusInternalServerError {
			return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to generate report")
	}
	link, err := filestorage.Instance.UploadReport(ctx.UserContext(), rep.fileName, rep.body, rep.contentType)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to store report")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(ReportLink{Url: link}))
}

func (c *reportApiController) build(ctx *fiber.Ctx) (rep report, status int, err error) {
	format := ctx.Query("format", reportFormatXlsx)
	if format != reportFormatXlsx && format != reportFormatPdf {
		return rep, fiber.StatusBadRequest, errors.Errorf("unsupported report format %q", format)
	}
	state, err := parseState(&c.BaseAPIController, ctx)
	if err != nil {
		return rep, fiber.StatusBadRequest, err
	}
	// полная выгрузка обходит все страницы listing api, одновременно строим один отчет
	success, err := lock.WithDelay(ctx.UserContext(), reportLockKey, reportLockWait, func() error {
		list, err := candidatehandler.Instance.ExportAll(ctx.UserContext(), state)
		if err != nil {
			return err
		}
		now := time.Now()
		rep.fileName = fmt.Sprintf("candidates_%s.%s", now.Format("20060102_150405"), format)
		switch format {
		case reportFormatPdf:
			rep.contentType = mimePdf
			rep.body, err = pdfexport.Instance.ExportCandidateList(list, now.Format("02.01.2006 15:04"))
		default:
			rep.contentType = mimeXlsx
			rep.body, err = exportXlsx(list)
		}
		return err
	})
	if !success {
		return rep, fiber.StatusServiceUnavailable, errReportBusy
	}
	if err != nil {
		return rep, fiber.StatusInternalServerError, err
	}
	return rep, fiber.StatusOK, nil
}

func exportXlsx(list []candidateapimodels.Candidate) ([]byte, error) {
	buf, err := xlsexport.Instance.ExportCandidateList(list)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
