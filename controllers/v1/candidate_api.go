package apiv1

import (
	"candidate-browser/controllers"
	candidatehandler "candidate-browser/lib/candidate"
	"candidate-browser/lib/query"
	vocabularyhandler "candidate-browser/lib/vocabulary"
	"candidate-browser/models"
	apimodels "candidate-browser/models/api"
	candidateapimodels "candidate-browser/models/api/candidate"

	"github.com/gofiber/fiber/v2"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app fiber.Router) {
	controller := candidateApiController{}
	app.Route("candidates", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("filters", controller.filters)
		router.Get("sort-options", controller.sortOptions)
		router.Route("report", func(reportRoute fiber.Router) {
			reportRoute.Get("", reportController.download)
			reportRoute.Post("", reportController.upload)
		})
	})
}

// @Summary Список кандидатов
// @Tags Кандидаты
// @Description Страница кандидатов, запрошенная страница приводится к допустимому диапазону
// @Param   search				query		string		false		"Поиск"
// @Param   full_text			query		bool		false		"Полнотекстовый поиск"
// @Param   sort				query		string		false		"Сортировка: activity_desc, activity_asc, name_asc, name_desc"
// @Param   application_type	query		[]string	false		"Тип заявки"
// @Param   source				query		[]string	false		"Источник"
// @Param   page				query		int			false		"Страница"
// @Success 200 {object} apimodels.ScrollerResponse{data=candidateapimodels.CandidatePageView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	state, err := parseState(&c.BaseAPIController, ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, state, err := candidatehandler.Instance.ListOfCandidate(ctx.UserContext(), state)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, candidatehandler.LoadErrorMessage)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(view, state.Page, view.TotalPages))
}

// @Summary Значения фильтров
// @Tags Кандидаты
// @Description Допустимые типы заявки и источники
// @Success 200 {object} apimodels.Response{data=candidateapimodels.FiltersView}
// @router /api/v1/candidates/filters [get]
func (c *candidateApiController) filters(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(vocabularyhandler.Instance.Get()))
}

// @Summary Варианты сортировки
// @Tags Кандидаты
// @Success 200 {object} apimodels.Response{data=[]models.SortOption}
// @router /api/v1/candidates/sort-options [get]
func (c *candidateApiController) sortOptions(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(models.SortOptions))
}

// parseState параметры фильтра из query, общий для списка и отчетов
func parseState(c *controllers.BaseAPIController, ctx *fiber.Ctx) (query.State, error) {
	var filter candidateapimodels.CandidateFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return query.State{}, err
	}
	if err := filter.Validate(); err != nil {
		return query.State{}, err
	}
	return query.FromFilter(filter), nil
}
