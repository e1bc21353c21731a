package external

import (
	"candidate-browser/controllers"
	candidatestore "candidate-browser/lib/candidate/store"
	listingapimodels "candidate-browser/models/api/listing"

	"github.com/gofiber/fiber/v2"
)

// listingApiController отдает фикстуру по контракту внешнего listing api
type listingApiController struct {
	controllers.BaseAPIController
	store          candidatestore.Provider
	defaultPerPage int
}

func InitListingApiRouters(app fiber.Router, store candidatestore.Provider, defaultPerPage int) {
	controller := listingApiController{
		store:          store,
		defaultPerPage: defaultPerPage,
	}
	app.Get("candidates", controller.list)
	app.Get("sources", controller.sources)
	app.Get("application_types", controller.applicationTypes)
}

// @Summary Listing api: кандидаты
// @Tags Listing api
// @Param   page				query		int			false		"Страница"
// @Param   per_page			query		int			false		"Размер страницы"
// @Param   sort_by				query		string		false		"last_activity, name"
// @Param   sort_order			query		string		false		"asc, desc"
// @Param   search				query		string		false		"Поиск"
// @Param   application_type	query		[]string	false		"Тип заявки"
// @Param   source				query		[]string	false		"Источник"
// @Success 200 {object} listingapimodels.ListResponse
// @Failure 400 {object} listingapimodels.ErrorData
// @Failure 500 {object} listingapimodels.ErrorData
// @router /api/candidates [get]
func (c *listingApiController) list(ctx *fiber.Ctx) error {
	var payload listingapimodels.ListQuery
	if err := c.QueryParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listingapimodels.ErrorData{Error: "bad_request", Message: err.Error()})
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listingapimodels.ErrorData{Error: "bad_request", Message: err.Error()})
	}
	req := payload.Request(c.defaultPerPage)
	result, err := c.store.List(ctx.UserContext(), req)
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("ошибка получения списка кандидатов")
		return ctx.Status(fiber.StatusInternalServerError).JSON(listingapimodels.ErrorData{Error: "internal", Message: "failed to list candidates"})
	}
	totalPages := result.TotalPages
	total := result.Total
	return ctx.Status(fiber.StatusOK).JSON(listingapimodels.ListResponse{
		Data: result.Candidates,
		Meta: &listingapimodels.ListMeta{
			TotalPages: &totalPages,
			Total:      &total,
			Page:       req.Page,
			PerPage:    req.PerPage,
		},
	})
}

// @Summary Listing api: источники
// @Tags Listing api
// @Success 200 {object} listingapimodels.SourcesResponse
// @router /api/sources [get]
func (c *listingApiController) sources(ctx *fiber.Ctx) error {
	list, err := c.store.Sources(ctx.UserContext())
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("ошибка получения источников")
		return ctx.Status(fiber.StatusInternalServerError).JSON(listingapimodels.ErrorData{Error: "internal", Message: "failed to list sources"})
	}
	return ctx.Status(fiber.StatusOK).JSON(listingapimodels.SourcesResponse{Sources: list})
}

// @Summary Listing api: типы заявки
// @Tags Listing api
// @Success 200 {object} listingapimodels.ApplicationTypesResponse
// @router /api/application_types [get]
func (c *listingApiController) applicationTypes(ctx *fiber.Ctx) error {
	list, err := c.store.ApplicationTypes(ctx.UserContext())
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("ошибка получения типов заявки")
		return ctx.Status(fiber.StatusInternalServerError).JSON(listingapimodels.ErrorData{Error: "internal", Message: "failed to list application types"})
	}
	return ctx.Status(fiber.StatusOK).JSON(listingapimodels.ApplicationTypesResponse{ApplicationType: list})
}
