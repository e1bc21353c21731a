package web

import (
	"candidate-browser/controllers"
	"candidate-browser/lib/browse"
	candidatehandler "candidate-browser/lib/candidate"
	"candidate-browser/lib/query"
	"candidate-browser/lib/view"
	vocabularyhandler "candidate-browser/lib/vocabulary"
	candidateapimodels "candidate-browser/models/api/candidate"

	"github.com/gofiber/fiber/v2"
)

type candidatesPageController struct {
	controllers.BaseAPIController
}

func InitPageRouters(app fiber.Router) {
	controller := candidatesPageController{}
	app.Get("/", controller.page)
}

// page первая отрисовка страницы, дальше она обновляется через websocket.
// Без js страница работает на обычных ссылках и форме фильтров.
func (c *candidatesPageController) page(ctx *fiber.Ctx) error {
	var filter candidateapimodels.CandidateFilter
	state := query.Default()
	if err := c.QueryParser(ctx, &filter); err == nil && filter.Validate() == nil {
		state = query.FromFilter(filter)
	}
	errMsg := ""
	result, state, err := candidatehandler.Instance.ListOfCandidate(ctx.UserContext(), state)
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error(candidatehandler.LoadErrorMessage)
		errMsg = candidatehandler.LoadErrorMessage
	}
	body, err := view.RenderPage(browse.NewStaticSnapshot(state, result, errMsg, vocabularyhandler.Instance.Get()))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to render page")
	}
	ctx.Type("html", "utf-8")
	return ctx.Status(fiber.StatusOK).Send(body)
}
