package routers

import (
	"audit-service/internal/app/delivery/http/middlewares"
	"audit-service/internal/app/services/core/samples"
	"audit-service/internal/app/services/core/templates"

	"github.com/go-chi/chi/v5"
)

func attachTemplateRoutes(router chi.Router, middlewares *middlewares.Middlewares, templateController *templates.TemplateController, sampleController *samples.SampleController) {
	// Samples are browsable without an account.
	router.Get("/samples/retail-execution", sampleController.RetailExecutionTemplate)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authentication)

		r.Post("/", templateController.CreateTemplate)
		r.Get("/", templateController.FindAllTemplates)
		r.Get("/{templateID}", templateController.FindTemplateByID)
		r.Put("/{templateID}", templateController.UpdateTemplate)
		r.Delete("/{templateID}", templateController.DeleteTemplateByID)
		r.Post("/{templateID}/publish", templateController.PublishTemplate)
		r.Post("/{templateID}/visibility", templateController.ComputeVisibility)
	})
}
