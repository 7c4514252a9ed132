package routers

import (
	"audit-service/internal/app/delivery/http/middlewares"
	"audit-service/internal/app/services/core/audits"

	"github.com/go-chi/chi/v5"
)

func attachAuditRoutes(router chi.Router, middlewares *middlewares.Middlewares, auditController *audits.AuditController) {
	router.Use(middlewares.Authentication)

	router.Post("/", auditController.CreateAudit)
	router.Get("/", auditController.FindAllAudits)
	router.Get("/{auditID}", auditController.FindAuditByID)
	router.Put("/{auditID}", auditController.UpdateAudit)
	router.Post("/{auditID}/submit", auditController.SubmitAudit)
	router.Delete("/{auditID}", auditController.DeleteAuditByID)
}
