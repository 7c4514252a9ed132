package routers

import (
	"fmt"
	"time"

	"audit-service/internal/app/config"
	"audit-service/internal/app/delivery/http/middlewares"
	"audit-service/internal/app/services/core/audits"
	"audit-service/internal/app/services/core/auth"
	"audit-service/internal/app/services/core/samples"
	"audit-service/internal/app/services/core/templates"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	templateController *templates.TemplateController,
	auditController *audits.AuditController,
	sampleController *samples.SampleController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.Logging)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	loginLimiter := middlewares.NewLoginLimiter()

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, loginLimiter, authController)
			})

			r.Route("/templates", func(r chi.Router) {
				attachTemplateRoutes(r, middlewares, templateController, sampleController)
			})

			r.Route("/audits", func(r chi.Router) {
				attachAuditRoutes(r, middlewares, auditController)
			})
		})
	})
}
