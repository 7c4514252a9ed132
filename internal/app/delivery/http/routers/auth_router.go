package routers

import (
	"audit-service/internal/app/delivery/http/middlewares"
	"audit-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, loginLimiter *middlewares.RateLimiter, authController *auth.AuthController) {
	router.Post("/register", authController.Register)
	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.With(middlewares.Authentication).Post("/logout", authController.Logout)
}
