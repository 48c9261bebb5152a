package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/opl-logistica/backoffice-go/internal/config"
	"github.com/opl-logistica/backoffice-go/internal/handler/http/middleware"
	"github.com/opl-logistica/backoffice-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	authHandler AuthHandler,
	workerHandler WorkerHandler,
	parameterHandler ParameterHandler,
	settlementHandler SettlementHandler,
	payrollHandler PayrollHandler,
	contractorHandler ContractorHandler,
	userHandler UserHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "opl-backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", workerHandler.List)
				r.Post("/", workerHandler.Create)
				r.Route("/{workerId}", func(r chi.Router) {
					r.Get("/", workerHandler.Get)
					r.Put("/", workerHandler.Update)
					r.Delete("/", workerHandler.Deactivate)
					r.Post("/restore", workerHandler.Restore)

					r.Route("/payroll", func(r chi.Router) {
						r.Get("/form", payrollHandler.Form)
						r.Post("/calculate", payrollHandler.Calculate)
					})

					r.Route("/contractor-payment", func(r chi.Router) {
						r.Get("/form", contractorHandler.Form)
						r.Post("/calculate", contractorHandler.Calculate)
					})
				})
			})

			r.Route("/parameters", func(r chi.Router) {
				r.Get("/", parameterHandler.Overview)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{key}", parameterHandler.UpsertParameter)
					r.Put("/family-allowance-brackets", parameterHandler.ReplaceBrackets)
					r.Route("/entities/{kind}", func(r chi.Router) {
						r.Post("/", parameterHandler.CreateEntity)
						r.Put("/{entityId}", parameterHandler.UpdateEntity)
						r.Delete("/{entityId}", parameterHandler.DeleteEntity)
					})
				})
			})

			r.Route("/settlements", func(r chi.Router) {
				r.Get("/", settlementHandler.List)
				r.Post("/", settlementHandler.Create)
				r.Route("/{settlementId}", func(r chi.Router) {
					r.Get("/", settlementHandler.Get)
					r.Put("/", settlementHandler.Update)
					r.Post("/close", settlementHandler.Close)
					r.Post("/reopen", settlementHandler.Reopen)
					r.Delete("/", settlementHandler.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/roster", payrollHandler.Roster)
				r.Route("/records/{recordId}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetRecord)
					r.Delete("/", payrollHandler.DeleteRecord)
					r.Get("/payslip.pdf", payrollHandler.Payslip)
				})
			})

			r.Route("/contractors", func(r chi.Router) {
				r.Get("/tariff", contractorHandler.GetTariff)
				r.Get("/roster", contractorHandler.Roster)
				r.Get("/register.pdf", contractorHandler.Register)
				r.Route("/payments/{paymentId}", func(r chi.Router) {
					r.Get("/", contractorHandler.GetPayment)
					r.Delete("/", contractorHandler.DeletePayment)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/tariff", contractorHandler.UpdateTariff)
				})
			})

			r.Get("/me", userHandler.Me)

			// Admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Route("/{userId}", func(r chi.Router) {
					r.Get("/", userHandler.Get)
					r.Put("/", userHandler.Update)
					r.Delete("/", userHandler.Deactivate)
				})
			})
		})
	})
	return r
}
