package http

import (
	"log/slog"
	"os"

	"github.com/sejin-enc/laborcost-backend-go/internal/config"
	"github.com/sejin-enc/laborcost-backend-go/internal/handler/http/middleware"
	"github.com/sejin-enc/laborcost-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	invoiceHandler InvoiceHandler,
	registryHandler RegistryHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "laborcost-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

		// Requires authentication; tokens are issued by the company SSO
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Ingest)
				r.Get("/", attendanceHandler.List)
				r.Delete("/{id}", attendanceHandler.Delete)
			})

			r.Route("/workers", func(r chi.Router) {
				r.Post("/", registryHandler.CreateWorker)
				r.Get("/", registryHandler.ListWorkers)
				r.Get("/{id}", registryHandler.GetWorker)

				r.Route("/{workerID}/deductions", func(r chi.Router) {
					r.Post("/", payrollHandler.AddDeduction)
					r.Get("/", payrollHandler.ListDeductions)
				})
			})
			r.Delete("/deductions/{id}", payrollHandler.RemoveDeduction)

			r.Route("/sites", func(r chi.Router) {
				r.Post("/", registryHandler.CreateSite)
				r.Get("/", registryHandler.ListSites)
				r.Get("/{id}", registryHandler.GetSite)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/records", payrollHandler.ListRecords)
				r.Route("/tax-policies", func(r chi.Router) {
					r.Post("/", payrollHandler.CreateTaxPolicy)
					r.Get("/", payrollHandler.ListTaxPolicies)
				})
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Get("/site-grid", invoiceHandler.SiteGrid)
				r.Get("/worker-statement", invoiceHandler.WorkerStatement)
			})
		})
	})
	return r
}
