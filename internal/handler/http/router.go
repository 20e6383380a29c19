package http

import (
	"log/slog"
	"os"

	"github.com/brightserv/ops-backend-go/internal/config"
	"github.com/brightserv/ops-backend-go/internal/handler/http/middleware"
	"github.com/brightserv/ops-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	Client       ClientHandler
	Site         SiteHandler
	Employee     EmployeeHandler
	WorkLocation WorkLocationHandler
	WorkRecord   WorkRecordHandler
	Cashflow     CashflowHandler
	Task         TaskHandler
	Chat         ChatHandler
	Cleaning     CleaningHandler
	Report       ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "brightserv-ops"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Operator accounts are admin-created, not self-service.
			r.With(middleware.RequireAdmin).Post("/auth/register", h.Auth.Register)

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.Client.List)
				r.Get("/{id}", h.Client.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Client.Create)
					r.Put("/{id}", h.Client.Update)
					r.Delete("/{id}", h.Client.Delete)
				})
			})

			r.Route("/sites", func(r chi.Router) {
				r.Get("/", h.Site.List)
				r.Get("/{id}", h.Site.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Site.Create)
					r.Put("/{id}", h.Site.Update)
					r.Delete("/{id}", h.Site.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/work-locations", func(r chi.Router) {
				r.Post("/", h.WorkLocation.Create)
				r.Post("/check", h.WorkLocation.CheckLocation)
				r.Get("/{id}", h.WorkLocation.Get)
				r.Get("/employee/{employeeID}", h.WorkLocation.ListByEmployee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", h.WorkLocation.ListPending)
					r.Delete("/{id}", h.WorkLocation.Delete)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/{id}/approve", h.WorkLocation.Approve)
					r.Post("/{id}/reject", h.WorkLocation.Reject)
				})
			})

			r.Route("/work-records", func(r chi.Router) {
				r.Post("/clock-in", h.WorkRecord.ClockIn)
				r.Post("/clock-out", h.WorkRecord.ClockOut)
				r.Get("/", h.WorkRecord.List)
				r.Get("/{id}", h.WorkRecord.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/leave", h.WorkRecord.RecordLeave)
					r.Post("/{id}/approve", h.WorkRecord.Approve)
					r.Post("/{id}/reject", h.WorkRecord.Reject)
				})
			})

			r.Route("/cashflow", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/", h.Cashflow.List)
				r.Post("/", h.Cashflow.Create)
				r.Get("/{id}", h.Cashflow.Get)
				r.Put("/{id}", h.Cashflow.Update)
				r.Post("/{id}/mark-paid", h.Cashflow.MarkPaid)
				r.Delete("/{id}", h.Cashflow.Delete)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/board", h.Task.Board)
				r.Get("/{id}", h.Task.Get)
				r.Post("/", h.Task.Create)
				r.Put("/{id}", h.Task.Update)
				r.Post("/{id}/move", h.Task.Move)
				r.Delete("/{id}", h.Task.Delete)
			})

			r.Route("/chat", func(r chi.Router) {
				r.Get("/groups", h.Chat.ListGroups)
				r.Post("/groups", h.Chat.CreateGroup)
				r.Put("/groups/{groupID}/members", h.Chat.UpdateMembers)
				r.Delete("/groups/{groupID}", h.Chat.DeleteGroup)
				r.Get("/groups/{groupID}/messages", h.Chat.ListMessages)
				r.Post("/groups/{groupID}/messages", h.Chat.PostMessage)
			})

			r.Route("/cleaning-entries", func(r chi.Router) {
				r.Get("/", h.Cleaning.List)
				r.Post("/", h.Cleaning.Create)
				r.Get("/{id}", h.Cleaning.Get)
				r.Put("/{id}", h.Cleaning.Update)
				r.With(middleware.RequireManager).Delete("/{id}", h.Cleaning.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/timesheet", h.Report.Timesheet)
				r.Get("/timesheet/export", h.Report.TimesheetExport)
			})
		})
	})

	return r
}
