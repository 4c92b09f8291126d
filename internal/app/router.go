package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/noren-ops/noren/internal/auth"
	"github.com/noren-ops/noren/internal/daily"
	"github.com/noren-ops/noren/internal/dashboard"
	"github.com/noren-ops/noren/internal/monthly"
	"github.com/noren-ops/noren/internal/observability"
	"github.com/noren-ops/noren/internal/salesreport"
	"github.com/noren-ops/noren/internal/shared"
	"github.com/noren-ops/noren/internal/staff"
	"github.com/noren-ops/noren/internal/store"
	"github.com/noren-ops/noren/internal/training"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger             *slog.Logger
	Config             *Config
	SessionManager     *shared.SessionManager
	AuthHandler        *auth.Handler
	DailyHandler       *daily.Handler
	MonthlyHandler     *monthly.Handler
	StaffHandler       *staff.Handler
	TrainingHandler    *training.Handler
	DashboardHandler   *dashboard.Handler
	SalesReportHandler *salesreport.Handler
	StoreHandler       *store.Handler
	Metrics            *observability.Metrics
}

// NewRouter constructs the chi.Router with the default stack.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		if sess == nil || sess.User() == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})

	params.AuthHandler.MountRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)

		r.Route("/dashboard", params.DashboardHandler.MountRoutes)
		r.Route("/api/daily", params.DailyHandler.MountRoutes)
		r.Route("/api/monthly", params.MonthlyHandler.MountRoutes)
		r.Route("/api/staff", params.StaffHandler.MountRoutes)
		r.Route("/api/training", params.TrainingHandler.MountRoutes)
		r.Route("/api/sales-analysis", params.SalesReportHandler.MountRoutes)
		r.Route("/api/settings", params.StoreHandler.MountRoutes)
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
