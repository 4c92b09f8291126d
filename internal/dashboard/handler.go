package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noren-ops/noren/internal/observability"
	"github.com/noren-ops/noren/internal/platform/httpx"
	"github.com/noren-ops/noren/internal/schema"
)

const (
	msgNoData    = "データベースにデータがありません。サンプルデータを表示しています。"
	msgLoadError = "データベースに接続できませんでした。サンプルデータを表示しています。"
	msgOK        = "データベースから正常にデータを取得しました。"
)

// SchemaChecker reports whether the expected tables exist.
type SchemaChecker interface {
	Check(ctx context.Context) (schema.Status, error)
}

// Response wraps the snapshot with the fallback flags the view reads.
type Response struct {
	Data               Snapshot `json:"data"`
	IsUsingDefaultData bool     `json:"isUsingDefaultData"`
	DatabaseStatus     string   `json:"databaseStatus"`
	Error              string   `json:"error,omitempty"`
}

// Handler serves the dashboard snapshot. The read path never fails:
// schema gaps, read errors and empty stores all degrade to the fixed
// sample dataset with an explanatory status.
type Handler struct {
	logger  *slog.Logger
	service *Service
	probe   SchemaChecker
	metrics *observability.Metrics
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, probe SchemaChecker, metrics *observability.Metrics) *Handler {
	return &Handler{logger: logger, service: service, probe: probe, metrics: metrics}
}

// MountRoutes registers the dashboard route on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.load)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status, err := h.probe.Check(ctx)
	if err != nil {
		h.logger.Error("schema probe failed", slog.Any("error", err))
		h.fallback(w, "schema_probe", Response{
			IsUsingDefaultData: true,
			DatabaseStatus:     msgLoadError,
			Error:              msgLoadError,
		})
		return
	}
	if !status.Ready {
		h.logger.Warn("schema not ready", slog.Any("missing", status.Missing))
		h.fallback(w, "schema_missing", Response{
			IsUsingDefaultData: true,
			DatabaseStatus:     status.Message(),
		})
		return
	}

	snap, err := h.service.Load(ctx)
	if err != nil {
		h.logger.Error("load dashboard", slog.Any("error", err))
		h.fallback(w, "load_error", Response{
			IsUsingDefaultData: true,
			DatabaseStatus:     msgLoadError,
			Error:              msgLoadError,
		})
		return
	}
	if snap.Empty {
		h.fallback(w, "no_data", Response{
			IsUsingDefaultData: true,
			DatabaseStatus:     msgNoData,
		})
		return
	}

	httpx.JSON(w, http.StatusOK, Response{Data: snap, DatabaseStatus: msgOK})
}

func (h *Handler) fallback(w http.ResponseWriter, reason string, resp Response) {
	if h.metrics != nil {
		h.metrics.CountFallback("dashboard", reason)
	}
	resp.Data = FallbackSnapshot()
	httpx.JSON(w, http.StatusOK, resp)
}
