package salesreport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noren-ops/noren/internal/locale"
	"github.com/noren-ops/noren/internal/observability"
	"github.com/noren-ops/noren/internal/platform/httpx"
)

const (
	msgInsufficient = "データが不足しています。サンプルデータを表示しています。"
	msgLoadError    = "データベース接続エラー"
)

// Response wraps the snapshot with the fallback flags the view reads.
type Response struct {
	Data               Snapshot `json:"data"`
	IsUsingDefaultData bool     `json:"isUsingDefaultData"`
	Error              string   `json:"error,omitempty"`
}

// Handler serves the sales analysis. Insufficient data or a read
// failure degrades to the fixed sample dataset with a message.
type Handler struct {
	logger  *slog.Logger
	service *Service
	metrics *observability.Metrics
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, metrics *observability.Metrics) *Handler {
	return &Handler{logger: logger, service: service, metrics: metrics}
}

// MountRoutes registers the sales analysis route on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.load)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) {
	labels := locale.Match(r.Header.Get("Accept-Language"))

	snap, ok, err := h.service.Load(r.Context(), labels)
	if err != nil {
		h.logger.Error("load sales analysis", slog.Any("error", err))
		h.fallback(w, "load_error", msgLoadError)
		return
	}
	if !ok {
		h.fallback(w, "insufficient_data", msgInsufficient)
		return
	}
	httpx.JSON(w, http.StatusOK, Response{Data: snap})
}

func (h *Handler) fallback(w http.ResponseWriter, reason, message string) {
	if h.metrics != nil {
		h.metrics.CountFallback("sales_analysis", reason)
	}
	httpx.JSON(w, http.StatusOK, Response{
		Data:               FallbackSnapshot(),
		IsUsingDefaultData: true,
		Error:              message,
	})
}
