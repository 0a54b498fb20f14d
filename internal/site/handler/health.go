package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"atlascars/pkg/client"
	httputil "atlascars/pkg/http"
	"atlascars/pkg/logger"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Catalog string `json:"catalog,omitempty"`
}

// HealthHandler reports liveness and, for readiness, whether the
// upstream catalog service answers its own health probe.
type HealthHandler struct {
	catalog *client.HttpClient
	log     *logger.Logger
}

func NewHealthHandler(catalogBaseURL string, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		catalog: client.NewHttpClient(catalogBaseURL),
		log:     log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	resp, err := h.catalog.GET(r.Context(), "/health")
	if err != nil || resp.StatusCode != http.StatusOK {
		h.log.Error("Catalog health check failed",
			"error", err,
			"path", r.URL.Path,
		)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:  "unavailable",
			Catalog: "error",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:  "ready",
		Catalog: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
