package health

import (
	"context"
	"net/http"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/api/handlers"
)

// Pinger checks database connectivity.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}

type status struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.logger.Warn("GET /health - Database unreachable: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, status{Status: "degraded", Database: "unreachable"})
		return
	}
	handlers.RespondJSON(w, http.StatusOK, status{Status: "ok", Database: "ok"})
}
