package home

import (
	"net/http"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/api/handlers"
	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
)

type Handler struct {
	useCase  GetCalendarUseCase
	renderer Renderer
	cfg      domain.StaticConfig
	logger   Logger
}

func NewHandler(useCase GetCalendarUseCase, renderer Renderer, cfg domain.StaticConfig, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		renderer: renderer,
		cfg:      cfg,
		logger:   logger,
	}
}

// Handle GET /
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET / - Failed to build calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	data := FromUseCaseResponse(result, &h.cfg, r.URL.Query().Get("message"))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, "index.html", data); err != nil {
		h.logger.Error("GET / - Failed to render calendar: %v", err)
	}
}
