package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"lawnmow/internal/quotes/service"
	"lawnmow/pkg/config"
	httputil "lawnmow/pkg/http"
	"lawnmow/pkg/logger"
	"lawnmow/pkg/model"
)

type QuoteHandler struct {
	service service.QuoteService
	cfg     *config.Config
	log     *logger.Logger
}

func NewQuoteHandler(service service.QuoteService, cfg *config.Config, log *logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		service: service,
		cfg:     cfg,
		log:     log,
	}
}

func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var quote model.Quote
	if err := json.NewDecoder(r.Body).Decode(&quote); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &quote); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, quote); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *QuoteHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r, h.cfg)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	quotes, total, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, quotes, total, limit, int(offset)); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "error", err)
	}
}

func (h *QuoteHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/quote", h.Create)
	router.GET("/api/quotes", h.GetAll)
}
