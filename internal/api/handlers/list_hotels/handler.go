package list_hotels

import (
	"net/http"

	"github.com/m04kA/HBP-GuestBookingService/internal/api/handlers"
)

type Handler struct {
	catalog HotelCatalog
	logger  Logger
}

func NewHandler(catalog HotelCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels
//
// Недоступность каталога не блокирует бронирование, поэтому ответ всегда 200:
// при деградации - пустой список с флагом degraded.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotels, degraded := h.catalog.List(r.Context())

	if degraded {
		h.logger.Warn("GET /hotels - Catalog degraded, returning empty list")
	} else {
		h.logger.Info("GET /hotels - Returned %d hotels", len(hotels))
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainHotels(hotels, degraded))
}
