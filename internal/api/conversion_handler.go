package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/unitconv/internal/api/shared"
	"github.com/phrazzld/unitconv/internal/domain"
	"github.com/phrazzld/unitconv/internal/service"
)

// ConversionHandler handles the category, unit and conversion endpoints.
type ConversionHandler struct {
	conversionService service.ConversionService
}

// NewConversionHandler creates a new ConversionHandler
func NewConversionHandler(conversionService service.ConversionService) *ConversionHandler {
	return &ConversionHandler{
		conversionService: conversionService,
	}
}

// ListCategories handles GET /api/categories requests. The body is a bare
// array of categories in display order.
func (h *ConversionHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.conversionService.Categories(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, categoriesToResponse(categories))
}

// ListUnits handles GET /api/categories/{category}/units requests.
// An unknown category is a missing resource here, hence 404.
func (h *ConversionHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	c, err := h.conversionService.Category(r.Context(), category)
	if err != nil {
		status := MapErrorToStatusCode(err)
		if errors.Is(err, domain.ErrInvalidCategory) {
			status = http.StatusNotFound
		}
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, unitsToResponse(c))
}

// CreateConversion handles POST /api/conversions requests
func (h *ConversionHandler) CreateConversion(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	h.convert(w, r, domain.ConversionRequest{
		Category: req.Category,
		From:     req.From,
		To:       req.To,
		Value:    *req.Value,
	})
}

// Convert handles GET /api/convert?category=&from=&to=&value= requests, the
// query-string form of CreateConversion.
func (h *ConversionHandler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	for _, param := range []string{"category", "from", "to", "value"} {
		if q.Get(param) == "" {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+param+": required field")
			return
		}
	}

	value, err := strconv.ParseFloat(q.Get("value"), 64)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid value: not a number", err)
		return
	}

	h.convert(w, r, domain.ConversionRequest{
		Category: q.Get("category"),
		From:     q.Get("from"),
		To:       q.Get("to"),
		Value:    value,
	})
}

func (h *ConversionHandler) convert(w http.ResponseWriter, r *http.Request, req domain.ConversionRequest) {
	conv, err := h.conversionService.Convert(r.Context(), req)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, conversionToResponse(conv))
}
