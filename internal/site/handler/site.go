package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"atlascars/internal/site/filter"
	"atlascars/internal/site/service"
	apperrors "atlascars/pkg/errors"
	httputil "atlascars/pkg/http"
	"atlascars/pkg/i18n"
	"atlascars/pkg/logger"
	"atlascars/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const langCookieName = "lang"

type SiteHandler struct {
	service  service.SiteService
	provider *i18n.Provider
	log      *logger.Logger
}

func NewSiteHandler(service service.SiteService, provider *i18n.Provider, log *logger.Logger) *SiteHandler {
	return &SiteHandler{
		service:  service,
		provider: provider,
		log:      log,
	}
}

func (h *SiteHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/site/languages", h.Languages)
	router.PUT("/api/site/language", h.SetLanguage)

	router.GET("/api/site/fleet", h.Fleet)
	router.GET("/api/site/filters", h.Filters)
	router.GET("/api/site/cars/:id", h.Car)

	router.POST("/api/site/quote", h.Quote)
	router.POST("/api/site/bookings/preview", h.PreviewBooking)
	router.POST("/api/site/bookings", h.SubmitBooking)

	router.GET("/api/site/pages/:page", h.Page)
}

// language resolves the request language: explicit query parameter, then
// the visitor's cookie, then the process-wide provider default.
func (h *SiteHandler) language(r *http.Request) string {
	if code := r.URL.Query().Get("lang"); i18n.IsSupported(code) {
		return code
	}
	if cookie, err := r.Cookie(langCookieName); err == nil && i18n.IsSupported(cookie.Value) {
		return cookie.Value
	}
	return h.provider.Current().Code
}

type languagesResponse struct {
	Languages []i18n.Language `json:"languages"`
	Current   string          `json:"current"`
	RTL       bool            `json:"rtl"`
}

func (h *SiteHandler) Languages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lang := h.language(r)

	if err := httputil.WriteJSON(w, http.StatusOK, languagesResponse{
		Languages: i18n.Supported(),
		Current:   lang,
		RTL:       i18n.Resolve(lang).RTL,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Languages", "operation", "WriteJSON", "error", err)
	}
}

type setLanguageRequest struct {
	Language string `json:"language"`
}

func (h *SiteHandler) SetLanguage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req setLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "SetLanguage", apperrors.InvalidInput("Invalid request body"))
		return
	}

	if !i18n.IsSupported(req.Language) {
		h.writeError(w, "SetLanguage", apperrors.InvalidInput("Unsupported language code"))
		return
	}

	h.provider.SetLanguage(req.Language)

	http.SetCookie(w, &http.Cookie{
		Name:     langCookieName,
		Value:    req.Language,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})

	if err := httputil.WriteJSON(w, http.StatusOK, languagesResponse{
		Languages: i18n.Supported(),
		Current:   req.Language,
		RTL:       i18n.Resolve(req.Language).RTL,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "SetLanguage", "operation", "WriteJSON", "error", err)
	}
}

func (h *SiteHandler) Fleet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	criteria := filter.Criteria{
		Search:       query.Get("search"),
		PriceRange:   query.Get("price_range"),
		Transmission: query.Get("transmission"),
		Category:     query.Get("category"),
	}

	cars, err := h.service.Fleet(r.Context(), criteria)
	if err != nil {
		h.writeError(w, "Fleet", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, cars); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Fleet", "operation", "WriteJSON", "error", err)
	}
}

func (h *SiteHandler) Filters(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	options, err := h.service.FilterOptions(r.Context(), h.language(r))
	if err != nil {
		h.writeError(w, "Filters", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, options); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Filters", "operation", "WriteJSON", "error", err)
	}
}

func (h *SiteHandler) Car(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	car, err := h.service.Car(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Car", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, car); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Car", "operation", "WriteJSON", "error", err)
	}
}

type quoteRequest struct {
	CarID      string `json:"car_id"`
	PickupDate string `json:"pickup_date"`
	ReturnDate string `json:"return_date"`
}

func (h *SiteHandler) Quote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Quote", apperrors.InvalidInput("Invalid request body"))
		return
	}

	pickup, err := parseDate(req.PickupDate)
	if err != nil {
		h.writeError(w, "Quote", apperrors.InvalidInput("Invalid pickup_date"))
		return
	}
	ret, err := parseDate(req.ReturnDate)
	if err != nil {
		h.writeError(w, "Quote", apperrors.InvalidInput("Invalid return_date"))
		return
	}

	quote, err := h.service.Quote(r.Context(), req.CarID, pickup, ret)
	if err != nil {
		h.writeError(w, "Quote", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, quote); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Quote", "operation", "WriteJSON", "error", err)
	}
}

func (h *SiteHandler) PreviewBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	draft, ok := h.decodeDraft(w, r, "PreviewBooking")
	if !ok {
		return
	}

	result, err := h.service.Preview(r.Context(), draft, h.language(r))
	if err != nil {
		h.writeError(w, "PreviewBooking", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, result); err != nil {
		h.log.Error("failed to write JSON response", "handler", "PreviewBooking", "operation", "WriteJSON", "error", err)
	}
}

func (h *SiteHandler) SubmitBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	draft, ok := h.decodeDraft(w, r, "SubmitBooking")
	if !ok {
		return
	}

	result, err := h.service.Submit(r.Context(), draft, h.language(r))
	if err != nil {
		h.writeError(w, "SubmitBooking", err)
		return
	}

	if err := httputil.WriteCreated(w, result); err != nil {
		h.log.Error("failed to write created response", "handler", "SubmitBooking", "operation", "WriteCreated", "error", err)
	}
}

func (h *SiteHandler) Page(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	b := i18n.BundleFor(h.language(r))

	page, ok := b.Pages[ps.ByName("page")]
	if !ok {
		h.writeError(w, "Page", apperrors.NotFound("Page"))
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, page); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Page", "operation", "WriteJSON", "error", err)
	}
}

// --- Helpers ---

type draftRequest struct {
	model.BookingDraft
	PickupDate string `json:"pickup_date"`
	ReturnDate string `json:"return_date"`
}

func (h *SiteHandler) decodeDraft(w http.ResponseWriter, r *http.Request, handlerName string) (*model.BookingDraft, bool) {
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, apperrors.InvalidInput("Invalid request body"))
		return nil, false
	}

	draft := req.BookingDraft

	pickup, err := parseDate(req.PickupDate)
	if err != nil {
		h.writeError(w, handlerName, apperrors.InvalidInput("Invalid pickup_date"))
		return nil, false
	}
	ret, err := parseDate(req.ReturnDate)
	if err != nil {
		h.writeError(w, handlerName, apperrors.InvalidInput("Invalid return_date"))
		return nil, false
	}
	draft.PickupDate = pickup
	draft.ReturnDate = ret

	return &draft, true
}

func (h *SiteHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "operation", "WriteError", "error", writeErr)
	}
}

// parseDate accepts RFC 3339 timestamps and bare calendar dates. An
// empty string is a missing date, not an error.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
