package widget

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/tundeakins/quote-widget-api/pkg/response"
)

type WidgetHandler struct {
	service  *Service
	validate *validator.Validate
}

func NewWidgetHandler(service *Service) WidgetHandler {
	return WidgetHandler{
		service:  service,
		validate: validator.New(),
	}
}

func widgetIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "widgetID"))
	if err != nil || id <= 0 {
		return 0, errors.New("widgetID must be a positive integer")
	}
	return id, nil
}

func positionParam(r *http.Request) (int, error) {
	pos, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil || pos < 0 {
		return 0, errors.New("position must be a non-negative integer")
	}
	return pos, nil
}

func (h *WidgetHandler) GetDisplayHandler(w http.ResponseWriter, r *http.Request) {
	widgetID, err := widgetIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid widget id", err.Error())
		return
	}

	payload, err := h.service.Display(r.Context(), widgetID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to resolve quote", err.Error())
		return
	}

	response.Success(w, payload, "successfully")
}

func (h *WidgetHandler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	widgetID, err := widgetIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid widget id", err.Error())
		return
	}

	if err := h.service.Refresh(r.Context(), widgetID); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to refresh widget", err.Error())
		return
	}

	payload, err := h.service.Display(r.Context(), widgetID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to resolve quote", err.Error())
		return
	}

	response.Success(w, payload, "successfully")
}

func (h *WidgetHandler) ToggleSavedHandler(w http.ResponseWriter, r *http.Request) {
	widgetID, err := widgetIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid widget id", err.Error())
		return
	}

	saved, err := h.service.ToggleSaved(r.Context(), widgetID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to toggle saved", err.Error())
		return
	}

	response.Success(w, map[string]bool{
		"is_saved": saved,
	}, "successfully")
}

func (h *WidgetHandler) GetConfigHandler(w http.ResponseWriter, r *http.Request) {
	widgetID, err := widgetIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid widget id", err.Error())
		return
	}

	cfg, err := h.service.Config(r.Context(), widgetID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get widget config", err.Error())
		return
	}

	response.Success(w, cfg, "successfully")
}

func (h *WidgetHandler) UpdateConfigHandler(w http.ResponseWriter, r *http.Request) {
	widgetID, err := widgetIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid widget id", err.Error())
		return
	}

	var req UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid widget config", err.Error())
		return
	}

	cfg := SurfaceConfig{
		Theme:                req.Theme,
		Appearance:           req.Appearance,
		NotificationsEnabled: *req.NotificationsEnabled,
	}
	if err := h.service.Configure(r.Context(), widgetID, cfg); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update widget config", err.Error())
		return
	}

	response.Success(w, cfg, "successfully")
}

func (h *WidgetHandler) DeleteWidgetHandler(w http.ResponseWriter, r *http.Request) {
	widgetID, err := widgetIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid widget id", err.Error())
		return
	}

	if err := h.service.RemoveSurface(r.Context(), widgetID); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to remove widget", err.Error())
		return
	}

	response.Success(w, "Ok", "successfully")
}

func (h *WidgetHandler) GetSavedQuotesHandler(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.service.SavedQuotes(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get saved quotes", err.Error())
		return
	}

	if quotes == nil {
		quotes = []SavedQuote{}
	}

	response.Success(w, quotes, "successfully")
}

func (h *WidgetHandler) DeleteSavedQuoteHandler(w http.ResponseWriter, r *http.Request) {
	position, err := positionParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid position", err.Error())
		return
	}

	if err := h.service.RemoveSavedQuote(r.Context(), position); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Saved quote not found", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to delete saved quote", err.Error())
		return
	}

	response.Success(w, "Ok", "successfully")
}

func (h *WidgetHandler) ShareSavedQuoteHandler(w http.ResponseWriter, r *http.Request) {
	position, err := positionParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid position", err.Error())
		return
	}

	text, err := h.service.ShareSavedQuote(r.Context(), position)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Saved quote not found", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to share saved quote", err.Error())
		return
	}

	response.Success(w, map[string]string{
		"text": text,
	}, "successfully")
}
