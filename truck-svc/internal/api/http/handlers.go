package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodtruck/truck-svc/internal/domain"
	"foodtruck/truck-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Info      service.InfoServiceInterface
	Menu      service.MenuServiceInterface
	Locations service.LocationServiceInterface
	logger    *zap.Logger
}

func NewHandler(infoSvc service.InfoServiceInterface, menuSvc service.MenuServiceInterface, locSvc service.LocationServiceInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Info:      infoSvc,
		Menu:      menuSvc,
		Locations: locSvc,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/foodtruck", h.getInfo).Methods("GET")
	r.HandleFunc("/api/foodtruck", h.updateInfo).Methods("PUT")
	r.HandleFunc("/api/foodtruck/qrcode", h.getQRCode).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{id}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/locations", h.getLocations).Methods("GET")
	r.HandleFunc("/api/locations", h.createLocation).Methods("POST")
	r.HandleFunc("/api/locations/{id}", h.updateLocation).Methods("PUT")
	r.HandleFunc("/api/locations/{id}", h.deleteLocation).Methods("DELETE")
}

type menuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	Available   *bool   `json:"available"`
}

func (req menuItemRequest) toDomain(id string) domain.MenuItem {
	return domain.MenuItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Available:   req.Available == nil || *req.Available,
	}
}

type locationRequest struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Schedule  string  `json:"schedule"`
	Active    *bool   `json:"active"`
}

func (req locationRequest) toDomain(id string) domain.Location {
	return domain.Location{
		ID:        id,
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Schedule:  req.Schedule,
		Active:    req.Active == nil || *req.Active,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, notFoundMsg, http.StatusNotFound)
	default:
		h.logger.Error("request failed",
			zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "truck-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Info.Get(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Food truck info not found")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handler) updateInfo(w http.ResponseWriter, r *http.Request) {
	var info domain.BusinessInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Info.Upsert(r.Context(), &info); err != nil {
		h.writeError(w, r, err, "Food truck info not found")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Info.QRCode(r.Context())
	if err != nil {
		h.writeError(w, r, err, "QR code not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Menu not found")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item := req.toDomain("")
	if err := h.Menu.Create(r.Context(), &item); err != nil {
		h.writeError(w, r, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item := req.toDomain(mux.Vars(r)["id"])
	if err := h.Menu.Update(r.Context(), &item); err != nil {
		h.writeError(w, r, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Menu.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Menu item deleted",
	})
}

func (h *Handler) getLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := h.Locations.List(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Locations not found")
		return
	}
	writeJSON(w, http.StatusOK, locs)
}

func (h *Handler) createLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	loc := req.toDomain("")
	if err := h.Locations.Create(r.Context(), &loc); err != nil {
		h.writeError(w, r, err, "Location not found")
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

func (h *Handler) updateLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	loc := req.toDomain(mux.Vars(r)["id"])
	if err := h.Locations.Update(r.Context(), &loc); err != nil {
		h.writeError(w, r, err, "Location not found")
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

func (h *Handler) deleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := h.Locations.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err, "Location not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Location deleted",
	})
}
