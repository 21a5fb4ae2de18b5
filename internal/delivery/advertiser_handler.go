package delivery

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adpulse/backend/internal/ports"
)

type AdvertiserHandler struct {
	repo ports.AdvertiserRepo
}

func NewAdvertiserHandler(repo ports.AdvertiserRepo) *AdvertiserHandler {
	return &AdvertiserHandler{repo: repo}
}

func (h *AdvertiserHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		http.Error(w, "failed to list advertisers", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

func (h *AdvertiserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	adv, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "advertiser not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(adv)
}

func (h *AdvertiserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input ports.Advertiser
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if input.Name == "" || input.DisplayName == "" {
		http.Error(w, "missing name or display_name", http.StatusBadRequest)
		return
	}

	created, err := h.repo.Create(r.Context(), &input)
	if err != nil {
		http.Error(w, "failed to create advertiser", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(created)
}

func (h *AdvertiserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var input ports.Advertiser
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	input.ID = id

	if err := h.repo.Update(r.Context(), &input); err != nil {
		http.Error(w, "failed to update advertiser", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(input)
}

func (h *AdvertiserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		http.Error(w, "failed to delete advertiser", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
