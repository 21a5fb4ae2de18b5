package delivery

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/adpulse/backend/internal/ports"
)

type AudioHandler struct {
	repo ports.AudioRepo
}

func NewAudioHandler(repo ports.AudioRepo) *AudioHandler {
	return &AudioHandler{repo: repo}
}

// ListRecent returns the latest generated audios, newest first.
func (h *AudioHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.repo.ListRecent(r.Context(), limit)
	if err != nil {
		http.Error(w, "failed to list audios", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}
