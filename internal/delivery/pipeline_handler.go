package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/adpulse/backend/internal/envdata"
)

type PipelineHandler struct {
	svc PipelineService
	log *logger.ZapLogger
}

func NewPipelineHandler(svc PipelineService, log *logger.ZapLogger) *PipelineHandler {
	return &PipelineHandler{svc: svc, log: log}
}

// Ingest receives a fresh environmental snapshot from the collector and
// runs the full match-and-generate pipeline. Always 200: failures are
// inside the result, the collector never needs retry logic.
func (h *PipelineHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var snap envdata.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	snap.Normalize()

	res := h.svc.RunForNewSnapshot(r.Context(), snap)
	if len(res.Errors) > 0 {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "ingest finished with errors", Service: "pipeline"})
	}
	_ = json.NewEncoder(w).Encode(res)
}

func (h *PipelineHandler) Drain(w http.ResponseWriter, r *http.Request) {
	res := h.svc.DrainPending(r.Context())
	_ = json.NewEncoder(w).Encode(res)
}

func (h *PipelineHandler) Retry(w http.ResponseWriter, r *http.Request) {
	res := h.svc.RetryFailed(r.Context())
	_ = json.NewEncoder(w).Encode(res)
}

func (h *PipelineHandler) Stats(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(h.svc.Stats(r.Context()))
}
