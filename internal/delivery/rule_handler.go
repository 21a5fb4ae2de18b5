package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adpulse/backend/internal/ports"
)

type RuleHandler struct {
	repo ports.RuleRepo
}

func NewRuleHandler(repo ports.RuleRepo) *RuleHandler {
	return &RuleHandler{repo: repo}
}

func (h *RuleHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		http.Error(w, "failed to list rules", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

func (h *RuleHandler) Get(w http.ResponseWriter, r *http.Request) {
	rule, err := h.repo.GetByRuleID(r.Context(), chi.URLParam(r, "rule_id"))
	if err != nil {
		http.Error(w, "rule not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(rule)
}

func (h *RuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input ports.ConditionRule
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if input.RuleID == "" || input.AdvertiserID == 0 {
		http.Error(w, "missing rule_id or advertiser_id", http.StatusBadRequest)
		return
	}

	created, err := h.repo.Create(r.Context(), &input)
	if err != nil {
		http.Error(w, "failed to create rule", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(created)
}

func (h *RuleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input ports.ConditionRule
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	input.RuleID = chi.URLParam(r, "rule_id")

	if err := h.repo.Update(r.Context(), &input); err != nil {
		http.Error(w, "failed to update rule", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(input)
}

func (h *RuleHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Deactivate(r.Context(), chi.URLParam(r, "rule_id")); err != nil {
		http.Error(w, "failed to deactivate rule", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
