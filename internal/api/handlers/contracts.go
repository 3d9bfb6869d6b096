package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmunteanu/contaflow/internal/api/middleware"
	"github.com/vmunteanu/contaflow/internal/domain"
	"github.com/vmunteanu/contaflow/internal/store"
)

// ContractsHandler serves contracts and their mutations.
type ContractsHandler struct {
	contracts *store.ContractStore
	log       zerolog.Logger
}

func NewContractsHandler(contracts *store.ContractStore, log zerolog.Logger) *ContractsHandler {
	return &ContractsHandler{contracts: contracts, log: log}
}

// ListContracts handles GET /api/contracts
func (h *ContractsHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	contracts := h.contracts.Contracts()
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"contracts": contracts,
		"count":     len(contracts),
	})
}

// GetContract handles GET /api/contracts/{id}
func (h *ContractsHandler) GetContract(w http.ResponseWriter, r *http.Request, id string) {
	contract, ok := h.contracts.Get(id)
	if !ok {
		middleware.WriteError(w, http.StatusNotFound, "Contractul nu există")
		return
	}
	middleware.WriteJSON(w, http.StatusOK, contract)
}

// UpdateStatus handles PUT /api/contracts/{id}/status
func (h *ContractsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, id string) {
	var req struct {
		Status domain.ContractStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Corpul cererii nu este valid")
		return
	}
	switch req.Status {
	case domain.ContractStatusDraft, domain.ContractStatusActive,
		domain.ContractStatusCompleted, domain.ContractStatusCancelled,
		domain.ContractStatusExpired:
	default:
		middleware.WriteError(w, http.StatusBadRequest, "Status necunoscut: "+string(req.Status))
		return
	}

	if err := h.contracts.UpdateStatus(id, req.Status); err != nil {
		middleware.WriteError(w, http.StatusNotFound, "Contractul nu există")
		return
	}
	contract, _ := h.contracts.Get(id)
	middleware.WriteJSON(w, http.StatusOK, contract)
}

// AddMilestone handles POST /api/contracts/{id}/milestones
func (h *ContractsHandler) AddMilestone(w http.ResponseWriter, r *http.Request, id string) {
	var req struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		DueDate     time.Time `json:"dueDate"`
		Value       float64   `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Corpul cererii nu este valid")
		return
	}
	if req.Title == "" {
		middleware.WriteError(w, http.StatusBadRequest, "Titlul este obligatoriu")
		return
	}

	milestone, err := h.contracts.AddMilestone(id, domain.ContractMilestone{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Value:       req.Value,
		Status:      domain.MilestonePending,
	})
	if err != nil {
		middleware.WriteError(w, http.StatusNotFound, "Contractul nu există")
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, milestone)
}

// LinkInvoice handles POST /api/contracts/{id}/invoices
func (h *ContractsHandler) LinkInvoice(w http.ResponseWriter, r *http.Request, id string) {
	var req struct {
		InvoiceID string `json:"invoiceId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.InvoiceID == "" {
		middleware.WriteError(w, http.StatusBadRequest, "Câmpul 'invoiceId' este obligatoriu")
		return
	}

	if err := h.contracts.LinkInvoice(id, req.InvoiceID); err != nil {
		middleware.WriteError(w, http.StatusNotFound, "Contractul nu există")
		return
	}
	contract, _ := h.contracts.Get(id)
	middleware.WriteJSON(w, http.StatusOK, contract)
}
