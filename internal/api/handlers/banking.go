package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/vmunteanu/contaflow/internal/api/middleware"
	"github.com/vmunteanu/contaflow/internal/store"
)

// BankingHandler serves bank statements, transactions and
// reconciliations.
type BankingHandler struct {
	banking *store.BankingStore
	log     zerolog.Logger
}

func NewBankingHandler(banking *store.BankingStore, log zerolog.Logger) *BankingHandler {
	return &BankingHandler{banking: banking, log: log}
}

// ListStatements handles GET /api/bank-statements
func (h *BankingHandler) ListStatements(w http.ResponseWriter, r *http.Request) {
	statements := h.banking.Statements()
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"statements": statements,
		"count":      len(statements),
	})
}

// ListTransactions handles GET /api/bank-transactions
func (h *BankingHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs := h.banking.Transactions()
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": txs,
		"count":        len(txs),
	})
}

// ListReconciliations handles GET /api/reconciliations
func (h *BankingHandler) ListReconciliations(w http.ResponseWriter, r *http.Request) {
	recs := h.banking.Reconciliations()
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"reconciliations": recs,
		"count":           len(recs),
	})
}

// Summary handles GET /api/reconciliations/summary
func (h *BankingHandler) Summary(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, h.banking.Summary())
}

// ManualReconcile handles POST /api/reconciliations/{id}. The supplied
// id lists replace the automatic matches entirely.
func (h *BankingHandler) ManualReconcile(w http.ResponseWriter, r *http.Request, id string) {
	var req struct {
		DocumentIDs []string `json:"documentIds"`
		InvoiceIDs  []string `json:"invoiceIds"`
		Notes       string   `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Corpul cererii nu este valid")
		return
	}

	if err := h.banking.ManualReconcile(id, req.DocumentIDs, req.InvoiceIDs, req.Notes); err != nil {
		middleware.WriteError(w, http.StatusNotFound, "Reconcilierea nu există")
		return
	}

	h.log.Info().Str("reconciliation_id", id).Msg("Manual reconciliation applied")

	for _, rec := range h.banking.Reconciliations() {
		if rec.ID == id {
			middleware.WriteJSON(w, http.StatusOK, rec)
			return
		}
	}
}
