package handlers

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/vmunteanu/contaflow/internal/api/middleware"
	"github.com/vmunteanu/contaflow/internal/store"
)

// DashboardHandler aggregates the headline numbers the dashboard shows.
type DashboardHandler struct {
	documents  *store.DocumentStore
	contracts  *store.ContractStore
	banking    *store.BankingStore
	accounting *store.AccountingStore
	log        zerolog.Logger
}

func NewDashboardHandler(
	documents *store.DocumentStore,
	contracts *store.ContractStore,
	banking *store.BankingStore,
	accounting *store.AccountingStore,
	log zerolog.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		documents:  documents,
		contracts:  contracts,
		banking:    banking,
		accounting: accounting,
		log:        log,
	}
}

// Summary handles GET /api/dashboard/summary
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	revenue, expenses := totals(h.documents.Transactions())
	recon := h.banking.Summary()

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"totalRevenue":       revenue,
		"totalExpenses":      expenses,
		"profit":             revenue - expenses,
		"documentCount":      len(h.documents.Documents()),
		"contractCount":      len(h.contracts.Contracts()),
		"statementCount":     len(h.banking.Statements()),
		"invoiceCount":       len(h.accounting.Invoices()),
		"clientCount":        len(h.accounting.Clients()),
		"reconciliationRate": recon.ReconciliationRate,
	})
}
