package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/vmunteanu/contaflow/internal/api/middleware"
	"github.com/vmunteanu/contaflow/internal/domain"
	"github.com/vmunteanu/contaflow/internal/store"
)

// AccountingHandler serves the form-driven records: clients, suppliers,
// invoices, products, tax reports, bank accounts, budgets and settings.
type AccountingHandler struct {
	accounting *store.AccountingStore
	log        zerolog.Logger
}

func NewAccountingHandler(accounting *store.AccountingStore, log zerolog.Logger) *AccountingHandler {
	return &AccountingHandler{accounting: accounting, log: log}
}

// Clients handles GET and POST /api/clients
func (h *AccountingHandler) Clients(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		clients := h.accounting.Clients()
		middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"clients": clients,
			"count":   len(clients),
		})
	case http.MethodPost:
		var client domain.Client
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, "Corpul cererii nu este valid")
			return
		}
		if client.Name == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Numele clientului este obligatoriu")
			return
		}
		middleware.WriteJSON(w, http.StatusCreated, h.accounting.AddClient(client))
	default:
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// Suppliers handles GET and POST /api/suppliers
func (h *AccountingHandler) Suppliers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		suppliers := h.accounting.Suppliers()
		middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"suppliers": suppliers,
			"count":     len(suppliers),
		})
	case http.MethodPost:
		var supplier domain.Supplier
		if err := json.NewDecoder(r.Body).Decode(&supplier); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, "Corpul cererii nu este valid")
			return
		}
		if supplier.Name == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Numele furnizorului este obligatoriu")
			return
		}
		middleware.WriteJSON(w, http.StatusCreated, h.accounting.AddSupplier(supplier))
	default:
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// Products handles GET and POST /api/products
func (h *AccountingHandler) Products(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		products := h.accounting.Products()
		middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"products": products,
			"count":    len(products),
		})
	case http.MethodPost:
		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, "Corpul cererii nu este valid")
			return
		}
		if product.Name == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Numele produsului este obligatoriu")
			return
		}
		middleware.WriteJSON(w, http.StatusCreated, h.accounting.AddProduct(product))
	default:
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// Invoices handles GET and POST /api/invoices
func (h *AccountingHandler) Invoices(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		invoices := h.accounting.Invoices()
		middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"invoices": invoices,
			"count":    len(invoices),
		})
	case http.MethodPost:
		var invoice domain.Invoice
		if err := json.NewDecoder(r.Body).Decode(&invoice); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, "Corpul cererii nu este valid")
			return
		}
		if invoice.ClientID == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Câmpul 'clientId' este obligatoriu")
			return
		}
		middleware.WriteJSON(w, http.StatusCreated, h.accounting.CreateInvoice(invoice))
	default:
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// TaxReports handles GET and POST /api/tax-reports
func (h *AccountingHandler) TaxReports(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		reports := h.accounting.TaxReports()
		middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"reports": reports,
			"count":   len(reports),
		})
	case http.MethodPost:
		var req struct {
			Period string               `json:"period"`
			Type   domain.TaxReportType `json:"type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Period == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Câmpul 'period' este obligatoriu")
			return
		}
		if req.Type == "" {
			req.Type = domain.TaxReportMonthly
		}
		middleware.WriteJSON(w, http.StatusCreated, h.accounting.GenerateTaxReport(req.Period, req.Type))
	default:
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// BankAccounts handles GET and POST /api/bank-accounts
func (h *AccountingHandler) BankAccounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		accounts := h.accounting.BankAccounts()
		middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"accounts": accounts,
			"count":    len(accounts),
		})
	case http.MethodPost:
		var account domain.BankAccount
		if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, "Corpul cererii nu este valid")
			return
		}
		if account.IBAN == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Câmpul 'iban' este obligatoriu")
			return
		}
		middleware.WriteJSON(w, http.StatusCreated, h.accounting.AddBankAccount(account))
	default:
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// Budgets handles GET and POST /api/budgets
func (h *AccountingHandler) Budgets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		budgets := h.accounting.Budgets()
		middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"budgets": budgets,
			"count":   len(budgets),
		})
	case http.MethodPost:
		var budget domain.Budget
		if err := json.NewDecoder(r.Body).Decode(&budget); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, "Corpul cererii nu este valid")
			return
		}
		if budget.Name == "" {
			middleware.WriteError(w, http.StatusBadRequest, "Numele bugetului este obligatoriu")
			return
		}
		middleware.WriteJSON(w, http.StatusCreated, h.accounting.CreateBudget(budget))
	default:
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// Settings handles GET and PUT /api/settings
func (h *AccountingHandler) Settings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		middleware.WriteJSON(w, http.StatusOK, h.accounting.Settings())
	case http.MethodPut:
		var settings domain.CompanySettings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, "Corpul cererii nu este valid")
			return
		}
		middleware.WriteJSON(w, http.StatusOK, h.accounting.UpdateSettings(settings))
	default:
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}
