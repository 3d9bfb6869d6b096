package store

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmunteanu/contaflow/internal/domain"
)

// AccountingStore owns the form-driven records: clients, suppliers,
// invoices, products, tax reports, bank accounts, budgets, company settings
// and the chat history.
type AccountingStore struct {
	mu           sync.RWMutex
	clients      []domain.Client
	suppliers    []domain.Supplier
	invoices     []domain.Invoice
	products     []domain.Product
	taxReports   []domain.TaxReport
	bankAccounts []domain.BankAccount
	budgets      []domain.Budget
	chatHistory  []domain.ChatMessage
	settings     domain.CompanySettings
}

func NewAccountingStore() *AccountingStore {
	year := time.Now().Year()
	return &AccountingStore{
		settings: domain.CompanySettings{
			VATRate:        19,
			Currency:       "RON",
			FiscalYear:     strconv.Itoa(year),
			InvoicePrefix:  "INV",
			InvoiceCounter: 1,
			Employees:      1,
			FoundedYear:    year,
			LegalForm:      "SRL",
		},
	}
}

func (s *AccountingStore) AddClient(c domain.Client) domain.Client {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.TotalInvoiced = 0
	c.TotalPaid = 0
	if c.Status == "" {
		c.Status = domain.PartyActive
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, c)
	return c
}

func (s *AccountingStore) AddSupplier(sp domain.Supplier) domain.Supplier {
	sp.ID = uuid.NewString()
	sp.CreatedAt = time.Now()
	sp.TotalPurchased = 0
	sp.TotalPaid = 0
	if sp.Status == "" {
		sp.Status = domain.PartyActive
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers = append(s.suppliers, sp)
	return sp
}

func (s *AccountingStore) AddProduct(p domain.Product) domain.Product {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	if p.Status == "" {
		p.Status = domain.PartyActive
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	return p
}

// CreateInvoice derives the line and invoice totals, assigns the next
// invoice number and resolves the client. An unknown clientId falls back to
// a synthetic record so invoice creation never fails on a dangling
// reference. Totals are never re-validated after creation.
func (s *AccountingStore) CreateInvoice(inv domain.Invoice) domain.Invoice {
	inv.ID = uuid.NewString()
	inv.CreatedAt = time.Now()
	if inv.Currency == "" {
		inv.Currency = "RON"
	}
	if inv.Status == "" {
		inv.Status = domain.InvoiceDraft
	}

	inv.Subtotal, inv.VATAmount = 0, 0
	for i := range inv.Items {
		if inv.Items[i].ID == "" {
			inv.Items[i].ID = uuid.NewString()
		}
		lineSubtotal := inv.Items[i].Quantity * inv.Items[i].UnitPrice
		lineVAT := lineSubtotal * inv.Items[i].VATRate / 100
		inv.Items[i].Total = lineSubtotal + lineVAT
		inv.Subtotal += lineSubtotal
		inv.VATAmount += lineVAT
	}
	inv.Total = inv.Subtotal + inv.VATAmount

	s.mu.Lock()
	defer s.mu.Unlock()

	inv.Number = fmt.Sprintf("%s-%04d", s.settings.InvoicePrefix, s.settings.InvoiceCounter)
	s.settings.InvoiceCounter++

	inv.Client = s.lookupClientLocked(inv.ClientID)
	for i := range s.clients {
		if s.clients[i].ID == inv.ClientID {
			s.clients[i].TotalInvoiced += inv.Total
		}
	}

	s.invoices = append(s.invoices, inv)
	return inv
}

// lookupClientLocked resolves a client id or builds the synthetic fallback.
func (s *AccountingStore) lookupClientLocked(clientID string) domain.Client {
	for _, c := range s.clients {
		if c.ID == clientID {
			return c
		}
	}
	return domain.Client{
		ID:        clientID,
		Name:      "Client Necunoscut",
		CreatedAt: time.Now(),
		Status:    domain.PartyActive,
	}
}

// GenerateTaxReport creates a draft report for the period. Aggregates are
// left at zero; filling them in is a manual step.
func (s *AccountingStore) GenerateTaxReport(period string, reportType domain.TaxReportType) domain.TaxReport {
	report := domain.TaxReport{
		ID:          uuid.NewString(),
		Period:      period,
		Type:        reportType,
		GeneratedAt: time.Now(),
		Status:      domain.TaxReportDraft,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.taxReports = append(s.taxReports, report)
	return report
}

func (s *AccountingStore) AddBankAccount(a domain.BankAccount) domain.BankAccount {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bankAccounts = append(s.bankAccounts, a)
	return a
}

func (s *AccountingStore) CreateBudget(b domain.Budget) domain.Budget {
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now()
	if b.Status == "" {
		b.Status = domain.BudgetActive
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets = append(s.budgets, b)
	return b
}

func (s *AccountingStore) AddChatMessage(message, response string, msgType domain.ChatMessageType) domain.ChatMessage {
	if msgType == "" {
		msgType = domain.ChatQuestion
	}
	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Message:   message,
		Response:  response,
		Timestamp: time.Now(),
		Type:      msgType,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatHistory = append(s.chatHistory, msg)
	return msg
}

func (s *AccountingStore) Settings() domain.CompanySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings replaces the settings but preserves the invoice counter,
// which only invoice creation advances.
func (s *AccountingStore) UpdateSettings(settings domain.CompanySettings) domain.CompanySettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings.InvoiceCounter = s.settings.InvoiceCounter
	s.settings = settings
	return s.settings
}

func (s *AccountingStore) Clients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *AccountingStore) Suppliers() []domain.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	return out
}

func (s *AccountingStore) Invoices() []domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

func (s *AccountingStore) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *AccountingStore) TaxReports() []domain.TaxReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.TaxReport, len(s.taxReports))
	copy(out, s.taxReports)
	return out
}

func (s *AccountingStore) BankAccounts() []domain.BankAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.BankAccount, len(s.bankAccounts))
	copy(out, s.bankAccounts)
	return out
}

func (s *AccountingStore) Budgets() []domain.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

func (s *AccountingStore) ChatHistory() []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ChatMessage, len(s.chatHistory))
	copy(out, s.chatHistory)
	return out
}
