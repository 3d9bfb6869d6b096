package store

import (
	"math"
	"testing"

	"github.com/vmunteanu/contaflow/internal/domain"
)

func TestAccountingStore_CreateInvoice_TotalsAndNumbering(t *testing.T) {
	s := NewAccountingStore()
	client := s.AddClient(domain.Client{Name: "ACME SRL"})

	inv := s.CreateInvoice(domain.Invoice{
		ClientID: client.ID,
		Items: []domain.InvoiceItem{
			{Description: "Consultanta", Quantity: 2, UnitPrice: 100, VATRate: 19},
			{Description: "Transport", Quantity: 1, UnitPrice: 50, VATRate: 19},
		},
	})

	if inv.Number != "INV-0001" {
		t.Errorf("number = %q, want INV-0001", inv.Number)
	}
	if inv.Subtotal != 250 {
		t.Errorf("subtotal = %v, want 250", inv.Subtotal)
	}
	if math.Abs(inv.VATAmount-47.5) > 1e-9 {
		t.Errorf("vatAmount = %v, want 47.5", inv.VATAmount)
	}
	if math.Abs(inv.Total-297.5) > 1e-9 {
		t.Errorf("total = %v, want 297.5", inv.Total)
	}
	if math.Abs(inv.Items[0].Total-238) > 1e-9 {
		t.Errorf("item total = %v, want 238", inv.Items[0].Total)
	}
	if inv.Client.Name != "ACME SRL" {
		t.Errorf("client = %+v", inv.Client)
	}

	second := s.CreateInvoice(domain.Invoice{ClientID: client.ID})
	if second.Number != "INV-0002" {
		t.Errorf("second number = %q, want INV-0002", second.Number)
	}

	// The client's running total reflects both invoices.
	clients := s.Clients()
	if math.Abs(clients[0].TotalInvoiced-297.5) > 1e-9 {
		t.Errorf("totalInvoiced = %v, want 297.5", clients[0].TotalInvoiced)
	}
}

func TestAccountingStore_CreateInvoice_UnknownClientFallback(t *testing.T) {
	s := NewAccountingStore()

	inv := s.CreateInvoice(domain.Invoice{ClientID: "nobody"})

	if inv.Client.Name != "Client Necunoscut" {
		t.Errorf("client name = %q, want Client Necunoscut", inv.Client.Name)
	}
	if inv.Client.ID != "nobody" {
		t.Errorf("client id = %q, want the requested id", inv.Client.ID)
	}
}

func TestAccountingStore_SettingsPreserveInvoiceCounter(t *testing.T) {
	s := NewAccountingStore()
	s.CreateInvoice(domain.Invoice{ClientID: "x"})
	s.CreateInvoice(domain.Invoice{ClientID: "x"})

	updated := s.UpdateSettings(domain.CompanySettings{
		Name:           "Firma Mea SRL",
		InvoicePrefix:  "FACT",
		InvoiceCounter: 1, // callers cannot rewind the sequence
		VATRate:        19,
		Currency:       "RON",
	})

	if updated.InvoiceCounter != 3 {
		t.Errorf("counter = %d, want 3", updated.InvoiceCounter)
	}

	inv := s.CreateInvoice(domain.Invoice{ClientID: "x"})
	if inv.Number != "FACT-0003" {
		t.Errorf("number = %q, want FACT-0003", inv.Number)
	}
}

func TestAccountingStore_SimpleRecords(t *testing.T) {
	s := NewAccountingStore()

	sp := s.AddSupplier(domain.Supplier{Name: "Furnizor SRL"})
	if sp.ID == "" || sp.Status != domain.PartyActive {
		t.Errorf("supplier = %+v", sp)
	}

	p := s.AddProduct(domain.Product{Name: "Laptop", UnitPrice: 3000, VATRate: 19})
	if p.ID == "" {
		t.Error("product has no id")
	}

	r := s.GenerateTaxReport("2024-05", domain.TaxReportMonthly)
	if r.Status != domain.TaxReportDraft || r.TotalIncome != 0 {
		t.Errorf("tax report = %+v", r)
	}

	a := s.AddBankAccount(domain.BankAccount{Name: "Cont curent", IBAN: "RO49AAAA1B31007593840000"})
	if a.ID == "" {
		t.Error("bank account has no id")
	}

	b := s.CreateBudget(domain.Budget{Name: "Buget Q3", TotalBudget: 10000})
	if b.Status != domain.BudgetActive {
		t.Errorf("budget status = %q", b.Status)
	}

	m := s.AddChatMessage("Care sunt veniturile?", "Veniturile totale sunt 0 RON.", "")
	if m.Type != domain.ChatQuestion {
		t.Errorf("chat type = %q", m.Type)
	}

	if len(s.Suppliers()) != 1 || len(s.Products()) != 1 || len(s.TaxReports()) != 1 ||
		len(s.BankAccounts()) != 1 || len(s.Budgets()) != 1 || len(s.ChatHistory()) != 1 {
		t.Error("collection snapshots incomplete")
	}
}
