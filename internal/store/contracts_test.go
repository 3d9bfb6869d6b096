package store

import (
	"strings"
	"testing"
	"time"

	"github.com/vmunteanu/contaflow/internal/domain"
)

func TestContractStore_Placeholder(t *testing.T) {
	s := NewContractStore()

	c := s.CreatePlaceholder("Contract_servicii.pdf", "2 MB", "application/pdf")

	if !strings.HasPrefix(c.Number, "CTR-") {
		t.Errorf("number = %q", c.Number)
	}
	if c.Status != domain.ContractStatusDraft || c.Type != domain.ContractTypeOther {
		t.Errorf("placeholder status/type = %q/%q", c.Status, c.Type)
	}
	if c.Currency != "RON" {
		t.Errorf("currency = %q", c.Currency)
	}
	if len(c.Attachments) != 1 || c.Attachments[0].FileName != "Contract_servicii.pdf" {
		t.Errorf("attachments = %+v", c.Attachments)
	}
}

func TestContractStore_CompleteAndCancel(t *testing.T) {
	s := NewContractStore()
	c := s.CreatePlaceholder("contract.pdf", "1 MB", "application/pdf")

	c.Title = "Contract de servicii IT"
	c.Status = domain.ContractStatusActive
	c.Value = 12000
	if err := s.Complete(c); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	got, _ := s.Get(c.ID)
	if got.Title != "Contract de servicii IT" || got.Status != domain.ContractStatusActive {
		t.Errorf("contract = %+v", got)
	}

	other := s.CreatePlaceholder("acord.pdf", "1 MB", "application/pdf")
	if err := s.MarkCancelled(other.ID); err != nil {
		t.Fatalf("MarkCancelled: %v", err)
	}
	got, _ = s.Get(other.ID)
	if got.Status != domain.ContractStatusCancelled {
		t.Errorf("status = %q, want cancelled", got.Status)
	}
}

func TestContractStore_MilestonesAndInvoices(t *testing.T) {
	s := NewContractStore()
	c := s.CreatePlaceholder("contract.pdf", "1 MB", "application/pdf")

	m, err := s.AddMilestone(c.ID, domain.ContractMilestone{
		Title:   "Livrare faza 1",
		DueDate: time.Now().AddDate(0, 1, 0),
		Value:   5000,
		Status:  domain.MilestonePending,
	})
	if err != nil {
		t.Fatalf("AddMilestone: %v", err)
	}
	if m.ID == "" {
		t.Error("milestone has no id")
	}

	if err := s.LinkInvoice(c.ID, "inv-42"); err != nil {
		t.Fatalf("LinkInvoice: %v", err)
	}

	got, _ := s.Get(c.ID)
	if len(got.Milestones) != 1 || len(got.LinkedInvoices) != 1 {
		t.Errorf("milestones = %d, linked = %d", len(got.Milestones), len(got.LinkedInvoices))
	}
	if got.LinkedInvoices[0] != "inv-42" {
		t.Errorf("linkedInvoices = %v", got.LinkedInvoices)
	}

	if _, err := s.AddMilestone("missing", domain.ContractMilestone{}); err == nil {
		t.Error("expected error for unknown contract")
	}
}
