package store

import (
	"testing"

	"github.com/vmunteanu/contaflow/internal/domain"
)

func TestDocumentStore_Lifecycle(t *testing.T) {
	s := NewDocumentStore()

	doc := s.CreatePlaceholder("factura123.pdf", "1.5 KB")
	if doc.ID == "" {
		t.Fatal("placeholder has no id")
	}
	if doc.Status != domain.DocumentStatusProcessing {
		t.Errorf("status = %q, want processing", doc.Status)
	}

	// Placeholder is visible immediately.
	if got := s.Documents(); len(got) != 1 || got[0].ID != doc.ID {
		t.Fatalf("documents = %+v", got)
	}

	doc.Status = domain.DocumentStatusCompleted
	doc.Supplier = "ACME SRL"
	doc.GeneratedTransactions = []domain.Transaction{{
		ID: "tx-1", Description: "Servicii IT", Amount: 500,
		Type: domain.TransactionIncome, DocumentID: doc.ID,
	}}
	if err := s.Complete(doc); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	docs := s.Documents()
	if docs[0].Status != domain.DocumentStatusCompleted || docs[0].Supplier != "ACME SRL" {
		t.Errorf("document not enriched: %+v", docs[0])
	}
	txs := s.Transactions()
	if len(txs) != 1 || txs[0].DocumentID != doc.ID {
		t.Errorf("transactions = %+v", txs)
	}
}

func TestDocumentStore_MarkFailed(t *testing.T) {
	s := NewDocumentStore()
	doc := s.CreatePlaceholder("bon.jpg", "20 KB")

	if err := s.MarkFailed(doc.ID); err != nil {
		t.Fatalf("MarkFailed: %v", err)
	}
	got, ok := s.Get(doc.ID)
	if !ok || got.Status != domain.DocumentStatusError {
		t.Errorf("document = %+v, ok = %v", got, ok)
	}

	if err := s.MarkFailed("missing"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestDocumentStore_UniqueIDs(t *testing.T) {
	s := NewDocumentStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		doc := s.CreatePlaceholder("a.pdf", "1 KB")
		if seen[doc.ID] {
			t.Fatalf("duplicate id %s", doc.ID)
		}
		seen[doc.ID] = true
	}
}

func TestDocumentStore_SnapshotIsolation(t *testing.T) {
	s := NewDocumentStore()
	s.CreatePlaceholder("a.pdf", "1 KB")

	snap := s.Documents()
	snap[0].Supplier = "mutated"

	if got := s.Documents(); got[0].Supplier == "mutated" {
		t.Error("snapshot mutation leaked into the store")
	}
}
