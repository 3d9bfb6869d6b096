package store

import (
	"testing"

	"github.com/vmunteanu/contaflow/internal/domain"
)

func analyzedStatement(s *BankingStore) domain.BankStatement {
	stmt := s.CreateStatementPlaceholder("extras_mai.pdf", "3 MB")
	stmt.BankName = "Banca Transilvania"
	stmt.Status = domain.StatementStatusCompleted
	stmt.Transactions = []domain.BankTransaction{
		{ID: "btx-1", StatementID: stmt.ID, Amount: -500, Type: domain.BankDebit},
		{ID: "btx-2", StatementID: stmt.ID, Amount: 1200, Type: domain.BankCredit},
	}
	stmt.TotalTransactions = len(stmt.Transactions)
	return stmt
}

func TestBankingStore_StatementLifecycle(t *testing.T) {
	s := NewBankingStore()

	stmt := analyzedStatement(s)
	if err := s.CompleteStatement(stmt); err != nil {
		t.Fatalf("CompleteStatement: %v", err)
	}

	if got := s.Statements(); len(got) != 1 || got[0].BankName != "Banca Transilvania" {
		t.Errorf("statements = %+v", got)
	}
	if got := s.Transactions(); len(got) != 2 {
		t.Errorf("transactions = %d, want 2", len(got))
	}

	failed := s.CreateStatementPlaceholder("extras_iunie.pdf", "2 MB")
	if err := s.MarkStatementFailed(failed.ID); err != nil {
		t.Fatalf("MarkStatementFailed: %v", err)
	}
	stmts := s.Statements()
	if stmts[1].Status != domain.StatementStatusError {
		t.Errorf("status = %q, want error", stmts[1].Status)
	}
}

func TestBankingStore_ManualReconcile(t *testing.T) {
	s := NewBankingStore()
	stmt := analyzedStatement(s)
	if err := s.CompleteStatement(stmt); err != nil {
		t.Fatalf("CompleteStatement: %v", err)
	}
	s.AddReconciliations([]domain.BankReconciliation{{
		ID:                "rec-btx-1",
		BankTransactionID: "btx-1",
		MatchedDocuments:  []string{"doc-old"},
		Status:            domain.ReconciliationUnmatched,
		Confidence:        30,
	}})

	err := s.ManualReconcile("rec-btx-1", []string{"doc-1", "doc-2"}, []string{"inv-1"}, "verificat manual")
	if err != nil {
		t.Fatalf("ManualReconcile: %v", err)
	}

	recs := s.Reconciliations()
	rec := recs[0]
	if rec.Status != domain.ReconciliationManual || rec.Confidence != 100 {
		t.Errorf("status/confidence = %q/%d", rec.Status, rec.Confidence)
	}
	if len(rec.MatchedDocuments) != 2 || len(rec.MatchedInvoices) != 1 {
		t.Errorf("matches replaced incorrectly: %+v", rec)
	}
	if rec.Notes != "verificat manual" {
		t.Errorf("notes = %q", rec.Notes)
	}

	if err := s.ManualReconcile("rec-missing", nil, nil, ""); err == nil {
		t.Error("expected error for unknown reconciliation")
	}
}

func TestBankingStore_Summary(t *testing.T) {
	s := NewBankingStore()

	if got := s.Summary(); got.ReconciliationRate != 0 {
		t.Errorf("empty store rate = %v, want 0", got.ReconciliationRate)
	}

	stmt := analyzedStatement(s)
	if err := s.CompleteStatement(stmt); err != nil {
		t.Fatalf("CompleteStatement: %v", err)
	}
	s.AddReconciliations([]domain.BankReconciliation{
		{ID: "rec-btx-1", Status: domain.ReconciliationMatched, Confidence: 95},
		{ID: "rec-btx-2", Status: domain.ReconciliationPartial, Confidence: 50},
	})

	got := s.Summary()
	if got.TotalBankTransactions != 2 || got.MatchedTransactions != 1 || got.PartialMatches != 1 {
		t.Errorf("summary = %+v", got)
	}
	if got.ReconciliationRate != 50 {
		t.Errorf("rate = %v, want 50", got.ReconciliationRate)
	}
	if got.TotalVariance != 0 {
		t.Errorf("variance = %v, want 0", got.TotalVariance)
	}
}
