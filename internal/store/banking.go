package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmunteanu/contaflow/internal/domain"
)

// BankingStore owns bank statements, their transactions and the
// reconciliations produced for them.
type BankingStore struct {
	mu              sync.RWMutex
	statements      []domain.BankStatement
	transactions    []domain.BankTransaction
	reconciliations []domain.BankReconciliation
}

func NewBankingStore() *BankingStore {
	return &BankingStore{}
}

// CreateStatementPlaceholder registers a statement in the processing state.
func (s *BankingStore) CreateStatementPlaceholder(fileName, fileSize string) domain.BankStatement {
	stmt := domain.BankStatement{
		ID:           uuid.NewString(),
		FileName:     fileName,
		FileSize:     fileSize,
		Transactions: []domain.BankTransaction{},
		UploadedAt:   time.Now(),
		Status:       domain.StatementStatusProcessing,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.statements = append(s.statements, stmt)
	return stmt
}

// CompleteStatement replaces the placeholder with the analyzed statement and
// appends its transactions to the flat transaction list.
func (s *BankingStore) CompleteStatement(stmt domain.BankStatement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.statements {
		if s.statements[i].ID == stmt.ID {
			s.statements[i] = stmt
			s.transactions = append(s.transactions, stmt.Transactions...)
			return nil
		}
	}
	return fmt.Errorf("bank statement not found: %s", stmt.ID)
}

// MarkStatementFailed flips the statement to its terminal error state.
func (s *BankingStore) MarkStatementFailed(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.statements {
		if s.statements[i].ID == id {
			s.statements[i].Status = domain.StatementStatusError
			return nil
		}
	}
	return fmt.Errorf("bank statement not found: %s", id)
}

// AddReconciliations records the matcher's output, one entry per bank
// transaction.
func (s *BankingStore) AddReconciliations(recs []domain.BankReconciliation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reconciliations = append(s.reconciliations, recs...)
}

// ManualReconcile overwrites an existing reconciliation with caller-supplied
// matches, forcing status manual and confidence 100.
func (s *BankingStore) ManualReconcile(reconciliationID string, documentIDs, invoiceIDs []string, notes string) error {
	if documentIDs == nil {
		documentIDs = []string{}
	}
	if invoiceIDs == nil {
		invoiceIDs = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reconciliations {
		if s.reconciliations[i].ID == reconciliationID {
			s.reconciliations[i].MatchedDocuments = documentIDs
			s.reconciliations[i].MatchedInvoices = invoiceIDs
			s.reconciliations[i].Status = domain.ReconciliationManual
			s.reconciliations[i].Confidence = 100
			s.reconciliations[i].ReconciliationDate = time.Now()
			if notes != "" {
				s.reconciliations[i].Notes = notes
			}
			return nil
		}
	}
	return fmt.Errorf("reconciliation not found: %s", reconciliationID)
}

func (s *BankingStore) GetStatement(id string) (domain.BankStatement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, stmt := range s.statements {
		if stmt.ID == id {
			return stmt, true
		}
	}
	return domain.BankStatement{}, false
}

func (s *BankingStore) Statements() []domain.BankStatement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.BankStatement, len(s.statements))
	copy(out, s.statements)
	return out
}

func (s *BankingStore) Transactions() []domain.BankTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.BankTransaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *BankingStore) Reconciliations() []domain.BankReconciliation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.BankReconciliation, len(s.reconciliations))
	copy(out, s.reconciliations)
	return out
}

// Summary derives the reconciliation overview from the current state.
func (s *BankingStore) Summary() domain.ReconciliationSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := domain.ReconciliationSummary{
		TotalBankTransactions: len(s.transactions),
	}
	for _, rec := range s.reconciliations {
		switch rec.Status {
		case domain.ReconciliationMatched:
			summary.MatchedTransactions++
		case domain.ReconciliationUnmatched:
			summary.UnmatchedTransactions++
		case domain.ReconciliationPartial:
			summary.PartialMatches++
		}
		summary.TotalVariance += rec.Variance
	}
	if summary.TotalBankTransactions > 0 {
		summary.ReconciliationRate = float64(summary.MatchedTransactions) /
			float64(summary.TotalBankTransactions) * 100
	}
	return summary
}
