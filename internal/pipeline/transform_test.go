package pipeline

import (
	"testing"
	"time"

	"github.com/vmunteanu/contaflow/internal/domain"
	"github.com/vmunteanu/contaflow/internal/extract"
)

func TestTransactionType(t *testing.T) {
	tests := []struct {
		category string
		want     domain.TransactionType
	}{
		{"Servicii IT", domain.TransactionIncome},
		{"Consultanta fiscala", domain.TransactionIncome},
		{"Vanzari online", domain.TransactionIncome},
		{"Utilitati", domain.TransactionExpense},
		{"", domain.TransactionExpense},
	}
	for _, tt := range tests {
		if got := transactionType(tt.category); got != tt.want {
			t.Errorf("transactionType(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestContractType(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.ContractType
	}{
		{"Contract de servicii", domain.ContractTypeService},
		{"Service agreement", domain.ContractTypeService},
		{"Contract de furnizare", domain.ContractTypeSupply},
		{"Contract de mentenanță", domain.ContractTypeMaintenance},
		{"Consulting", domain.ContractTypeConsulting},
		{"Altceva", domain.ContractTypeOther},
		{"", domain.ContractTypeOther},
	}
	for _, tt := range tests {
		if got := contractType(tt.raw); got != tt.want {
			t.Errorf("contractType(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.RiskLevel
	}{
		{"low", domain.RiskLow},
		{"scazut", domain.RiskLow},
		{"high", domain.RiskHigh},
		{"ridicat", domain.RiskHigh},
		{"medium", domain.RiskMedium},
		{"necunoscut", domain.RiskMedium},
	}
	for _, tt := range tests {
		if got := riskLevel(tt.raw); got != tt.want {
			t.Errorf("riskLevel(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDocumentFromAnalysis_UnparseableDateFallsBack(t *testing.T) {
	doc := domain.Document{ID: "doc-1"}
	before := time.Now()

	got := documentFromAnalysis(doc, extract.DocumentAnalysis{
		Amount:       "500 RON",
		DocumentDate: "cândva în mai",
	})

	tx := got.GeneratedTransactions[0]
	if tx.Date.Before(before) {
		t.Errorf("tx date = %v, want fallback to now", tx.Date)
	}
	// The display string is kept verbatim even when unparseable.
	if got.DocumentDate != "cândva în mai" {
		t.Errorf("documentDate = %q", got.DocumentDate)
	}
}

func TestStatementFromAnalysis_EmptyTransactionList(t *testing.T) {
	stmt := domain.BankStatement{ID: "stmt-1"}

	got := statementFromAnalysis(stmt, extract.BankStatementAnalysis{BankName: "BCR"})

	if got.Status != domain.StatementStatusCompleted {
		t.Errorf("status = %q", got.Status)
	}
	if got.TotalTransactions != 0 || len(got.Transactions) != 0 {
		t.Errorf("transactions = %+v", got.Transactions)
	}
}

func TestStatementFromAnalysis_TransactionIdentity(t *testing.T) {
	stmt := domain.BankStatement{ID: "stmt-1"}

	got := statementFromAnalysis(stmt, extract.BankStatementAnalysis{
		Transactions: []extract.BankTransactionFields{
			{Description: "a", Amount: "1"},
			{Description: "b", Amount: "2"},
		},
	})

	if got.Transactions[0].ID == got.Transactions[1].ID {
		t.Error("transaction ids collide")
	}
	for _, tx := range got.Transactions {
		if tx.StatementID != "stmt-1" {
			t.Errorf("statementId = %q", tx.StatementID)
		}
	}
}
