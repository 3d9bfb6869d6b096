package pipeline

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vmunteanu/contaflow/internal/domain"
	"github.com/vmunteanu/contaflow/internal/extract"
	"github.com/vmunteanu/contaflow/internal/parse"
)

// incomeCategories marks extracted categories that generate income
// transactions; everything else is an expense.
var incomeCategories = []string{"servicii", "consultanta", "vanzari"}

// documentFromAnalysis enriches a placeholder document with the analysis
// and derives exactly one ledger transaction from it. Amount and date
// stay as display strings on the document; the transaction carries the
// parsed values.
func documentFromAnalysis(doc domain.Document, a extract.DocumentAnalysis) domain.Document {
	txDate, ok := parse.Date(a.DocumentDate)
	if !ok {
		txDate = time.Now()
	}
	tx := domain.Transaction{
		ID:          uuid.NewString(),
		Description: a.Description,
		Amount:      parse.Amount(a.Amount),
		Type:        transactionType(a.Category),
		Category:    a.Category,
		Date:        txDate,
		DocumentID:  doc.ID,
	}

	doc.Category = a.Category
	doc.Status = domain.DocumentStatusCompleted
	doc.Confidence = a.Confidence
	doc.Supplier = a.Supplier
	doc.Amount = a.Amount
	doc.Client = a.Client
	doc.DocumentDate = a.DocumentDate
	doc.InvoiceNumber = a.InvoiceNumber
	doc.CUI = a.CUI
	doc.Description = a.Description
	doc.Insights = orEmpty(a.Insights)
	doc.Recommendations = orEmpty(a.Recommendations)
	doc.GeneratedTransactions = []domain.Transaction{tx}
	return doc
}

func transactionType(category string) domain.TransactionType {
	lower := strings.ToLower(category)
	for _, cat := range incomeCategories {
		if strings.Contains(lower, cat) {
			return domain.TransactionIncome
		}
	}
	return domain.TransactionExpense
}

// contractFromAnalysis enriches a draft contract and activates it.
func contractFromAnalysis(c domain.Contract, a extract.ContractAnalysis) domain.Contract {
	c.Title = a.Title
	c.ClientName = a.ClientName
	c.SupplierName = a.SupplierName
	c.Type = contractType(a.ContractType)
	c.Status = domain.ContractStatusActive
	c.StartDate = dateOrNow(a.StartDate)
	c.EndDate = dateOrNow(a.EndDate)
	c.Value = parse.Amount(a.Value)
	if a.Currency != "" {
		c.Currency = a.Currency
	}
	c.PaymentTerms = a.PaymentTerms
	c.Description = a.Description
	c.Terms = orEmpty(a.Terms)
	c.Deliverables = orEmpty(a.Deliverables)

	c.Analysis = domain.ContractAnalysis{
		Confidence: a.Confidence,
		ExtractedData: domain.ContractExtractedData{
			Parties:            orEmpty(a.Parties),
			Obligations:        orEmpty(a.Obligations),
			PaymentTerms:       []string{a.PaymentTerms},
			Deliverables:       orEmpty(a.Deliverables),
			Penalties:          orEmpty(a.Penalties),
			TerminationClauses: orEmpty(a.TerminationClauses),
		},
		RiskAssessment: domain.ContractRiskAssessment{
			Level:           riskLevel(a.RiskLevel),
			Factors:         orEmpty(a.RiskFactors),
			Recommendations: orEmpty(a.Recommendations),
		},
		KeyDates: domain.ContractKeyDates{
			StartDate:    datePtr(a.StartDate),
			EndDate:      datePtr(a.EndDate),
			PaymentDates: parseDates(a.KeyDates),
			Milestones:   []time.Time{},
		},
		Insights: orEmpty(a.Insights),
		Warnings: orEmpty(a.Warnings),
	}
	return c
}

func contractType(s string) domain.ContractType {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "servicii") || strings.Contains(lower, "service"):
		return domain.ContractTypeService
	case strings.Contains(lower, "furnizare") || strings.Contains(lower, "supply"):
		return domain.ContractTypeSupply
	case strings.Contains(lower, "mentenanță") || strings.Contains(lower, "maintenance"):
		return domain.ContractTypeMaintenance
	case strings.Contains(lower, "consultanță") || strings.Contains(lower, "consulting"):
		return domain.ContractTypeConsulting
	default:
		return domain.ContractTypeOther
	}
}

func riskLevel(s string) domain.RiskLevel {
	switch strings.ToLower(s) {
	case "low", "scazut", "scăzut":
		return domain.RiskLow
	case "high", "ridicat":
		return domain.RiskHigh
	default:
		return domain.RiskMedium
	}
}

// statementFromAnalysis enriches a statement placeholder. Statement-level
// confidence, insights and recommendations are copied onto every
// transaction; there are no per-transaction values.
func statementFromAnalysis(stmt domain.BankStatement, a extract.BankStatementAnalysis) domain.BankStatement {
	now := time.Now()
	txs := make([]domain.BankTransaction, 0, len(a.Transactions))
	for _, tx := range a.Transactions {
		txs = append(txs, domain.BankTransaction{
			ID:              uuid.NewString(),
			StatementID:     stmt.ID,
			Date:            dateOrNow(tx.Date),
			Description:     tx.Description,
			Amount:          parse.Amount(tx.Amount),
			Balance:         parse.Amount(tx.Balance),
			Reference:       tx.Reference,
			Type:            bankTransactionType(tx.Type),
			Category:        tx.Category,
			Counterparty:    tx.Counterparty,
			IBAN:            tx.IBAN,
			UploadedAt:      now,
			Confidence:      a.Confidence,
			Insights:        orEmpty(a.Insights),
			Recommendations: orEmpty(a.Recommendations),
		})
	}

	stmt.BankName = a.BankName
	stmt.AccountNumber = a.AccountNumber
	stmt.StatementPeriod = domain.StatementPeriod{
		StartDate: dateOrNow(a.StatementPeriod.StartDate),
		EndDate:   dateOrNow(a.StatementPeriod.EndDate),
	}
	stmt.Transactions = txs
	stmt.Status = domain.StatementStatusCompleted
	stmt.TotalTransactions = len(txs)
	stmt.OpeningBalance = parse.Amount(a.OpeningBalance)
	stmt.ClosingBalance = parse.Amount(a.ClosingBalance)
	return stmt
}

func bankTransactionType(s string) domain.BankTransactionType {
	if strings.EqualFold(strings.TrimSpace(s), "credit") {
		return domain.BankCredit
	}
	return domain.BankDebit
}

func dateOrNow(s string) time.Time {
	if d, ok := parse.Date(s); ok {
		return d
	}
	return time.Now()
}

func datePtr(s string) *time.Time {
	if d, ok := parse.Date(s); ok {
		return &d
	}
	return nil
}

func parseDates(raw []string) []time.Time {
	out := []time.Time{}
	for _, s := range raw {
		if d, ok := parse.Date(s); ok {
			out = append(out, d)
		}
	}
	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
