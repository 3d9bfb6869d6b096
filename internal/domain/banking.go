package domain

import "time"

type StatementStatus string

const (
	StatementStatusProcessing StatementStatus = "processing"
	StatementStatusCompleted  StatementStatus = "completed"
	StatementStatusError      StatementStatus = "error"
)

// BankStatement holds an uploaded statement file plus the account, period and
// transaction list extracted from it.
type BankStatement struct {
	ID                string            `json:"id"`
	FileName          string            `json:"fileName"`
	FileSize          string            `json:"fileSize"`
	BankName          string            `json:"bankName"`
	AccountNumber     string            `json:"accountNumber"`
	StatementPeriod   StatementPeriod   `json:"statementPeriod"`
	Transactions      []BankTransaction `json:"transactions"`
	UploadedAt        time.Time         `json:"uploadedAt"`
	Status            StatementStatus   `json:"status"`
	TotalTransactions int               `json:"totalTransactions"`
	OpeningBalance    float64           `json:"openingBalance"`
	ClosingBalance    float64           `json:"closingBalance"`
}

type StatementPeriod struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type BankTransactionType string

const (
	BankDebit  BankTransactionType = "debit"
	BankCredit BankTransactionType = "credit"
)

// BankTransaction is one line of an analyzed statement. The confidence and
// insights are statement-level values copied onto each transaction.
type BankTransaction struct {
	ID              string              `json:"id"`
	StatementID     string              `json:"statementId"`
	Date            time.Time           `json:"date"`
	Description     string              `json:"description"`
	Amount          float64             `json:"amount"`
	Balance         float64             `json:"balance"`
	Reference       string              `json:"reference"`
	Type            BankTransactionType `json:"type"`
	Category        string              `json:"category,omitempty"`
	Counterparty    string              `json:"counterparty,omitempty"`
	IBAN            string              `json:"iban,omitempty"`
	UploadedAt      time.Time           `json:"uploadedAt"`
	Confidence      float64             `json:"confidence"`
	Insights        []string            `json:"aiInsights"`
	Recommendations []string            `json:"recommendations"`
}

type ReconciliationStatus string

const (
	ReconciliationMatched   ReconciliationStatus = "matched"
	ReconciliationUnmatched ReconciliationStatus = "unmatched"
	ReconciliationPartial   ReconciliationStatus = "partial"
	ReconciliationManual    ReconciliationStatus = "manual"
)

// BankReconciliation links one bank transaction to zero or more matched
// documents and invoices. The matched id lists are not referentially
// enforced; they may point at entities that no longer resolve.
type BankReconciliation struct {
	ID                 string               `json:"id"`
	BankTransactionID  string               `json:"bankTransactionId"`
	BankTransaction    BankTransaction      `json:"bankTransaction"`
	MatchedDocuments   []string             `json:"matchedDocuments"`
	MatchedInvoices    []string             `json:"matchedInvoices"`
	Status             ReconciliationStatus `json:"status"`
	Variance           float64              `json:"variance"`
	ReconciliationDate time.Time            `json:"reconciliationDate"`
	Notes              string               `json:"notes,omitempty"`
	Confidence         int                  `json:"confidence"`
}

// ReconciliationSummary is a derived snapshot over all reconciliations.
type ReconciliationSummary struct {
	TotalBankTransactions int     `json:"totalBankTransactions"`
	MatchedTransactions   int     `json:"matchedTransactions"`
	UnmatchedTransactions int     `json:"unmatchedTransactions"`
	PartialMatches        int     `json:"partialMatches"`
	TotalVariance         float64 `json:"totalVariance"`
	ReconciliationRate    float64 `json:"reconciliationRate"`
}
