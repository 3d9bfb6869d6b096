package domain

import "time"

// DocumentStatus tracks an uploaded document through its analysis lifecycle.
type DocumentStatus string

const (
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusCompleted  DocumentStatus = "completed"
	DocumentStatusError      DocumentStatus = "error"
)

// Document is an uploaded accounting document (invoice, receipt, ...) plus
// the fields extracted from it by the AI analysis. Monetary amount and
// document date are kept as the display strings returned by the model; they
// are parsed on demand by consumers (e.g. the reconciliation matcher).
type Document struct {
	ID                    string         `json:"id"`
	FileName              string         `json:"fileName"`
	FileSize              string         `json:"fileSize"`
	Category              string         `json:"category"`
	Status                DocumentStatus `json:"status"`
	Confidence            float64        `json:"confidence"`
	Supplier              string         `json:"supplier"`
	Amount                string         `json:"amount"`
	Client                string         `json:"client"`
	DocumentDate          string         `json:"documentDate"`
	InvoiceNumber         string         `json:"invoiceNumber,omitempty"`
	CUI                   string         `json:"cui,omitempty"`
	Description           string         `json:"description"`
	Insights              []string       `json:"aiInsights"`
	Recommendations       []string       `json:"recommendations"`
	GeneratedTransactions []Transaction  `json:"generatedTransactions"`
	UploadedAt            time.Time      `json:"uploadedAt"`
}

// TransactionType splits transactions into the two ledger directions.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is generated as a side effect of document analysis and is
// immutable afterwards.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	DocumentID  string          `json:"documentId,omitempty"`
}
