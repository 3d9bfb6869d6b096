package domain

import "time"

type PartyStatus string

const (
	PartyActive   PartyStatus = "active"
	PartyInactive PartyStatus = "inactive"
)

type Client struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	CUI           string      `json:"cui"`
	RegCom        string      `json:"regCom"`
	IBAN          string      `json:"iban"`
	Bank          string      `json:"bank"`
	CreatedAt     time.Time   `json:"createdAt"`
	TotalInvoiced float64     `json:"totalInvoiced"`
	TotalPaid     float64     `json:"totalPaid"`
	Status        PartyStatus `json:"status"`
}

type Supplier struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	CUI            string      `json:"cui"`
	RegCom         string      `json:"regCom"`
	IBAN           string      `json:"iban"`
	Bank           string      `json:"bank"`
	Category       string      `json:"category"`
	CreatedAt      time.Time   `json:"createdAt"`
	TotalPurchased float64     `json:"totalPurchased"`
	TotalPaid      float64     `json:"totalPaid"`
	Status         PartyStatus `json:"status"`
}

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice totals are derived from the items at creation time and never
// re-validated afterwards.
type Invoice struct {
	ID           string        `json:"id"`
	Number       string        `json:"number"`
	ClientID     string        `json:"clientId"`
	Client       Client        `json:"client"`
	IssueDate    time.Time     `json:"issueDate"`
	DueDate      time.Time     `json:"dueDate"`
	Items        []InvoiceItem `json:"items"`
	Subtotal     float64       `json:"subtotal"`
	VATAmount    float64       `json:"vatAmount"`
	Total        float64       `json:"total"`
	Status       InvoiceStatus `json:"status"`
	Notes        string        `json:"notes,omitempty"`
	PaymentTerms int           `json:"paymentTerms"`
	Currency     string        `json:"currency"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	VATRate     float64 `json:"vatRate"`
	Total       float64 `json:"total"`
	ProductID   string  `json:"productId,omitempty"`
}

type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	SKU         string      `json:"sku"`
	Category    string      `json:"category"`
	UnitPrice   float64     `json:"unitPrice"`
	VATRate     float64     `json:"vatRate"`
	Stock       float64     `json:"stock"`
	MinStock    float64     `json:"minStock"`
	Unit        string      `json:"unit"`
	Supplier    string      `json:"supplier,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	Status      PartyStatus `json:"status"`
}

type TaxReportType string

const (
	TaxReportMonthly   TaxReportType = "monthly"
	TaxReportQuarterly TaxReportType = "quarterly"
	TaxReportAnnual    TaxReportType = "annual"
)

type TaxReportStatus string

const (
	TaxReportDraft     TaxReportStatus = "draft"
	TaxReportSubmitted TaxReportStatus = "submitted"
)

type TaxReport struct {
	ID              string          `json:"id"`
	Period          string          `json:"period"`
	Type            TaxReportType   `json:"type"`
	TotalIncome     float64         `json:"totalIncome"`
	TotalExpenses   float64         `json:"totalExpenses"`
	VATCollected    float64         `json:"vatCollected"`
	VATPaid         float64         `json:"vatPaid"`
	NetVAT          float64         `json:"netVat"`
	ProfitBeforeTax float64         `json:"profitBeforeTax"`
	IncomeTax       float64         `json:"incomeTax"`
	NetProfit       float64         `json:"netProfit"`
	GeneratedAt     time.Time       `json:"generatedAt"`
	Status          TaxReportStatus `json:"status"`
}

type BankAccountType string

const (
	BankAccountChecking BankAccountType = "checking"
	BankAccountSavings  BankAccountType = "savings"
	BankAccountCredit   BankAccountType = "credit"
)

type BankAccount struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	IBAN      string          `json:"iban"`
	Bank      string          `json:"bank"`
	Currency  string          `json:"currency"`
	Balance   float64         `json:"balance"`
	Type      BankAccountType `json:"type"`
	IsDefault bool            `json:"isDefault"`
	CreatedAt time.Time       `json:"createdAt"`
}

type BudgetStatus string

const (
	BudgetActive    BudgetStatus = "active"
	BudgetCompleted BudgetStatus = "completed"
	BudgetExceeded  BudgetStatus = "exceeded"
)

type Budget struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Period      string           `json:"period"`
	Categories  []BudgetCategory `json:"categories"`
	TotalBudget float64          `json:"totalBudget"`
	TotalSpent  float64          `json:"totalSpent"`
	Status      BudgetStatus     `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type BudgetCategory struct {
	Category     string  `json:"category"`
	BudgetAmount float64 `json:"budgetAmount"`
	SpentAmount  float64 `json:"spentAmount"`
	Percentage   float64 `json:"percentage"`
}

// CompanySettings is a single mutable record per session.
type CompanySettings struct {
	Name          string  `json:"name"`
	CUI           string  `json:"cui"`
	RegCom        string  `json:"regCom"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Website       string  `json:"website"`
	Logo          string  `json:"logo,omitempty"`
	VATRate       float64 `json:"vatRate"`
	Currency      string  `json:"currency"`
	FiscalYear    string  `json:"fiscalYear"`
	InvoicePrefix string  `json:"invoicePrefix"`
	InvoiceCounter int    `json:"invoiceCounter"`
	ContactPerson string  `json:"contactPerson"`
	BankAccount   string  `json:"bankAccount"`
	BankName      string  `json:"bankName"`
	ActivityCode  string  `json:"activityCode"`
	Employees     int     `json:"employees"`
	FoundedYear   int     `json:"foundedYear"`
	LegalForm     string  `json:"legalForm"`
}

type ChatMessageType string

const (
	ChatQuestion ChatMessageType = "question"
	ChatAnalysis ChatMessageType = "analysis"
	ChatReport   ChatMessageType = "report"
)

type ChatMessage struct {
	ID        string          `json:"id"`
	Message   string          `json:"message"`
	Response  string          `json:"response"`
	Timestamp time.Time       `json:"timestamp"`
	Type      ChatMessageType `json:"type"`
}
