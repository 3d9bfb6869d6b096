package extract

// File is an uploaded file handed to an analyzer.
type File struct {
	Name     string
	MIMEType string
	Data     []byte
}

// DocumentAnalysis is the JSON shape expected back from the document
// analyzer. Every field is adapter-declared and loosely validated: a field
// the model omits simply stays at its zero value.
type DocumentAnalysis struct {
	Category        string   `json:"category"`
	Supplier        string   `json:"supplier"`
	Amount          string   `json:"amount"`
	Client          string   `json:"client"`
	DocumentDate    string   `json:"documentDate"`
	InvoiceNumber   string   `json:"invoiceNumber"`
	CUI             string   `json:"cui"`
	Description     string   `json:"description"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	Confidence      float64  `json:"confidence"`
}

// ContractAnalysis is the JSON shape expected back from the contract
// analyzer.
type ContractAnalysis struct {
	Title              string   `json:"title"`
	ClientName         string   `json:"clientName"`
	SupplierName       string   `json:"supplierName"`
	ContractType       string   `json:"contractType"`
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	Value              string   `json:"value"`
	Currency           string   `json:"currency"`
	PaymentTerms       string   `json:"paymentTerms"`
	Description        string   `json:"description"`
	Terms              []string `json:"terms"`
	Deliverables       []string `json:"deliverables"`
	Parties            []string `json:"parties"`
	Obligations        []string `json:"obligations"`
	Penalties          []string `json:"penalties"`
	TerminationClauses []string `json:"terminationClauses"`
	RiskLevel          string   `json:"riskLevel"`
	RiskFactors        []string `json:"riskFactors"`
	Recommendations    []string `json:"recommendations"`
	KeyDates           []string `json:"keyDates"`
	Insights           []string `json:"insights"`
	Warnings           []string `json:"warnings"`
	Confidence         float64  `json:"confidence"`
}

// BankStatementAnalysis is the JSON shape expected back from the bank
// statement analyzer. Monetary and date fields are free-text strings parsed
// locally.
type BankStatementAnalysis struct {
	BankName        string                `json:"bankName"`
	AccountNumber   string                `json:"accountNumber"`
	StatementPeriod StatementPeriodFields `json:"statementPeriod"`
	OpeningBalance  string                `json:"openingBalance"`
	ClosingBalance  string                `json:"closingBalance"`
	Transactions    []BankTransactionFields `json:"transactions"`
	Insights        []string              `json:"insights"`
	Recommendations []string              `json:"recommendations"`
	Confidence      float64               `json:"confidence"`
}

type StatementPeriodFields struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type BankTransactionFields struct {
	Date         string `json:"date"`
	Description  string `json:"description"`
	Amount       string `json:"amount"`
	Balance      string `json:"balance"`
	Reference    string `json:"reference"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	Counterparty string `json:"counterparty"`
	IBAN         string `json:"iban"`
}
