package domain

import "time"

type ContractType string

const (
	ContractTypeService     ContractType = "service"
	ContractTypeSupply      ContractType = "supply"
	ContractTypeMaintenance ContractType = "maintenance"
	ContractTypeConsulting  ContractType = "consulting"
	ContractTypeOther       ContractType = "other"
)

type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "draft"
	ContractStatusActive    ContractStatus = "active"
	ContractStatusCompleted ContractStatus = "completed"
	ContractStatusCancelled ContractStatus = "cancelled"
	ContractStatusExpired   ContractStatus = "expired"
)

// Contract is created as a placeholder when a contract file is uploaded and
// enriched once by the AI analysis. Status changes and invoice links may
// happen at any point afterwards.
type Contract struct {
	ID             string               `json:"id"`
	Number         string               `json:"number"`
	Title          string               `json:"title"`
	ClientID       string               `json:"clientId"`
	ClientName     string               `json:"clientName"`
	SupplierID     string               `json:"supplierId,omitempty"`
	SupplierName   string               `json:"supplierName,omitempty"`
	Type           ContractType         `json:"type"`
	Status         ContractStatus       `json:"status"`
	StartDate      time.Time            `json:"startDate"`
	EndDate        time.Time            `json:"endDate"`
	Value          float64              `json:"value"`
	Currency       string               `json:"currency"`
	PaymentTerms   string               `json:"paymentTerms"`
	Description    string               `json:"description"`
	Terms          []string             `json:"terms"`
	Deliverables   []string             `json:"deliverables"`
	Milestones     []ContractMilestone  `json:"milestones"`
	Attachments    []ContractAttachment `json:"attachments"`
	LinkedInvoices []string             `json:"linkedInvoices"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
	Analysis       ContractAnalysis     `json:"analysis"`
}

type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "pending"
	MilestoneInProgress MilestoneStatus = "in-progress"
	MilestoneCompleted  MilestoneStatus = "completed"
	MilestoneOverdue    MilestoneStatus = "overdue"
)

type ContractMilestone struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     time.Time       `json:"dueDate"`
	Value       float64         `json:"value"`
	Status      MilestoneStatus `json:"status"`
	InvoiceID   string          `json:"invoiceId,omitempty"`
}

type ContractAttachment struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	FileSize   string    `json:"fileSize"`
	FileType   string    `json:"fileType"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ContractAnalysis is the structured result of the AI contract review.
type ContractAnalysis struct {
	Confidence     float64                `json:"confidence"`
	ExtractedData  ContractExtractedData  `json:"extractedData"`
	RiskAssessment ContractRiskAssessment `json:"riskAssessment"`
	KeyDates       ContractKeyDates       `json:"keyDates"`
	Insights       []string               `json:"insights"`
	Warnings       []string               `json:"warnings"`
}

type ContractExtractedData struct {
	Parties            []string `json:"parties"`
	Obligations        []string `json:"obligations"`
	PaymentTerms       []string `json:"paymentTerms"`
	Deliverables       []string `json:"deliverables"`
	Penalties          []string `json:"penalties"`
	TerminationClauses []string `json:"terminationClauses"`
}

type ContractRiskAssessment struct {
	Level           RiskLevel `json:"level"`
	Factors         []string  `json:"factors"`
	Recommendations []string  `json:"recommendations"`
}

type ContractKeyDates struct {
	StartDate    *time.Time  `json:"startDate,omitempty"`
	EndDate      *time.Time  `json:"endDate,omitempty"`
	PaymentDates []time.Time `json:"paymentDates"`
	Milestones   []time.Time `json:"milestones"`
}
