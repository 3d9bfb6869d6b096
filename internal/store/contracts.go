package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmunteanu/contaflow/internal/domain"
)

// ContractStore owns uploaded contracts.
type ContractStore struct {
	mu        sync.RWMutex
	contracts []domain.Contract
}

func NewContractStore() *ContractStore {
	return &ContractStore{}
}

// CreatePlaceholder registers a draft contract carrying the uploaded file as
// its first attachment. The analysis enriches it later.
func (s *ContractStore) CreatePlaceholder(fileName, fileSize, fileType string) domain.Contract {
	id := uuid.NewString()
	now := time.Now()
	contract := domain.Contract{
		ID:       id,
		Number:   contractNumber(id),
		Type:     domain.ContractTypeOther,
		Status:   domain.ContractStatusDraft,
		Currency: "RON",
		Terms:    []string{},
		Deliverables: []string{},
		Milestones:   []domain.ContractMilestone{},
		Attachments: []domain.ContractAttachment{{
			ID:         uuid.NewString(),
			FileName:   fileName,
			FileSize:   fileSize,
			FileType:   fileType,
			UploadedAt: now,
		}},
		LinkedInvoices: []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
		Analysis: domain.ContractAnalysis{
			ExtractedData: domain.ContractExtractedData{
				Parties:            []string{},
				Obligations:        []string{},
				PaymentTerms:       []string{},
				Deliverables:       []string{},
				Penalties:          []string{},
				TerminationClauses: []string{},
			},
			RiskAssessment: domain.ContractRiskAssessment{
				Level:           domain.RiskMedium,
				Factors:         []string{},
				Recommendations: []string{},
			},
			KeyDates: domain.ContractKeyDates{
				PaymentDates: []time.Time{},
				Milestones:   []time.Time{},
			},
			Insights: []string{},
			Warnings: []string{},
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts = append(s.contracts, contract)
	return contract
}

// Complete replaces the draft with its analyzed version.
func (s *ContractStore) Complete(contract domain.Contract) error {
	contract.UpdatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contracts {
		if s.contracts[i].ID == contract.ID {
			s.contracts[i] = contract
			return nil
		}
	}
	return fmt.Errorf("contract not found: %s", contract.ID)
}

// MarkCancelled is the terminal failure state for a contract whose analysis
// did not resolve.
func (s *ContractStore) MarkCancelled(id string) error {
	return s.UpdateStatus(id, domain.ContractStatusCancelled)
}

func (s *ContractStore) UpdateStatus(id string, status domain.ContractStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contracts {
		if s.contracts[i].ID == id {
			s.contracts[i].Status = status
			s.contracts[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("contract not found: %s", id)
}

// AddMilestone appends a milestone with a generated id.
func (s *ContractStore) AddMilestone(contractID string, m domain.ContractMilestone) (domain.ContractMilestone, error) {
	m.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contracts {
		if s.contracts[i].ID == contractID {
			s.contracts[i].Milestones = append(s.contracts[i].Milestones, m)
			return m, nil
		}
	}
	return domain.ContractMilestone{}, fmt.Errorf("contract not found: %s", contractID)
}

// LinkInvoice records an invoice id on the contract. The reference is not
// validated against the accounting store.
func (s *ContractStore) LinkInvoice(contractID, invoiceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contracts {
		if s.contracts[i].ID == contractID {
			s.contracts[i].LinkedInvoices = append(s.contracts[i].LinkedInvoices, invoiceID)
			return nil
		}
	}
	return fmt.Errorf("contract not found: %s", contractID)
}

func (s *ContractStore) Get(id string) (domain.Contract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.contracts {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Contract{}, false
}

// Contracts returns a snapshot copy of all contracts.
func (s *ContractStore) Contracts() []domain.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Contract, len(s.contracts))
	copy(out, s.contracts)
	return out
}

func contractNumber(id string) string {
	short := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(short) > 8 {
		short = short[:8]
	}
	return "CTR-" + short
}
