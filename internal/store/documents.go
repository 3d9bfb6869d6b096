// Package store holds the four independent in-memory collections the
// application state lives in: documents, contracts, banking and accounting.
// Stores share no transactional semantics with each other; every update is a
// replace-the-slice operation behind the store's own lock, and reads return
// copies. Data lives for the lifetime of the process only.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmunteanu/contaflow/internal/domain"
)

// DocumentStore owns uploaded documents and the transactions generated from
// them.
type DocumentStore struct {
	mu           sync.RWMutex
	documents    []domain.Document
	transactions []domain.Transaction
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// CreatePlaceholder registers a document in the processing state, visible to
// readers immediately while the analysis is in flight.
func (s *DocumentStore) CreatePlaceholder(fileName, fileSize string) domain.Document {
	doc := domain.Document{
		ID:                    uuid.NewString(),
		FileName:              fileName,
		FileSize:              fileSize,
		Status:                domain.DocumentStatusProcessing,
		Insights:              []string{},
		Recommendations:       []string{},
		GeneratedTransactions: []domain.Transaction{},
		UploadedAt:            time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, doc)
	return doc
}

// Complete replaces the placeholder with its enriched version and records
// the generated transactions. Transactions are immutable once added.
func (s *DocumentStore) Complete(doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.documents {
		if s.documents[i].ID == doc.ID {
			s.documents[i] = doc
			s.transactions = append(s.transactions, doc.GeneratedTransactions...)
			return nil
		}
	}
	return fmt.Errorf("document not found: %s", doc.ID)
}

// MarkFailed flips the document to its terminal error state. The only
// recourse afterwards is a fresh upload.
func (s *DocumentStore) MarkFailed(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.documents {
		if s.documents[i].ID == id {
			s.documents[i].Status = domain.DocumentStatusError
			return nil
		}
	}
	return fmt.Errorf("document not found: %s", id)
}

func (s *DocumentStore) Get(id string) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.documents {
		if doc.ID == id {
			return doc, true
		}
	}
	return domain.Document{}, false
}

// Documents returns a snapshot copy of all documents.
func (s *DocumentStore) Documents() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Document, len(s.documents))
	copy(out, s.documents)
	return out
}

// Transactions returns a snapshot copy of all generated transactions.
func (s *DocumentStore) Transactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}
