// Package pipeline connects uploads to the AI analysis and the in-memory
// stores. An upload is classified by file name, a placeholder record is
// created synchronously, and the analysis runs as a queued job that
// enriches the placeholder or marks it failed.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/vmunteanu/contaflow/internal/classify"
	"github.com/vmunteanu/contaflow/internal/extract"
	"github.com/vmunteanu/contaflow/internal/jobs"
	"github.com/vmunteanu/contaflow/internal/parse"
	"github.com/vmunteanu/contaflow/internal/recon"
	"github.com/vmunteanu/contaflow/internal/store"
)

// Receipt is returned to the uploader immediately. The entity referenced
// by EntityID is already visible in its store, in the processing state.
type Receipt struct {
	Kind     classify.Kind `json:"kind"`
	EntityID string        `json:"entityId"`
	JobID    string        `json:"jobId"`
}

// Service owns the ingest flow and the per-entity cancellation registry.
type Service struct {
	analyzer   extract.Analyzer
	queue      jobs.Publisher
	documents  *store.DocumentStore
	contracts  *store.ContractStore
	banking    *store.BankingStore
	accounting *store.AccountingStore
	log        zerolog.Logger

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

func New(
	analyzer extract.Analyzer,
	queue jobs.Publisher,
	documents *store.DocumentStore,
	contracts *store.ContractStore,
	banking *store.BankingStore,
	accounting *store.AccountingStore,
	log zerolog.Logger,
) *Service {
	return &Service{
		analyzer:   analyzer,
		queue:      queue,
		documents:  documents,
		contracts:  contracts,
		banking:    banking,
		accounting: accounting,
		log:        log,
		cancels:    make(map[string]context.CancelFunc),
	}
}

// Ingest classifies the upload, creates the placeholder record and
// enqueues the analysis job. The returned receipt identifies both the
// placeholder and the job filling it.
func (s *Service) Ingest(ctx context.Context, fileName, mimeType string, size int64, data []byte) (Receipt, error) {
	kind := classify.Detect(fileName)
	fileSize := parse.FileSize(size)

	var entityID string
	switch kind {
	case classify.KindContract:
		entityID = s.contracts.CreatePlaceholder(fileName, fileSize, mimeType).ID
	case classify.KindBank:
		entityID = s.banking.CreateStatementPlaceholder(fileName, fileSize).ID
	default:
		entityID = s.documents.CreatePlaceholder(fileName, fileSize).ID
	}

	job := &jobs.AnalyzeUploadJob{
		Kind:     kind,
		EntityID: entityID,
		FileName: fileName,
		MIMEType: mimeType,
		Data:     data,
	}
	if err := s.queue.PublishAnalyzeUpload(ctx, job); err != nil {
		s.markFailed(kind, entityID)
		return Receipt{}, fmt.Errorf("pipeline: enqueue analysis: %w", err)
	}

	s.log.Info().
		Str("kind", string(kind)).
		Str("entity_id", entityID).
		Str("job_id", job.JobID).
		Str("file", fileName).
		Msg("Upload accepted for analysis")

	return Receipt{Kind: kind, EntityID: entityID, JobID: job.JobID}, nil
}

// HandleJob runs one analysis job. It is wired into the queue consumer.
// A failed or cancelled analysis flips the placeholder to its terminal
// failure state; there is no retry.
func (s *Service) HandleJob(ctx context.Context, job *jobs.AnalyzeUploadJob) error {
	ctx, cancel := context.WithCancel(ctx)
	s.register(job.EntityID, cancel)
	defer s.unregister(job.EntityID)
	defer cancel()

	file := extract.File{Name: job.FileName, MIMEType: job.MIMEType, Data: job.Data}

	var err error
	switch job.Kind {
	case classify.KindContract:
		err = s.handleContract(ctx, job.EntityID, file)
	case classify.KindBank:
		err = s.handleBankStatement(ctx, job.EntityID, file)
	default:
		err = s.handleDocument(ctx, job.EntityID, file)
	}

	if err != nil {
		s.markFailed(job.Kind, job.EntityID)
		s.log.Error().Err(err).
			Str("kind", string(job.Kind)).
			Str("entity_id", job.EntityID).
			Msg("Analysis failed")
		return err
	}
	return nil
}

// Cancel aborts the in-flight analysis for an entity. Returns false when
// no analysis is running for it.
func (s *Service) Cancel(entityID string) bool {
	s.mu.Lock()
	cancel, ok := s.cancels[entityID]
	s.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}

func (s *Service) handleDocument(ctx context.Context, id string, file extract.File) error {
	analysis, err := s.analyzer.AnalyzeDocument(ctx, file)
	if err != nil {
		return err
	}
	doc, ok := s.documents.Get(id)
	if !ok {
		return fmt.Errorf("pipeline: document disappeared: %s", id)
	}
	return s.documents.Complete(documentFromAnalysis(doc, *analysis))
}

func (s *Service) handleContract(ctx context.Context, id string, file extract.File) error {
	analysis, err := s.analyzer.AnalyzeContract(ctx, file)
	if err != nil {
		return err
	}
	contract, ok := s.contracts.Get(id)
	if !ok {
		return fmt.Errorf("pipeline: contract disappeared: %s", id)
	}
	return s.contracts.Complete(contractFromAnalysis(contract, *analysis))
}

func (s *Service) handleBankStatement(ctx context.Context, id string, file extract.File) error {
	analysis, err := s.analyzer.AnalyzeBankStatement(ctx, file)
	if err != nil {
		return err
	}
	stmt, ok := s.banking.GetStatement(id)
	if !ok {
		return fmt.Errorf("pipeline: bank statement disappeared: %s", id)
	}

	stmt = statementFromAnalysis(stmt, *analysis)
	if err := s.banking.CompleteStatement(stmt); err != nil {
		return err
	}

	// Auto-reconcile the new transactions against everything known now.
	ledger := recon.Ledger{
		Documents:    s.documents.Documents(),
		Invoices:     s.accounting.Invoices(),
		Transactions: s.documents.Transactions(),
	}
	s.banking.AddReconciliations(ledger.MatchAll(stmt.Transactions))
	return nil
}

func (s *Service) markFailed(kind classify.Kind, entityID string) {
	switch kind {
	case classify.KindContract:
		_ = s.contracts.MarkCancelled(entityID)
	case classify.KindBank:
		_ = s.banking.MarkStatementFailed(entityID)
	default:
		_ = s.documents.MarkFailed(entityID)
	}
}

func (s *Service) register(entityID string, cancel context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancels[entityID] = cancel
}

func (s *Service) unregister(entityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cancels, entityID)
}
