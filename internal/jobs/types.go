package jobs

import (
	"context"
	"time"

	"github.com/vmunteanu/contaflow/internal/classify"
)

// JobStatus represents the current status of a job.
type JobStatus string

const (
	// JobStatusPending indicates the job is waiting to be processed.
	JobStatusPending JobStatus = "pending"
	// JobStatusRunning indicates the job is currently being processed.
	JobStatusRunning JobStatus = "running"
	// JobStatusCompleted indicates the job completed successfully.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusFailed indicates the job failed. Failures are terminal;
	// the entity placeholder is marked errored and the user re-uploads.
	JobStatusFailed JobStatus = "failed"
	// JobStatusCancelled indicates the job was cancelled before or
	// during analysis.
	JobStatusCancelled JobStatus = "cancelled"
)

// AnalyzeUploadJob carries an uploaded file through AI analysis. The
// entity placeholder is created synchronously at upload time; the job
// fills it in (or marks it errored) when analysis finishes.
type AnalyzeUploadJob struct {
	// JobID is the unique identifier for this job.
	JobID string `json:"jobId"`

	// Kind is the detected upload kind (document, contract, bank).
	Kind classify.Kind `json:"kind"`

	// EntityID is the ID of the placeholder record awaiting analysis.
	EntityID string `json:"entityId"`

	// FileName is the original upload file name.
	FileName string `json:"fileName"`

	// MIMEType is the upload content type.
	MIMEType string `json:"mimeType"`

	// Data is the raw file content. Never serialized.
	Data []byte `json:"-"`

	// Status is the current status of the job.
	Status JobStatus `json:"status"`

	// CreatedAt is when the job was created.
	CreatedAt time.Time `json:"createdAt"`

	// StartedAt is when the job started processing.
	StartedAt *time.Time `json:"startedAt,omitempty"`

	// CompletedAt is when the job finished (success, failure or cancel).
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	// Error contains error details if the job failed.
	Error string `json:"error,omitempty"`
}

// Publisher defines the interface for publishing jobs to a queue.
type Publisher interface {
	// PublishAnalyzeUpload publishes an upload analysis job.
	PublishAnalyzeUpload(ctx context.Context, job *AnalyzeUploadJob) error

	// Close closes the publisher and releases resources.
	Close() error
}

// Consumer defines the interface for consuming jobs from a queue.
type Consumer interface {
	// Start begins consuming jobs from the queue.
	// The handler function is called for each job received.
	Start(ctx context.Context, handler JobHandler) error

	// Stop stops consuming jobs and waits for in-flight jobs to complete.
	Stop(ctx context.Context) error
}

// JobHandler is a function that processes a job. A returned error marks
// the job failed; there is no retry.
type JobHandler func(ctx context.Context, job *AnalyzeUploadJob) error

// JobStore defines the interface for storing and retrieving job status.
type JobStore interface {
	// SaveJob saves or updates a job's state.
	SaveJob(ctx context.Context, job *AnalyzeUploadJob) error

	// GetJob retrieves a job by ID.
	GetJob(ctx context.Context, jobID string) (*AnalyzeUploadJob, error)

	// ListJobs retrieves jobs with optional filtering.
	ListJobs(ctx context.Context, filter JobFilter) ([]*AnalyzeUploadJob, error)

	// UpdateJobStatus updates the status of a job.
	UpdateJobStatus(ctx context.Context, jobID string, status JobStatus, errorMsg string) error
}

// JobFilter defines filtering criteria for listing jobs.
type JobFilter struct {
	// EntityID filters jobs by the placeholder entity they fill.
	EntityID string

	// Status filters jobs by status.
	Status JobStatus

	// Limit limits the number of results.
	Limit int

	// Offset for pagination.
	Offset int
}
