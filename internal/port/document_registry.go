package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/domain"
)

// DocumentRegistry is the in-process store of document records and the
// single source of truth for status polling. Implementations must apply
// every mutation atomically with respect to concurrent reads: a reader must
// never observe a completed record without its extracted data.
type DocumentRegistry interface {
	// Create stores a new record. Returns domain.ErrDocumentExists if the
	// id has already been issued.
	Create(ctx context.Context, doc *domain.Document) error

	// GetByID returns a copy of the record or domain.ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)

	// List returns copies of all records ordered by created_at descending,
	// ties broken by id so repeated calls with no intervening writes are
	// stable.
	List(ctx context.Context) ([]domain.Document, error)

	// MarkProcessing transitions a pending record to processing.
	MarkProcessing(ctx context.Context, id uuid.UUID) error

	// Complete transitions a record to completed, attaching the extracted
	// data, the processing timestamp, and the inference duration.
	Complete(ctx context.Context, id uuid.UUID, data *domain.DocumentData, inferenceTimeMs int64) error

	// Fail transitions a record to error with a human-readable message and
	// the processing timestamp.
	Fail(ctx context.Context, id uuid.UUID, errMsg string) error
}
