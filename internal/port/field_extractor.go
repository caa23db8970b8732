package port

import (
	"context"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/domain"
)

// ExtractInput carries the data needed for identity field extraction.
type ExtractInput struct {
	FileBytes    []byte
	ContentType  string
	DocumentType domain.DocumentType
	Model        string
}

// ExtractOutput contains the structured result from the vision model.
type ExtractOutput struct {
	Data      *domain.DocumentData
	ModelUsed string
}

// FieldExtractor abstracts vision-model based identity field extraction.
type FieldExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
}
