package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/domain"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/extractor"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/metrics"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/port"
)

// UploadInput is the DTO for document upload requests.
type UploadInput struct {
	File            multipart.File
	Header          *multipart.FileHeader
	DocumentType    string
	Model           string
	DeploymentType  string
	CustomModelPath string
}

// ProcessTask carries everything the asynchronous processing step needs.
// The originating request does not block on it.
type ProcessTask struct {
	DocumentID     uuid.UUID
	ScratchName    string
	ContentType    string
	DocumentType   domain.DocumentType
	Model          string
	DeploymentType domain.DeploymentType
}

// Scheduler hands a ProcessTask off for asynchronous execution.
type Scheduler interface {
	Enqueue(task ProcessTask)
}

// DocumentService defines the document lifecycle contract.
type DocumentService interface {
	Upload(ctx context.Context, input UploadInput) (*domain.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)

	// ProcessDocument runs the asynchronous extraction for a single task.
	// It never returns an error and never panics past its boundary: every
	// failure is recorded on the document instead.
	ProcessDocument(ctx context.Context, task ProcessTask)
}

type documentService struct {
	registry     port.DocumentRegistry
	scratch      port.ScratchStore
	extractor    port.FieldExtractor
	scheduler    Scheduler
	defaultModel string
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	registry port.DocumentRegistry,
	scratch port.ScratchStore,
	fieldExtractor port.FieldExtractor,
	scheduler Scheduler,
	defaultModel string,
) DocumentService {
	return &documentService{
		registry:     registry,
		scratch:      scratch,
		extractor:    fieldExtractor,
		scheduler:    scheduler,
		defaultModel: defaultModel,
	}
}

func (s *documentService) Upload(ctx context.Context, input UploadInput) (*domain.Document, error) {
	// Validation order matters: each check fails fast before any record is
	// created or scratch file written.
	if input.Header == nil || input.Header.Filename == "" || input.Header.Size == 0 {
		return nil, domain.ErrNoFile
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	extContentType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	if input.Header.Size > domain.MaxUploadBytes {
		return nil, domain.ErrFileTooLarge
	}

	docType := domain.DocumentType(input.DocumentType)
	if docType == "" {
		docType = domain.DocumentTypeAuto
	}
	if !domain.ValidDocumentTypes[docType] {
		return nil, domain.ErrInvalidDocumentType
	}

	deployType := domain.DeploymentType(input.DeploymentType)
	if deployType == "" {
		deployType = domain.DeploymentServerless
	}
	if !domain.ValidDeploymentTypes[deployType] {
		return nil, domain.ErrInvalidDeploymentType
	}

	fileBytes, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if len(fileBytes) == 0 {
		return nil, domain.ErrNoFile
	}

	model := input.Model
	if model == "" {
		model = s.defaultModel
	}
	// On-demand deployments may point at a custom model path.
	if deployType == domain.DeploymentOnDemand && input.CustomModelPath != "" {
		model = input.CustomModelPath
	}

	// The extension decides the content type; multipart headers are often
	// a generic application/octet-stream.
	contentType := extContentType
	preview := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(fileBytes))

	id := uuid.New()
	scratchName := id.String() + "." + ext

	if err := s.scratch.Write(ctx, scratchName, fileBytes); err != nil {
		return nil, fmt.Errorf("writing scratch file: %w", err)
	}

	doc := &domain.Document{
		ID:           id,
		Status:       domain.StatusPending,
		CreatedAt:    time.Now().UTC(),
		SourceFile:   input.Header.Filename,
		ImagePreview: preview,
		ModelUsed:    model,
	}

	if err := s.registry.Create(ctx, doc); err != nil {
		if removeErr := s.scratch.Remove(ctx, scratchName); removeErr != nil {
			log.Printf("documentService.Upload: failed to remove scratch file %s: %v", scratchName, removeErr)
		}
		return nil, fmt.Errorf("registering document: %w", err)
	}

	log.Printf("documentService.Upload: accepted document %s (%s, %d bytes, type=%s, model=%s)",
		id, input.Header.Filename, len(fileBytes), docType, model)
	metrics.IncrementDocumentsUploaded()

	s.scheduler.Enqueue(ProcessTask{
		DocumentID:     id,
		ScratchName:    scratchName,
		ContentType:    contentType,
		DocumentType:   docType,
		Model:          model,
		DeploymentType: deployType,
	})

	return doc, nil
}

func (s *documentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	return s.registry.GetByID(ctx, id)
}

func (s *documentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.registry.List(ctx)
}

func (s *documentService) ProcessDocument(ctx context.Context, task ProcessTask) {
	// Outermost defer runs last: it converts a panic anywhere below,
	// including inside the cleanup defer, into an error status so that a
	// single document's failure never escapes the task boundary.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("documentService.ProcessDocument: panic processing document %s: %v", task.DocumentID, r)
			s.fail(ctx, task.DocumentID, fmt.Sprintf("Unexpected error: %v", r))
		}
	}()

	// Scratch cleanup is unconditional and best-effort: a removal failure
	// is logged and never changes an already-determined terminal status.
	defer func() {
		if err := s.scratch.Remove(ctx, task.ScratchName); err != nil {
			log.Printf("documentService.ProcessDocument: failed to clean up scratch file %s: %v", task.ScratchName, err)
		}
	}()

	if err := s.registry.MarkProcessing(ctx, task.DocumentID); err != nil {
		// Records are never deleted, so this is defensive only.
		log.Printf("documentService.ProcessDocument: cannot mark document %s processing: %v", task.DocumentID, err)
		return
	}

	exists, err := s.scratch.Exists(ctx, task.ScratchName)
	if err != nil {
		s.fail(ctx, task.DocumentID, fmt.Sprintf("File error: checking scratch file %s: %v", task.ScratchName, err))
		return
	}
	if !exists {
		s.fail(ctx, task.DocumentID, fmt.Sprintf("File error: scratch file not found: %s", task.ScratchName))
		return
	}

	fileBytes, err := s.scratch.Read(ctx, task.ScratchName)
	if err != nil {
		s.fail(ctx, task.DocumentID, fmt.Sprintf("File error: %v", err))
		return
	}

	start := time.Now()
	output, err := s.extractor.Extract(ctx, port.ExtractInput{
		FileBytes:    fileBytes,
		ContentType:  task.ContentType,
		DocumentType: task.DocumentType,
		Model:        task.Model,
	})
	inferenceTimeMs := time.Since(start).Milliseconds()
	metrics.ObserveExtractionDuration(time.Since(start).Seconds())

	if err != nil {
		var exErr *extractor.Error
		if errors.As(err, &exErr) {
			s.fail(ctx, task.DocumentID, fmt.Sprintf("Processing error: %v", err))
		} else {
			s.fail(ctx, task.DocumentID, fmt.Sprintf("Unexpected error: %v", err))
		}
		return
	}

	if output == nil || output.Data.IsEmpty() {
		s.fail(ctx, task.DocumentID, "Processing error: no data extracted")
		return
	}

	if err := s.registry.Complete(ctx, task.DocumentID, output.Data, inferenceTimeMs); err != nil {
		log.Printf("documentService.ProcessDocument: failed to save results for %s: %v", task.DocumentID, err)
		return
	}
	metrics.IncrementDocumentsProcessed(string(domain.StatusCompleted))
	log.Printf("documentService.ProcessDocument: document %s completed in %dms", task.DocumentID, inferenceTimeMs)
}

func (s *documentService) fail(ctx context.Context, id uuid.UUID, errMsg string) {
	log.Printf("documentService.fail: document %s failed: %s", id, errMsg)
	if err := s.registry.Fail(ctx, id, errMsg); err != nil {
		log.Printf("documentService.fail: failed to update status for %s: %v", id, err)
		return
	}
	metrics.IncrementDocumentsProcessed(string(domain.StatusError))
}
