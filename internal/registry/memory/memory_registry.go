// Package memory provides the in-process document registry. Records live
// for the lifetime of the process and are never evicted; there is no
// retention policy by design.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/domain"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/port"
)

type registry struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]*domain.Document
}

// NewRegistry creates an empty in-memory DocumentRegistry.
func NewRegistry() port.DocumentRegistry {
	return &registry{
		docs: make(map[uuid.UUID]*domain.Document),
	}
}

func (r *registry) Create(_ context.Context, doc *domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.docs[doc.ID]; exists {
		return domain.ErrDocumentExists
	}
	stored := *doc
	r.docs[doc.ID] = &stored
	return nil
}

func (r *registry) GetByID(_ context.Context, id uuid.UUID) (*domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *doc
	return &out, nil
}

func (r *registry) List(_ context.Context) ([]domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Document, 0, len(r.docs))
	for _, doc := range r.docs {
		out = append(out, *doc)
	}
	// Newest first; equal timestamps fall back to id so the ordering is
	// stable across repeated calls.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *registry) MarkProcessing(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	if doc.Status.IsTerminal() {
		return domain.ErrTerminalState
	}
	doc.Status = domain.StatusProcessing
	return nil
}

func (r *registry) Complete(_ context.Context, id uuid.UUID, data *domain.DocumentData, inferenceTimeMs int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	if doc.Status.IsTerminal() {
		return domain.ErrTerminalState
	}
	now := time.Now().UTC()
	doc.Status = domain.StatusCompleted
	doc.Data = data
	doc.Error = ""
	doc.ProcessedAt = &now
	doc.InferenceTimeMs = &inferenceTimeMs
	return nil
}

func (r *registry) Fail(_ context.Context, id uuid.UUID, errMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	if doc.Status.IsTerminal() {
		return domain.ErrTerminalState
	}
	now := time.Now().UTC()
	doc.Status = domain.StatusError
	doc.Data = nil
	doc.Error = errMsg
	doc.ProcessedAt = &now
	return nil
}
