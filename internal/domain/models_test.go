package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestDocumentDataIsEmpty(t *testing.T) {
	var nilData *domain.DocumentData
	assert.True(t, nilData.IsEmpty())
	assert.True(t, (&domain.DocumentData{}).IsEmpty())

	// Empty-string values do not count as extracted.
	assert.True(t, (&domain.DocumentData{FullName: strPtr("")}).IsEmpty())

	// Coordinates and scores without a value do not count either.
	conf := 0.9
	assert.True(t, (&domain.DocumentData{
		FullNameBBox:       []float64{1, 2, 3, 4},
		FullNameConfidence: &conf,
	}).IsEmpty())

	assert.False(t, (&domain.DocumentData{FullName: strPtr("JANE DOE")}).IsEmpty())
	assert.False(t, (&domain.DocumentData{ExtractedText: strPtr("some text")}).IsEmpty())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, domain.StatusPending.IsTerminal())
	assert.False(t, domain.StatusProcessing.IsTerminal())
	assert.True(t, domain.StatusCompleted.IsTerminal())
	assert.True(t, domain.StatusError.IsTerminal())
}

func TestDocumentJSONOmitsUnsetFields(t *testing.T) {
	doc := domain.Document{
		ID:        uuid.New(),
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "created_at")
	assert.NotContains(t, fields, "data")
	assert.NotContains(t, fields, "error")
	assert.NotContains(t, fields, "processed_at")
	assert.NotContains(t, fields, "inference_time_ms")
}
