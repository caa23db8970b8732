package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document represents one submitted identity document and its processing
// outcome. Once the status is terminal, exactly one of Data or Error is set
// and ProcessedAt is set; InferenceTimeMs is set only on completion.
type Document struct {
	ID              uuid.UUID      `json:"id"`
	Status          DocumentStatus `json:"status"`
	Data            *DocumentData  `json:"data,omitempty"`
	Error           string         `json:"error,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	ProcessedAt     *time.Time     `json:"processed_at,omitempty"`
	SourceFile      string         `json:"source_file,omitempty"`
	ImagePreview    string         `json:"image_preview,omitempty"`
	ModelUsed       string         `json:"model_used,omitempty"`
	InferenceTimeMs *int64         `json:"inference_time_ms,omitempty"`
}

// DocumentData holds the identity fields extracted from a document image.
// Each field carries an optional value, an optional bounding box
// [x1, y1, x2, y2] in pixels, and an optional confidence score in [0, 1].
type DocumentData struct {
	DocumentType *string `json:"document_type,omitempty"`

	FullName           *string   `json:"full_name,omitempty"`
	FullNameBBox       []float64 `json:"full_name_bbox,omitempty"`
	FullNameConfidence *float64  `json:"full_name_confidence,omitempty"`

	DateOfBirth           *string   `json:"date_of_birth,omitempty"`
	DateOfBirthBBox       []float64 `json:"date_of_birth_bbox,omitempty"`
	DateOfBirthConfidence *float64  `json:"date_of_birth_confidence,omitempty"`

	DocumentNumber           *string   `json:"document_number,omitempty"`
	DocumentNumberBBox       []float64 `json:"document_number_bbox,omitempty"`
	DocumentNumberConfidence *float64  `json:"document_number_confidence,omitempty"`

	ExpiryDate           *string   `json:"expiry_date,omitempty"`
	ExpiryDateBBox       []float64 `json:"expiry_date_bbox,omitempty"`
	ExpiryDateConfidence *float64  `json:"expiry_date_confidence,omitempty"`

	IssueDate           *string   `json:"issue_date,omitempty"`
	IssueDateBBox       []float64 `json:"issue_date_bbox,omitempty"`
	IssueDateConfidence *float64  `json:"issue_date_confidence,omitempty"`

	Nationality           *string   `json:"nationality,omitempty"`
	NationalityBBox       []float64 `json:"nationality_bbox,omitempty"`
	NationalityConfidence *float64  `json:"nationality_confidence,omitempty"`

	Address           *string   `json:"address,omitempty"`
	AddressBBox       []float64 `json:"address_bbox,omitempty"`
	AddressConfidence *float64  `json:"address_confidence,omitempty"`

	ExtractedText *string `json:"extracted_text,omitempty"`
}

// IsEmpty reports whether no value field was extracted. Bounding boxes and
// confidence scores alone do not count as extracted data.
func (d *DocumentData) IsEmpty() bool {
	if d == nil {
		return true
	}
	for _, v := range []*string{
		d.DocumentType,
		d.FullName,
		d.DateOfBirth,
		d.DocumentNumber,
		d.ExpiryDate,
		d.IssueDate,
		d.Nationality,
		d.Address,
		d.ExtractedText,
	} {
		if v != nil && *v != "" {
			return false
		}
	}
	return true
}
