package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/domain"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/service"
)

// DocumentHandler handles document upload and query endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// ListResponse is the body of GET /documents.
type ListResponse struct {
	Documents []domain.Document `json:"documents"`
	Total     int               `json:"total"`
}

// Upload handles POST /documents
// @Summary Upload an identity document
// @Description Accept an identity-document image and schedule asynchronous field extraction
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (jpg, jpeg, png, gif, bmp; max 10MB)"
// @Param document_type formData string false "Document type hint" Enums(auto, passport, driver_license) default(auto)
// @Param model formData string false "Model identifier"
// @Param deployment_type formData string false "Deployment type" Enums(serverless, on-demand) default(serverless)
// @Param custom_model_path formData string false "Custom model path for on-demand deployments"
// @Success 200 {object} domain.Document "Document accepted, status pending"
// @Failure 400 {object} ErrorBody "Validation error"
// @Failure 500 {object} ErrorBody "Internal error"
// @Router /documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "NO_FILE", "no file provided")
		return
	}
	defer func() { _ = file.Close() }()

	doc, err := h.documentService.Upload(c.Request.Context(), service.UploadInput{
		File:            file,
		Header:          header,
		DocumentType:    c.PostForm("document_type"),
		Model:           c.PostForm("model"),
		DeploymentType:  c.PostForm("deployment_type"),
		CustomModelPath: c.PostForm("custom_model_path"),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// GetByID handles GET /documents/:id
// @Summary Get document by ID
// @Description Get a document record in whatever processing state it is in
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} domain.Document "Document record"
// @Failure 404 {object} ErrorBody "Document not found"
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetByID(c *gin.Context) {
	// A malformed id was never issued, so it maps to not-found rather than
	// a bad request.
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "NOT_FOUND", "document not found")
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// List handles GET /documents
// @Summary List documents
// @Description List all document records, newest first
// @Tags documents
// @Produce json
// @Success 200 {object} ListResponse "Documents and total count"
// @Router /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.documentService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Documents: docs, Total: len(docs)})
}
