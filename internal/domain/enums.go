package domain

// DocumentStatus represents the processing lifecycle of a document.
// Transitions are pending -> processing -> completed | error; completed and
// error are terminal.
type DocumentStatus string

const (
	StatusPending    DocumentStatus = "pending"
	StatusProcessing DocumentStatus = "processing"
	StatusCompleted  DocumentStatus = "completed"
	StatusError      DocumentStatus = "error"
)

// IsTerminal reports whether no further transitions may leave this status.
func (s DocumentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusError
}

// DocumentType is the caller's hint about what kind of identity document
// was uploaded.
type DocumentType string

const (
	DocumentTypeAuto          DocumentType = "auto"
	DocumentTypePassport      DocumentType = "passport"
	DocumentTypeDriverLicense DocumentType = "driver_license"
)

// ValidDocumentTypes enumerates the accepted document-type hints.
var ValidDocumentTypes = map[DocumentType]bool{
	DocumentTypeAuto:          true,
	DocumentTypePassport:      true,
	DocumentTypeDriverLicense: true,
}

// DeploymentType selects how the extraction model is hosted.
type DeploymentType string

const (
	DeploymentServerless DeploymentType = "serverless"
	DeploymentOnDemand   DeploymentType = "on-demand"
)

// ValidDeploymentTypes enumerates the accepted deployment-type hints.
var ValidDeploymentTypes = map[DeploymentType]bool{
	DeploymentServerless: true,
	DeploymentOnDemand:   true,
}

// AllowedExtensions maps accepted image file extensions (without dot) to
// their MIME content types.
var AllowedExtensions = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
}

// MaxUploadBytes is the upload size cap (10 MiB).
const MaxUploadBytes = 10 * 1024 * 1024
