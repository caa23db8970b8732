package domain

import "errors"

var (
	ErrNotFound              = errors.New("document not found")
	ErrNoFile                = errors.New("no file provided")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file exceeds maximum allowed size")
	ErrInvalidDocumentType   = errors.New("invalid document type")
	ErrInvalidDeploymentType = errors.New("invalid deployment type")
	ErrDocumentExists        = errors.New("document already exists")
	ErrTerminalState         = errors.New("document is in a terminal state")
)
