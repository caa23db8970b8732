package port

import "context"

// ScratchStore holds uploaded files between upload and processing. Objects
// are keyed by "<document id>.<extension>" so no two documents contend on
// the same key. Contents are transient and removed after processing.
type ScratchStore interface {
	Write(ctx context.Context, name string, data []byte) error
	Read(ctx context.Context, name string) ([]byte, error)
	Exists(ctx context.Context, name string) (bool, error)
	Remove(ctx context.Context, name string) error
}
