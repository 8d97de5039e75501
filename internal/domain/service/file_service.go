package service

import (
	"context"
	"io"
)

// DeleteOutcome is the typed result of an asset-store delete. Cascades treat
// Deleted and NotFound as success; Failed is advisory and never aborts a
// cascade, but single-object callers may surface it.
type DeleteOutcome int

const (
	DeleteOutcomeDeleted DeleteOutcome = iota
	DeleteOutcomeNotFound
	DeleteOutcomeFailed
)

func (o DeleteOutcome) String() string {
	switch o {
	case DeleteOutcomeDeleted:
		return "deleted"
	case DeleteOutcomeNotFound:
		return "not_found"
	default:
		return "failed"
	}
}

// UploadResult describes a stored object: its public URL and the object name
// used for later deletion.
type UploadResult struct {
	URL  string
	Name string
	Size int64
}

// FileStorageService is the asset-store adapter. Metadata in Firestore is
// authoritative; this store only holds the binary payloads.
type FileStorageService interface {
	Upload(ctx context.Context, file io.Reader, contentType, folder string) (*UploadResult, error)
	// Destroy removes one object. A missing object reports
	// DeleteOutcomeNotFound with a nil error.
	Destroy(ctx context.Context, objectName string) (DeleteOutcome, error)
	// ListByPrefix returns the names of all objects under prefix.
	ListByPrefix(ctx context.Context, prefix string) ([]string, error)
	// DeleteByPrefix removes every object under prefix, best effort. It
	// returns the number of objects deleted.
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
	Close() error
}
