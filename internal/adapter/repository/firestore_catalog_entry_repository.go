package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"baupanel/internal/domain/entity"
	"baupanel/internal/domain/repository"
	"baupanel/pkg/errors"
)

type firestoreCatalogEntryRepository struct {
	client *firestore.Client
}

func NewFirestoreCatalogEntryRepository(client *firestore.Client) repository.CatalogEntryRepository {
	return &firestoreCatalogEntryRepository{
		client: client,
	}
}

func (r *firestoreCatalogEntryRepository) Create(ctx context.Context, entry *entity.CatalogEntry) error {
	if entry.ID == "" {
		doc := r.client.Collection("catalog_entries").NewDoc()
		entry.ID = doc.ID
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("catalog_entries").Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return errors.Internal("Failed to create catalog entry", err)
	}

	return nil
}

func (r *firestoreCatalogEntryRepository) GetByID(ctx context.Context, id string) (*entity.CatalogEntry, error) {
	doc, err := r.client.Collection("catalog_entries").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Catalog entry", err)
		}
		return nil, errors.Internal("Failed to get catalog entry", err)
	}

	var entry entity.CatalogEntry
	if err := doc.DataTo(&entry); err != nil {
		return nil, errors.Internal("Failed to parse catalog entry data", err)
	}

	return &entry, nil
}

func (r *firestoreCatalogEntryRepository) ListByFolder(ctx context.Context, folderID string) ([]*entity.CatalogEntry, error) {
	iter := r.client.Collection("catalog_entries").Where("folderId", "==", folderID).Documents(ctx)

	var entries []*entity.CatalogEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate catalog entries", err)
		}

		var entry entity.CatalogEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, errors.Internal("Failed to parse catalog entry data", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *firestoreCatalogEntryRepository) CountByFolder(ctx context.Context, folderID string) (int, error) {
	docs, err := r.client.Collection("catalog_entries").Where("folderId", "==", folderID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count catalog entries", err)
	}
	return len(docs), nil
}

func (r *firestoreCatalogEntryRepository) Update(ctx context.Context, entry *entity.CatalogEntry) error {
	_, err := r.client.Collection("catalog_entries").Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return errors.Internal("Failed to update catalog entry", err)
	}

	return nil
}

func (r *firestoreCatalogEntryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("catalog_entries").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete catalog entry", err)
	}

	return nil
}

func (r *firestoreCatalogEntryRepository) DeleteBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	batch := r.client.Batch()
	for _, id := range ids {
		batch.Delete(r.client.Collection("catalog_entries").Doc(id))
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to batch delete catalog entries", err)
	}

	return nil
}
