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

type firestoreGalleryRepository struct {
	client *firestore.Client
}

func NewFirestoreGalleryRepository(client *firestore.Client) repository.GalleryRepository {
	return &firestoreGalleryRepository{
		client: client,
	}
}

func (r *firestoreGalleryRepository) Create(ctx context.Context, image *entity.GalleryImage) error {
	if image.ID == "" {
		doc := r.client.Collection("gallery_images").NewDoc()
		image.ID = doc.ID
	}
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("gallery_images").Doc(image.ID).Set(ctx, image)
	if err != nil {
		return errors.Internal("Failed to create gallery image", err)
	}

	return nil
}

func (r *firestoreGalleryRepository) GetByID(ctx context.Context, id string) (*entity.GalleryImage, error) {
	doc, err := r.client.Collection("gallery_images").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Gallery image", err)
		}
		return nil, errors.Internal("Failed to get gallery image", err)
	}

	var image entity.GalleryImage
	if err := doc.DataTo(&image); err != nil {
		return nil, errors.Internal("Failed to parse gallery image data", err)
	}

	return &image, nil
}

func (r *firestoreGalleryRepository) List(ctx context.Context) ([]*entity.GalleryImage, error) {
	iter := r.client.Collection("gallery_images").OrderBy("order", firestore.Asc).Documents(ctx)

	var images []*entity.GalleryImage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate gallery images", err)
		}

		var image entity.GalleryImage
		if err := doc.DataTo(&image); err != nil {
			return nil, errors.Internal("Failed to parse gallery image data", err)
		}
		images = append(images, &image)
	}

	return images, nil
}

func (r *firestoreGalleryRepository) Count(ctx context.Context) (int, error) {
	docs, err := r.client.Collection("gallery_images").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count gallery images", err)
	}
	return len(docs), nil
}

func (r *firestoreGalleryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("gallery_images").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete gallery image", err)
	}

	return nil
}
