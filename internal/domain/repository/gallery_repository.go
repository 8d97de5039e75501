package repository

import (
	"context"

	"baupanel/internal/domain/entity"
)

type GalleryRepository interface {
	Create(ctx context.Context, image *entity.GalleryImage) error
	GetByID(ctx context.Context, id string) (*entity.GalleryImage, error)
	List(ctx context.Context) ([]*entity.GalleryImage, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
