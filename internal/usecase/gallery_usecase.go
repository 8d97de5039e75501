package usecase

import (
	"context"
	"io"
	"strings"
	"time"

	"baupanel/internal/domain/entity"
	"baupanel/internal/domain/repository"
	"baupanel/internal/domain/service"
	"baupanel/pkg/errors"
	"baupanel/pkg/logger"
)

type GalleryUseCase struct {
	galleryRepo repository.GalleryRepository
	fileStorage service.FileStorageService
}

func NewGalleryUseCase(galleryRepo repository.GalleryRepository, fileStorage service.FileStorageService) *GalleryUseCase {
	return &GalleryUseCase{
		galleryRepo: galleryRepo,
		fileStorage: fileStorage,
	}
}

type UploadGalleryImageInput struct {
	Title       string
	File        io.Reader
	ContentType string
}

func (uc *GalleryUseCase) UploadImage(ctx context.Context, input UploadGalleryImageInput) (*entity.GalleryImage, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.BadRequest("Image title is required", nil)
	}
	if input.ContentType != "image/jpeg" && input.ContentType != "image/jpg" && input.ContentType != "image/png" {
		return nil, errors.BadRequest("Gallery images must be JPEG or PNG", nil)
	}

	result, err := uc.fileStorage.Upload(ctx, input.File, input.ContentType, "gallery")
	if err != nil {
		return nil, errors.Internal("Failed to upload gallery image", err)
	}

	count, err := uc.galleryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	image := &entity.GalleryImage{
		Title:      title,
		URL:        result.URL,
		ObjectName: result.Name,
		Order:      count,
		CreatedAt:  time.Now(),
	}

	if err := uc.galleryRepo.Create(ctx, image); err != nil {
		return nil, err
	}

	return image, nil
}

func (uc *GalleryUseCase) ListImages(ctx context.Context) ([]*entity.GalleryImage, error) {
	return uc.galleryRepo.List(ctx)
}

func (uc *GalleryUseCase) DeleteImage(ctx context.Context, id string) error {
	image, err := uc.galleryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil
		}
		return err
	}

	if image.ObjectName != "" {
		outcome, err := uc.fileStorage.Destroy(ctx, image.ObjectName)
		if outcome == service.DeleteOutcomeFailed {
			logger.Warn("Asset cleanup failed for gallery image %s (%s): %v", image.ID, image.ObjectName, err)
		}
	}

	return uc.galleryRepo.Delete(ctx, id)
}
