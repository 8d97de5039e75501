package repository

import (
	"context"

	"baupanel/internal/domain/entity"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Project, int64, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id string) error
}
