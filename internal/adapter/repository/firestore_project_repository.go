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

type firestoreProjectRepository struct {
	client *firestore.Client
}

func NewFirestoreProjectRepository(client *firestore.Client) repository.ProjectRepository {
	return &firestoreProjectRepository{
		client: client,
	}
}

func (r *firestoreProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	if project.ID == "" {
		doc := r.client.Collection("projects").NewDoc()
		project.ID = doc.ID
	}

	now := time.Now()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now

	_, err := r.client.Collection("projects").Doc(project.ID).Set(ctx, project)
	if err != nil {
		return errors.Internal("Failed to create project", err)
	}

	return nil
}

func (r *firestoreProjectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	doc, err := r.client.Collection("projects").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Project", err)
		}
		return nil, errors.Internal("Failed to get project", err)
	}

	var project entity.Project
	if err := doc.DataTo(&project); err != nil {
		return nil, errors.Internal("Failed to parse project data", err)
	}

	return &project, nil
}

func (r *firestoreProjectRepository) List(ctx context.Context, limit, offset int) ([]*entity.Project, int64, error) {
	query := r.client.Collection("projects").Query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count projects", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var projects []*entity.Project
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate projects", err)
		}

		var project entity.Project
		if err := doc.DataTo(&project); err != nil {
			return nil, 0, errors.Internal("Failed to parse project data", err)
		}
		projects = append(projects, &project)
	}

	return projects, total, nil
}

func (r *firestoreProjectRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Project, error) {
	iter := r.client.Collection("projects").Where("customerId", "==", customerID).Documents(ctx)

	var projects []*entity.Project
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate customer projects", err)
		}

		var project entity.Project
		if err := doc.DataTo(&project); err != nil {
			return nil, errors.Internal("Failed to parse project data", err)
		}
		projects = append(projects, &project)
	}

	return projects, nil
}

func (r *firestoreProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	project.UpdatedAt = time.Now()

	_, err := r.client.Collection("projects").Doc(project.ID).Set(ctx, project)
	if err != nil {
		return errors.Internal("Failed to update project", err)
	}

	return nil
}

func (r *firestoreProjectRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("projects").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete project", err)
	}

	return nil
}
