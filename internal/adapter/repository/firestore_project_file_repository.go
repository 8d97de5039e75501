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
	"baupanel/internal/domain/taxonomy"
	"baupanel/pkg/errors"
)

type firestoreProjectFileRepository struct {
	client *firestore.Client
}

func NewFirestoreProjectFileRepository(client *firestore.Client) repository.ProjectFileRepository {
	return &firestoreProjectFileRepository{
		client: client,
	}
}

// files returns the subcollection holding one project's files for one
// taxonomy folder. The folder path is flattened into the collection name so
// each (project, folder) pair gets its own collection.
func (r *firestoreProjectFileRepository) files(projectID, folderPath string) *firestore.CollectionRef {
	key := taxonomy.StorageKey(folderPath)
	return r.client.Collection("projects").Doc(projectID).Collection("files_" + key)
}

func (r *firestoreProjectFileRepository) Create(ctx context.Context, file *entity.ProjectFile) error {
	coll := r.files(file.ProjectID, file.FolderPath)

	if file.ID == "" {
		doc := coll.NewDoc()
		file.ID = doc.ID
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now()
	}

	_, err := coll.Doc(file.ID).Set(ctx, file)
	if err != nil {
		return errors.Internal("Failed to create project file", err)
	}

	return nil
}

func (r *firestoreProjectFileRepository) GetByID(ctx context.Context, projectID, folderPath, id string) (*entity.ProjectFile, error) {
	doc, err := r.files(projectID, folderPath).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Project file", err)
		}
		return nil, errors.Internal("Failed to get project file", err)
	}

	var file entity.ProjectFile
	if err := doc.DataTo(&file); err != nil {
		return nil, errors.Internal("Failed to parse project file data", err)
	}

	return &file, nil
}

func (r *firestoreProjectFileRepository) ListByPath(ctx context.Context, projectID, folderPath string) ([]*entity.ProjectFile, error) {
	iter := r.files(projectID, folderPath).Documents(ctx)

	var files []*entity.ProjectFile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate project files", err)
		}

		var file entity.ProjectFile
		if err := doc.DataTo(&file); err != nil {
			return nil, errors.Internal("Failed to parse project file data", err)
		}
		files = append(files, &file)
	}

	return files, nil
}

func (r *firestoreProjectFileRepository) Delete(ctx context.Context, projectID, folderPath, id string) error {
	_, err := r.files(projectID, folderPath).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete project file", err)
	}

	return nil
}
