package usecase

import (
	"context"
	"strings"
	"time"

	"baupanel/internal/domain/entity"
	"baupanel/internal/domain/repository"
	"baupanel/internal/domain/taxonomy"
	"baupanel/pkg/errors"
)

type ProjectUseCase struct {
	projectRepo  repository.ProjectRepository
	customerRepo repository.CustomerRepository
	fileRepo     repository.ProjectFileRepository
	cascade      *CascadeUseCase
}

func NewProjectUseCase(
	projectRepo repository.ProjectRepository,
	customerRepo repository.CustomerRepository,
	fileRepo repository.ProjectFileRepository,
	cascade *CascadeUseCase,
) *ProjectUseCase {
	return &ProjectUseCase{
		projectRepo:  projectRepo,
		customerRepo: customerRepo,
		fileRepo:     fileRepo,
		cascade:      cascade,
	}
}

type CreateProjectInput struct {
	Name       string
	CustomerID string
	Address    string
}

func (uc *ProjectUseCase) CreateProject(ctx context.Context, input CreateProjectInput) (*entity.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.BadRequest("Project name is required", nil)
	}

	if _, err := uc.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	project := &entity.Project{
		Name:       name,
		CustomerID: input.CustomerID,
		Address:    input.Address,
		Status:     "active",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (uc *ProjectUseCase) GetProject(ctx context.Context, id string) (*entity.Project, error) {
	return uc.projectRepo.GetByID(ctx, id)
}

func (uc *ProjectUseCase) ListProjects(ctx context.Context, page, limit int) ([]*entity.Project, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.projectRepo.List(ctx, limit, offset)
}

func (uc *ProjectUseCase) ListProjectsByCustomer(ctx context.Context, customerID string) ([]*entity.Project, error) {
	return uc.projectRepo.ListByCustomer(ctx, customerID)
}

func (uc *ProjectUseCase) UpdateProject(ctx context.Context, id string, input CreateProjectInput) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		project.Name = name
	}
	if input.Address != "" {
		project.Address = input.Address
	}
	project.UpdatedAt = time.Now()

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject removes the project and all of its files, read statuses and
// report approvals.
func (uc *ProjectUseCase) DeleteProject(ctx context.Context, id string) error {
	return uc.cascade.DeleteProjectCascade(ctx, id)
}

// FolderListing is one taxonomy folder together with the project's files in it.
type FolderListing struct {
	Path  string                `json:"path"`
	Files []*entity.ProjectFile `json:"files"`
}

// ListFolder returns the files under one taxonomy path. Customers are
// refused the admin-only branch; staff see everything.
func (uc *ProjectUseCase) ListFolder(ctx context.Context, projectID, folderPath string, isAdmin bool) (*FolderListing, error) {
	if folderPath == "" {
		folderPath = taxonomy.DefaultPath()
	}
	if !taxonomy.IsValidPath(folderPath) {
		return nil, errors.BadRequest("Unknown folder path", nil)
	}
	if !isAdmin && taxonomy.IsAdminOnly(folderPath) {
		return nil, errors.Forbidden("This folder is not available", nil)
	}

	if _, err := uc.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	files, err := uc.fileRepo.ListByPath(ctx, projectID, folderPath)
	if err != nil {
		return nil, err
	}

	return &FolderListing{Path: folderPath, Files: files}, nil
}

// FolderPaths returns the folder paths a caller may browse. Staff get the
// full taxonomy, customers only the visible subset.
func (uc *ProjectUseCase) FolderPaths(isAdmin bool) []string {
	if isAdmin {
		return taxonomy.AllPaths()
	}
	return taxonomy.VisiblePaths()
}
