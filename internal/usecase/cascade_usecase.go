package usecase

import (
	"context"

	"baupanel/internal/domain/entity"
	"baupanel/internal/domain/repository"
	"baupanel/internal/domain/service"
	"baupanel/internal/domain/taxonomy"
	"baupanel/pkg/errors"
	"baupanel/pkg/logger"
)

// CascadeUseCase removes container entities together with everything they
// own, across the metadata store and the asset store. Metadata deletion is
// authoritative: a failed metadata query or delete aborts the cascade, while
// asset-store failures are advisory and never do. Every step tolerates
// already-deleted records, so a failed cascade can simply be retried.
type CascadeUseCase struct {
	folderRepo     repository.FolderRepository
	entryRepo      repository.CatalogEntryRepository
	projectRepo    repository.ProjectRepository
	customerRepo   repository.CustomerRepository
	fileRepo       repository.ProjectFileRepository
	readStatusRepo repository.FileReadStatusRepository
	approvalRepo   repository.ReportApprovalRepository
	fileStorage    service.FileStorageService
}

func NewCascadeUseCase(
	folderRepo repository.FolderRepository,
	entryRepo repository.CatalogEntryRepository,
	projectRepo repository.ProjectRepository,
	customerRepo repository.CustomerRepository,
	fileRepo repository.ProjectFileRepository,
	readStatusRepo repository.FileReadStatusRepository,
	approvalRepo repository.ReportApprovalRepository,
	fileStorage service.FileStorageService,
) *CascadeUseCase {
	return &CascadeUseCase{
		folderRepo:     folderRepo,
		entryRepo:      entryRepo,
		projectRepo:    projectRepo,
		customerRepo:   customerRepo,
		fileRepo:       fileRepo,
		readStatusRepo: readStatusRepo,
		approvalRepo:   approvalRepo,
		fileStorage:    fileStorage,
	}
}

// DeleteFolderCascade removes a catalog folder, all of its descendant
// folders and every entry attached to any of them. Children are fully
// removed before their parent, so a cascade that fails partway never leaves
// an orphaned subfolder whose parent is already gone.
//
// Catalog entry payloads in the asset store are not touched here; asset
// cleanup for entries belongs to the explicit per-entry deletion path in
// CatalogUseCase.
func (uc *CascadeUseCase) DeleteFolderCascade(ctx context.Context, folderID string) error {
	children, err := uc.folderRepo.ListByParent(ctx, folderID)
	if err != nil {
		return err
	}

	for _, child := range children {
		if err := uc.DeleteFolderCascade(ctx, child.ID); err != nil {
			return err
		}
	}

	entries, err := uc.entryRepo.ListByFolder(ctx, folderID)
	if err != nil {
		return err
	}

	if len(entries) > 0 {
		ids := make([]string, len(entries))
		for i, entry := range entries {
			ids[i] = entry.ID
		}
		if err := uc.entryRepo.DeleteBatch(ctx, ids); err != nil {
			return err
		}
	}

	if err := uc.folderRepo.Delete(ctx, folderID); err != nil && !errors.IsNotFound(err) {
		return err
	}

	logger.Info("Folder cascade complete: folder=%s, children=%d, entries=%d", folderID, len(children), len(entries))
	return nil
}

// DeleteProjectCascade removes a project and every record addressed by its
// id: files under every taxonomy path (admin-only branch included), read
// statuses, report approvals, and finally the project document itself. The
// project record goes last so a partially-cleaned project stays reachable
// for a retry.
func (uc *CascadeUseCase) DeleteProjectCascade(ctx context.Context, projectID string) error {
	for _, path := range taxonomy.AllPaths() {
		files, err := uc.fileRepo.ListByPath(ctx, projectID, path)
		if err != nil {
			return err
		}

		for _, file := range files {
			uc.destroyAsset(ctx, file)
			if err := uc.fileRepo.Delete(ctx, projectID, path, file.ID); err != nil && !errors.IsNotFound(err) {
				return err
			}
		}
	}

	readStatuses, err := uc.readStatusRepo.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	if err := uc.readStatusRepo.DeleteBatch(ctx, readStatusIDs(readStatuses)); err != nil {
		return err
	}

	approvals, err := uc.approvalRepo.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	if err := uc.approvalRepo.DeleteBatch(ctx, approvalIDs(approvals)); err != nil {
		return err
	}

	if err := uc.projectRepo.Delete(ctx, projectID); err != nil && !errors.IsNotFound(err) {
		return err
	}

	logger.Info("Project cascade complete: project=%s, readStatuses=%d, approvals=%d", projectID, len(readStatuses), len(approvals))
	return nil
}

// DeleteCustomerCascade removes every project owned by the customer via the
// project cascade, then the customer record itself.
func (uc *CascadeUseCase) DeleteCustomerCascade(ctx context.Context, customerID string) error {
	projects, err := uc.projectRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return err
	}

	for _, project := range projects {
		if err := uc.DeleteProjectCascade(ctx, project.ID); err != nil {
			return err
		}
	}

	if err := uc.customerRepo.Delete(ctx, customerID); err != nil && !errors.IsNotFound(err) {
		return err
	}

	logger.Info("Customer cascade complete: customer=%s, projects=%d", customerID, len(projects))
	return nil
}

// DeleteFileRelatedData removes the read statuses and report approvals
// referencing the exact (project, file path) pair. Called when a single file
// is deleted outside a larger cascade, so tracking views never point at a
// vanished file.
func (uc *CascadeUseCase) DeleteFileRelatedData(ctx context.Context, projectID, filePath string) error {
	readStatuses, err := uc.readStatusRepo.ListByProjectAndFilePath(ctx, projectID, filePath)
	if err != nil {
		return err
	}
	if err := uc.readStatusRepo.DeleteBatch(ctx, readStatusIDs(readStatuses)); err != nil {
		return err
	}

	approvals, err := uc.approvalRepo.ListByProjectAndFilePath(ctx, projectID, filePath)
	if err != nil {
		return err
	}
	if err := uc.approvalRepo.DeleteBatch(ctx, approvalIDs(approvals)); err != nil {
		return err
	}

	return nil
}

// destroyAsset attempts the asset-store deletion for one file. Failures are
// advisory: the metadata record is removed regardless, so a dead object in
// the asset store can never block a cascade.
func (uc *CascadeUseCase) destroyAsset(ctx context.Context, file *entity.ProjectFile) {
	if file.ObjectName == "" {
		return
	}

	outcome, err := uc.fileStorage.Destroy(ctx, file.ObjectName)
	if outcome == service.DeleteOutcomeFailed {
		logger.Warn("Asset cleanup failed for %s (project=%s, path=%s): %v", file.ObjectName, file.ProjectID, file.FolderPath, err)
	}
}

func readStatusIDs(statuses []*entity.FileReadStatus) []string {
	ids := make([]string, len(statuses))
	for i, s := range statuses {
		ids[i] = s.ID
	}
	return ids
}

func approvalIDs(approvals []*entity.ReportApproval) []string {
	ids := make([]string, len(approvals))
	for i, a := range approvals {
		ids[i] = a.ID
	}
	return ids
}
