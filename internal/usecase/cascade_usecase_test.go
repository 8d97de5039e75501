package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"baupanel/internal/domain/entity"
	"baupanel/internal/domain/service"
	"baupanel/internal/domain/taxonomy"
	"baupanel/pkg/errors"
)

// In-memory fakes for the metadata and asset stores. Deleting an absent
// record is a no-op, matching Firestore delete semantics.

type fakeFolderRepo struct {
	folders map[string]*entity.Folder
	nextID  int
	listErr error
}

func newFakeFolderRepo() *fakeFolderRepo {
	return &fakeFolderRepo{folders: make(map[string]*entity.Folder)}
}

func (r *fakeFolderRepo) Create(ctx context.Context, folder *entity.Folder) error {
	if folder.ID == "" {
		r.nextID++
		folder.ID = fmt.Sprintf("folder-%d", r.nextID)
	}
	r.folders[folder.ID] = folder
	return nil
}

func (r *fakeFolderRepo) GetByID(ctx context.Context, id string) (*entity.Folder, error) {
	folder, ok := r.folders[id]
	if !ok {
		return nil, errors.NotFound("Folder", nil)
	}
	return folder, nil
}

func (r *fakeFolderRepo) ListByParent(ctx context.Context, parentID string) ([]*entity.Folder, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var result []*entity.Folder
	for _, folder := range r.folders {
		if folder.ParentID == parentID {
			result = append(result, folder)
		}
	}
	return result, nil
}

func (r *fakeFolderRepo) CountByParent(ctx context.Context, parentID string) (int, error) {
	children, err := r.ListByParent(ctx, parentID)
	return len(children), err
}

func (r *fakeFolderRepo) Update(ctx context.Context, folder *entity.Folder) error {
	r.folders[folder.ID] = folder
	return nil
}

func (r *fakeFolderRepo) Delete(ctx context.Context, id string) error {
	delete(r.folders, id)
	return nil
}

type fakeEntryRepo struct {
	entries  map[string]*entity.CatalogEntry
	nextID   int
	listErr  error
	batchErr error
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[string]*entity.CatalogEntry)}
}

func (r *fakeEntryRepo) Create(ctx context.Context, entry *entity.CatalogEntry) error {
	if entry.ID == "" {
		r.nextID++
		entry.ID = fmt.Sprintf("entry-%d", r.nextID)
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeEntryRepo) GetByID(ctx context.Context, id string) (*entity.CatalogEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, errors.NotFound("Catalog entry", nil)
	}
	return entry, nil
}

func (r *fakeEntryRepo) ListByFolder(ctx context.Context, folderID string) ([]*entity.CatalogEntry, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var result []*entity.CatalogEntry
	for _, entry := range r.entries {
		if entry.FolderID == folderID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (r *fakeEntryRepo) CountByFolder(ctx context.Context, folderID string) (int, error) {
	entries, err := r.ListByFolder(ctx, folderID)
	return len(entries), err
}

func (r *fakeEntryRepo) Update(ctx context.Context, entry *entity.CatalogEntry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeEntryRepo) Delete(ctx context.Context, id string) error {
	delete(r.entries, id)
	return nil
}

func (r *fakeEntryRepo) DeleteBatch(ctx context.Context, ids []string) error {
	if r.batchErr != nil {
		return r.batchErr
	}
	for _, id := range ids {
		delete(r.entries, id)
	}
	return nil
}

type fakeProjectRepo struct {
	projects map[string]*entity.Project
	nextID   int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*entity.Project)}
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	if project.ID == "" {
		r.nextID++
		project.ID = fmt.Sprintf("project-%d", r.nextID)
	}
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, errors.NotFound("Project", nil)
	}
	return project, nil
}

func (r *fakeProjectRepo) List(ctx context.Context, limit, offset int) ([]*entity.Project, int64, error) {
	var result []*entity.Project
	for _, project := range r.projects {
		result = append(result, project)
	}
	return result, int64(len(result)), nil
}

func (r *fakeProjectRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Project, error) {
	var result []*entity.Project
	for _, project := range r.projects {
		if project.CustomerID == customerID {
			result = append(result, project)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	delete(r.projects, id)
	return nil
}

type fakeCustomerRepo struct {
	customers     map[string]*entity.Customer
	getByEmailErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, errors.NotFound("Customer", nil)
	}
	return customer, nil
}

func (r *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	if r.getByEmailErr != nil {
		return nil, r.getByEmailErr
	}
	for _, customer := range r.customers {
		if customer.Email == email {
			return customer, nil
		}
	}
	return nil, errors.NotFound("Customer", nil)
}

func (r *fakeCustomerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Customer, int64, error) {
	var result []*entity.Customer
	for _, customer := range r.customers {
		result = append(result, customer)
	}
	return result, int64(len(result)), nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id string) error {
	delete(r.customers, id)
	return nil
}

type fakeFileRepo struct {
	// keyed by projectID + "|" + folderPath
	files  map[string]map[string]*entity.ProjectFile
	nextID int
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[string]map[string]*entity.ProjectFile)}
}

func (r *fakeFileRepo) key(projectID, folderPath string) string {
	return projectID + "|" + folderPath
}

func (r *fakeFileRepo) Create(ctx context.Context, file *entity.ProjectFile) error {
	if file.ID == "" {
		r.nextID++
		file.ID = fmt.Sprintf("file-%d", r.nextID)
	}
	key := r.key(file.ProjectID, file.FolderPath)
	if r.files[key] == nil {
		r.files[key] = make(map[string]*entity.ProjectFile)
	}
	r.files[key][file.ID] = file
	return nil
}

func (r *fakeFileRepo) GetByID(ctx context.Context, projectID, folderPath, id string) (*entity.ProjectFile, error) {
	file, ok := r.files[r.key(projectID, folderPath)][id]
	if !ok {
		return nil, errors.NotFound("Project file", nil)
	}
	return file, nil
}

func (r *fakeFileRepo) ListByPath(ctx context.Context, projectID, folderPath string) ([]*entity.ProjectFile, error) {
	var result []*entity.ProjectFile
	for _, file := range r.files[r.key(projectID, folderPath)] {
		result = append(result, file)
	}
	return result, nil
}

func (r *fakeFileRepo) Delete(ctx context.Context, projectID, folderPath, id string) error {
	delete(r.files[r.key(projectID, folderPath)], id)
	return nil
}

func (r *fakeFileRepo) countByProject(projectID string) int {
	count := 0
	for key, files := range r.files {
		if strings.HasPrefix(key, projectID+"|") {
			count += len(files)
		}
	}
	return count
}

type fakeReadStatusRepo struct {
	statuses map[string]*entity.FileReadStatus
	nextID   int
}

func newFakeReadStatusRepo() *fakeReadStatusRepo {
	return &fakeReadStatusRepo{statuses: make(map[string]*entity.FileReadStatus)}
}

func (r *fakeReadStatusRepo) Create(ctx context.Context, readStatus *entity.FileReadStatus) error {
	if readStatus.ID == "" {
		r.nextID++
		readStatus.ID = fmt.Sprintf("read-%d", r.nextID)
	}
	r.statuses[readStatus.ID] = readStatus
	return nil
}

func (r *fakeReadStatusRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.FileReadStatus, error) {
	var result []*entity.FileReadStatus
	for _, readStatus := range r.statuses {
		if readStatus.ProjectID == projectID {
			result = append(result, readStatus)
		}
	}
	return result, nil
}

func (r *fakeReadStatusRepo) ListByProjectAndFilePath(ctx context.Context, projectID, filePath string) ([]*entity.FileReadStatus, error) {
	var result []*entity.FileReadStatus
	for _, readStatus := range r.statuses {
		if readStatus.ProjectID == projectID && readStatus.FilePath == filePath {
			result = append(result, readStatus)
		}
	}
	return result, nil
}

func (r *fakeReadStatusRepo) DeleteBatch(ctx context.Context, ids []string) error {
	for _, id := range ids {
		delete(r.statuses, id)
	}
	return nil
}

type fakeApprovalRepo struct {
	approvals map[string]*entity.ReportApproval
	nextID    int
}

func newFakeApprovalRepo() *fakeApprovalRepo {
	return &fakeApprovalRepo{approvals: make(map[string]*entity.ReportApproval)}
}

func (r *fakeApprovalRepo) Create(ctx context.Context, approval *entity.ReportApproval) error {
	if approval.ID == "" {
		r.nextID++
		approval.ID = fmt.Sprintf("approval-%d", r.nextID)
	}
	r.approvals[approval.ID] = approval
	return nil
}

func (r *fakeApprovalRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.ReportApproval, error) {
	var result []*entity.ReportApproval
	for _, approval := range r.approvals {
		if approval.ProjectID == projectID {
			result = append(result, approval)
		}
	}
	return result, nil
}

func (r *fakeApprovalRepo) ListByProjectAndFilePath(ctx context.Context, projectID, filePath string) ([]*entity.ReportApproval, error) {
	var result []*entity.ReportApproval
	for _, approval := range r.approvals {
		if approval.ProjectID == projectID && approval.FilePath == filePath {
			result = append(result, approval)
		}
	}
	return result, nil
}

func (r *fakeApprovalRepo) DeleteBatch(ctx context.Context, ids []string) error {
	for _, id := range ids {
		delete(r.approvals, id)
	}
	return nil
}

// fakeStorage records destroy calls. With failAll set every destroy reports
// a failure, which cascades must treat as advisory.
type fakeStorage struct {
	destroyed []string
	failAll   bool
}

func (s *fakeStorage) Upload(ctx context.Context, file io.Reader, contentType, folder string) (*service.UploadResult, error) {
	return &service.UploadResult{URL: "https://example.com/" + folder, Name: folder + "/object"}, nil
}

func (s *fakeStorage) Destroy(ctx context.Context, objectName string) (service.DeleteOutcome, error) {
	if s.failAll {
		return service.DeleteOutcomeFailed, fmt.Errorf("storage unavailable")
	}
	s.destroyed = append(s.destroyed, objectName)
	return service.DeleteOutcomeDeleted, nil
}

func (s *fakeStorage) ListByPrefix(ctx context.Context, prefix string) ([]string, error) {
	return nil, nil
}

func (s *fakeStorage) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	return 0, nil
}

func (s *fakeStorage) Close() error {
	return nil
}

type cascadeFixture struct {
	folders    *fakeFolderRepo
	entries    *fakeEntryRepo
	projects   *fakeProjectRepo
	customers  *fakeCustomerRepo
	files      *fakeFileRepo
	readStatus *fakeReadStatusRepo
	approvals  *fakeApprovalRepo
	storage    *fakeStorage
	uc         *CascadeUseCase
}

func newCascadeFixture() *cascadeFixture {
	f := &cascadeFixture{
		folders:    newFakeFolderRepo(),
		entries:    newFakeEntryRepo(),
		projects:   newFakeProjectRepo(),
		customers:  newFakeCustomerRepo(),
		files:      newFakeFileRepo(),
		readStatus: newFakeReadStatusRepo(),
		approvals:  newFakeApprovalRepo(),
		storage:    &fakeStorage{},
	}
	f.uc = NewCascadeUseCase(
		f.folders, f.entries, f.projects, f.customers,
		f.files, f.readStatus, f.approvals, f.storage,
	)
	return f
}

func TestDeleteFolderCascadeRemovesSubtree(t *testing.T) {
	f := newCascadeFixture()
	ctx := context.Background()

	// A (order 0) with child B (order 0) and two entries attached to B
	a := &entity.Folder{ID: "A", Name: "Bathrooms", Order: 0}
	b := &entity.Folder{ID: "B", Name: "Tiles", ParentID: "A", Order: 0}
	f.folders.Create(ctx, a)
	f.folders.Create(ctx, b)
	f.entries.Create(ctx, &entity.CatalogEntry{FolderID: "B", Title: "Series one"})
	f.entries.Create(ctx, &entity.CatalogEntry{FolderID: "B", Title: "Series two"})

	err := f.uc.DeleteFolderCascade(ctx, "A")

	assert.NoError(t, err)
	assert.Empty(t, f.folders.folders)
	assert.Empty(t, f.entries.entries)
}

func TestDeleteFolderCascadeArbitraryDepth(t *testing.T) {
	f := newCascadeFixture()
	ctx := context.Background()

	f.folders.Create(ctx, &entity.Folder{ID: "root", Name: "Catalog"})
	f.folders.Create(ctx, &entity.Folder{ID: "l1a", ParentID: "root"})
	f.folders.Create(ctx, &entity.Folder{ID: "l1b", ParentID: "root"})
	f.folders.Create(ctx, &entity.Folder{ID: "l2", ParentID: "l1a"})
	f.folders.Create(ctx, &entity.Folder{ID: "l3", ParentID: "l2"})
	f.entries.Create(ctx, &entity.CatalogEntry{FolderID: "l3", Title: "Deep"})
	f.entries.Create(ctx, &entity.CatalogEntry{FolderID: "root", Title: "Top"})

	// Sibling tree must survive
	f.folders.Create(ctx, &entity.Folder{ID: "other", Name: "Kitchens"})
	f.entries.Create(ctx, &entity.CatalogEntry{FolderID: "other", Title: "Keep"})

	err := f.uc.DeleteFolderCascade(ctx, "root")

	assert.NoError(t, err)
	assert.Len(t, f.folders.folders, 1)
	assert.Contains(t, f.folders.folders, "other")
	assert.Len(t, f.entries.entries, 1)
}

func TestDeleteFolderCascadeDoesNotTouchAssetStore(t *testing.T) {
	f := newCascadeFixture()
	ctx := context.Background()

	f.folders.Create(ctx, &entity.Folder{ID: "A"})
	f.entries.Create(ctx, &entity.CatalogEntry{FolderID: "A", ObjectName: "catalog/A/doc.pdf"})

	err := f.uc.DeleteFolderCascade(ctx, "A")

	assert.NoError(t, err)
	assert.Empty(t, f.storage.destroyed)
}

func TestDeleteFolderCascadeIdempotent(t *testing.T) {
	f := newCascadeFixture()
	ctx := context.Background()

	f.folders.Create(ctx, &entity.Folder{ID: "A"})
	f.folders.Create(ctx, &entity.Folder{ID: "B", ParentID: "A"})

	assert.NoError(t, f.uc.DeleteFolderCascade(ctx, "A"))
	assert.NoError(t, f.uc.DeleteFolderCascade(ctx, "A"))
	assert.Empty(t, f.folders.folders)
}

func TestDeleteFolderCascadeAbortsOnMetadataError(t *testing.T) {
	f := newCascadeFixture()
	ctx := context.Background()

	f.folders.Create(ctx, &entity.Folder{ID: "A"})
	f.entries.Create(ctx, &entity.CatalogEntry{FolderID: "A"})
	f.entries.listErr = errors.Internal("firestore down", nil)

	err := f.uc.DeleteFolderCascade(ctx, "A")

	assert.Error(t, err)
	// The folder itself must survive so a retry can reach its entries
	assert.Contains(t, f.folders.folders, "A")
}

func seedProject(f *cascadeFixture, ctx context.Context, projectID string) {
	f.projects.Create(ctx, &entity.Project{ID: projectID, Name: "Renovation", CustomerID: "cust-1"})

	paths := []string{"02_Photos/Before", "04_Reports", taxonomy.AdminOnlyPath}
	for i, path := range paths {
		f.files.Create(ctx, &entity.ProjectFile{
			ProjectID:  projectID,
			FolderPath: path,
			Filename:   fmt.Sprintf("file-%d.pdf", i),
			ObjectName: fmt.Sprintf("projects/%s/%d", projectID, i),
		})
	}

	f.readStatus.Create(ctx, &entity.FileReadStatus{ProjectID: projectID, CustomerID: "cust-1", FilePath: "04_Reports/file-1.pdf"})
	f.readStatus.Create(ctx, &entity.FileReadStatus{ProjectID: projectID, CustomerID: "cust-2", FilePath: "04_Reports/file-1.pdf"})
	f.approvals.Create(ctx, &entity.ReportApproval{ProjectID: projectID, FilePath: "04_Reports/file-1.pdf", Status: "approved"})
}

func TestDeleteProjectCascadeRemovesEverything(t *testing.T) {
	f := newCascadeFixture()
	ctx := context.Background()

	seedProject(f, ctx, "p1")

	err := f.uc.DeleteProjectCascade(ctx, "p1")

	assert.NoError(t, err)
	assert.Zero(t, f.files.countByProject("p1"))
	assert.Empty(t, f.readStatus.statuses)
	assert.Empty(t, f.approvals.approvals)
	assert.NotContains(t, f.projects.projects, "p1")
	// One destroy attempt per file, admin-only branch included
	assert.Len(t, f.storage.destroyed, 3)
}

func TestDeleteProjectCascadeSurvivesAssetFailures(t *testing.T) {
	f := newCascadeFixture()
	ctx := context.Background()

	seedProject(f, ctx, "p1")
	f.storage.failAll = true

	err := f.uc.DeleteProjectCascade(ctx, "p1")

	assert.NoError(t, err)
	assert.Zero(t, f.files.countByProject("p1"))
	assert.Empty(t, f.readStatus.statuses)
	assert.Empty(t, f.approvals.approvals)
	assert.NotContains(t, f.projects.projects, "p1")
}

func TestDeleteProjectCascadeIdempotent(t *testing.T) {
	f := newCascadeFixture()
	ctx := context.Background()

	seedProject(f, ctx, "p1")

	assert.NoError(t, f.uc.DeleteProjectCascade(ctx, "p1"))
	assert.NoError(t, f.uc.DeleteProjectCascade(ctx, "p1"))
	assert.NotContains(t, f.projects.projects, "p1")
}

func TestDeleteProjectCascadeLeavesOtherProjectsAlone(t *testing.T) {
	f := newCascadeFixture()
	ctx := context.Background()

	seedProject(f, ctx, "p1")
	seedProject(f, ctx, "p2")

	err := f.uc.DeleteProjectCascade(ctx, "p1")

	assert.NoError(t, err)
	assert.Zero(t, f.files.countByProject("p1"))
	assert.Equal(t, 3, f.files.countByProject("p2"))
	assert.Contains(t, f.projects.projects, "p2")
}

func TestDeleteCustomerCascade(t *testing.T) {
	f := newCascadeFixture()
	ctx := context.Background()

	f.customers.Create(ctx, &entity.Customer{ID: "cust-1", Email: "c@example.com"})
	seedProject(f, ctx, "p1")
	seedProject(f, ctx, "p2")

	err := f.uc.DeleteCustomerCascade(ctx, "cust-1")

	assert.NoError(t, err)
	assert.Empty(t, f.customers.customers)
	assert.Empty(t, f.projects.projects)
	assert.Zero(t, f.files.countByProject("p1"))
	assert.Zero(t, f.files.countByProject("p2"))

	// Retrying over the already-removed customer is a no-op
	assert.NoError(t, f.uc.DeleteCustomerCascade(ctx, "cust-1"))
}

func TestDeleteFileRelatedDataScopedToExactPath(t *testing.T) {
	f := newCascadeFixture()
	ctx := context.Background()

	f.readStatus.Create(ctx, &entity.FileReadStatus{ProjectID: "p1", FilePath: "04_Reports/a.pdf"})
	f.readStatus.Create(ctx, &entity.FileReadStatus{ProjectID: "p1", FilePath: "04_Reports/b.pdf"})
	f.readStatus.Create(ctx, &entity.FileReadStatus{ProjectID: "p2", FilePath: "04_Reports/a.pdf"})
	f.approvals.Create(ctx, &entity.ReportApproval{ProjectID: "p1", FilePath: "04_Reports/a.pdf"})
	f.approvals.Create(ctx, &entity.ReportApproval{ProjectID: "p2", FilePath: "04_Reports/a.pdf"})

	err := f.uc.DeleteFileRelatedData(ctx, "p1", "04_Reports/a.pdf")

	assert.NoError(t, err)
	assert.Len(t, f.readStatus.statuses, 2)
	assert.Len(t, f.approvals.approvals, 1)

	remaining, _ := f.readStatus.ListByProjectAndFilePath(ctx, "p1", "04_Reports/a.pdf")
	assert.Empty(t, remaining)
}

func TestDeleteFileRelatedDataIdempotent(t *testing.T) {
	f := newCascadeFixture()
	ctx := context.Background()

	f.readStatus.Create(ctx, &entity.FileReadStatus{ProjectID: "p1", FilePath: "04_Reports/a.pdf"})

	assert.NoError(t, f.uc.DeleteFileRelatedData(ctx, "p1", "04_Reports/a.pdf"))
	assert.NoError(t, f.uc.DeleteFileRelatedData(ctx, "p1", "04_Reports/a.pdf"))
	assert.Empty(t, f.readStatus.statuses)
}
