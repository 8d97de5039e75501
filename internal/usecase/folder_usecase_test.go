package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"baupanel/internal/domain/entity"
)

func newFolderFixture() (*cascadeFixture, *FolderUseCase) {
	f := newCascadeFixture()
	uc := NewFolderUseCase(f.folders, f.uc)
	return f, uc
}

func TestCreateFolderAppendsOrder(t *testing.T) {
	_, uc := newFolderFixture()
	ctx := context.Background()

	first, err := uc.CreateFolder(ctx, CreateFolderInput{Name: "Bathrooms"})
	assert.NoError(t, err)
	assert.Equal(t, 0, first.Order)

	second, err := uc.CreateFolder(ctx, CreateFolderInput{Name: "Kitchens"})
	assert.NoError(t, err)
	assert.Equal(t, 1, second.Order)

	child, err := uc.CreateFolder(ctx, CreateFolderInput{Name: "Tiles", ParentID: first.ID})
	assert.NoError(t, err)
	assert.Equal(t, 0, child.Order)
}

func TestCreateFolderOrderNotCompactedAfterDelete(t *testing.T) {
	f, uc := newFolderFixture()
	ctx := context.Background()

	first, _ := uc.CreateFolder(ctx, CreateFolderInput{Name: "One"})
	uc.CreateFolder(ctx, CreateFolderInput{Name: "Two"})

	assert.NoError(t, uc.DeleteFolder(ctx, first.ID))

	// One sibling remains, so the next order is its count, not the old max
	third, err := uc.CreateFolder(ctx, CreateFolderInput{Name: "Three"})
	assert.NoError(t, err)
	assert.Equal(t, 1, third.Order)
	assert.Len(t, f.folders.folders, 2)
}

func TestCreateFolderRequiresExistingParent(t *testing.T) {
	_, uc := newFolderFixture()

	_, err := uc.CreateFolder(context.Background(), CreateFolderInput{Name: "Orphan", ParentID: "missing"})

	assert.Error(t, err)
}

func TestCreateFolderRequiresName(t *testing.T) {
	_, uc := newFolderFixture()

	_, err := uc.CreateFolder(context.Background(), CreateFolderInput{Name: "   "})

	assert.Error(t, err)
}

func TestRenameFolder(t *testing.T) {
	f, uc := newFolderFixture()
	ctx := context.Background()

	f.folders.Create(ctx, &entity.Folder{ID: "A", Name: "Old"})

	folder, err := uc.RenameFolder(ctx, "A", "New")

	assert.NoError(t, err)
	assert.Equal(t, "New", folder.Name)
	assert.Equal(t, "New", f.folders.folders["A"].Name)
}
