package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTree(t *testing.T) {
	assert.NoError(t, ValidateTree())
}

func TestAllPathsIncludesEveryBranch(t *testing.T) {
	paths := AllPaths()

	assert.Contains(t, paths, "02_Photos")
	assert.Contains(t, paths, "02_Photos/Before")
	assert.Contains(t, paths, "04_Reports")
	// The cascade iterates AllPaths, so hidden branches must be present
	assert.Contains(t, paths, AdminOnlyPath)
	assert.Contains(t, paths, InboxPath)
}

func TestVisiblePathsExcludesHiddenBranches(t *testing.T) {
	paths := VisiblePaths()

	assert.NotContains(t, paths, AdminOnlyPath)
	assert.NotContains(t, paths, InboxPath)
	assert.Contains(t, paths, "02_Photos/Before")
	assert.Contains(t, paths, "04_Reports")
}

func TestDefaultPathIsFirstVisibleLeaf(t *testing.T) {
	assert.Equal(t, "01_Documents/Contracts", DefaultPath())
	assert.Contains(t, VisiblePaths(), DefaultPath())
}

func TestIsValidPath(t *testing.T) {
	assert.True(t, IsValidPath("02_Photos/Before"))
	assert.True(t, IsValidPath("04_Reports"))
	assert.True(t, IsValidPath(AdminOnlyPath))
	assert.False(t, IsValidPath("02_Photos/Missing"))
	assert.False(t, IsValidPath(""))
	assert.False(t, IsValidPath("02_Photos/"))
}

func TestIsAdminOnly(t *testing.T) {
	assert.True(t, IsAdminOnly(AdminOnlyPath))
	assert.True(t, IsAdminOnly(AdminOnlyPath+"/Internal"))
	assert.False(t, IsAdminOnly("02_Photos"))
	assert.False(t, IsAdminOnly("09_Admin_OnlyX"))
}

func TestStorageKey(t *testing.T) {
	assert.Equal(t, "02_Photos__Before", StorageKey("02_Photos/Before"))
	assert.Equal(t, "04_Reports", StorageKey("04_Reports"))
}

func TestStorageKeyFiltersEmptySegments(t *testing.T) {
	assert.Equal(t, "02_Photos__Before", StorageKey("/02_Photos//Before/"))
	assert.Equal(t, "", StorageKey("///"))
}

func TestStorageKeysUniqueAndStable(t *testing.T) {
	seen := make(map[string]string)
	for _, path := range AllPaths() {
		key := StorageKey(path)
		assert.NotEmpty(t, key)
		if prev, ok := seen[key]; ok {
			t.Fatalf("storage key %q produced by both %q and %q", key, prev, path)
		}
		seen[key] = path

		assert.Equal(t, key, StorageKey(path))
	}
}
