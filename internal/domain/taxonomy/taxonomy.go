package taxonomy

import (
	"strings"
)

// FolderNode is one node of the fixed project folder tree. The tree is
// exactly two levels deep: a category and an optional list of sub-categories.
type FolderNode struct {
	Name     string
	Path     string
	Children []FolderNode
}

const (
	// AdminOnlyPath is the branch reserved for internal staff. It never shows
	// up in customer-facing listings but its files are still part of every
	// project and must be cleaned up when the project is deleted.
	AdminOnlyPath = "09_Admin_Only"

	// InboxPath is the intake category new uploads land in before staff sort
	// them. It is bootstrap-only and hidden from edit and customer views.
	InboxPath = "00_Inbox"

	// storageKeyJoiner replaces the path separator when a folder path is
	// flattened into a Firestore collection key. Segment names must never
	// contain this sequence; ValidateTree enforces that at startup.
	storageKeyJoiner = "__"
)

// tree is the single static taxonomy shared by every project. It is built
// once and never mutated at runtime.
var tree = []FolderNode{
	{Name: "Inbox", Path: InboxPath},
	{Name: "Documents", Path: "01_Documents", Children: []FolderNode{
		{Name: "Contracts", Path: "01_Documents/Contracts"},
		{Name: "Invoices", Path: "01_Documents/Invoices"},
	}},
	{Name: "Photos", Path: "02_Photos", Children: []FolderNode{
		{Name: "Before", Path: "02_Photos/Before"},
		{Name: "During", Path: "02_Photos/During"},
		{Name: "After", Path: "02_Photos/After"},
	}},
	{Name: "Plans", Path: "03_Plans", Children: []FolderNode{
		{Name: "Drafts", Path: "03_Plans/Drafts"},
		{Name: "Approved", Path: "03_Plans/Approved"},
	}},
	{Name: "Reports", Path: "04_Reports"},
	{Name: "Admin", Path: AdminOnlyPath},
}

// bootstrapPaths are categories excluded from every edit- and customer-facing
// listing. Admin-only is excluded from those listings separately.
var bootstrapPaths = map[string]bool{
	InboxPath: true,
}

var (
	allPaths     []string
	visiblePaths []string
	validPaths   map[string]bool
)

func init() {
	if err := ValidateTree(); err != nil {
		panic(err)
	}

	validPaths = make(map[string]bool)
	for _, category := range tree {
		allPaths = append(allPaths, category.Path)
		validPaths[category.Path] = true
		for _, child := range category.Children {
			allPaths = append(allPaths, child.Path)
			validPaths[child.Path] = true
		}
	}

	for _, category := range tree {
		if bootstrapPaths[category.Path] || IsAdminOnly(category.Path) {
			continue
		}
		visiblePaths = append(visiblePaths, category.Path)
		for _, child := range category.Children {
			visiblePaths = append(visiblePaths, child.Path)
		}
	}
}

// Root returns the full static tree.
func Root() []FolderNode {
	return tree
}

// AllPaths returns every valid folder path, categories first followed by
// their children, in tree order. The project cascade iterates this list so it
// must include the admin-only and bootstrap branches.
func AllPaths() []string {
	return allPaths
}

// VisiblePaths returns the paths shown in edit and customer listings:
// everything except bootstrap categories and the admin-only branch.
func VisiblePaths() []string {
	return visiblePaths
}

// DefaultPath returns the first visible leaf, used when an upload or listing
// does not name an explicit folder.
func DefaultPath() string {
	for _, category := range tree {
		if bootstrapPaths[category.Path] || IsAdminOnly(category.Path) {
			continue
		}
		if len(category.Children) > 0 {
			return category.Children[0].Path
		}
		return category.Path
	}
	return ""
}

// IsValidPath reports whether path names a node of the fixed tree.
func IsValidPath(path string) bool {
	return validPaths[path]
}

// IsAdminOnly reports whether path is the admin-only branch or nested under it.
func IsAdminOnly(path string) bool {
	return path == AdminOnlyPath || strings.HasPrefix(path, AdminOnlyPath+"/")
}

// StorageKey flattens a folder path into a single collection key segment by
// joining the path segments with a reserved sequence. Empty segments from
// leading, trailing or doubled separators are dropped. One-way only.
func StorageKey(path string) string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		segments = append(segments, part)
	}
	return strings.Join(segments, storageKeyJoiner)
}

// ValidateTree checks the static tree invariants: unique paths, child paths
// prefixed by their category, no segment containing the storage key joiner,
// and a maximum depth of two.
func ValidateTree() error {
	seen := make(map[string]bool)
	for _, category := range tree {
		if err := validateNode(category, seen); err != nil {
			return err
		}
		for _, child := range category.Children {
			if err := validateNode(child, seen); err != nil {
				return err
			}
			if !strings.HasPrefix(child.Path, category.Path+"/") {
				return &TreeError{Path: child.Path, Reason: "child path not under its category"}
			}
			if len(child.Children) > 0 {
				return &TreeError{Path: child.Path, Reason: "tree deeper than two levels"}
			}
		}
	}
	return nil
}

func validateNode(node FolderNode, seen map[string]bool) error {
	if node.Path == "" {
		return &TreeError{Path: node.Path, Reason: "empty path"}
	}
	if seen[node.Path] {
		return &TreeError{Path: node.Path, Reason: "duplicate path"}
	}
	seen[node.Path] = true
	for _, segment := range strings.Split(node.Path, "/") {
		if strings.Contains(segment, storageKeyJoiner) {
			return &TreeError{Path: node.Path, Reason: "segment contains storage key joiner"}
		}
	}
	return nil
}

// TreeError reports an invalid static tree definition.
type TreeError struct {
	Path   string
	Reason string
}

func (e *TreeError) Error() string {
	return "taxonomy: invalid node " + e.Path + ": " + e.Reason
}
