// internal/service/auth/route_test.go
package auth

import (
	"testing"

	"coreadmin-service/internal/domain/rbac"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildRouteTreeNestsAndSorts(t *testing.T) {
	t.Parallel()

	menus := []rbac.Menu{
		{ID: 1, ParentID: 0, Title: "System", Type: rbac.MenuTypeDir, Sort: 2},
		{ID: 2, ParentID: 1, Title: "User", Type: rbac.MenuTypeMenu, Sort: 2, Path: strPtr("/system/user")},
		{ID: 3, ParentID: 1, Title: "Role", Type: rbac.MenuTypeMenu, Sort: 1},
		{ID: 4, ParentID: 0, Title: "Dashboard", Type: rbac.MenuTypeDir, Sort: 1},
	}

	tree := buildRouteTree(menus)
	require.Len(t, tree, 2)
	require.Equal(t, "Dashboard", tree[0].Title)
	require.Equal(t, "System", tree[1].Title)

	children := tree[1].Children
	require.Len(t, children, 2)
	require.Equal(t, "Role", children[0].Title)
	require.Equal(t, "User", children[1].Title)
	require.Equal(t, "/system/user", children[1].Path)
}

func TestBuildRouteTreeExcludesButtons(t *testing.T) {
	t.Parallel()

	menus := []rbac.Menu{
		{ID: 1, ParentID: 0, Title: "User", Type: rbac.MenuTypeMenu, Sort: 1},
		{ID: 2, ParentID: 1, Title: "Add", Type: rbac.MenuTypeButton, Sort: 1, Permission: strPtr("system:user:add")},
	}

	tree := buildRouteTree(menus)
	require.Len(t, tree, 1)
	require.Empty(t, tree[0].Children)
}

func TestBuildRouteTreePromotesOrphans(t *testing.T) {
	t.Parallel()

	// Parent 99 is not in the list; the child becomes a root.
	menus := []rbac.Menu{
		{ID: 1, ParentID: 99, Title: "Orphan", Type: rbac.MenuTypeMenu, Sort: 1},
		{ID: 2, ParentID: 0, Title: "Home", Type: rbac.MenuTypeDir, Sort: 2},
	}

	tree := buildRouteTree(menus)
	require.Len(t, tree, 2)
	require.Equal(t, "Orphan", tree[0].Title)
	require.Equal(t, "Home", tree[1].Title)
}

func TestBuildRouteTreeTieBreaksOnID(t *testing.T) {
	t.Parallel()

	menus := []rbac.Menu{
		{ID: 9, ParentID: 0, Title: "B", Type: rbac.MenuTypeMenu, Sort: 1},
		{ID: 3, ParentID: 0, Title: "A", Type: rbac.MenuTypeMenu, Sort: 1},
	}

	tree := buildRouteTree(menus)
	require.Len(t, tree, 2)
	require.Equal(t, int64(3), tree[0].ID)
	require.Equal(t, int64(9), tree[1].ID)
}

func TestBuildRouteTreeEmpty(t *testing.T) {
	t.Parallel()

	tree := buildRouteTree(nil)
	require.NotNil(t, tree)
	require.Empty(t, tree)
}
