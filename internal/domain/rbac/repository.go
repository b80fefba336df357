package rbac

import "context"

// RoleRepository is the persistence contract for roles and their
// user/menu associations.
type RoleRepository interface {
	ListRoles(ctx context.Context, name string) ([]Role, error)
	GetRole(ctx context.Context, id int64) (*Role, error)
	CreateRole(ctx context.Context, r *Role) error
	UpdateRole(ctx context.Context, r *Role) error
	DeleteRoles(ctx context.Context, ids []int64) error

	ListRolesByUserID(ctx context.Context, userID int64) ([]Role, error)
	ListPermissionsByUserID(ctx context.Context, userID int64) ([]string, error)
	ListRoleIDsByUserID(ctx context.Context, userID int64) ([]int64, error)
	SetUserRoles(ctx context.Context, userID int64, roleIDs []int64) error

	ListMenuIDsByRoleID(ctx context.Context, roleID int64) ([]int64, error)
	SetRoleMenus(ctx context.Context, roleID int64, menuIDs []int64) error
}

// MenuRepository is the persistence contract for menus.
type MenuRepository interface {
	ListMenus(ctx context.Context, title string) ([]Menu, error)
	GetMenu(ctx context.Context, id int64) (*Menu, error)
	CreateMenu(ctx context.Context, m *Menu) error
	UpdateMenu(ctx context.Context, m *Menu) error
	DeleteMenus(ctx context.Context, ids []int64) error

	ListMenusByRoleIDs(ctx context.Context, roleIDs []int64) ([]Menu, error)
}
