// internal/repository/postgres/rbac_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coreadmin-service/internal/domain/rbac"
	xerrors "coreadmin-service/internal/pkg/errors"
	"coreadmin-service/internal/pkg/idgen"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type RoleRepository struct {
	db  *pgxpool.Pool
	ids *idgen.Generator
}

func NewRoleRepository(db *pgxpool.Pool, ids *idgen.Generator) *RoleRepository {
	return &RoleRepository{db: db, ids: ids}
}

const roleColumns = `
	id, name, code, data_scope, description, sort, is_system,
	create_user, create_time, update_user, update_time
`

func scanRole(row pgx.Row) (*rbac.Role, error) {
	var r rbac.Role
	err := row.Scan(
		&r.ID, &r.Name, &r.Code, &r.DataScope, &r.Description, &r.Sort,
		&r.IsSystem, &r.CreateUser, &r.CreateTime, &r.UpdateUser, &r.UpdateTime,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan role: %w", err)
	}
	return &r, nil
}

func (r *RoleRepository) ListRoles(ctx context.Context, name string) ([]rbac.Role, error) {
	query := `SELECT` + roleColumns + `FROM sys_role`
	args := []interface{}{}
	if name != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+name+"%")
	}
	query += ` ORDER BY sort, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []rbac.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, *role)
	}
	return roles, rows.Err()
}

func (r *RoleRepository) GetRole(ctx context.Context, id int64) (*rbac.Role, error) {
	query := `SELECT` + roleColumns + `FROM sys_role WHERE id = $1`
	return scanRole(r.db.QueryRow(ctx, query, id))
}

func (r *RoleRepository) CreateRole(ctx context.Context, role *rbac.Role) error {
	role.ID = r.ids.Next()
	role.CreateTime = time.Now()
	query := `
		INSERT INTO sys_role (id, name, code, data_scope, description, sort, is_system, create_user, create_time)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err := r.db.Exec(ctx, query,
		role.ID, role.Name, role.Code, role.DataScope, role.Description,
		role.Sort, role.IsSystem, role.CreateUser, role.CreateTime,
	)
	if err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

func (r *RoleRepository) UpdateRole(ctx context.Context, role *rbac.Role) error {
	query := `
		UPDATE sys_role SET
			name = $1, code = $2, data_scope = $3, description = $4, sort = $5,
			update_user = $6, update_time = $7
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query,
		role.Name, role.Code, role.DataScope, role.Description, role.Sort,
		role.UpdateUser, time.Now(), role.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}

func (r *RoleRepository) DeleteRoles(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM sys_role_menu WHERE role_id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete role menus: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM sys_user_role WHERE role_id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete role users: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM sys_role WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete roles: %w", err)
	}
	return nil
}

func (r *RoleRepository) ListRolesByUserID(ctx context.Context, userID int64) ([]rbac.Role, error) {
	query := `
		SELECT` + roleColumns + `
		FROM sys_role
		WHERE id IN (SELECT role_id FROM sys_user_role WHERE user_id = $1)
		ORDER BY sort, id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user roles: %w", err)
	}
	defer rows.Close()

	var roles []rbac.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, *role)
	}
	return roles, rows.Err()
}

// ListPermissionsByUserID collects the distinct non-empty permission strings
// reachable through the user's roles.
func (r *RoleRepository) ListPermissionsByUserID(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT DISTINCT m.permission
		FROM sys_menu m
		JOIN sys_role_menu rm ON rm.menu_id = m.id
		JOIN sys_user_role ur ON ur.role_id = rm.role_id
		WHERE ur.user_id = $1 AND m.permission IS NOT NULL AND m.permission <> ''
		ORDER BY m.permission
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	var perms []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}

func (r *RoleRepository) ListRoleIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT role_id FROM sys_user_role WHERE user_id = $1 ORDER BY role_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list role ids: %w", err)
	}
	defer rows.Close()
	return scanInt64s(rows)
}

func (r *RoleRepository) SetUserRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM sys_user_role WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear user roles: %w", err)
	}
	for _, roleID := range roleIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO sys_user_role (user_id, role_id) VALUES ($1, $2)`, userID, roleID); err != nil {
			return fmt.Errorf("failed to assign role: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func (r *RoleRepository) ListMenuIDsByRoleID(ctx context.Context, roleID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT menu_id FROM sys_role_menu WHERE role_id = $1 ORDER BY menu_id`, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu ids: %w", err)
	}
	defer rows.Close()
	return scanInt64s(rows)
}

func (r *RoleRepository) SetRoleMenus(ctx context.Context, roleID int64, menuIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM sys_role_menu WHERE role_id = $1`, roleID); err != nil {
		return fmt.Errorf("failed to clear role menus: %w", err)
	}
	for _, menuID := range menuIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO sys_role_menu (role_id, menu_id) VALUES ($1, $2)`, roleID, menuID); err != nil {
			return fmt.Errorf("failed to assign menu: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func scanInt64s(rows pgx.Rows) ([]int64, error) {
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type MenuRepository struct {
	db  *pgxpool.Pool
	ids *idgen.Generator
}

func NewMenuRepository(db *pgxpool.Pool, ids *idgen.Generator) *MenuRepository {
	return &MenuRepository{db: db, ids: ids}
}

const menuColumns = `
	id, parent_id, title, type, path, name, component, redirect, icon,
	is_external, is_cache, is_hidden, permission, sort, status,
	create_user, create_time, update_user, update_time
`

func scanMenu(row pgx.Row) (*rbac.Menu, error) {
	var m rbac.Menu
	err := row.Scan(
		&m.ID, &m.ParentID, &m.Title, &m.Type, &m.Path, &m.Name, &m.Component,
		&m.Redirect, &m.Icon, &m.IsExternal, &m.IsCache, &m.IsHidden,
		&m.Permission, &m.Sort, &m.Status,
		&m.CreateUser, &m.CreateTime, &m.UpdateUser, &m.UpdateTime,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan menu: %w", err)
	}
	return &m, nil
}

func (r *MenuRepository) ListMenus(ctx context.Context, title string) ([]rbac.Menu, error) {
	query := `SELECT` + menuColumns + `FROM sys_menu`
	args := []interface{}{}
	if title != "" {
		query += ` WHERE title ILIKE $1`
		args = append(args, "%"+title+"%")
	}
	query += ` ORDER BY sort, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	defer rows.Close()
	return collectMenus(rows)
}

func (r *MenuRepository) GetMenu(ctx context.Context, id int64) (*rbac.Menu, error) {
	query := `SELECT` + menuColumns + `FROM sys_menu WHERE id = $1`
	return scanMenu(r.db.QueryRow(ctx, query, id))
}

func (r *MenuRepository) CreateMenu(ctx context.Context, m *rbac.Menu) error {
	m.ID = r.ids.Next()
	m.CreateTime = time.Now()
	query := `
		INSERT INTO sys_menu (
			id, parent_id, title, type, path, name, component, redirect, icon,
			is_external, is_cache, is_hidden, permission, sort, status,
			create_user, create_time
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`
	_, err := r.db.Exec(ctx, query,
		m.ID, m.ParentID, m.Title, m.Type, m.Path, m.Name, m.Component,
		m.Redirect, m.Icon, m.IsExternal, m.IsCache, m.IsHidden,
		m.Permission, m.Sort, m.Status, m.CreateUser, m.CreateTime,
	)
	if err != nil {
		return fmt.Errorf("failed to create menu: %w", err)
	}
	return nil
}

func (r *MenuRepository) UpdateMenu(ctx context.Context, m *rbac.Menu) error {
	query := `
		UPDATE sys_menu SET
			parent_id = $1, title = $2, type = $3, path = $4, name = $5,
			component = $6, redirect = $7, icon = $8, is_external = $9,
			is_cache = $10, is_hidden = $11, permission = $12, sort = $13,
			status = $14, update_user = $15, update_time = $16
		WHERE id = $17
	`
	_, err := r.db.Exec(ctx, query,
		m.ParentID, m.Title, m.Type, m.Path, m.Name, m.Component, m.Redirect,
		m.Icon, m.IsExternal, m.IsCache, m.IsHidden, m.Permission, m.Sort,
		m.Status, m.UpdateUser, time.Now(), m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update menu: %w", err)
	}
	return nil
}

func (r *MenuRepository) DeleteMenus(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM sys_role_menu WHERE menu_id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete menu roles: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM sys_menu WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete menus: %w", err)
	}
	return nil
}

// ListMenusByRoleIDs returns the enabled menus granted to any of the roles.
func (r *MenuRepository) ListMenusByRoleIDs(ctx context.Context, roleIDs []int64) ([]rbac.Menu, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT DISTINCT` + menuColumns + `
		FROM sys_menu
		WHERE status = $1
		  AND id IN (SELECT menu_id FROM sys_role_menu WHERE role_id = ANY($2))
		ORDER BY sort, id
	`
	rows, err := r.db.Query(ctx, query, rbac.MenuStatusEnabled, pq.Array(roleIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to list role menus: %w", err)
	}
	defer rows.Close()
	return collectMenus(rows)
}

func collectMenus(rows pgx.Rows) ([]rbac.Menu, error) {
	var menus []rbac.Menu
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, *m)
	}
	return menus, rows.Err()
}
