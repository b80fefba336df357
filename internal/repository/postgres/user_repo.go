// internal/repository/postgres/user_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coreadmin-service/internal/domain/user"
	xerrors "coreadmin-service/internal/pkg/errors"
	"coreadmin-service/internal/pkg/idgen"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type UserRepository struct {
	db  *pgxpool.Pool
	ids *idgen.Generator
}

func NewUserRepository(db *pgxpool.Pool, ids *idgen.Generator) *UserRepository {
	return &UserRepository{db: db, ids: ids}
}

const userColumns = `
	id, username, nickname, password, gender, email, phone, avatar,
	description, status, is_system, pwd_reset_time, dept_id,
	create_user, create_time, update_user, update_time
`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Nickname, &u.Password, &u.Gender, &u.Email,
		&u.Phone, &u.Avatar, &u.Description, &u.Status, &u.IsSystem,
		&u.PwdResetTime, &u.DeptID,
		&u.CreateUser, &u.CreateTime, &u.UpdateUser, &u.UpdateTime,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

// FindByID retrieves a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	query := `SELECT` + userColumns + `FROM sys_user WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// FindByUsername retrieves a user by exact username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT` + userColumns + `FROM sys_user WHERE username = $1`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

// ExistsByUsername reports whether the username is taken by another user.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM sys_user WHERE username = $1 AND id <> $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, username, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

// Page lists users with optional filters, newest first.
func (r *UserRepository) Page(ctx context.Context, q user.PageQuery) ([]*user.User, int64, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if q.Description != "" {
		where += fmt.Sprintf(` AND (username ILIKE $%d OR nickname ILIKE $%d)`, idx, idx)
		args = append(args, "%"+q.Description+"%")
		idx++
	}
	if q.Status != nil {
		where += fmt.Sprintf(` AND status = $%d`, idx)
		args = append(args, *q.Status)
		idx++
	}
	if q.DeptID != nil {
		where += fmt.Sprintf(` AND dept_id = $%d`, idx)
		args = append(args, *q.DeptID)
		idx++
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sys_user`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := `SELECT` + userColumns + `FROM sys_user` + where +
		fmt.Sprintf(` ORDER BY create_time DESC, id DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, q.Size, (q.Page-1)*q.Size)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// ListAll returns every user, for select boxes.
func (r *UserRepository) ListAll(ctx context.Context) ([]*user.User, error) {
	query := `SELECT` + userColumns + `FROM sys_user ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create inserts a user, assigning a fresh ID.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	u.ID = r.ids.Next()
	u.CreateTime = time.Now()
	query := `
		INSERT INTO sys_user (
			id, username, nickname, password, gender, email, phone, avatar,
			description, status, is_system, pwd_reset_time, dept_id,
			create_user, create_time
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.Username, u.Nickname, u.Password, u.Gender, u.Email, u.Phone,
		u.Avatar, u.Description, u.Status, u.IsSystem, u.PwdResetTime,
		u.DeptID, u.CreateUser, u.CreateTime,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update rewrites the mutable user fields.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE sys_user SET
			nickname = $1, gender = $2, email = $3, phone = $4,
			description = $5, status = $6, dept_id = $7,
			update_user = $8, update_time = $9
		WHERE id = $10
	`
	_, err := r.db.Exec(ctx, query,
		u.Nickname, u.Gender, u.Email, u.Phone, u.Description, u.Status,
		u.DeptID, u.UpdateUser, time.Now(), u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Delete removes users and their role assignments.
func (r *UserRepository) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM sys_user_role WHERE user_id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete user roles: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM sys_user WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete users: %w", err)
	}
	return nil
}

// UpdatePassword replaces the stored hash and stamps pwd_reset_time.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	query := `UPDATE sys_user SET password = $1, pwd_reset_time = $2 WHERE id = $3`
	_, err := r.db.Exec(ctx, query, hash, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
