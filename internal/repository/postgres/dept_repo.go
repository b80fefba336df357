// internal/repository/postgres/dept_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coreadmin-service/internal/domain/dept"
	xerrors "coreadmin-service/internal/pkg/errors"
	"coreadmin-service/internal/pkg/idgen"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type DeptRepository struct {
	db  *pgxpool.Pool
	ids *idgen.Generator
}

func NewDeptRepository(db *pgxpool.Pool, ids *idgen.Generator) *DeptRepository {
	return &DeptRepository{db: db, ids: ids}
}

const deptColumns = `
	id, parent_id, name, sort, status, is_system, description,
	create_user, create_time, update_user, update_time
`

func scanDept(row pgx.Row) (*dept.Dept, error) {
	var d dept.Dept
	err := row.Scan(
		&d.ID, &d.ParentID, &d.Name, &d.Sort, &d.Status, &d.IsSystem,
		&d.Description, &d.CreateUser, &d.CreateTime, &d.UpdateUser, &d.UpdateTime,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan dept: %w", err)
	}
	return &d, nil
}

func (r *DeptRepository) List(ctx context.Context, name string) ([]dept.Dept, error) {
	query := `SELECT` + deptColumns + `FROM sys_dept`
	args := []interface{}{}
	if name != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+name+"%")
	}
	query += ` ORDER BY sort, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list depts: %w", err)
	}
	defer rows.Close()

	var depts []dept.Dept
	for rows.Next() {
		d, err := scanDept(rows)
		if err != nil {
			return nil, err
		}
		depts = append(depts, *d)
	}
	return depts, rows.Err()
}

func (r *DeptRepository) Get(ctx context.Context, id int64) (*dept.Dept, error) {
	query := `SELECT` + deptColumns + `FROM sys_dept WHERE id = $1`
	return scanDept(r.db.QueryRow(ctx, query, id))
}

// GetName returns the department name, or empty if the row is missing.
func (r *DeptRepository) GetName(ctx context.Context, id int64) (string, error) {
	var name string
	err := r.db.QueryRow(ctx, `SELECT name FROM sys_dept WHERE id = $1`, id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get dept name: %w", err)
	}
	return name, nil
}

func (r *DeptRepository) Create(ctx context.Context, d *dept.Dept) error {
	d.ID = r.ids.Next()
	d.CreateTime = time.Now()
	query := `
		INSERT INTO sys_dept (id, parent_id, name, sort, status, is_system, description, create_user, create_time)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err := r.db.Exec(ctx, query,
		d.ID, d.ParentID, d.Name, d.Sort, d.Status, d.IsSystem, d.Description,
		d.CreateUser, d.CreateTime,
	)
	if err != nil {
		return fmt.Errorf("failed to create dept: %w", err)
	}
	return nil
}

func (r *DeptRepository) Update(ctx context.Context, d *dept.Dept) error {
	query := `
		UPDATE sys_dept SET
			parent_id = $1, name = $2, sort = $3, status = $4, description = $5,
			update_user = $6, update_time = $7
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query,
		d.ParentID, d.Name, d.Sort, d.Status, d.Description,
		d.UpdateUser, time.Now(), d.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update dept: %w", err)
	}
	return nil
}

func (r *DeptRepository) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM sys_dept WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete depts: %w", err)
	}
	return nil
}

func (r *DeptRepository) HasChildren(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM sys_dept WHERE parent_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check dept children: %w", err)
	}
	return exists, nil
}
