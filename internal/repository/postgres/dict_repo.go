// internal/repository/postgres/dict_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coreadmin-service/internal/domain/dict"
	xerrors "coreadmin-service/internal/pkg/errors"
	"coreadmin-service/internal/pkg/idgen"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type DictRepository struct {
	db  *pgxpool.Pool
	ids *idgen.Generator
}

func NewDictRepository(db *pgxpool.Pool, ids *idgen.Generator) *DictRepository {
	return &DictRepository{db: db, ids: ids}
}

const dictColumns = `
	id, name, code, description, is_system,
	create_user, create_time, update_user, update_time
`

func scanDict(row pgx.Row) (*dict.Dict, error) {
	var d dict.Dict
	err := row.Scan(
		&d.ID, &d.Name, &d.Code, &d.Description, &d.IsSystem,
		&d.CreateUser, &d.CreateTime, &d.UpdateUser, &d.UpdateTime,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan dict: %w", err)
	}
	return &d, nil
}

func (r *DictRepository) List(ctx context.Context, description string) ([]dict.Dict, error) {
	query := `SELECT` + dictColumns + `FROM sys_dict`
	args := []interface{}{}
	if description != "" {
		query += ` WHERE name ILIKE $1 OR code ILIKE $1`
		args = append(args, "%"+description+"%")
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list dicts: %w", err)
	}
	defer rows.Close()

	var dicts []dict.Dict
	for rows.Next() {
		d, err := scanDict(rows)
		if err != nil {
			return nil, err
		}
		dicts = append(dicts, *d)
	}
	return dicts, rows.Err()
}

func (r *DictRepository) Get(ctx context.Context, id int64) (*dict.Dict, error) {
	query := `SELECT` + dictColumns + `FROM sys_dict WHERE id = $1`
	return scanDict(r.db.QueryRow(ctx, query, id))
}

func (r *DictRepository) Create(ctx context.Context, d *dict.Dict) error {
	d.ID = r.ids.Next()
	d.CreateTime = time.Now()
	query := `
		INSERT INTO sys_dict (id, name, code, description, is_system, create_user, create_time)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	_, err := r.db.Exec(ctx, query,
		d.ID, d.Name, d.Code, d.Description, d.IsSystem, d.CreateUser, d.CreateTime,
	)
	if err != nil {
		return fmt.Errorf("failed to create dict: %w", err)
	}
	return nil
}

func (r *DictRepository) Update(ctx context.Context, d *dict.Dict) error {
	query := `
		UPDATE sys_dict SET name = $1, code = $2, description = $3, update_user = $4, update_time = $5
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query, d.Name, d.Code, d.Description, d.UpdateUser, time.Now(), d.ID)
	if err != nil {
		return fmt.Errorf("failed to update dict: %w", err)
	}
	return nil
}

func (r *DictRepository) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM sys_dict_item WHERE dict_id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete dict items: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM sys_dict WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete dicts: %w", err)
	}
	return nil
}

const dictItemColumns = `
	id, dict_id, label, value, color, sort, status, description,
	create_user, create_time, update_user, update_time
`

func scanDictItem(row pgx.Row) (*dict.Item, error) {
	var it dict.Item
	err := row.Scan(
		&it.ID, &it.DictID, &it.Label, &it.Value, &it.Color, &it.Sort,
		&it.Status, &it.Description,
		&it.CreateUser, &it.CreateTime, &it.UpdateUser, &it.UpdateTime,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan dict item: %w", err)
	}
	return &it, nil
}

func (r *DictRepository) PageItems(ctx context.Context, q dict.ItemPageQuery) ([]dict.Item, int64, error) {
	where := ` WHERE dict_id = $1`
	args := []interface{}{q.DictID}
	idx := 2

	if q.Description != "" {
		where += fmt.Sprintf(` AND label ILIKE $%d`, idx)
		args = append(args, "%"+q.Description+"%")
		idx++
	}
	if q.Status != nil {
		where += fmt.Sprintf(` AND status = $%d`, idx)
		args = append(args, *q.Status)
		idx++
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sys_dict_item`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count dict items: %w", err)
	}

	query := `SELECT` + dictItemColumns + `FROM sys_dict_item` + where +
		fmt.Sprintf(` ORDER BY sort, id LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, q.Size, (q.Page-1)*q.Size)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list dict items: %w", err)
	}
	defer rows.Close()

	var items []dict.Item
	for rows.Next() {
		it, err := scanDictItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *it)
	}
	return items, total, rows.Err()
}

func (r *DictRepository) GetItem(ctx context.Context, id int64) (*dict.Item, error) {
	query := `SELECT` + dictItemColumns + `FROM sys_dict_item WHERE id = $1`
	return scanDictItem(r.db.QueryRow(ctx, query, id))
}

func (r *DictRepository) CreateItem(ctx context.Context, it *dict.Item) error {
	it.ID = r.ids.Next()
	it.CreateTime = time.Now()
	query := `
		INSERT INTO sys_dict_item (id, dict_id, label, value, color, sort, status, description, create_user, create_time)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`
	_, err := r.db.Exec(ctx, query,
		it.ID, it.DictID, it.Label, it.Value, it.Color, it.Sort, it.Status,
		it.Description, it.CreateUser, it.CreateTime,
	)
	if err != nil {
		return fmt.Errorf("failed to create dict item: %w", err)
	}
	return nil
}

func (r *DictRepository) UpdateItem(ctx context.Context, it *dict.Item) error {
	query := `
		UPDATE sys_dict_item SET
			label = $1, value = $2, color = $3, sort = $4, status = $5,
			description = $6, update_user = $7, update_time = $8
		WHERE id = $9
	`
	_, err := r.db.Exec(ctx, query,
		it.Label, it.Value, it.Color, it.Sort, it.Status, it.Description,
		it.UpdateUser, time.Now(), it.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update dict item: %w", err)
	}
	return nil
}

func (r *DictRepository) DeleteItems(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM sys_dict_item WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete dict items: %w", err)
	}
	return nil
}

// ListItemsByCode returns the enabled items of the dictionary with the given code.
func (r *DictRepository) ListItemsByCode(ctx context.Context, code string) ([]dict.Item, error) {
	query := `
		SELECT` + dictItemColumns + `
		FROM sys_dict_item
		WHERE status = 1 AND dict_id = (SELECT id FROM sys_dict WHERE code = $1)
		ORDER BY sort, id
	`
	rows, err := r.db.Query(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list dict items by code: %w", err)
	}
	defer rows.Close()

	var items []dict.Item
	for rows.Next() {
		it, err := scanDictItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}
