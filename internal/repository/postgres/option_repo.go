// internal/repository/postgres/option_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coreadmin-service/internal/domain/option"
	xerrors "coreadmin-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OptionRepository struct {
	db *pgxpool.Pool
}

func NewOptionRepository(db *pgxpool.Pool) *OptionRepository {
	return &OptionRepository{db: db}
}

const optionColumns = `
	id, category, name, code, value, default_value, description,
	update_user, update_time
`

func scanOption(row pgx.Row) (*option.Option, error) {
	var o option.Option
	err := row.Scan(
		&o.ID, &o.Category, &o.Name, &o.Code, &o.Value, &o.DefaultValue,
		&o.Description, &o.UpdateUser, &o.UpdateTime,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan option: %w", err)
	}
	return &o, nil
}

func (r *OptionRepository) ListByCategory(ctx context.Context, category string) ([]option.Option, error) {
	query := `SELECT` + optionColumns + `FROM sys_option`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list options: %w", err)
	}
	defer rows.Close()

	var opts []option.Option
	for rows.Next() {
		o, err := scanOption(rows)
		if err != nil {
			return nil, err
		}
		opts = append(opts, *o)
	}
	return opts, rows.Err()
}

func (r *OptionRepository) GetByCode(ctx context.Context, code string) (*option.Option, error) {
	query := `SELECT` + optionColumns + `FROM sys_option WHERE code = $1`
	return scanOption(r.db.QueryRow(ctx, query, code))
}

func (r *OptionRepository) UpdateValue(ctx context.Context, code, value string, updateUser int64) error {
	query := `UPDATE sys_option SET value = $1, update_user = $2, update_time = $3 WHERE code = $4`
	_, err := r.db.Exec(ctx, query, value, updateUser, time.Now(), code)
	if err != nil {
		return fmt.Errorf("failed to update option: %w", err)
	}
	return nil
}

// ResetValue clears stored values back to defaults, scoped by category
// and/or code when given.
func (r *OptionRepository) ResetValue(ctx context.Context, category, code string) error {
	query := `UPDATE sys_option SET value = NULL, update_time = $1 WHERE 1=1`
	args := []interface{}{time.Now()}
	idx := 2
	if category != "" {
		query += fmt.Sprintf(` AND category = $%d`, idx)
		args = append(args, category)
		idx++
	}
	if code != "" {
		query += fmt.Sprintf(` AND code = $%d`, idx)
		args = append(args, code)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to reset options: %w", err)
	}
	return nil
}

// IsEnabled implements option.FlagSource. A missing row counts as off.
func (r *OptionRepository) IsEnabled(ctx context.Context, code string) (bool, error) {
	o, err := r.GetByCode(ctx, code)
	if errors.Is(err, xerrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return o.BoolValue(), nil
}
