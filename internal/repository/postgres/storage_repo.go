// internal/repository/postgres/storage_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coreadmin-service/internal/domain/storage"
	xerrors "coreadmin-service/internal/pkg/errors"
	"coreadmin-service/internal/pkg/idgen"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type StorageRepository struct {
	db  *pgxpool.Pool
	ids *idgen.Generator
}

func NewStorageRepository(db *pgxpool.Pool, ids *idgen.Generator) *StorageRepository {
	return &StorageRepository{db: db, ids: ids}
}

const storageColumns = `
	id, name, code, type, access_key, secret_key, endpoint, bucket_name,
	domain, description, is_default, sort, status,
	create_user, create_time, update_user, update_time
`

func scanStorage(row pgx.Row) (*storage.Storage, error) {
	var s storage.Storage
	err := row.Scan(
		&s.ID, &s.Name, &s.Code, &s.Type, &s.AccessKey, &s.SecretKey,
		&s.Endpoint, &s.BucketName, &s.Domain, &s.Description, &s.IsDefault,
		&s.Sort, &s.Status,
		&s.CreateUser, &s.CreateTime, &s.UpdateUser, &s.UpdateTime,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan storage: %w", err)
	}
	return &s, nil
}

func (r *StorageRepository) List(ctx context.Context, description string) ([]storage.Storage, error) {
	query := `SELECT` + storageColumns + `FROM sys_storage`
	args := []interface{}{}
	if description != "" {
		query += ` WHERE name ILIKE $1 OR code ILIKE $1`
		args = append(args, "%"+description+"%")
	}
	query += ` ORDER BY sort, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list storages: %w", err)
	}
	defer rows.Close()

	var out []storage.Storage
	for rows.Next() {
		s, err := scanStorage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *StorageRepository) Get(ctx context.Context, id int64) (*storage.Storage, error) {
	query := `SELECT` + storageColumns + `FROM sys_storage WHERE id = $1`
	return scanStorage(r.db.QueryRow(ctx, query, id))
}

func (r *StorageRepository) Create(ctx context.Context, s *storage.Storage) error {
	s.ID = r.ids.Next()
	s.CreateTime = time.Now()
	query := `
		INSERT INTO sys_storage (
			id, name, code, type, access_key, secret_key, endpoint, bucket_name,
			domain, description, is_default, sort, status, create_user, create_time
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Code, s.Type, s.AccessKey, s.SecretKey, s.Endpoint,
		s.BucketName, s.Domain, s.Description, s.IsDefault, s.Sort, s.Status,
		s.CreateUser, s.CreateTime,
	)
	if err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}
	return nil
}

func (r *StorageRepository) Update(ctx context.Context, s *storage.Storage) error {
	query := `
		UPDATE sys_storage SET
			name = $1, code = $2, type = $3, access_key = $4, secret_key = $5,
			endpoint = $6, bucket_name = $7, domain = $8, description = $9,
			is_default = $10, sort = $11, status = $12, update_user = $13, update_time = $14
		WHERE id = $15
	`
	_, err := r.db.Exec(ctx, query,
		s.Name, s.Code, s.Type, s.AccessKey, s.SecretKey, s.Endpoint,
		s.BucketName, s.Domain, s.Description, s.IsDefault, s.Sort, s.Status,
		s.UpdateUser, time.Now(), s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update storage: %w", err)
	}
	return nil
}

func (r *StorageRepository) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM sys_storage WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete storages: %w", err)
	}
	return nil
}

// ClearDefault unsets the default flag on every storage, ahead of
// marking a new default.
func (r *StorageRepository) ClearDefault(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `UPDATE sys_storage SET is_default = FALSE WHERE is_default`); err != nil {
		return fmt.Errorf("failed to clear default storage: %w", err)
	}
	return nil
}
