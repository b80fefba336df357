// internal/repository/postgres/syslog_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coreadmin-service/internal/domain/syslog"
	xerrors "coreadmin-service/internal/pkg/errors"
	"coreadmin-service/internal/pkg/idgen"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SysLogRepository struct {
	db  *pgxpool.Pool
	ids *idgen.Generator
}

func NewSysLogRepository(db *pgxpool.Pool, ids *idgen.Generator) *SysLogRepository {
	return &SysLogRepository{db: db, ids: ids}
}

const sysLogColumns = `
	id, description, module, request_url, request_method, request_headers,
	request_body, status_code, response_headers, response_body, time_taken,
	ip, address, browser, os, status, error_msg, create_user, create_time
`

func scanSysLog(row pgx.Row) (*syslog.Record, error) {
	var rec syslog.Record
	err := row.Scan(
		&rec.ID, &rec.Description, &rec.Module, &rec.RequestURL,
		&rec.RequestMethod, &rec.RequestHeaders, &rec.RequestBody,
		&rec.StatusCode, &rec.ResponseHeaders, &rec.ResponseBody,
		&rec.TimeTaken, &rec.IP, &rec.Address, &rec.Browser, &rec.OS,
		&rec.Status, &rec.ErrorMsg, &rec.CreateUser, &rec.CreateTime,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan log: %w", err)
	}
	return &rec, nil
}

func (r *SysLogRepository) Save(ctx context.Context, rec *syslog.Record) error {
	rec.ID = r.ids.Next()
	if rec.CreateTime.IsZero() {
		rec.CreateTime = time.Now()
	}
	query := `
		INSERT INTO sys_log (
			id, description, module, request_url, request_method, request_headers,
			request_body, status_code, response_headers, response_body, time_taken,
			ip, address, browser, os, status, error_msg, create_user, create_time
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
	`
	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.Description, rec.Module, rec.RequestURL, rec.RequestMethod,
		rec.RequestHeaders, rec.RequestBody, rec.StatusCode, rec.ResponseHeaders,
		rec.ResponseBody, rec.TimeTaken, rec.IP, rec.Address, rec.Browser,
		rec.OS, rec.Status, rec.ErrorMsg, rec.CreateUser, rec.CreateTime,
	)
	if err != nil {
		return fmt.Errorf("failed to save log: %w", err)
	}
	return nil
}

func (r *SysLogRepository) Page(ctx context.Context, q syslog.PageQuery) ([]syslog.Record, int64, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if q.Description != "" {
		where += fmt.Sprintf(` AND description ILIKE $%d`, idx)
		args = append(args, "%"+q.Description+"%")
		idx++
	}
	if q.Module != "" {
		where += fmt.Sprintf(` AND module = $%d`, idx)
		args = append(args, q.Module)
		idx++
	}
	if q.IP != "" {
		where += fmt.Sprintf(` AND ip = $%d`, idx)
		args = append(args, q.IP)
		idx++
	}
	if q.Status != nil {
		where += fmt.Sprintf(` AND status = $%d`, idx)
		args = append(args, *q.Status)
		idx++
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sys_log`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count logs: %w", err)
	}

	query := `SELECT` + sysLogColumns + `FROM sys_log` + where +
		fmt.Sprintf(` ORDER BY create_time DESC, id DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, q.Size, (q.Page-1)*q.Size)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	var recs []syslog.Record
	for rows.Next() {
		rec, err := scanSysLog(rows)
		if err != nil {
			return nil, 0, err
		}
		recs = append(recs, *rec)
	}
	return recs, total, rows.Err()
}

func (r *SysLogRepository) Get(ctx context.Context, id int64) (*syslog.Record, error) {
	query := `SELECT` + sysLogColumns + `FROM sys_log WHERE id = $1`
	return scanSysLog(r.db.QueryRow(ctx, query, id))
}
