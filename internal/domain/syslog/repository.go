package syslog

import "context"

// Repository is the persistence contract for request logs. Save must not
// fail the request being logged; callers treat errors as log-and-continue.
type Repository interface {
	Save(ctx context.Context, rec *Record) error
	Page(ctx context.Context, q PageQuery) ([]Record, int64, error)
	Get(ctx context.Context, id int64) (*Record, error)
}
