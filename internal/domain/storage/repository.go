package storage

import "context"

// Repository is the persistence contract for storage configurations.
type Repository interface {
	List(ctx context.Context, description string) ([]Storage, error)
	Get(ctx context.Context, id int64) (*Storage, error)
	Create(ctx context.Context, s *Storage) error
	Update(ctx context.Context, s *Storage) error
	Delete(ctx context.Context, ids []int64) error
	ClearDefault(ctx context.Context) error
}
