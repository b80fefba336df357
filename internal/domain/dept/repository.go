package dept

import "context"

// Repository is the persistence contract for departments.
type Repository interface {
	List(ctx context.Context, name string) ([]Dept, error)
	Get(ctx context.Context, id int64) (*Dept, error)
	GetName(ctx context.Context, id int64) (string, error)
	Create(ctx context.Context, d *Dept) error
	Update(ctx context.Context, d *Dept) error
	Delete(ctx context.Context, ids []int64) error
	HasChildren(ctx context.Context, id int64) (bool, error)
}
