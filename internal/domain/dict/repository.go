package dict

import "context"

// Repository is the persistence contract for dictionaries and their items.
type Repository interface {
	List(ctx context.Context, description string) ([]Dict, error)
	Get(ctx context.Context, id int64) (*Dict, error)
	Create(ctx context.Context, d *Dict) error
	Update(ctx context.Context, d *Dict) error
	Delete(ctx context.Context, ids []int64) error

	PageItems(ctx context.Context, q ItemPageQuery) ([]Item, int64, error)
	GetItem(ctx context.Context, id int64) (*Item, error)
	CreateItem(ctx context.Context, it *Item) error
	UpdateItem(ctx context.Context, it *Item) error
	DeleteItems(ctx context.Context, ids []int64) error
	ListItemsByCode(ctx context.Context, code string) ([]Item, error)
}
