package option

import "context"

// Repository is the persistence contract for system options.
type Repository interface {
	ListByCategory(ctx context.Context, category string) ([]Option, error)
	GetByCode(ctx context.Context, code string) (*Option, error)
	UpdateValue(ctx context.Context, code, value string, updateUser int64) error
	ResetValue(ctx context.Context, category, code string) error
}

// FlagSource reports boolean option flags. The auth flow uses it to decide
// whether login requires a captcha.
type FlagSource interface {
	IsEnabled(ctx context.Context, code string) (bool, error)
}
