package user

import "context"

// Repository is the persistence contract for system users.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error)
	Page(ctx context.Context, q PageQuery) ([]*User, int64, error)
	ListAll(ctx context.Context) ([]*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, ids []int64) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
}
