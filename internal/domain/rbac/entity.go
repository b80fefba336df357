package rbac

import "time"

// Menu types as stored in sys_menu.type.
const (
	MenuTypeDir    int16 = 1
	MenuTypeMenu   int16 = 2
	MenuTypeButton int16 = 3
)

// MenuStatusEnabled is the enabled menu status value.
const MenuStatusEnabled int16 = 1

// Role mirrors the sys_role table.
type Role struct {
	ID          int64
	Name        string
	Code        string
	DataScope   int16
	Description *string
	Sort        int32
	IsSystem    bool

	CreateUser *int64
	CreateTime time.Time
	UpdateUser *int64
	UpdateTime *time.Time
}

// Menu mirrors the sys_menu table. Button-type menus contribute permission
// strings but never appear in the route tree.
type Menu struct {
	ID         int64
	ParentID   int64
	Title      string
	Type       int16
	Path       *string
	Name       *string
	Component  *string
	Redirect   *string
	Icon       *string
	IsExternal bool
	IsCache    bool
	IsHidden   bool
	Permission *string
	Sort       int32
	Status     int16

	CreateUser *int64
	CreateTime time.Time
	UpdateUser *int64
	UpdateTime *time.Time
}
