package dict

import "time"

// Dict mirrors the sys_dict table.
type Dict struct {
	ID          int64
	Name        string
	Code        string
	Description *string
	IsSystem    bool

	CreateUser *int64
	CreateTime time.Time
	UpdateUser *int64
	UpdateTime *time.Time
}

// Item mirrors the sys_dict_item table.
type Item struct {
	ID          int64
	DictID      int64
	Label       string
	Value       string
	Color       *string
	Sort        int32
	Status      int16
	Description *string

	CreateUser *int64
	CreateTime time.Time
	UpdateUser *int64
	UpdateTime *time.Time
}
