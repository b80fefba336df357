package dept

import "time"

// Dept mirrors the sys_dept table.
type Dept struct {
	ID          int64
	ParentID    int64
	Name        string
	Sort        int32
	Status      int16
	IsSystem    bool
	Description *string

	CreateUser *int64
	CreateTime time.Time
	UpdateUser *int64
	UpdateTime *time.Time
}
