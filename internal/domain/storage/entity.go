package storage

import "time"

// Storage backend types.
const (
	TypeLocal int16 = 1
	TypeS3    int16 = 2
)

// Storage mirrors the sys_storage table. Records are configuration only;
// no file I/O happens in this service.
type Storage struct {
	ID          int64
	Name        string
	Code        string
	Type        int16
	AccessKey   *string
	SecretKey   *string
	Endpoint    *string
	BucketName  *string
	Domain      *string
	Description *string
	IsDefault   bool
	Sort        int32
	Status      int16

	CreateUser *int64
	CreateTime time.Time
	UpdateUser *int64
	UpdateTime *time.Time
}
