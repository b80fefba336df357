package user

import "time"

// User is the domain entity for a system user, mirroring the sys_user table.
type User struct {
	ID           int64
	Username     string
	Nickname     string
	Password     string
	Gender       int16
	Email        *string
	Phone        *string
	Avatar       *string
	Description  *string
	Status       int16
	IsSystem     bool
	PwdResetTime *time.Time
	DeptID       int64

	CreateUser *int64
	CreateTime time.Time
	UpdateUser *int64
	UpdateTime *time.Time
}

// StatusEnabled is the enabled account status value.
const StatusEnabled int16 = 1

// IsEnabled returns true if the account may log in.
func (u *User) IsEnabled() bool {
	return u != nil && u.Status == StatusEnabled
}
