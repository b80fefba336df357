package syslog

import "time"

// Request log status values.
const (
	StatusSuccess int16 = 1
	StatusFailure int16 = 2
)

// Record mirrors the sys_log table; one row per captured HTTP request.
type Record struct {
	ID              int64
	Description     string
	Module          string
	RequestURL      string
	RequestMethod   string
	RequestHeaders  string
	RequestBody     string
	StatusCode      int
	ResponseHeaders string
	ResponseBody    string
	TimeTaken       int64
	IP              string
	Address         string
	Browser         string
	OS              string
	Status          int16
	ErrorMsg        *string
	CreateUser      *int64
	CreateTime      time.Time
}
