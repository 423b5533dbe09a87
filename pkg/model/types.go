package model

import (
	"time"
)

// CommandLog is one NX-API call. Only call metadata is kept, never device output.
type CommandLog struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time
	Command    string
	URL        string
	StatusCode int
	DurationMS int64
	Error      string
}

func (c CommandLog) Succeeded() bool {
	return c.Error == ""
}
