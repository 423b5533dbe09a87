package model

import (
	"fmt"

	"github.com/aRestless/nxview/pkg/nxapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type History struct {
	db *gorm.DB
	l  *logrus.Logger
}

func NewHistory(db *gorm.DB, l *logrus.Logger) *History {
	if l == nil {
		l = logrus.New()
	}

	return &History{db: db, l: l}
}

// Record implements nxapi.Recorder.
func (h *History) Record(ex nxapi.Exchange) error {
	entry := CommandLog{
		CreatedAt:  ex.Started,
		Command:    ex.Command,
		URL:        ex.URL,
		StatusCode: ex.StatusCode,
		DurationMS: ex.Duration.Milliseconds(),
	}

	if ex.Err != nil {
		entry.Error = ex.Err.Error()
	}

	res := h.db.Create(&entry)
	if res.Error != nil {
		return fmt.Errorf("insert command log: %w", res.Error)
	}

	h.l.Debugf("recorded %q (%d) in %dms", entry.Command, entry.StatusCode, entry.DurationMS)
	return nil
}

// Recent returns at most limit entries, newest first.
func (h *History) Recent(limit int) ([]CommandLog, error) {
	var logs []CommandLog
	res := h.db.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&logs)
	if res.Error != nil {
		return nil, fmt.Errorf("query command logs: %w", res.Error)
	}

	return logs, nil
}
