package model

import (
	"fmt"
	"log"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDatabase(path string, l *logrus.Logger) (*gorm.DB, error) {
	if l == nil {
		l = logrus.New()
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.Logger = logger.New(log.New(levelWriter{l: l, level: logrus.WarnLevel}, "", 0), logger.Config{
		LogLevel: logger.Warn,
	})

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func migrate(db *gorm.DB) error {
	models := []interface{}{
		&CommandLog{},
	}

	return db.AutoMigrate(models...)
}

// levelWriter forwards gorm log lines to logrus at a fixed level.
type levelWriter struct {
	l     *logrus.Logger
	level logrus.Level
}

func (w levelWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSpace(string(p))
	if msg != "" {
		w.l.WithField("component", "db").Log(w.level, msg)
	}

	return len(p), nil
}
