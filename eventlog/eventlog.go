// Package eventlog persists moderation decisions to a database, so that
// operators can audit what the engine did and why.
package eventlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// A single engine decision for a subject. Labels, flags, and reports are
// stored as comma-separated values; empty means the event was clean.
type Decision struct {
	ID        uint   `gorm:"primarykey"`
	Subject   string `gorm:"index"`
	Labels    string
	Flags     string
	Reports   string
	Takedown  bool
	CreatedAt time.Time
}

type Store struct {
	db *gorm.DB
}

// OpenStore connects to the database named by url ("sqlite://<path>") and
// runs migrations.
func OpenStore(url string) (*Store, error) {
	if !strings.HasPrefix(url, "sqlite://") {
		return nil, fmt.Errorf("unsupported or unrecognized database URL: %s", url)
	}
	path := url[len("sqlite://"):]
	// ensure the directory exists if the db file is being initialized
	if !strings.Contains(path, ":memory:") {
		if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 slogGorm.New(),
	})
	if err != nil {
		return nil, err
	}

	sqldb, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Decision{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Record(ctx context.Context, subject string, labels, flags, reports []string, takedown bool) error {
	dec := Decision{
		Subject:  subject,
		Labels:   strings.Join(labels, ","),
		Flags:    strings.Join(flags, ","),
		Reports:  strings.Join(reports, ","),
		Takedown: takedown,
	}
	return s.db.WithContext(ctx).Create(&dec).Error
}

// BySubject returns decisions for a subject, most recent first.
func (s *Store) BySubject(ctx context.Context, subject string, limit int) ([]Decision, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []Decision
	err := s.db.WithContext(ctx).
		Where("subject = ?", subject).
		Order("id desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}
