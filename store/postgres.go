package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxAttempts = 3

// Document is one row of the keyed document table. Values are full JSON
// records; a Set replaces the whole document.
type Document struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     []byte `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (Document) TableName() string {
	return "documents"
}

// Postgres is the production Documents implementation backed by a single
// jsonb table.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) (*Postgres, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, err
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var doc Document
	err := withRetry(ctx, func() error {
		return p.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.Value, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	return withRetry(ctx, func() error {
		return p.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&Document{Key: key, Value: value, UpdatedAt: time.Now()}).Error
	})
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	return withRetry(ctx, func() error {
		return p.db.WithContext(ctx).Delete(&Document{}, "key = ?", key).Error
	})
}

func (p *Postgres) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := withRetry(ctx, func() error {
		keys = keys[:0]
		return p.db.WithContext(ctx).Model(&Document{}).
			Where("key LIKE ?", prefix+"%").
			Order("key").
			Pluck("key", &keys).Error
	})
	return keys, err
}

// Update runs fn inside one database transaction, so the invoice and
// customer writes of a billing submission commit or roll back together.
func (p *Postgres) Update(ctx context.Context, fn func(Tx) error) error {
	return withRetry(ctx, func() error {
		return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(&postgresTx{db: tx})
		})
	})
}

type postgresTx struct {
	db *gorm.DB
}

func (t *postgresTx) Get(key string) ([]byte, error) {
	var doc Document
	if err := t.db.First(&doc, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.Value, nil
}

func (t *postgresTx) Set(key string, value []byte) error {
	return t.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&Document{Key: key, Value: value, UpdatedAt: time.Now()}).Error
}

// withRetry retries transient store failures up to maxAttempts with a
// short linear backoff. Not-found results and context cancellation are
// returned immediately.
func withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
			}
		}
	}
	return err
}
