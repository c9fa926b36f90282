package storage

import (
	"errors"

	"gorm.io/gorm"
)

type gormStorage struct {
	db *gorm.DB
}

// NewGormStorage returns the MySQL-backed Storage implementation.
func NewGormStorage(db *gorm.DB) Storage {
	return &gormStorage{db: db}
}

// notFound rewrites gorm's sentinel so callers only ever see ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
