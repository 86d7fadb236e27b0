package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-poster-keeper/internal/config"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
)

// Storages groups the server repositories. They share one PostgreSQL pool.
type Storages struct {
	UserRepository   UserRepository
	PosterRepository PosterRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		PosterRepository: NewPosterRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
