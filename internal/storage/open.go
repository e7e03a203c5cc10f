package storage

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/tarif-defteri/config"
	"github.com/pageza/tarif-defteri/internal/database"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var nopCloser = closerFunc(func() error { return nil })

// Open constructs the slot selected by cfg.StorageBackend. The returned
// closer releases any connection the backend holds.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (Slot, io.Closer, error) {
	log = log.With(zap.String("backend", cfg.StorageBackend))

	switch cfg.StorageBackend {
	case config.BackendMemory:
		log.Warn("Using in-memory storage, recipes will not survive a restart")
		return NewMemorySlot(), nopCloser, nil

	case config.BackendFile:
		slot, err := NewFileSlot(cfg.StorageDir)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Using file storage", zap.String("dir", cfg.StorageDir))
		return slot, nopCloser, nil

	case config.BackendSQLite, config.BackendPostgres:
		db, err := openDB(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		slot, err := NewGormSlot(db)
		if err != nil {
			_ = database.Close(db)
			return nil, nil, err
		}
		return slot, closerFunc(func() error { return database.Close(db) }), nil

	case config.BackendRedis:
		client, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisSlot(client, "tarif:"), client, nil

	case config.BackendS3:
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Using s3 storage", zap.String("bucket", s3cfg.BucketName), zap.String("prefix", s3cfg.Prefix))
		return NewS3Slot(s3cfg.Client, s3cfg.BucketName, s3cfg.Prefix), nopCloser, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

func openDB(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	if cfg.StorageBackend == config.BackendSQLite {
		return database.OpenSQLite(cfg.SQLitePath, log)
	}
	return database.OpenPostgres(ctx, cfg, log)
}
