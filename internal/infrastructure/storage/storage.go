// Package storage implementa o armazenamento de avatares (ports.AvatarStorage).
package storage

import (
	"context"
	"fmt"

	"github.com/fcamara/consultores-api/internal/domain/ports"
	"github.com/fcamara/consultores-api/internal/infrastructure/config"
)

// New escolhe a implementação conforme STORAGE_DRIVER
func New(ctx context.Context, cfg *config.StorageConfig, log ports.Logger) (ports.AvatarStorage, error) {
	switch cfg.Driver {
	case config.StorageDriverS3:
		client, err := NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Info("avatar storage initialized", "driver", cfg.Driver, "bucket", cfg.Bucket)
		return NewS3Store(client, cfg.Bucket, cfg.PublicBaseURL), nil
	case config.StorageDriverDisk:
		store, err := NewDiskStore(cfg.DataDir, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		log.Info("avatar storage initialized", "driver", cfg.Driver, "data_dir", cfg.DataDir)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
