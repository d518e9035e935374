// Package storage picks the durable store backend named by the configuration.
package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	dbadapter "tasktracker/internal/adapter/db"
	"tasktracker/internal/adapter/kv"
	"tasktracker/internal/config"
	"tasktracker/internal/core/ports"
)

// Store is a durable store that must be closed on shutdown.
type Store interface {
	ports.KVStore
	ports.Pinger
	Close() error
}

type memoryStore struct {
	*kv.MemoryStore
}

func (memoryStore) Close() error { return nil }

type sqlStore struct {
	*dbadapter.KVRepository
	close func() error
}

func (s sqlStore) Close() error { return s.close() }

// Open returns the backend selected by cfg.StoreBackend.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Store, error) {
	switch cfg.StoreBackend {
	case config.BackendBadger, "":
		badgerCfg := kv.DefaultBadgerConfig(cfg.BadgerPath)
		badgerCfg.Logger = logger
		store, err := kv.OpenBadger(badgerCfg)
		if err != nil {
			return nil, err
		}
		logger.Info("using badger store", zap.String("path", cfg.BadgerPath))
		return store, nil

	case config.BackendRedis:
		store, err := kv.OpenRedis(ctx, kv.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("using redis store", zap.String("addr", cfg.RedisAddr), zap.String("prefix", cfg.RedisPrefix))
		return store, nil

	case config.BackendMySQL:
		db, err := dbadapter.ConnectDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("using mysql store", zap.String("host", cfg.DbHost), zap.String("database", cfg.DbName))
		return sqlStore{KVRepository: dbadapter.NewKVRepository(db), close: db.Close}, nil

	case config.BackendMemory:
		logger.Warn("using in-memory store, data will not survive a restart")
		return memoryStore{MemoryStore: kv.NewMemoryStore()}, nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
