package database

import (
	"context"
	"fmt"

	"shiftmatch/config"
	"shiftmatch/internal/kvstore"
	"shiftmatch/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OpenStore opens the key-value backend selected by cfg.Storage.Backend.
func OpenStore(ctx context.Context, cfg *config.Config, log logger.Logger) (kvstore.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		log.Warn("Using in-memory storage; data is lost on restart", nil)
		return kvstore.NewMemoryStore(), nil
	case config.BackendRedis:
		rdb, err := NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.Info("Connected to Redis", map[string]interface{}{"addr": cfg.Redis.Addr, "db": cfg.Redis.DB})
		return kvstore.NewRedisStore(rdb, cfg.Redis.KeyPrefix), nil
	case config.BackendSQLite:
		store, err := kvstore.OpenSQLite(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info("Opened SQLite storage", map[string]interface{}{"path": cfg.Storage.SQLitePath})
		return store, nil
	case config.BackendPostgres:
		pool, err := NewConnectionPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		store, err := kvstore.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		log.Info("Connected to PostgreSQL", postgresLogFields(pool.Config()))
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// postgresLogFields names the server actually dialled, which is the DSN's when db.url is set.
func postgresLogFields(cfg *pgxpool.Config) map[string]interface{} {
	conn := cfg.ConnConfig
	return map[string]interface{}{"host": conn.Host, "port": conn.Port, "db": conn.Database}
}
