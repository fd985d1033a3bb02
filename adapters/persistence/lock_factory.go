package persistence

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// NewLockStore builds the submission lock backend chosen by lock.driver.
// The returned close func releases whatever connection the backend holds.
func NewLockStore(cfg config.Config, log logger.Logger) (contact.LockStore, func(), error) {
	log.Info("Initialize submission lock store", zap.String("driver", cfg.Lock.Driver))

	switch cfg.Lock.Driver {
	case config.LockDriverRedis:
		rdb, err := NewRedisClient(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisLockStore(rdb), func() { rdb.Close() }, nil
	case config.LockDriverSQLite:
		db, err := NewSQLiteDB(cfg.Lock.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		return NewSQLiteLockStore(db), func() { db.Close() }, nil
	case config.LockDriverMemory, "":
		return NewMemoryLockStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown lock driver %q", cfg.Lock.Driver)
	}
}
