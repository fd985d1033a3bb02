package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

const lockKeyPrefix = "contact:submitted:"

type redisLockStore struct {
	rdb redis.Cmdable
}

func NewRedisLockStore(rdb redis.Cmdable) contact.LockStore {
	return &redisLockStore{rdb: rdb}
}

func (s *redisLockStore) Get(ctx context.Context, key string) (contact.State, error) {
	err := s.rdb.Get(ctx, lockKeyPrefix+key).Err()
	if errors.Is(err, redis.Nil) {
		return contact.NotSubmitted, nil
	}
	if err != nil {
		return contact.NotSubmitted, apperror.NewInternal("failed to read submission lock", err)
	}
	return contact.Submitted, nil
}

// Set stores Submitted without expiry; NotSubmitted removes the key.
func (s *redisLockStore) Set(ctx context.Context, key string, state contact.State) error {
	var err error
	if state == contact.Submitted {
		err = s.rdb.Set(ctx, lockKeyPrefix+key, "1", 0).Err()
	} else {
		err = s.rdb.Del(ctx, lockKeyPrefix+key).Err()
	}
	if err != nil {
		return apperror.NewInternal("failed to write submission lock", err)
	}
	return nil
}
