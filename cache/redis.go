package cache

import (
	"fmt"
	"time"

	log "github.com/acikkaynak/housing-api-go/pkg/logger"
	"github.com/go-redis/redis"
	"go.uber.org/zap"
)

type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(addr, password string) *RedisRepository {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &RedisRepository{client: client}
}

func (repository *RedisRepository) Ping() error {
	if err := repository.client.Ping().Err(); err != nil {
		return fmt.Errorf("could not reach redis: %w", err)
	}
	return nil
}

func (repository *RedisRepository) SetKey(key string, value []byte, ttl time.Duration) {
	if err := repository.client.Set(key, value, ttl).Err(); err != nil {
		log.Logger().Warn("failed to set cache key", zap.String("key", key), zap.Error(err))
	}
}

func (repository *RedisRepository) Get(key string) ([]byte, bool) {
	data, err := repository.client.Get(key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Logger().Warn("failed to get cache key", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	return data, len(data) > 0
}

func (repository *RedisRepository) Delete(key string) error {
	return repository.client.Del(key).Err()
}

func (repository *RedisRepository) Prune() error {
	return repository.client.FlushDB().Err()
}

func (repository *RedisRepository) Close() error {
	return repository.client.Close()
}
