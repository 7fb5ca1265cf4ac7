package kvstore

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/collection"
)

// MemoryStore 單機使用 (未設定 Redis 時及測試)
// 每個 MemoryStore 只有一種過期時間, 到期由 collection.Cache 的 timing wheel 清除
type MemoryStore struct {
	cache  *collection.Cache
	expire time.Duration
}

func NewMemoryStore(name string, expire time.Duration) (*MemoryStore, error) {
	cache, err := collection.NewCache(expire, collection.WithName(name))
	if err != nil {
		return nil, err
	}
	return &MemoryStore{cache: cache, expire: expire}, nil
}

func (s *MemoryStore) Expire() time.Duration {
	return s.expire
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	stored, ok := v.([]byte)
	if !ok {
		return nil, ErrNotFound
	}

	value := make([]byte, len(stored))
	copy(value, stored)
	return value, nil
}

// Set 忽略 ttl, 以建立時的 expire 為準
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s.cache.Set(key, stored)
	return nil
}

func (s *MemoryStore) Del(_ context.Context, key string) error {
	s.cache.Del(key)
	return nil
}
