package kvstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T, expire time.Duration) *MemoryStore {
	s, err := NewMemoryStore(t.Name(), expire)
	require.NoError(t, err)
	return s
}

func TestMemoryStoreSetGetDel(t *testing.T) {
	s := newMemoryStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))

	value, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)

	require.NoError(t, s.Del(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreEvictsExpiredEntries(t *testing.T) {
	s := newMemoryStore(t, 2*time.Second)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		require.NoError(t, s.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), 0))
	}
	_, err := s.Get(ctx, "k0")
	require.NoError(t, err)

	// collection.Cache 讀取時不會刪除, 查不到表示已被 timing wheel 清除
	assert.Eventually(t, func() bool {
		for i := 0; i < 1000; i++ {
			if _, ok := s.cache.Get(fmt.Sprintf("k%d", i)); ok {
				return false
			}
		}
		return true
	}, 10*time.Second, 200*time.Millisecond)

	require.NoError(t, s.Set(ctx, "fresh", []byte("v"), 0))
	_, err = s.Get(ctx, "fresh")
	assert.NoError(t, err)
	_, err = s.Get(ctx, "k999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := newMemoryStore(t, time.Minute)
	ctx := context.Background()
	original := []byte("abc")

	require.NoError(t, s.Set(ctx, "k", original, 0))
	original[0] = 'x'

	value, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)

	value[1] = 'y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryStoreExpire(t *testing.T) {
	assert.Equal(t, 15*time.Minute, newMemoryStore(t, 15*time.Minute).Expire())
}
