package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/copo888/storefront_app/common/constants/redisKey"
	"github.com/copo888/storefront_app/common/errorx"
	"github.com/copo888/storefront_app/common/kvstore"
	"github.com/copo888/storefront_app/common/responsex"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/syncx"
)

// Store 購物車的存取邊界, 由呼叫端明確 Load / Save
type Store struct {
	kv    kvstore.Store
	ttl   time.Duration
	locks syncx.LockedCalls
	now   func() time.Time
}

func NewStore(kv kvstore.Store, ttl time.Duration) *Store {
	return &Store{
		kv:    kv,
		ttl:   ttl,
		locks: syncx.NewLockedCalls(),
		now:   time.Now,
	}
}

func key(id string) string {
	return redisKey.CACHE_CART_DATA + id
}

// Load 不存在或內容損毀時回傳空購物車
func (s *Store) Load(ctx context.Context, id string) (*Cart, error) {
	data, err := s.kv.Get(ctx, key(id))
	if errors.Is(err, kvstore.ErrNotFound) {
		return New(id), nil
	} else if err != nil {
		return nil, errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
	}

	c := New(id)
	if err = json.Unmarshal(data, c); err != nil {
		logx.WithContext(ctx).Errorf("購物車資料損毀, cartId: %s, err: %s", id, err.Error())
		return New(id), nil
	}
	c.Id = id
	if c.Items == nil {
		c.Items = []Item{}
	}
	return c, nil
}

func (s *Store) Save(ctx context.Context, c *Cart) error {
	c.UpdatedAt = s.now().UTC()
	data, err := json.Marshal(c)
	if err != nil {
		return errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
	}
	if err = s.kv.Set(ctx, key(c.Id), data, s.ttl); err != nil {
		return errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.kv.Del(ctx, key(id)); err != nil {
		return errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
	}
	return nil
}

// Update 同一購物車的 load -> fn -> save 依序執行
func (s *Store) Update(ctx context.Context, id string, fn func(c *Cart) error) (*Cart, error) {
	v, err := s.locks.Do(id, func() (interface{}, error) {
		c, err := s.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		if err = fn(c); err != nil {
			return nil, err
		}
		if err = s.Save(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Cart), nil
}
