package svc

import (
	"fmt"
	"strings"
	"time"

	"github.com/copo888/storefront_app/common/kvstore"
	"github.com/copo888/storefront_app/common/model"
	"github.com/copo888/storefront_app/storefront/internal/cart"
	"github.com/copo888/storefront_app/storefront/internal/catalog"
	"github.com/copo888/storefront_app/storefront/internal/config"
	"github.com/copo888/storefront_app/storefront/internal/payutils"
	"github.com/go-redis/redis/v8"
	"github.com/neccoys/go-driver/mysqlx"
	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

type ServiceContext struct {
	Config      config.Config
	RedisClient *redis.Client
	MyDB        *gorm.DB
	Cache       kvstore.Store // 付款跳轉表單暫存
	Catalog     *catalog.Catalog
	Carts       *cart.Store
	Assembler   *payutils.Assembler
}

func NewServiceContext(c config.Config) *ServiceContext {
	// Redis
	var redisCache *redis.Client
	if c.RedisCache.RedisSentinelNode != "" {
		redisCache = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    c.RedisCache.RedisMasterName,
			SentinelAddrs: strings.Split(c.RedisCache.RedisSentinelNode, ";"),
			DB:            c.RedisCache.RedisDB,
		})
	} else if c.RedisCache.RedisHost != "" {
		redisCache = redis.NewClient(&redis.Options{
			Addr: c.RedisCache.RedisHost,
			DB:   c.RedisCache.RedisDB,
		})
	}

	// DB
	db, err := mysqlx.New(c.Mysql.Host, fmt.Sprintf("%d", c.Mysql.Port), c.Mysql.UserName, c.Mysql.Password, c.Mysql.DBName).
		SetCharset("utf8mb4").
		SetLoc("UTC").
		Connect(mysqlx.Pool(50, 100, 180))

	if err != nil {
		panic(err)
	}
	if err = model.Migrate(db); err != nil {
		panic(err)
	}

	if err = c.ECPay.Validate(); err != nil {
		logx.Errorf("ECPay 設定不完整, 結帳將被拒絕: %s", err.Error())
	}

	return NewServiceContextWith(c, db, redisCache)
}

// NewServiceContextWith 未提供 redis 時改用記憶體暫存, 購物車與付款表單各自一個 cache
func NewServiceContextWith(c config.Config, db *gorm.DB, redisClient *redis.Client) *ServiceContext {
	cartTTL := time.Duration(c.Cart.ExpireSeconds) * time.Second
	redirectTTL := time.Duration(c.RedirectExpireSeconds) * time.Second

	var cartCache, redirectCache kvstore.Store
	if redisClient != nil {
		store := kvstore.NewRedisStore(redisClient)
		cartCache, redirectCache = store, store
	} else {
		logx.Info("未設定 Redis, 購物車與付款表單改用記憶體暫存")
		carts, err := kvstore.NewMemoryStore("cart", cartTTL)
		logx.Must(err)
		redirects, err := kvstore.NewMemoryStore("payRedirect", redirectTTL)
		logx.Must(err)
		cartCache, redirectCache = carts, redirects
	}

	return &ServiceContext{
		Config:      c,
		RedisClient: redisClient,
		MyDB:        db,
		Cache:       redirectCache,
		Catalog:     catalog.Default(),
		Carts:       cart.NewStore(cartCache, cartTTL),
		Assembler:   payutils.NewAssembler(c.ECPay.Options()),
	}
}
