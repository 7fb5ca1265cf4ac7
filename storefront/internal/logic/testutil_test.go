package logic

import (
	"context"
	"testing"

	"github.com/copo888/storefront_app/common/model"
	"github.com/copo888/storefront_app/storefront/internal/config"
	"github.com/copo888/storefront_app/storefront/internal/svc"
	"github.com/copo888/storefront_app/storefront/internal/types"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() config.Config {
	var c config.Config
	c.Server = "http://api.test"
	c.FrontEndDomain = "http://shop.test"
	c.ECPay = config.ECPay{
		MerchantID: "2000132",
		HashKey:    "5294y06JbISpM5x9",
		HashIV:     "v77hoKGq4kWxNNIS",
		PayUrl:     "https://payment-stage.ecpay.com.tw/Cashier/AioCheckOut/V5",
		QueryUrl:   "https://payment-stage.ecpay.com.tw/Cashier/QueryTradeInfo/V5",
		TimeZone:   "Asia/Taipei",
	}
	c.Cart.ExpireSeconds = 3600
	c.RedirectExpireSeconds = 900
	return c
}

func newTestServiceContext(t *testing.T, c config.Config) *svc.ServiceContext {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, model.Migrate(db))
	return svc.NewServiceContextWith(c, db, nil)
}

func fillCart(t *testing.T, svcCtx *svc.ServiceContext, cartId string) {
	l := NewCartLogic(context.Background(), svcCtx)
	_, err := l.AddItem(cartId, &types.CartAddRequest{ProductId: 1, VariantName: "M1", Quantity: 2})
	require.NoError(t, err)
	_, err = l.AddItem(cartId, &types.CartAddRequest{ProductId: 5, Quantity: 1})
	require.NoError(t, err)
}
