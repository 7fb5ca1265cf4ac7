package config

import (
	"time"

	"github.com/copo888/storefront_app/storefront/internal/payutils"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	Server         string
	FrontEndDomain string
	Mysql          struct {
		Host       string
		Port       int
		DBName     string
		UserName   string
		Password   string
		DebugLevel string `json:",optional"`
	}
	RedisCache struct {
		RedisSentinelNode string `json:",optional"`
		RedisMasterName   string `json:",optional"`
		RedisDB           int    `json:",optional"`
		RedisHost         string `json:",optional"` // 單機 redis, 未設定 sentinel 時使用
	}
	ECPay ECPay
	Cart  struct {
		ExpireSeconds int `json:",default=604800"`
	}
	RedirectExpireSeconds int `json:",default=900"`
}

type ECPay struct {
	MerchantID       string `json:",optional"`
	HashKey          string `json:",optional"`
	HashIV           string `json:",optional"`
	PayUrl           string `json:",default=https://payment-stage.ecpay.com.tw/Cashier/AioCheckOut/V5"`
	QueryUrl         string `json:",default=https://payment-stage.ecpay.com.tw/Cashier/QueryTradeInfo/V5"`
	TradeNoPrefix    string `json:",default=TWC"`
	TradeDesc        string `json:",default=Taiwan Clay Online Purchase"`
	ItemNameFallback string `json:",default=台灣軟陶商品一批"`
	ChoosePayment    string `json:",default=ALL"`
	EncryptType      string `json:",default=1"`
	TimeZone         string `json:",default=Asia/Taipei"`
	WhiteList        string `json:",optional"` // 綠界回調IP白名單, 逗號分隔
}

func (e ECPay) Location() *time.Location {
	if loc, err := time.LoadLocation(e.TimeZone); err == nil && e.TimeZone != "" {
		return loc
	}
	return time.FixedZone("CST", 8*60*60)
}

func (e ECPay) Options() payutils.Options {
	return payutils.Options{
		MerchantID:       e.MerchantID,
		HashKey:          e.HashKey,
		HashIV:           e.HashIV,
		PayUrl:           e.PayUrl,
		TradeNoPrefix:    e.TradeNoPrefix,
		TradeDesc:        e.TradeDesc,
		ItemNameFallback: e.ItemNameFallback,
		ChoosePayment:    e.ChoosePayment,
		EncryptType:      e.EncryptType,
		Location:         e.Location(),
	}
}

// Validate 商店代號與金鑰必填
func (e ECPay) Validate() error {
	return e.Options().Validate()
}
