package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/copo888/storefront_app/common/apimodel/vo"
	"github.com/copo888/storefront_app/common/errorx"
	"github.com/copo888/storefront_app/common/model"
	"github.com/copo888/storefront_app/common/responsex"
	"github.com/copo888/storefront_app/storefront/internal/config"
	"github.com/copo888/storefront_app/storefront/internal/payutils"
	"github.com/copo888/storefront_app/storefront/internal/svc"
	"github.com/copo888/storefront_app/storefront/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServiceContext(t *testing.T) *svc.ServiceContext {
	var c config.Config
	c.Server = "http://api.test"
	c.FrontEndDomain = "http://shop.test"
	c.ECPay = config.ECPay{
		MerchantID: "2000132",
		HashKey:    "5294y06JbISpM5x9",
		HashIV:     "v77hoKGq4kWxNNIS",
		PayUrl:     "https://payment-stage.ecpay.com.tw/Cashier/AioCheckOut/V5",
		TimeZone:   "Asia/Taipei",
	}
	c.Cart.ExpireSeconds = 3600
	c.RedirectExpireSeconds = 900

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

func postJson(h http.HandlerFunc, path, cartId, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if cartId != "" {
		r.Header.Set(types.CartIdHeader, cartId)
	}
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func decodeResp(t *testing.T, w *httptest.ResponseRecorder, data interface{}) vo.RespVO {
	resp := vo.RespVO{Data: data}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	HealthHandler(newTestServiceContext(t))(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, responsex.SUCCESS, decodeResp(t, w, nil).Code)
}

func TestProductHandlers(t *testing.T) {
	svcCtx := newTestServiceContext(t)

	w := httptest.NewRecorder()
	ProductListHandler(svcCtx)(w, httptest.NewRequest(http.MethodGet, "/api/products?lang=en&category=Polymer+Clay", nil))
	var list types.ProductListResponse
	resp := decodeResp(t, w, &list)
	assert.Equal(t, responsex.SUCCESS, resp.Code)
	assert.Len(t, list.Products, 3)
	assert.Equal(t, "Polymer Clay 50g", list.Products[0].DisplayName)

	w = httptest.NewRecorder()
	ProductHandler(svcCtx)(w, httptest.NewRequest(http.MethodGet, "/api/product?id=99&lang=en", nil))
	resp = decodeResp(t, w, nil)
	assert.Equal(t, responsex.PRODUCT_NOT_FOUND, resp.Code)
	assert.Contains(t, resp.Message, "Product not found")
}

func TestCartAddHandlerAssignsCartId(t *testing.T) {
	svcCtx := newTestServiceContext(t)

	w := postJson(CartAddHandler(svcCtx), "/api/cart/add", "", `{"productId":1,"variantName":"M1","quantity":2}`)
	cartId := w.Header().Get(types.CartIdHeader)
	assert.NotEmpty(t, cartId)

	var cart types.CartResponse
	resp := decodeResp(t, w, &cart)
	assert.Equal(t, responsex.SUCCESS, resp.Code)
	assert.Equal(t, cartId, cart.CartId)
	assert.Equal(t, "170", cart.Total)

	w = postJson(CartAddHandler(svcCtx), "/api/cart/add", cartId, `{"productId":1,"variantName":"M1"}`)
	resp = decodeResp(t, w, &cart)
	assert.Equal(t, 3, cart.ItemCount)
}

func TestCartAddHandlerValidation(t *testing.T) {
	svcCtx := newTestServiceContext(t)

	w := postJson(CartAddHandler(svcCtx), "/api/cart/add?lang=en", "c1", `{"productId":0}`)
	resp := decodeResp(t, w, nil)
	assert.Equal(t, responsex.INVALID_PARAMETER, resp.Code)
	assert.Contains(t, resp.Message, "productId")
}

func TestPayOrderHandlerHtml(t *testing.T) {
	svcCtx := newTestServiceContext(t)
	postJson(CartAddHandler(svcCtx), "/api/cart/add", "c1", `{"productId":4,"quantity":1}`)

	w := postJson(PayOrderHandler(svcCtx), "/api/pay-order", "c1", `{"jumpType":"html"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `name="TotalAmount" value="150"`)
}

func TestPayOrderHandlerEmptyCart(t *testing.T) {
	w := postJson(PayOrderHandler(newTestServiceContext(t)), "/api/pay-order", "c1", `{"jumpType":"json"}`)
	assert.Equal(t, responsex.CART_EMPTY, decodeResp(t, w, nil).Code)
}

func TestPayCallBackHandler(t *testing.T) {
	svcCtx := newTestServiceContext(t)
	postJson(CartAddHandler(svcCtx), "/api/cart/add", "c1", `{"productId":5,"quantity":2}`)

	var order types.PayOrderResponse
	decodeResp(t, postJson(PayOrderHandler(svcCtx), "/api/pay-order", "c1", `{"jumpType":"json"}`), &order)
	require.NotEmpty(t, order.TradeNo)

	params := map[string]string{
		"MerchantID":      "2000132",
		"MerchantTradeNo": order.TradeNo,
		"RtnCode":         "1",
		"RtnMsg":          "交易成功",
		"TradeNo":         "2401021104051234",
		"TradeAmt":        "220",
		"PaymentType":     "Credit_CreditCard",
		"SimulatePaid":    "0",
	}
	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}

	post := func(values url.Values) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/api/pay-call-back", strings.NewReader(values.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		PayCallBackHandler(svcCtx)(w, r)
		return w
	}

	form.Set(payutils.CheckMacValueKey, "0000")
	assert.True(t, strings.HasPrefix(post(form).Body.String(), "0|"+responsex.INVALID_SIGN))

	form.Set(payutils.CheckMacValueKey, payutils.GenerateCheckMacValue(params, "5294y06JbISpM5x9", "v77hoKGq4kWxNNIS"))
	assert.Equal(t, "1|OK", post(form).Body.String())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	r.Header.Set(types.CartIdHeader, "c1")
	CartHandler(svcCtx)(w, r)
	var cart types.CartResponse
	decodeResp(t, w, &cart)
	assert.Empty(t, cart.Items)
}

func TestPayRedirectHandlerExpired(t *testing.T) {
	w := httptest.NewRecorder()
	PayRedirectHandler(newTestServiceContext(t))(w, httptest.NewRequest(http.MethodGet, "/api/pay-redirect?tradeNo=TWC1", nil))
	assert.Equal(t, responsex.REDIRECT_EXPIRED, decodeResp(t, w, nil).Code)
}

func TestWriteCallBackReply(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/pay-call-back", nil)

	w := httptest.NewRecorder()
	writeCallBackReply(w, r, errorx.New(responsex.INVALID_SIGN, "CheckMacValue"))
	assert.Equal(t, "0|"+responsex.INVALID_SIGN+" CheckMacValue", w.Body.String())

	// 非業務錯誤不外露內部訊息
	w = httptest.NewRecorder()
	writeCallBackReply(w, r, errors.New("dial tcp 10.0.0.1:3306: connection refused"))
	assert.Equal(t, "0|"+responsex.GENERAL_EXCEPTION, w.Body.String())
}
