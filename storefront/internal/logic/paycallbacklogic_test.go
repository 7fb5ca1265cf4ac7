package logic

import (
	"context"
	"testing"

	"github.com/copo888/storefront_app/common/constants"
	"github.com/copo888/storefront_app/common/errorx"
	"github.com/copo888/storefront_app/common/model"
	"github.com/copo888/storefront_app/common/responsex"
	"github.com/copo888/storefront_app/storefront/internal/payutils"
	"github.com/copo888/storefront_app/storefront/internal/svc"
	"github.com/copo888/storefront_app/storefront/internal/types"
	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkout(t *testing.T, svcCtx *svc.ServiceContext, cartId string) *types.PayOrderResponse {
	fillCart(t, svcCtx, cartId)
	l := NewPayOrderLogic(context.Background(), svcCtx)
	resp, err := l.PayOrder(cartId, &types.PayOrderRequest{JumpType: "json"}, "")
	require.NoError(t, err)
	return resp
}

func signedCallBack(t *testing.T, svcCtx *svc.ServiceContext, tradeNo, amount, rtnCode string) *types.PayCallBackRequest {
	raw := map[string]string{
		"MerchantID":           "2000132",
		"MerchantTradeNo":      tradeNo,
		"StoreID":              "",
		"RtnCode":              rtnCode,
		"RtnMsg":               "交易成功",
		"TradeNo":              "2401021104051234",
		"TradeAmt":             amount,
		"PaymentDate":          "2024/01/02 11:05:00",
		"PaymentType":          "Credit_CreditCard",
		"PaymentTypeChargeFee": "6",
		"TradeDate":            "2024/01/02 11:04:05",
		"SimulatePaid":         "0",
		"CustomField1":         "",
	}
	raw[payutils.CheckMacValueKey] = payutils.GenerateCheckMacValue(raw, svcCtx.Config.ECPay.HashKey, svcCtx.Config.ECPay.HashIV)

	var req types.PayCallBackRequest
	require.NoError(t, mapstructure.Decode(raw, &req))
	req.Raw = raw
	req.MyIp = "175.99.72.1"
	return &req
}

func TestPayCallBackSuccessClearsCart(t *testing.T) {
	svcCtx := newTestServiceContext(t, testConfig())
	order := checkout(t, svcCtx, "c1")

	l := NewPayCallBackLogic(context.Background(), svcCtx)
	resp, err := l.PayCallBack(signedCallBack(t, svcCtx, order.TradeNo, "280", "1"))
	require.NoError(t, err)
	assert.Equal(t, CallBackReplyOK, resp)

	saved, err := model.NewOrder(svcCtx.MyDB).GetOrderByTradeNo(order.TradeNo)
	require.NoError(t, err)
	assert.Equal(t, constants.ORDER_STATUS_SUCCESS, saved.Status)
	assert.Equal(t, "2401021104051234", saved.ChannelOrderNo)
	assert.Equal(t, "Credit_CreditCard", saved.PaymentType)

	c, err := svcCtx.Carts.Load(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	logs, err := model.NewTxLog(svcCtx.MyDB).ListByOrderNo(order.TradeNo)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, constants.CALLBACK_FROM_CHANNEL, logs[2].LogType)
}

func TestPayCallBackFailureKeepsCart(t *testing.T) {
	svcCtx := newTestServiceContext(t, testConfig())
	order := checkout(t, svcCtx, "c1")

	l := NewPayCallBackLogic(context.Background(), svcCtx)
	resp, err := l.PayCallBack(signedCallBack(t, svcCtx, order.TradeNo, "280", "10100248"))
	require.NoError(t, err)
	assert.Equal(t, CallBackReplyOK, resp)

	saved, err := model.NewOrder(svcCtx.MyDB).GetOrderByTradeNo(order.TradeNo)
	require.NoError(t, err)
	assert.Equal(t, constants.ORDER_STATUS_FAIL, saved.Status)

	c, err := svcCtx.Carts.Load(context.Background(), "c1")
	require.NoError(t, err)
	assert.False(t, c.IsEmpty())
}

func TestPayCallBackRejects(t *testing.T) {
	svcCtx := newTestServiceContext(t, testConfig())
	order := checkout(t, svcCtx, "c1")
	l := NewPayCallBackLogic(context.Background(), svcCtx)

	tampered := signedCallBack(t, svcCtx, order.TradeNo, "280", "1")
	tampered.Raw["TradeAmt"] = "1"
	_, err := l.PayCallBack(tampered)
	assert.Equal(t, responsex.INVALID_SIGN, errorx.CodeOf(err, ""))

	_, err = l.PayCallBack(signedCallBack(t, svcCtx, order.TradeNo, "279", "1"))
	assert.Equal(t, responsex.INVALID_PARAMETER, errorx.CodeOf(err, ""))

	_, err = l.PayCallBack(signedCallBack(t, svcCtx, "TWC0", "280", "1"))
	assert.Equal(t, responsex.ORDER_NUMBER_NOT_EXIST, errorx.CodeOf(err, ""))

	otherMerchant := signedCallBack(t, svcCtx, order.TradeNo, "280", "1")
	otherMerchant.MerchantID = "3002607"
	_, err = l.PayCallBack(otherMerchant)
	assert.Equal(t, responsex.INVALID_PARAMETER, errorx.CodeOf(err, ""))

	saved, err := model.NewOrder(svcCtx.MyDB).GetOrderByTradeNo(order.TradeNo)
	require.NoError(t, err)
	assert.Equal(t, constants.ORDER_STATUS_PROCESSING, saved.Status)

	// 每次拒絕都留下錯誤日志
	logs, err := model.NewTxLog(svcCtx.MyDB).ListByOrderNo(order.TradeNo)
	require.NoError(t, err)
	var errCodes []string
	for _, row := range logs {
		if row.LogType == constants.ERROR_MSG {
			errCodes = append(errCodes, row.ErrorCode)
		}
	}
	assert.Equal(t, []string{responsex.INVALID_SIGN, responsex.INVALID_PARAMETER, responsex.INVALID_PARAMETER}, errCodes)
	assert.Contains(t, logs[len(logs)-1].ErrorMsg, "3002607")
}

func TestPayCallBackWhiteList(t *testing.T) {
	c := testConfig()
	c.ECPay.WhiteList = "175.99.72.0/24"
	svcCtx := newTestServiceContext(t, c)
	order := checkout(t, svcCtx, "c1")
	l := NewPayCallBackLogic(context.Background(), svcCtx)

	req := signedCallBack(t, svcCtx, order.TradeNo, "280", "1")
	req.MyIp = "8.8.8.8"
	_, err := l.PayCallBack(req)
	assert.Equal(t, responsex.IP_DENIED, errorx.CodeOf(err, ""))

	resp, err := l.PayCallBack(signedCallBack(t, svcCtx, order.TradeNo, "280", "1"))
	require.NoError(t, err)
	assert.Equal(t, CallBackReplyOK, resp)
}
