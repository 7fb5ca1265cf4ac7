package model

import (
	"errors"

	"github.com/copo888/storefront_app/common/apimodel/bo"
	"github.com/copo888/storefront_app/common/constants"
	"github.com/copo888/storefront_app/common/errorx"
	"github.com/copo888/storefront_app/common/responsex"
	"github.com/copo888/storefront_app/common/typesX"
	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

type Order struct {
	MyDB  *gorm.DB
	Table string
}

func NewOrder(mydb *gorm.DB, t ...string) *Order {
	table := "sf_orders"
	if len(t) > 0 {
		table = t[0]
	}
	return &Order{
		MyDB:  mydb,
		Table: table,
	}
}

func (o *Order) CreateOrder(order *typesX.Order) error {
	if order.Status == "" {
		order.Status = constants.ORDER_STATUS_PROCESSING
	}
	return o.MyDB.Table(o.Table).Create(order).Error
}

func (o *Order) GetOrderByTradeNo(tradeNo string) (order typesX.Order, err error) {
	if err = o.MyDB.Table(o.Table).
		Where("trade_no = ?", tradeNo).
		Take(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logx.Errorf("Order not found. TradeNo: %s", tradeNo)
			return order, errorx.New(responsex.ORDER_NUMBER_NOT_EXIST, tradeNo)
		}
		return order, errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
	}
	return
}

// UpdatePayResult 寫入渠道支付結果. 已成功的訂單不會被改回其他狀態
func (o *Order) UpdatePayResult(payResult *bo.PayCallBackBO) (order typesX.Order, err error) {
	if order, err = o.GetOrderByTradeNo(payResult.PayOrderNo); err != nil {
		return
	}
	if order.Status == constants.ORDER_STATUS_SUCCESS {
		return
	}

	updates := map[string]interface{}{
		"status":           payResult.OrderStatus,
		"channel_order_no": payResult.ChannelOrderNo,
		"payment_type":     payResult.PaymentType,
		"payment_date":     payResult.PaymentDate,
		"rtn_code":         payResult.RtnCode,
		"rtn_msg":          payResult.RtnMsg,
	}
	if err = o.MyDB.Table(o.Table).
		Where("id = ?", order.ID).
		Updates(updates).Error; err != nil {
		return order, errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
	}
	return o.GetOrderByTradeNo(payResult.PayOrderNo)
}
