package logic

import (
	"context"
	"time"

	"github.com/copo888/storefront_app/common/apimodel/bo"
	"github.com/copo888/storefront_app/common/constants"
	"github.com/copo888/storefront_app/common/errorx"
	"github.com/copo888/storefront_app/common/model"
	"github.com/copo888/storefront_app/common/responsex"
	"github.com/copo888/storefront_app/common/typesX"
	"github.com/copo888/storefront_app/common/utils"
	"github.com/copo888/storefront_app/storefront/internal/payutils"
	"github.com/copo888/storefront_app/storefront/internal/svc"
	"github.com/copo888/storefront_app/storefront/internal/types"
	"github.com/mitchellh/mapstructure"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

const (
	tradeStatusPaid   = "1"
	tradeStatusFailed = "10200095"
)

type PayOrderQueryLogic struct {
	logx.Logger
	ctx     context.Context
	svcCtx  *svc.ServiceContext
	traceID string
}

func NewPayOrderQueryLogic(ctx context.Context, svcCtx *svc.ServiceContext) PayOrderQueryLogic {
	return PayOrderQueryLogic{
		Logger:  logx.WithContext(ctx),
		ctx:     ctx,
		svcCtx:  svcCtx,
		traceID: trace.SpanContextFromContext(ctx).TraceID().String(),
	}
}

func (l *PayOrderQueryLogic) PayOrderQuery(req *types.PayOrderQueryRequest) (resp *types.PayOrderQueryResponse, err error) {

	logx.WithContext(l.ctx).Infof("Enter PayOrderQuery. PayOrderQueryRequest: %+v", req)

	orderModel := model.NewOrder(l.svcCtx.MyDB)
	order, err := orderModel.GetOrderByTradeNo(req.TradeNo)
	if err != nil {
		return
	}

	if req.Refresh && order.Status == constants.ORDER_STATUS_PROCESSING {
		if order, err = l.refresh(orderModel, order); err != nil {
			return
		}
	}

	return &types.PayOrderQueryResponse{
		TradeNo:        order.TradeNo,
		OrderStatus:    order.Status,
		TotalAmount:    order.TotalAmount,
		ItemName:       order.ItemName,
		ChannelOrderNo: order.ChannelOrderNo,
		PaymentType:    order.PaymentType,
		PaymentDate:    order.PaymentDate,
		RtnCode:        order.RtnCode,
		RtnMsg:         order.RtnMsg,
	}, nil
}

// refresh 向綠界 QueryTradeInfo 查詢並更新訂單
func (l *PayOrderQueryLogic) refresh(orderModel *model.Order, order typesX.Order) (typesX.Order, error) {
	ecpay := l.svcCtx.Config.ECPay
	if err := ecpay.Validate(); err != nil {
		return order, err
	}

	data := payutils.QueryTradeInfoValues(ecpay.MerchantID, order.TradeNo, ecpay.HashKey, ecpay.HashIV, time.Now())
	values, err := utils.SubmitForm(l.ctx, ecpay.QueryUrl, data)
	if err != nil {
		return order, err
	}
	channelResp := payutils.FlattenValues(values)

	//寫入交易日志
	if err := model.NewTxLog(l.svcCtx.MyDB).CreateTransactionLog(&typesX.TransactionLogData{
		OrderNo:        order.TradeNo,
		ChannelOrderNo: channelResp["TradeNo"],
		LogType:        constants.RESPONSE_FROM_CHANNEL,
		LogSource:      constants.API_ZF,
		Content:        channelResp,
		TraceId:        l.traceID,
	}); err != nil {
		logx.WithContext(l.ctx).Errorf("写入交易日志错误:%s", err)
	}

	if !payutils.VerifyCheckMacValue(channelResp, ecpay.HashKey, ecpay.HashIV) {
		return order, errorx.New(responsex.INVALID_SIGN)
	}

	var queryResp types.QueryTradeInfoResponse
	if err = mapstructure.Decode(channelResp, &queryResp); err != nil {
		return order, errorx.New(responsex.CHANNEL_REPLY_ERROR, err.Error())
	}
	if queryResp.MerchantTradeNo != order.TradeNo {
		return order, errorx.New(responsex.CHANNEL_REPLY_ERROR, "MerchantTradeNo: "+queryResp.MerchantTradeNo)
	}

	var orderStatus string
	switch queryResp.TradeStatus {
	case tradeStatusPaid:
		orderStatus = constants.ORDER_STATUS_SUCCESS
	case tradeStatusFailed:
		orderStatus = constants.ORDER_STATUS_FAIL
	default:
		// 尚未付款
		return order, nil
	}

	order, err = orderModel.UpdatePayResult(&bo.PayCallBackBO{
		PayOrderNo:     order.TradeNo,
		ChannelOrderNo: queryResp.TradeNo,
		OrderStatus:    orderStatus,
		OrderAmount:    order.TotalAmount,
		PaymentType:    queryResp.PaymentType,
		PaymentDate:    queryResp.PaymentDate,
		RtnCode:        queryResp.TradeStatus,
		CallbackTime:   time.Now().Format("20060102150405"),
	})
	if err != nil {
		return order, err
	}

	if order.Status == constants.ORDER_STATUS_SUCCESS && order.CartId != "" {
		if err := l.svcCtx.Carts.Delete(l.ctx, order.CartId); err != nil {
			logx.WithContext(l.ctx).Errorf("清空購物車失敗 cartId: %s, err: %s", order.CartId, err.Error())
		}
	}
	return order, nil
}
