package logic

import (
	"context"
	"strconv"
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
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

const (
	CallBackReplyOK = "1|OK"
	ecpayRtnSuccess = "1"
)

type PayCallBackLogic struct {
	logx.Logger
	ctx     context.Context
	svcCtx  *svc.ServiceContext
	traceID string
}

func NewPayCallBackLogic(ctx context.Context, svcCtx *svc.ServiceContext) PayCallBackLogic {
	return PayCallBackLogic{
		Logger:  logx.WithContext(ctx),
		ctx:     ctx,
		svcCtx:  svcCtx,
		traceID: trace.SpanContextFromContext(ctx).TraceID().String(),
	}
}

func (l *PayCallBackLogic) PayCallBack(req *types.PayCallBackRequest) (resp string, err error) {

	logx.WithContext(l.ctx).Infof("Enter PayCallBack. PayCallBackRequest: %+v", req)
	ecpay := l.svcCtx.Config.ECPay

	//寫入交易日志
	if err := model.NewTxLog(l.svcCtx.MyDB).CreateTransactionLog(&typesX.TransactionLogData{
		OrderNo:        req.MerchantTradeNo,
		ChannelOrderNo: req.TradeNo,
		LogType:        constants.CALLBACK_FROM_CHANNEL,
		LogSource:      constants.API_ZF,
		Content:        req.Raw,
		TraceId:        l.traceID,
	}); err != nil {
		logx.WithContext(l.ctx).Errorf("写入交易日志错误:%s", err)
	}

	defer func() {
		if err != nil {
			l.writeErrorLog(req, err)
		}
	}()

	// 檢查白名單
	if isWhite := utils.IPChecker(req.MyIp, ecpay.WhiteList); !isWhite {
		return "fail", errorx.New(responsex.IP_DENIED, "IP: "+req.MyIp)
	}

	if req.MerchantID != ecpay.MerchantID {
		return "fail", errorx.New(responsex.INVALID_PARAMETER, "MerchantID: "+req.MerchantID)
	}

	// 檢查驗簽
	if isSameSign := payutils.VerifyCheckMacValue(req.Raw, ecpay.HashKey, ecpay.HashIV); !isSameSign {
		return "fail", errorx.New(responsex.INVALID_SIGN)
	}

	orderModel := model.NewOrder(l.svcCtx.MyDB)
	order, err := orderModel.GetOrderByTradeNo(req.MerchantTradeNo)
	if err != nil {
		return "fail", err
	}

	orderAmount, err := strconv.ParseInt(req.TradeAmt, 10, 64)
	if err != nil || orderAmount != order.TotalAmount {
		logx.WithContext(l.ctx).Errorf("回調金額不符 tradeNo: %s, TradeAmt: %s, 訂單金額: %d", req.MerchantTradeNo, req.TradeAmt, order.TotalAmount)
		return "fail", errorx.New(responsex.INVALID_PARAMETER, "TradeAmt: "+req.TradeAmt)
	}

	if req.SimulatePaid == "1" {
		logx.WithContext(l.ctx).Infof("模擬付款回調 tradeNo: %s", req.MerchantTradeNo)
	}

	orderStatus := constants.ORDER_STATUS_FAIL
	if req.RtnCode == ecpayRtnSuccess {
		orderStatus = constants.ORDER_STATUS_SUCCESS
	}

	if order, err = orderModel.UpdatePayResult(&bo.PayCallBackBO{
		PayOrderNo:     req.MerchantTradeNo,
		ChannelOrderNo: req.TradeNo,
		OrderStatus:    orderStatus,
		OrderAmount:    orderAmount,
		PaymentType:    req.PaymentType,
		PaymentDate:    req.PaymentDate,
		RtnCode:        req.RtnCode,
		RtnMsg:         req.RtnMsg,
		CallbackTime:   time.Now().Format("20060102150405"),
	}); err != nil {
		return "fail", err
	}

	// 付款成功後清空購物車
	if order.Status == constants.ORDER_STATUS_SUCCESS && order.CartId != "" {
		if err := l.svcCtx.Carts.Delete(l.ctx, order.CartId); err != nil {
			logx.WithContext(l.ctx).Errorf("清空購物車失敗 cartId: %s, err: %s", order.CartId, err.Error())
		}
	}

	return CallBackReplyOK, nil
}

// writeErrorLog 回調被拒時記錄錯誤代碼
func (l *PayCallBackLogic) writeErrorLog(req *types.PayCallBackRequest, err error) {
	errMsg := err.Error()
	if e, ok := err.(*errorx.Err); ok {
		errMsg = e.Message()
	}
	if errLog := model.NewTxLog(l.svcCtx.MyDB).CreateTransactionLog(&typesX.TransactionLogData{
		OrderNo:        req.MerchantTradeNo,
		ChannelOrderNo: req.TradeNo,
		LogType:        constants.ERROR_MSG,
		LogSource:      constants.API_ZF,
		Content:        req.Raw,
		ErrCode:        errorx.CodeOf(err, responsex.GENERAL_EXCEPTION),
		ErrMsg:         errMsg,
		TraceId:        l.traceID,
	}); errLog != nil {
		logx.WithContext(l.ctx).Errorf("写入交易日志错误:%s", errLog)
	}
}
