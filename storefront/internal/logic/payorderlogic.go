package logic

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/copo888/storefront_app/common/constants"
	"github.com/copo888/storefront_app/common/constants/redisKey"
	"github.com/copo888/storefront_app/common/errorx"
	"github.com/copo888/storefront_app/common/model"
	"github.com/copo888/storefront_app/common/responsex"
	"github.com/copo888/storefront_app/common/typesX"
	"github.com/copo888/storefront_app/storefront/internal/catalog"
	"github.com/copo888/storefront_app/storefront/internal/payutils"
	"github.com/copo888/storefront_app/storefront/internal/svc"
	"github.com/copo888/storefront_app/storefront/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

type PayOrderLogic struct {
	logx.Logger
	ctx     context.Context
	svcCtx  *svc.ServiceContext
	traceID string
}

func NewPayOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) PayOrderLogic {
	return PayOrderLogic{
		Logger:  logx.WithContext(ctx),
		ctx:     ctx,
		svcCtx:  svcCtx,
		traceID: trace.SpanContextFromContext(ctx).TraceID().String(),
	}
}

func (l *PayOrderLogic) PayOrder(cartId string, req *types.PayOrderRequest, acceptLanguage string) (resp *types.PayOrderResponse, err error) {

	logx.WithContext(l.ctx).Infof("Enter PayOrder. cartId: %s, PayOrderRequest: %+v", cartId, req)

	// 金流設定檢查
	if err = l.svcCtx.Config.ECPay.Validate(); err != nil {
		logx.WithContext(l.ctx).Errorf("ECPay 設定不完整: %s", err.Error())
		return
	}

	c, err := l.svcCtx.Carts.Load(l.ctx, cartId)
	if err != nil {
		return
	}
	if c.IsEmpty() {
		return nil, errorx.New(responsex.CART_EMPTY, cartId)
	}

	lang := catalog.ParseLanguage(req.Lang, acceptLanguage)
	items := make([]payutils.LineItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, payutils.LineItem{
			Names:       item.ProductName.Map(),
			VariantName: item.VariantName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	// 取值
	returnUrl := l.svcCtx.Config.Server + "/api/pay-call-back"
	clientBackUrl := req.ClientBackUrl
	if clientBackUrl == "" {
		clientBackUrl = l.svcCtx.Config.FrontEndDomain
	}

	payReq, err := l.svcCtx.Assembler.Build(&payutils.CheckoutInput{
		Items:          items,
		TotalAmount:    c.Total(),
		Lang:           string(lang),
		ReturnURL:      returnUrl,
		ClientBackURL:  clientBackUrl,
		OrderResultURL: clientBackUrl,
	})
	if err != nil {
		return
	}

	totalAmount, _ := strconv.ParseInt(payReq.TotalAmount, 10, 64)
	if err = model.NewOrder(l.svcCtx.MyDB).CreateOrder(&typesX.Order{
		TradeNo:       payReq.TradeNo,
		CartId:        cartId,
		Lang:          string(lang),
		TotalAmount:   totalAmount,
		ItemName:      payReq.ItemName,
		TradeDate:     payReq.TradeDate,
		ChoosePayment: payReq.Params["ChoosePayment"],
		Status:        constants.ORDER_STATUS_PROCESSING,
	}); err != nil {
		logx.WithContext(l.ctx).Errorf("建立訂單錯誤: %s", err.Error())
		return nil, errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
	}

	//寫入交易日志
	txLog := model.NewTxLog(l.svcCtx.MyDB)
	if err := txLog.CreateTransactionLog(&typesX.TransactionLogData{
		OrderNo:   payReq.TradeNo,
		LogType:   constants.CHECKOUT_REQUEST,
		LogSource: constants.STOREFRONT,
		Content: map[string]interface{}{
			"cartId":         cartId,
			"request":        req,
			"acceptLanguage": acceptLanguage,
			"items":          c.Items,
		},
		TraceId: l.traceID,
	}); err != nil {
		logx.WithContext(l.ctx).Errorf("写入交易日志错误:%s", err)
	}
	if err := txLog.CreateTransactionLog(&typesX.TransactionLogData{
		OrderNo:   payReq.TradeNo,
		LogType:   constants.DATA_REQUEST_CHANNEL,
		LogSource: constants.STOREFRONT,
		Content:   payReq.Fields(),
		TraceId:   l.traceID,
	}); err != nil {
		logx.WithContext(l.ctx).Errorf("写入交易日志错误:%s", err)
	}

	logx.WithContext(l.ctx).Infof("支付下单请求地址:%s,支付請求參數:%+v", payReq.Action, payReq.Fields())

	resp = &types.PayOrderResponse{
		TradeNo:     payReq.TradeNo,
		TotalAmount: payReq.TotalAmount,
	}

	switch req.JumpType {
	case "json":
		resp.PayPageType = "json"
		resp.PayPageInfo = payReq.Action
		resp.Action = payReq.Action
		resp.Fields = payReq.Fields()
	case "url":
		html, errRender := payutils.RenderForm(payReq)
		if errRender != nil {
			return nil, errorx.New(responsex.GENERAL_EXCEPTION, errRender.Error())
		}
		expire := time.Duration(l.svcCtx.Config.RedirectExpireSeconds) * time.Second
		if err = l.svcCtx.Cache.Set(l.ctx, redisKey.CACHE_PAY_ORDER_CHANNEL_REDIRECT+payReq.TradeNo, []byte(html), expire); err != nil {
			return nil, errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
		}
		resp.PayPageType = "url"
		resp.PayPageInfo = l.svcCtx.Config.Server + "/api/pay-redirect?tradeNo=" + url.QueryEscape(payReq.TradeNo)
	default:
		html, errRender := payutils.RenderForm(payReq)
		if errRender != nil {
			return nil, errorx.New(responsex.GENERAL_EXCEPTION, errRender.Error())
		}
		resp.PayPageType = "html"
		resp.PayPageInfo = html
	}

	return
}
