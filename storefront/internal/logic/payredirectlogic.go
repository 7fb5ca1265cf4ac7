package logic

import (
	"context"
	"errors"

	"github.com/copo888/storefront_app/common/constants/redisKey"
	"github.com/copo888/storefront_app/common/errorx"
	"github.com/copo888/storefront_app/common/kvstore"
	"github.com/copo888/storefront_app/common/responsex"
	"github.com/copo888/storefront_app/storefront/internal/svc"
	"github.com/copo888/storefront_app/storefront/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type PayRedirectLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPayRedirectLogic(ctx context.Context, svcCtx *svc.ServiceContext) PayRedirectLogic {
	return PayRedirectLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// PayRedirect 取出暫存的付款表單, 只能使用一次
func (l *PayRedirectLogic) PayRedirect(req *types.PayRedirectRequest) (string, error) {
	key := redisKey.CACHE_PAY_ORDER_CHANNEL_REDIRECT + req.TradeNo
	html, err := l.svcCtx.Cache.Get(l.ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return "", errorx.New(responsex.REDIRECT_EXPIRED, req.TradeNo)
	} else if err != nil {
		return "", errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
	}

	if err = l.svcCtx.Cache.Del(l.ctx, key); err != nil {
		l.Errorf("刪除導向表單失敗 tradeNo: %s, err: %s", req.TradeNo, err.Error())
	}
	return string(html), nil
}
