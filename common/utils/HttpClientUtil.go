package utils

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/copo888/storefront_app/common/errorx"
	"github.com/copo888/storefront_app/common/responsex"
	"github.com/gioco-play/gozzle"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

// SubmitForm 以 x-www-form-urlencoded 請求渠道, 並將回覆以 urlencoded 解析
func SubmitForm(ctx context.Context, apiUrl string, param url.Values) (url.Values, error) {
	span := trace.SpanFromContext(ctx)
	logx.WithContext(ctx).Infof("请求地址:%s,請求參數:%s", apiUrl, param.Encode())

	res, chnErr := gozzle.Post(apiUrl).Timeout(20).Trace(span).Form(param)
	if chnErr != nil {
		logx.WithContext(ctx).Error("呼叫渠道返回錯誤: ", chnErr.Error())
		return nil, errorx.New(responsex.SERVICE_RESPONSE_ERROR, chnErr.Error())
	} else if res.Status() != http.StatusOK {
		logx.WithContext(ctx).Infof("Status: %d  Body: %s", res.Status(), string(res.Body()))
		return nil, errorx.New(responsex.INVALID_STATUS_CODE, fmt.Sprintf("Error HTTP Status: %d", res.Status()))
	}
	logx.WithContext(ctx).Infof("Status: %d  Body: %s", res.Status(), string(res.Body()))

	values, err := url.ParseQuery(string(res.Body()))
	if err != nil {
		return nil, errorx.New(responsex.CHANNEL_REPLY_ERROR, err.Error())
	}
	return values, nil
}
