package handler

import (
	"net/http"

	"github.com/copo888/storefront_app/common/errorx"
	"github.com/copo888/storefront_app/common/responsex"
	"github.com/copo888/storefront_app/common/vaildx"
	"github.com/copo888/storefront_app/storefront/internal/logic"
	"github.com/copo888/storefront_app/storefront/internal/payutils"
	"github.com/copo888/storefront_app/storefront/internal/svc"
	"github.com/copo888/storefront_app/storefront/internal/types"
	"github.com/mitchellh/mapstructure"
	"github.com/thinkeridea/go-extend/exnet"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

func PayCallBackHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		span := trace.SpanFromContext(r.Context())
		defer span.End()

		var req types.PayCallBackRequest

		// Form 格式
		if err := r.ParseForm(); err != nil {
			writeCallBackReply(w, r, errorx.New(responsex.INVALID_PARAMETER, err.Error()))
			return
		}
		raw := payutils.FlattenValues(r.PostForm)
		logx.WithContext(r.Context()).Infof("%+v", raw)

		if err := mapstructure.Decode(raw, &req); err != nil {
			writeCallBackReply(w, r, errorx.New(responsex.INVALID_PARAMETER, err.Error()))
			return
		}
		req.Raw = raw

		if err := vaildx.Validator.Struct(req); err != nil {
			writeCallBackReply(w, r, errorx.New(responsex.INVALID_PARAMETER, vaildx.Translate(err)))
			return
		}

		setRequestAttribute(r, req)

		req.MyIp = exnet.ClientIP(r)

		l := logic.NewPayCallBackLogic(r.Context(), ctx)
		resp, err := l.PayCallBack(&req)
		if err != nil {
			writeCallBackReply(w, r, err)
		} else {
			w.Write([]byte(resp))
		}
	}
}

// 綠界要求回覆 1|OK, 其餘視為失敗並重送
func writeCallBackReply(w http.ResponseWriter, r *http.Request, err error) {
	logx.WithContext(r.Context()).Errorf("PayCallBack error: %s", err.Error())
	msg := errorx.CodeOf(err, responsex.GENERAL_EXCEPTION)
	if e, ok := err.(*errorx.Err); ok && e.Message() != "" {
		msg += " " + e.Message()
	}
	w.Write([]byte("0|" + msg))
}
