package handler

import (
	"net/http"

	"github.com/copo888/storefront_app/common/responsex"
	"github.com/copo888/storefront_app/common/vaildx"
	"github.com/copo888/storefront_app/storefront/internal/logic"
	"github.com/copo888/storefront_app/storefront/internal/svc"
	"github.com/copo888/storefront_app/storefront/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
	"go.opentelemetry.io/otel/trace"
)

func PayOrderHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		span := trace.SpanFromContext(r.Context())
		defer span.End()

		var req types.PayOrderRequest

		if err := httpx.ParseJsonBody(r, &req); err != nil {
			responsex.Json(w, r, responsex.DECODE_JSON_ERROR, nil, err)
			return
		}

		if err := vaildx.Validator.Struct(req); err != nil {
			responsex.Json(w, r, responsex.INVALID_PARAMETER, nil, err)
			return
		}

		setRequestAttribute(r, req)

		l := logic.NewPayOrderLogic(r.Context(), ctx)
		resp, err := l.PayOrder(cartId(w, r), &req, r.Header.Get("Accept-Language"))
		if err != nil {
			responsex.Json(w, r, err.Error(), nil, err)
		} else if resp.PayPageType == "html" {
			writeHtml(w, resp.PayPageInfo)
		} else {
			responsex.Json(w, r, responsex.SUCCESS, resp, err)
		}
	}
}

func writeHtml(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}
