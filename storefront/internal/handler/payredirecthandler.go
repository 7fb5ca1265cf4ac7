package handler

import (
	"net/http"

	"github.com/copo888/storefront_app/common/responsex"
	"github.com/copo888/storefront_app/common/vaildx"
	"github.com/copo888/storefront_app/storefront/internal/logic"
	"github.com/copo888/storefront_app/storefront/internal/svc"
	"github.com/copo888/storefront_app/storefront/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func PayRedirectHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.PayRedirectRequest

		if err := httpx.ParseForm(r, &req); err != nil {
			responsex.Json(w, r, responsex.INVALID_PARAMETER, nil, err)
			return
		}

		if err := vaildx.Validator.Struct(req); err != nil {
			responsex.Json(w, r, responsex.INVALID_PARAMETER, nil, err)
			return
		}

		l := logic.NewPayRedirectLogic(r.Context(), ctx)
		html, err := l.PayRedirect(&req)
		if err != nil {
			responsex.Json(w, r, err.Error(), nil, err)
		} else {
			writeHtml(w, html)
		}
	}
}
