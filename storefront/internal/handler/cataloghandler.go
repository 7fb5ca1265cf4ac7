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

func CategoriesHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CategoriesRequest

		if err := httpx.ParseForm(r, &req); err != nil {
			responsex.Json(w, r, responsex.INVALID_PARAMETER, nil, err)
			return
		}

		l := logic.NewCatalogLogic(r.Context(), ctx)
		resp, err := l.Categories(&req, r.Header.Get("Accept-Language"))
		if err != nil {
			responsex.Json(w, r, err.Error(), nil, err)
		} else {
			responsex.Json(w, r, responsex.SUCCESS, resp, err)
		}
	}
}

func ProductListHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ProductListRequest

		if err := httpx.ParseForm(r, &req); err != nil {
			responsex.Json(w, r, responsex.INVALID_PARAMETER, nil, err)
			return
		}

		l := logic.NewCatalogLogic(r.Context(), ctx)
		resp, err := l.ProductList(&req, r.Header.Get("Accept-Language"))
		if err != nil {
			responsex.Json(w, r, err.Error(), nil, err)
		} else {
			responsex.Json(w, r, responsex.SUCCESS, resp, err)
		}
	}
}

func ProductHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ProductRequest

		if err := httpx.ParseForm(r, &req); err != nil {
			responsex.Json(w, r, responsex.INVALID_PARAMETER, nil, err)
			return
		}

		if err := vaildx.Validator.Struct(req); err != nil {
			responsex.Json(w, r, responsex.INVALID_PARAMETER, nil, err)
			return
		}

		l := logic.NewCatalogLogic(r.Context(), ctx)
		resp, err := l.Product(&req, r.Header.Get("Accept-Language"))
		if err != nil {
			responsex.Json(w, r, err.Error(), nil, err)
		} else {
			responsex.Json(w, r, responsex.SUCCESS, resp, err)
		}
	}
}
