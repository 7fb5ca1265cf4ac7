package handler

import (
	"encoding/json"
	"net/http"

	"github.com/copo888/storefront_app/common/responsex"
	"github.com/copo888/storefront_app/common/vaildx"
	"github.com/copo888/storefront_app/storefront/internal/logic"
	"github.com/copo888/storefront_app/storefront/internal/svc"
	"github.com/copo888/storefront_app/storefront/internal/types"
	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/rest/httpx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// cartId 由 X-Cart-Id 帶入, 沒有時產生新的並回傳於 header
func cartId(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(types.CartIdHeader)
	if id == "" {
		id = uuid.New().String()
	}
	w.Header().Set(types.CartIdHeader, id)
	return id
}

func setRequestAttribute(r *http.Request, req interface{}) {
	span := trace.SpanFromContext(r.Context())
	if requestBytes, err := json.Marshal(req); err == nil {
		span.SetAttributes(attribute.KeyValue{
			Key:   "request",
			Value: attribute.StringValue(string(requestBytes)),
		})
	}
}

func CartHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := cartId(w, r)

		l := logic.NewCartLogic(r.Context(), ctx)
		resp, err := l.GetCart(id)
		if err != nil {
			responsex.Json(w, r, err.Error(), nil, err)
		} else {
			responsex.Json(w, r, responsex.SUCCESS, resp, err)
		}
	}
}

func CartAddHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CartAddRequest

		if err := httpx.ParseJsonBody(r, &req); err != nil {
			responsex.Json(w, r, responsex.DECODE_JSON_ERROR, nil, err)
			return
		}

		if err := vaildx.Validator.Struct(req); err != nil {
			responsex.Json(w, r, responsex.INVALID_PARAMETER, nil, err)
			return
		}

		setRequestAttribute(r, req)

		l := logic.NewCartLogic(r.Context(), ctx)
		resp, err := l.AddItem(cartId(w, r), &req)
		if err != nil {
			responsex.Json(w, r, err.Error(), nil, err)
		} else {
			responsex.Json(w, r, responsex.SUCCESS, resp, err)
		}
	}
}

func CartUpdateHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CartUpdateRequest

		if err := httpx.ParseJsonBody(r, &req); err != nil {
			responsex.Json(w, r, responsex.DECODE_JSON_ERROR, nil, err)
			return
		}

		if err := vaildx.Validator.Struct(req); err != nil {
			responsex.Json(w, r, responsex.INVALID_PARAMETER, nil, err)
			return
		}

		setRequestAttribute(r, req)

		l := logic.NewCartLogic(r.Context(), ctx)
		resp, err := l.UpdateItem(cartId(w, r), &req)
		if err != nil {
			responsex.Json(w, r, err.Error(), nil, err)
		} else {
			responsex.Json(w, r, responsex.SUCCESS, resp, err)
		}
	}
}

func CartRemoveHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CartRemoveRequest

		if err := httpx.ParseJsonBody(r, &req); err != nil {
			responsex.Json(w, r, responsex.DECODE_JSON_ERROR, nil, err)
			return
		}

		if err := vaildx.Validator.Struct(req); err != nil {
			responsex.Json(w, r, responsex.INVALID_PARAMETER, nil, err)
			return
		}

		setRequestAttribute(r, req)

		l := logic.NewCartLogic(r.Context(), ctx)
		resp, err := l.RemoveItem(cartId(w, r), &req)
		if err != nil {
			responsex.Json(w, r, err.Error(), nil, err)
		} else {
			responsex.Json(w, r, responsex.SUCCESS, resp, err)
		}
	}
}

func CartClearHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewCartLogic(r.Context(), ctx)
		resp, err := l.ClearCart(cartId(w, r))
		if err != nil {
			responsex.Json(w, r, err.Error(), nil, err)
		} else {
			responsex.Json(w, r, responsex.SUCCESS, resp, err)
		}
	}
}
