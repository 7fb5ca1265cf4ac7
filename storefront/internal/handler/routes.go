package handler

import (
	"net/http"

	"github.com/copo888/storefront_app/storefront/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/health",
				Handler: HealthHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/categories",
				Handler: CategoriesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/products",
				Handler: ProductListHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/product",
				Handler: ProductHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/cart",
				Handler: CartHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/cart/add",
				Handler: CartAddHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/cart/update",
				Handler: CartUpdateHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/cart/remove",
				Handler: CartRemoveHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/cart/clear",
				Handler: CartClearHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/pay-order",
				Handler: PayOrderHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/pay-redirect",
				Handler: PayRedirectHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/pay-call-back",
				Handler: PayCallBackHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/pay-order-query",
				Handler: PayOrderQueryHandler(serverCtx),
			},
		},
	)
}
