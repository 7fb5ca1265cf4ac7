package handler

import (
	"net/http"

	"github.com/copo888/storefront_app/common/responsex"
	"github.com/copo888/storefront_app/storefront/internal/svc"
)

func HealthHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responsex.Json(w, r, responsex.SUCCESS, map[string]string{"status": "ok"}, nil)
	}
}
