package responsex

import (
	"net/http"

	"github.com/copo888/storefront_app/common/apimodel/vo"
	"github.com/copo888/storefront_app/common/errorx"
	"github.com/copo888/storefront_app/common/vaildx"
	"github.com/copo888/storefront_app/locales"
	"github.com/go-playground/validator/v10"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
	"go.opentelemetry.io/otel/trace"
)

// Json 統一回應格式, code 依 lang 參數或 Accept-Language 翻譯
func Json(w http.ResponseWriter, r *http.Request, code string, resp interface{}, err error) {
	tag := locales.Match(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
	message := locales.Message(tag, code)

	if err != nil {
		logx.WithContext(r.Context()).Errorf("code: %s, error: %s", code, err.Error())
		if detail := errorDetail(err); detail != "" {
			message = message + ": " + detail
		}
	}

	httpx.OkJson(w, vo.RespVO{
		Code:    code,
		Message: message,
		Data:    resp,
		Trace:   trace.SpanContextFromContext(r.Context()).TraceID().String(),
	})
}

func errorDetail(err error) string {
	switch e := err.(type) {
	case *errorx.Err:
		return e.Message()
	case validator.ValidationErrors:
		return vaildx.Translate(e)
	default:
		return ""
	}
}
