package payutils

import (
	"net/url"
	"strings"
)

var ecpayRestorer = strings.NewReplacer(
	"%2d", "-",
	"%5f", "_",
	"%2e", ".",
	"%21", "!",
	"%2a", "*",
	"%28", "(",
	"%29", ")",
	"~", "%7e",
)

// EcpayUrlEncode 綠界規則的 URL encode: 空白轉 +, 全部轉小寫, 並還原 - _ . ! * ( )
// ' 與 ~ 依綠界 SDK 輸出 %27 / %7e
func EcpayUrlEncode(s string) string {
	encoded := strings.ToLower(url.QueryEscape(s))
	return ecpayRestorer.Replace(encoded)
}
