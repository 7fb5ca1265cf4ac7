package locales

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported 第一個為預設語系
var Supported = []language.Tag{
	language.TraditionalChinese,
	language.English,
	language.SimplifiedChinese,
}

var matcher = language.NewMatcher(Supported)

// 前端使用的語系代碼
var aliases = map[string]string{
	"zhtw": "zh-TW",
	"zhcn": "zh-CN",
}

// init
func init() {
	initZhHant(language.TraditionalChinese)
	initEn(language.English)
	initZhHans(language.SimplifiedChinese)
}

// Match 依序嘗試 preferences (lang 參數 / Accept-Language), 皆無法匹配時回傳預設語系
func Match(preferences ...string) language.Tag {
	for _, p := range preferences {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if alias, ok := aliases[strings.ToLower(p)]; ok {
			p = alias
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil || len(tags) == 0 {
			continue
		}
		if _, idx, confidence := matcher.Match(tags...); confidence != language.No {
			return Supported[idx]
		}
	}
	return Supported[0]
}

// Message 取得代碼對應訊息, 未註冊的代碼原樣回傳
func Message(tag language.Tag, code string) string {
	return message.NewPrinter(tag).Sprintf(code)
}

// initZhHant will init zh-Hant support.
func initZhHant(tag language.Tag) {
	message.SetString(tag, "0", "操作成功")
	message.SetString(tag, "EX000", "操作失敗")
	message.SetString(tag, "EX001", "參數不合法")
	message.SetString(tag, "005", "服務回傳失敗")
	message.SetString(tag, "007", "此IP非法登錄，請設定白名單")
	message.SetString(tag, "009", "JSON格式或參數類型錯誤")
	message.SetString(tag, "120", "簽名出錯")
	message.SetString(tag, "130", "金流設定不完整")
	message.SetString(tag, "140", "購物車是空的")
	message.SetString(tag, "141", "購物車內無此商品")
	message.SetString(tag, "142", "無效數量")
	message.SetString(tag, "150", "商品不存在")
	message.SetString(tag, "151", "商品規格不存在")
	message.SetString(tag, "160", "付款頁面已失效，請重新結帳")
	message.SetString(tag, "210", "渠道返回錯誤")
	message.SetString(tag, "211", "Http狀態碼錯誤")
	message.SetString(tag, "400", "系統錯誤")
	message.SetString(tag, "501", "訂單編號不存在")
}

// initEn will init en support.
func initEn(tag language.Tag) {
	message.SetString(tag, "0", "Success")
	message.SetString(tag, "EX000", "Fail")
	message.SetString(tag, "EX001", "Invalid parameter")
	message.SetString(tag, "005", "Service response failed")
	message.SetString(tag, "007", "IP address is not white-listed")
	message.SetString(tag, "009", "Malformed JSON or parameter type")
	message.SetString(tag, "120", "Invalid signature")
	message.SetString(tag, "130", "Payment configuration is incomplete")
	message.SetString(tag, "140", "Cart is empty")
	message.SetString(tag, "141", "Item is not in the cart")
	message.SetString(tag, "142", "Invalid quantity")
	message.SetString(tag, "150", "Product not found")
	message.SetString(tag, "151", "Product variant not found")
	message.SetString(tag, "160", "Payment page expired, please check out again")
	message.SetString(tag, "210", "Payment provider replied with an error")
	message.SetString(tag, "211", "Unexpected HTTP status")
	message.SetString(tag, "400", "System error")
	message.SetString(tag, "501", "Order number does not exist")
}

// initZhHans will init zh-Hans support.
func initZhHans(tag language.Tag) {
	message.SetString(tag, "0", "操作成功")
	message.SetString(tag, "EX000", "操作失败")
	message.SetString(tag, "EX001", "参数不合法")
	message.SetString(tag, "005", "服务回传失败")
	message.SetString(tag, "007", "此IP非法登录，请设定白名单")
	message.SetString(tag, "009", "JSON格式或参数类型错误")
	message.SetString(tag, "120", "签名出错")
	message.SetString(tag, "130", "金流设定不完整")
	message.SetString(tag, "140", "购物车是空的")
	message.SetString(tag, "141", "购物车内无此商品")
	message.SetString(tag, "142", "无效数量")
	message.SetString(tag, "150", "商品不存在")
	message.SetString(tag, "151", "商品规格不存在")
	message.SetString(tag, "160", "付款页面已失效，请重新结账")
	message.SetString(tag, "210", "渠道返回错误")
	message.SetString(tag, "211", "Http状态码错误")
	message.SetString(tag, "400", "系统错误")
	message.SetString(tag, "501", "订单编号不存在")
}
