package responsex

var (
	SUCCESS           = "0"     //"操作成功"
	FAIL              = "EX000" //"Fail"
	INVALID_PARAMETER = "EX001" //"参数不合法"

	SERVICE_RESPONSE_ERROR = "005" // "服务回傳失败"
	IP_DENIED              = "007" // "此IP非法登錄，請設定白名單"
	DECODE_JSON_ERROR      = "009" // "JSON格式或参数类型错误"
	GENERAL_EXCEPTION      = "400" // "系统错误"

	// 金流
	INVALID_SIGN           = "120" // "签名出错"
	PAYMENT_CONFIG_MISSING = "130" // "金流设定不完整"
	REDIRECT_EXPIRED       = "160" // "付款页面已失效"

	// 購物車
	CART_EMPTY          = "140" // "购物车是空的"
	CART_ITEM_NOT_FOUND = "141" // "购物车内无此商品"
	INVALID_QUANTITY    = "142" // "无效数量"

	// 商品
	PRODUCT_NOT_FOUND = "150" // "商品不存在"
	VARIANT_NOT_FOUND = "151" // "商品规格不存在"

	// 渠道
	CHANNEL_REPLY_ERROR    = "210" // "渠道返回错误"
	INVALID_STATUS_CODE    = "211" // "Http状态码错误"
	ORDER_NUMBER_NOT_EXIST = "501" // "商户订单号不存在"
)
