package constants

const (
	//交易日志类型
	ERROR_MSG             = "1" //1:錯誤訊息
	CHECKOUT_REQUEST      = "2" //2:顧客結帳請求
	DATA_REQUEST_CHANNEL  = "4" //4.打给渠道资料
	RESPONSE_FROM_CHANNEL = "5" //5.渠道返回资料
	CALLBACK_FROM_CHANNEL = "6" //6.渠道回调资料

	//日誌來源(1:商店前台、2:支付API)
	STOREFRONT = "1"
	API_ZF     = "2"

	//訂單狀態(1:處理中 20:成功 30:失敗)
	ORDER_STATUS_PROCESSING = "1"
	ORDER_STATUS_SUCCESS    = "20"
	ORDER_STATUS_FAIL       = "30"
)
