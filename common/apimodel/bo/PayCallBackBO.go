package bo

// 渠道支付結果 (回調或查詢), 用於更新訂單
type PayCallBackBO struct {
	CallbackTime   string `json:"callbackTime"`
	ChannelOrderNo string `json:"channelOrderNo"`
	OrderAmount    int64  `json:"orderAmount"`
	OrderStatus    string `json:"orderStatus"`
	PayOrderNo     string `json:"payOrderNo"`
	PaymentType    string `json:"paymentType"`
	PaymentDate    string `json:"paymentDate"`
	RtnCode        string `json:"rtnCode"`
	RtnMsg         string `json:"rtnMsg"`
}
