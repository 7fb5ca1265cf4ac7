package typesX

import "time"

type Order struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	TradeNo        string    `json:"tradeNo" gorm:"type:varchar(20);uniqueIndex;not null"` //MerchantTradeNo
	CartId         string    `json:"cartId" gorm:"type:varchar(64);index"`
	Lang           string    `json:"lang" gorm:"type:varchar(8)"`
	TotalAmount    int64     `json:"totalAmount" gorm:"not null"`
	ItemName       string    `json:"itemName" gorm:"type:varchar(400)"`
	TradeDate      string    `json:"tradeDate" gorm:"type:varchar(20)"` //yyyy/MM/dd HH:mm:ss
	ChoosePayment  string    `json:"choosePayment" gorm:"type:varchar(20)"`
	Status         string    `json:"status" gorm:"type:varchar(4);not null"` //訂單狀態(1:處理中 20:成功 30:失敗)
	ChannelOrderNo string    `json:"channelOrderNo" gorm:"type:varchar(32)"` //渠道订单编号 (ECPay TradeNo)
	PaymentType    string    `json:"paymentType" gorm:"type:varchar(32)"`
	PaymentDate    string    `json:"paymentDate" gorm:"type:varchar(20)"`
	RtnCode        string    `json:"rtnCode" gorm:"type:varchar(16)"`
	RtnMsg         string    `json:"rtnMsg" gorm:"type:varchar(200)"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (Order) TableName() string {
	return "sf_orders"
}

type TransactionLogData struct {
	OrderNo        string      `json:"orderNo"`
	ChannelOrderNo string      `json:"channelOrderNo"`
	LogType        string      `json:"logType"`
	LogSource      string      `json:"logSource"`
	Content        interface{} `json:"content"`
	ErrCode        string      `json:"errCode"`
	ErrMsg         string      `json:"errMsg"`
	TraceId        string      `json:"traceId"`
}

type TxLog struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderNo        string    `json:"orderNo" gorm:"type:varchar(20);index"`
	ChannelOrderNo string    `json:"channelOrderNo" gorm:"type:varchar(32)"`
	LogType        string    `json:"logType" gorm:"type:varchar(2)"`
	LogSource      string    `json:"logSource" gorm:"type:varchar(2)"`
	Content        string    `json:"content" gorm:"type:text"`
	ErrorCode      string    `json:"errorCode" gorm:"type:varchar(16)"`
	ErrorMsg       string    `json:"errorMsg" gorm:"type:varchar(500)"`
	TraceId        string    `json:"traceId" gorm:"type:varchar(32)"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (TxLog) TableName() string {
	return "tx_log"
}
