package model

import (
	"encoding/json"
	"time"

	"github.com/copo888/storefront_app/common/typesX"
	"gorm.io/gorm"
)

type TxLog struct {
	MyDB  *gorm.DB
	Table string
}

func NewTxLog(mydb *gorm.DB, t ...string) *TxLog {
	table := "tx_log"
	if len(t) > 0 {
		table = t[0]
	}
	return &TxLog{
		MyDB:  mydb,
		Table: table,
	}
}

//交易日志新增Func
func (t *TxLog) CreateTransactionLog(data *typesX.TransactionLogData) (err error) {
	content, err := json.Marshal(data.Content)
	if err != nil {
		return
	}

	txLog := typesX.TxLog{
		OrderNo:        data.OrderNo,
		ChannelOrderNo: data.ChannelOrderNo,
		LogType:        data.LogType,
		LogSource:      data.LogSource,
		Content:        string(content),
		ErrorCode:      data.ErrCode,
		ErrorMsg:       data.ErrMsg,
		TraceId:        data.TraceId,
		CreatedAt:      time.Now().UTC(),
	}

	return t.MyDB.Table(t.Table).Create(&txLog).Error
}

func (t *TxLog) ListByOrderNo(orderNo string) (logs []typesX.TxLog, err error) {
	err = t.MyDB.Table(t.Table).
		Where("order_no = ?", orderNo).
		Order("id").
		Find(&logs).Error
	return
}
