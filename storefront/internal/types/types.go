package types

import (
	"github.com/copo888/storefront_app/storefront/internal/cart"
	"github.com/copo888/storefront_app/storefront/internal/catalog"
	"github.com/copo888/storefront_app/storefront/internal/payutils"
)

const CartIdHeader = "X-Cart-Id"

type CategoriesRequest struct {
	Lang string `form:"lang,optional"`
}

type CategoryVO struct {
	Key  string                  `json:"key"`
	Name string                  `json:"name"`
	All  catalog.LocalizedString `json:"all"`
}

type CategoriesResponse struct {
	Lang       string       `json:"lang"`
	Categories []CategoryVO `json:"categories"`
}

type ProductListRequest struct {
	Lang     string `form:"lang,optional"`
	Category string `form:"category,optional"`
}

type ProductRequest struct {
	Id   int64  `form:"id" validate:"required,gt=0"`
	Lang string `form:"lang,optional"`
}

type ProductVO struct {
	catalog.Product
	DisplayName        string `json:"displayName"`
	DisplayDescription string `json:"displayDescription"`
	DisplayCategory    string `json:"displayCategory"`
}

type ProductListResponse struct {
	Lang     string      `json:"lang"`
	Products []ProductVO `json:"products"`
}

type CartAddRequest struct {
	ProductId   int64  `json:"productId" validate:"required,gt=0"`
	VariantName string `json:"variantName,optional"`
	Quantity    int    `json:"quantity,optional" validate:"gte=0"`
}

type CartUpdateRequest struct {
	CartItemId string `json:"cartId" validate:"required"`
	Quantity   int    `json:"quantity"`
}

type CartRemoveRequest struct {
	CartItemId string `json:"cartId" validate:"required"`
}

type CartResponse struct {
	CartId    string      `json:"cartId"`
	Items     []cart.Item `json:"items"`
	Total     string      `json:"total"`
	ItemCount int         `json:"itemCount"`
}

type PayOrderRequest struct {
	Lang          string `json:"lang,optional"`
	JumpType      string `json:"jumpType,optional" validate:"omitempty,oneof=html json url"`
	ClientBackUrl string `json:"clientBackUrl,optional" validate:"omitempty,url"`
}

type PayOrderResponse struct {
	PayPageType string           `json:"payPageType"` // html, json, url
	PayPageInfo string           `json:"payPageInfo"`
	TradeNo     string           `json:"tradeNo"`
	TotalAmount string           `json:"totalAmount"`
	Action      string           `json:"action,omitempty"`
	Fields      []payutils.Field `json:"fields,omitempty"`
}

type PayRedirectRequest struct {
	TradeNo string `form:"tradeNo" validate:"required"`
}

// PayCallBackRequest 綠界 ReturnURL 付款結果通知
type PayCallBackRequest struct {
	MerchantID           string `mapstructure:"MerchantID" json:"MerchantID" validate:"required"`
	MerchantTradeNo      string `mapstructure:"MerchantTradeNo" json:"MerchantTradeNo" validate:"required"`
	StoreID              string `mapstructure:"StoreID" json:"StoreID"`
	RtnCode              string `mapstructure:"RtnCode" json:"RtnCode" validate:"required"`
	RtnMsg               string `mapstructure:"RtnMsg" json:"RtnMsg"`
	TradeNo              string `mapstructure:"TradeNo" json:"TradeNo"`
	TradeAmt             string `mapstructure:"TradeAmt" json:"TradeAmt" validate:"required,numeric"`
	PaymentDate          string `mapstructure:"PaymentDate" json:"PaymentDate"`
	PaymentType          string `mapstructure:"PaymentType" json:"PaymentType"`
	PaymentTypeChargeFee string `mapstructure:"PaymentTypeChargeFee" json:"PaymentTypeChargeFee"`
	TradeDate            string `mapstructure:"TradeDate" json:"TradeDate"`
	SimulatePaid         string `mapstructure:"SimulatePaid" json:"SimulatePaid"`
	CheckMacValue        string `mapstructure:"CheckMacValue" json:"CheckMacValue" validate:"required"`
	MyIp                 string `mapstructure:"-" json:"myIp"`
	// 驗簽需包含綠界送來的全部欄位
	Raw map[string]string `mapstructure:"-" json:"-"`
}

type PayOrderQueryRequest struct {
	TradeNo string `json:"tradeNo" validate:"required"`
	Refresh bool   `json:"refresh,optional"`
}

type PayOrderQueryResponse struct {
	TradeNo        string `json:"tradeNo"`
	OrderStatus    string `json:"orderStatus"` // 1:處理中 20:成功 30:失敗
	TotalAmount    int64  `json:"totalAmount"`
	ItemName       string `json:"itemName"`
	ChannelOrderNo string `json:"channelOrderNo"`
	PaymentType    string `json:"paymentType"`
	PaymentDate    string `json:"paymentDate"`
	RtnCode        string `json:"rtnCode"`
	RtnMsg         string `json:"rtnMsg"`
}

// QueryTradeInfoResponse QueryTradeInfo/V5 回覆 (urlencoded)
type QueryTradeInfoResponse struct {
	MerchantID           string `mapstructure:"MerchantID"`
	MerchantTradeNo      string `mapstructure:"MerchantTradeNo"`
	StoreID              string `mapstructure:"StoreID"`
	TradeNo              string `mapstructure:"TradeNo"`
	TradeAmt             string `mapstructure:"TradeAmt"`
	PaymentDate          string `mapstructure:"PaymentDate"`
	PaymentType          string `mapstructure:"PaymentType"`
	HandlingCharge       string `mapstructure:"HandlingCharge"`
	PaymentTypeChargeFee string `mapstructure:"PaymentTypeChargeFee"`
	TradeDate            string `mapstructure:"TradeDate"`
	TradeStatus          string `mapstructure:"TradeStatus"` // 0:未付款 1:已付款 10200095:交易失敗
	ItemName             string `mapstructure:"ItemName"`
	CheckMacValue        string `mapstructure:"CheckMacValue"`
}
