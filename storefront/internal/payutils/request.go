package payutils

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf16"

	"github.com/copo888/storefront_app/common/errorx"
	"github.com/copo888/storefront_app/common/responsex"
	"github.com/shopspring/decimal"
)

const (
	DefaultTradeNoPrefix    = "TWC"
	DefaultTradeDesc        = "Taiwan Clay Online Purchase"
	DefaultItemNameFallback = "台灣軟陶商品一批"
	DefaultChoosePayment    = "ALL"
	DefaultEncryptType      = "1"
	PaymentTypeAio          = "aio"
	TradeDateLayout         = "2006/01/02 15:04:05"
	ItemNameMaxLength       = 190
)

// 送往綠界的欄位順序, CheckMacValue 永遠最後
var fieldOrder = []string{
	"MerchantID",
	"MerchantTradeNo",
	"MerchantTradeDate",
	"PaymentType",
	"TotalAmount",
	"TradeDesc",
	"ItemName",
	"ReturnURL",
	"ChoosePayment",
	"EncryptType",
	"ClientBackURL",
	"OrderResultURL",
}

type Options struct {
	MerchantID       string
	HashKey          string
	HashIV           string
	PayUrl           string
	TradeNoPrefix    string
	TradeDesc        string
	ItemNameFallback string
	ChoosePayment    string
	EncryptType      string
	Location         *time.Location
}

// Validate 缺少商店代號或金鑰時不可產生表單
func (o Options) Validate() error {
	var missing []string
	if o.MerchantID == "" {
		missing = append(missing, "MerchantID")
	}
	if o.HashKey == "" {
		missing = append(missing, "HashKey")
	}
	if o.HashIV == "" {
		missing = append(missing, "HashIV")
	}
	if o.PayUrl == "" {
		missing = append(missing, "PayUrl")
	}
	if len(missing) > 0 {
		return errorx.New(responsex.PAYMENT_CONFIG_MISSING, strings.Join(missing, ","))
	}
	return nil
}

type LineItem struct {
	Names       map[string]string // lang(en/zhTW/zhCN) -> 商品名稱
	VariantName string
	Price       decimal.Decimal
	Quantity    int
}

type CheckoutInput struct {
	Items          []LineItem
	TotalAmount    decimal.Decimal
	Lang           string
	ReturnURL      string
	ClientBackURL  string
	OrderResultURL string
}

type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type PayRequest struct {
	Action        string            `json:"action"`
	TradeNo       string            `json:"tradeNo"`
	TradeDate     string            `json:"tradeDate"`
	ItemName      string            `json:"itemName"`
	TotalAmount   string            `json:"totalAmount"`
	Params        map[string]string `json:"params"`
	CheckMacValue string            `json:"checkMacValue"`
}

// Fields 依固定順序輸出表單欄位, 最後一個是 CheckMacValue
func (p *PayRequest) Fields() []Field {
	fields := make([]Field, 0, len(p.Params)+1)
	seen := make(map[string]bool, len(fieldOrder))
	for _, name := range fieldOrder {
		if v, ok := p.Params[name]; ok {
			fields = append(fields, Field{Name: name, Value: v})
			seen[name] = true
		}
	}
	for _, name := range sortedKeys(p.Params) {
		if !seen[name] && name != CheckMacValueKey {
			fields = append(fields, Field{Name: name, Value: p.Params[name]})
		}
	}
	return append(fields, Field{Name: CheckMacValueKey, Value: p.CheckMacValue})
}

type Assembler struct {
	opts Options
	now  func() time.Time

	mu         sync.Mutex
	lastMillis int64
}

func NewAssembler(opts Options) *Assembler {
	if opts.TradeNoPrefix == "" {
		opts.TradeNoPrefix = DefaultTradeNoPrefix
	}
	if opts.TradeDesc == "" {
		opts.TradeDesc = DefaultTradeDesc
	}
	if opts.ItemNameFallback == "" {
		opts.ItemNameFallback = DefaultItemNameFallback
	}
	if opts.ChoosePayment == "" {
		opts.ChoosePayment = DefaultChoosePayment
	}
	if opts.EncryptType == "" {
		opts.EncryptType = DefaultEncryptType
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Assembler{opts: opts, now: time.Now}
}

// WithClock 測試用
func (a *Assembler) WithClock(now func() time.Time) *Assembler {
	a.now = now
	return a
}

func (a *Assembler) Options() Options {
	return a.opts
}

// NextTradeNo <prefix><epoch ms>, 同一毫秒內重複時往後遞增
func (a *Assembler) NextTradeNo(t time.Time) string {
	ms := t.UnixNano() / int64(time.Millisecond)
	a.mu.Lock()
	if ms <= a.lastMillis {
		ms = a.lastMillis + 1
	}
	a.lastMillis = ms
	a.mu.Unlock()
	return fmt.Sprintf("%s%d", a.opts.TradeNoPrefix, ms)
}

func (a *Assembler) Build(input *CheckoutInput) (*PayRequest, error) {
	if err := a.opts.Validate(); err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, errorx.New(responsex.CART_EMPTY)
	}

	now := a.now()
	params := map[string]string{
		"MerchantID":        a.opts.MerchantID,
		"MerchantTradeNo":   a.NextTradeNo(now),
		"MerchantTradeDate": now.In(a.opts.Location).Format(TradeDateLayout),
		"PaymentType":       PaymentTypeAio,
		"TotalAmount":       input.TotalAmount.StringFixed(0),
		"TradeDesc":         a.opts.TradeDesc,
		"ItemName":          BuildItemName(input.Items, input.Lang, a.opts.ItemNameFallback),
		"ReturnURL":         input.ReturnURL,
		"ChoosePayment":     a.opts.ChoosePayment,
		"EncryptType":       a.opts.EncryptType,
		"ClientBackURL":     input.ClientBackURL,
		"OrderResultURL":    input.OrderResultURL,
	}

	return &PayRequest{
		Action:        a.opts.PayUrl,
		TradeNo:       params["MerchantTradeNo"],
		TradeDate:     params["MerchantTradeDate"],
		ItemName:      params["ItemName"],
		TotalAmount:   params["TotalAmount"],
		Params:        params,
		CheckMacValue: GenerateCheckMacValue(params, a.opts.HashKey, a.opts.HashIV),
	}, nil
}

// BuildItemName 商品名稱[-規格] 單價元 x 數量, 以 # 串接; 超過 190 字時改用 fallback
func BuildItemName(items []LineItem, lang, fallback string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name := resolveName(item.Names, lang)
		if item.VariantName != "" {
			name += "-" + item.VariantName
		}
		parts = append(parts, fmt.Sprintf("%s %s元 x %d", name, item.Price.String(), item.Quantity))
	}
	itemName := strings.Join(parts, "#")
	if len(utf16.Encode([]rune(itemName))) > ItemNameMaxLength {
		return fallback
	}
	return itemName
}

func resolveName(names map[string]string, lang string) string {
	if name := names[lang]; name != "" {
		return name
	}
	if name := names["en"]; name != "" {
		return name
	}
	return "Product"
}
