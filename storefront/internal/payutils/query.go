package payutils

import (
	"net/url"
	"sort"
	"strconv"
	"time"
)

// QueryTradeInfoValues 組 QueryTradeInfo/V5 請求參數
func QueryTradeInfoValues(merchantID, tradeNo, hashKey, hashIV string, now time.Time) url.Values {
	values := url.Values{}
	values.Set("MerchantID", merchantID)
	values.Set("MerchantTradeNo", tradeNo)
	values.Set("TimeStamp", strconv.FormatInt(now.Unix(), 10))
	values.Set(CheckMacValueKey, SortAndSignFromUrlValues(values, hashKey, hashIV))
	return values
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
