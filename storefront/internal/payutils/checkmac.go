package payutils

import (
	"net/url"
	"sort"
	"strings"
)

const CheckMacValueKey = "CheckMacValue"

// JoinStringsInASCII 依 key 的 ASCII 排序組成 key=value&..., 並前後加上 HashKey / HashIV
func JoinStringsInASCII(data map[string]string, hashKey, hashIV string) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		if k == CheckMacValueKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("HashKey=")
	sb.WriteString(hashKey)
	for _, k := range keys {
		sb.WriteString("&")
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(data[k])
	}
	sb.WriteString("&HashIV=")
	sb.WriteString(hashIV)
	return sb.String()
}

// Canonicalize 回傳待雜湊的字串
func Canonicalize(data map[string]string, hashKey, hashIV string) string {
	return EcpayUrlEncode(JoinStringsInASCII(data, hashKey, hashIV))
}

func GenerateCheckMacValue(data map[string]string, hashKey, hashIV string) string {
	return strings.ToUpper(GetSign(Canonicalize(data, hashKey, hashIV)))
}

func VerifyCheckMacValue(data map[string]string, hashKey, hashIV string) bool {
	received, ok := data[CheckMacValueKey]
	if !ok || received == "" {
		return false
	}
	return strings.EqualFold(received, GenerateCheckMacValue(data, hashKey, hashIV))
}

// SortAndSignFromUrlValues 對 url.Values (取第一個值) 產生 CheckMacValue
func SortAndSignFromUrlValues(values url.Values, hashKey, hashIV string) string {
	return GenerateCheckMacValue(FlattenValues(values), hashKey, hashIV)
}

func FlattenValues(values url.Values) map[string]string {
	data := make(map[string]string, len(values))
	for k := range values {
		data[k] = values.Get(k)
	}
	return data
}
