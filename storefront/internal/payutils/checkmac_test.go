package payutils

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleParams = map[string]string{
	"TotalAmount": "320",
	"MerchantID":  "2000132",
	"ItemName":    "Clay A-M1 85元 x 2#Clay B 150元 x 1",
}

const sampleCanonical = "hashkey%3dk%26itemname%3dclay+a-m1+85%e5%85%83+x+2%23clay+b+150%e5%85%83+x+1%26merchantid%3d2000132%26totalamount%3d320%26hashiv%3dv"

func upperMD5(s string) string {
	sum := md5.Sum([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func TestJoinStringsInASCII(t *testing.T) {
	got := JoinStringsInASCII(sampleParams, "k", "v")
	assert.Equal(t, "HashKey=k&ItemName=Clay A-M1 85元 x 2#Clay B 150元 x 1&MerchantID=2000132&TotalAmount=320&HashIV=v", got)
}

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, sampleCanonical, Canonicalize(sampleParams, "k", "v"))
}

func TestGenerateCheckMacValue(t *testing.T) {
	got := GenerateCheckMacValue(sampleParams, "k", "v")
	assert.Equal(t, upperMD5(sampleCanonical), got)
	assert.Len(t, got, 32)
	assert.Equal(t, strings.ToUpper(got), got)
}

func TestGenerateCheckMacValueIgnoresExistingMac(t *testing.T) {
	withMac := map[string]string{CheckMacValueKey: "SOMETHING"}
	for k, v := range sampleParams {
		withMac[k] = v
	}
	assert.Equal(t, GenerateCheckMacValue(sampleParams, "k", "v"), GenerateCheckMacValue(withMac, "k", "v"))
}

func TestGenerateCheckMacValueOrderIndependent(t *testing.T) {
	values := url.Values{}
	values.Set("MerchantID", "2000132")
	values.Set("TotalAmount", "320")
	values.Set("ItemName", "Clay A-M1 85元 x 2#Clay B 150元 x 1")
	assert.Equal(t, GenerateCheckMacValue(sampleParams, "k", "v"), SortAndSignFromUrlValues(values, "k", "v"))
}

func TestGenerateCheckMacValueSpecialCharacters(t *testing.T) {
	params := map[string]string{"A": "a!b*(c)'~%20"}
	canonical := "hashkey%3dk%26a%3da!b*(c)%27%7e%2520%26hashiv%3dv"
	assert.Equal(t, canonical, Canonicalize(params, "k", "v"))
	assert.Equal(t, upperMD5(canonical), GenerateCheckMacValue(params, "k", "v"))
}

func TestVerifyCheckMacValue(t *testing.T) {
	signed := map[string]string{}
	for k, v := range sampleParams {
		signed[k] = v
	}
	signed[CheckMacValueKey] = GenerateCheckMacValue(sampleParams, "k", "v")
	assert.True(t, VerifyCheckMacValue(signed, "k", "v"))

	signed[CheckMacValueKey] = strings.ToLower(signed[CheckMacValueKey])
	assert.True(t, VerifyCheckMacValue(signed, "k", "v"))

	assert.False(t, VerifyCheckMacValue(signed, "other", "v"))

	signed["TotalAmount"] = "321"
	assert.False(t, VerifyCheckMacValue(signed, "k", "v"))

	assert.False(t, VerifyCheckMacValue(sampleParams, "k", "v"))
}

// 顧客帶入的 clientBackUrl 可能含有 ' 或 ~
func TestCheckMacValueWithApostropheAndTilde(t *testing.T) {
	data := map[string]string{
		"ClientBackURL": "https://shop.test/~clay/o'neil",
		"MerchantID":    "2000132",
	}
	assert.Equal(t,
		"hashkey%3dk%26clientbackurl%3dhttps%3a%2f%2fshop.test%2f%7eclay%2fo%27neil%26merchantid%3d2000132%26hashiv%3dv",
		Canonicalize(data, "k", "v"))
	assert.Equal(t, "2A7018DDDC78C4B6904E56FA5C20C9FC", GenerateCheckMacValue(data, "k", "v"))
}
