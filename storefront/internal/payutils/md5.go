package payutils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"unicode/utf16"
)

// LegacyUTF8 把字串轉為舊式 UTF-8 位元組: 先將 \r\n 換成 \n,
// 再逐一以 UTF-16 code unit 編碼為 1/2/3 bytes (代理對兩半分開編碼)
func LegacyUTF8(s string) []byte {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, len(units)*3)
	for _, c := range units {
		switch {
		case c < 0x80:
			out = append(out, byte(c))
		case c < 0x800:
			out = append(out, byte(c>>6|0xc0), byte(c&0x3f|0x80))
		default:
			out = append(out, byte(c>>12|0xe0), byte(c>>6&0x3f|0x80), byte(c&0x3f|0x80))
		}
	}
	return out
}

// GetSign MD5 (32 位小寫 hex)
func GetSign(source string) string {
	sum := md5.Sum(LegacyUTF8(source))
	return hex.EncodeToString(sum[:])
}
