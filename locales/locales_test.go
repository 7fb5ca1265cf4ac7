package locales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name        string
		preferences []string
		want        language.Tag
	}{
		{name: "empty falls back to default", preferences: []string{""}, want: language.TraditionalChinese},
		{name: "storefront alias zhCN", preferences: []string{"zhCN"}, want: language.SimplifiedChinese},
		{name: "storefront alias zhTW", preferences: []string{"zhTW"}, want: language.TraditionalChinese},
		{name: "accept-language list", preferences: []string{"", "en-US,en;q=0.9"}, want: language.English},
		{name: "first usable preference wins", preferences: []string{"en", "zh-CN"}, want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.preferences...))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Cart is empty", Message(language.English, "140"))
	assert.Equal(t, "購物車是空的", Message(language.TraditionalChinese, "140"))
	assert.Equal(t, "购物车是空的", Message(language.SimplifiedChinese, "140"))
}

func TestMessageUnknownCodeIsReturnedAsIs(t *testing.T) {
	assert.Equal(t, "UNKNOWN_CODE", Message(language.English, "UNKNOWN_CODE"))
}
