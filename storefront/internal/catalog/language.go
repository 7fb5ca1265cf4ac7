package catalog

import (
	"github.com/copo888/storefront_app/locales"
	"golang.org/x/text/language"
)

type Language string

const (
	En   Language = "en"
	ZhTW Language = "zhTW"
	ZhCN Language = "zhCN"
)

const DefaultLanguage = ZhTW

// ParseLanguage 接受 zhTW / zh-TW / zh-Hant / Accept-Language 等格式, 無法辨識時為繁中
func ParseLanguage(preferences ...string) Language {
	switch locales.Match(preferences...) {
	case language.English:
		return En
	case language.SimplifiedChinese:
		return ZhCN
	default:
		return ZhTW
	}
}

func (l Language) Tag() language.Tag {
	switch l {
	case En:
		return language.English
	case ZhCN:
		return language.SimplifiedChinese
	default:
		return language.TraditionalChinese
	}
}

type LocalizedString struct {
	En   string `json:"en"`
	ZhTW string `json:"zhTW"`
	ZhCN string `json:"zhCN"`
}

// Get 取對應語系, 空字串時退回英文
func (s LocalizedString) Get(lang Language) string {
	var v string
	switch lang {
	case En:
		v = s.En
	case ZhTW:
		v = s.ZhTW
	case ZhCN:
		v = s.ZhCN
	}
	if v == "" {
		return s.En
	}
	return v
}

func (s LocalizedString) Map() map[string]string {
	return map[string]string{
		string(En):   s.En,
		string(ZhTW): s.ZhTW,
		string(ZhCN): s.ZhCN,
	}
}
