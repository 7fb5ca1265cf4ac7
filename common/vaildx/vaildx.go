package vaildx

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validator *validator.Validate
	Trans     ut.Translator
)

func init() {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	Trans, _ = uni.GetTranslator("en")

	Validator = validator.New()
	// 錯誤訊息使用 json 欄位名稱
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := enTranslations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		panic(err)
	}
}

// Translate 將驗證錯誤轉為可讀訊息
func Translate(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Translate(Trans))
	}
	return strings.Join(msgs, "; ")
}
