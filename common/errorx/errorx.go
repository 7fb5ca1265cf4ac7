package errorx

import "strings"

// Err 业务错误, Error() 回传錯誤代碼供 responsex 使用
type Err struct {
	Code    string
	Details []string
}

func New(code string, details ...string) error {
	return &Err{
		Code:    code,
		Details: details,
	}
}

func (e *Err) Error() string {
	return e.Code
}

func (e *Err) Message() string {
	return strings.Join(e.Details, "; ")
}

// CodeOf 取出錯誤代碼, 非 errorx 錯誤回傳 fallback
func CodeOf(err error, fallback string) string {
	if e, ok := err.(*Err); ok {
		return e.Code
	}
	return fallback
}
