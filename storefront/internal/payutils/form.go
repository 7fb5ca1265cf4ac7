package payutils

import (
	"bytes"
	"html/template"
)

var formTemplate = template.Must(template.New("ecpay").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>ECPay</title></head>
<body onload="document.getElementById('ecpay-form').submit()">
<form id="ecpay-form" method="post" action="{{.Action}}">
{{- range .Fields}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`))

// RenderForm 產生自動送出的綠界表單頁
func RenderForm(req *PayRequest) (string, error) {
	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, struct {
		Action string
		Fields []Field
	}{
		Action: req.Action,
		Fields: req.Fields(),
	}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
