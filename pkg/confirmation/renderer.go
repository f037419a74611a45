package confirmation

import (
	"context"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/storekit/pkg/l10n"
)

// TemplateRenderer turns a collected EmailData into the HTML and plaintext
// bodies of the confirmation message.
type TemplateRenderer interface {
	Render(ctx context.Context, data EmailData) (html string, text string, err error)
}

// templateLabels is the localized copy surrounding the order data.
type templateLabels struct {
	Greeting        string
	Intro           string
	OrderNumber     string
	OrderDate       string
	OrderStatus     string
	PaymentMethod   string
	Qty             string
	Subtotal        string
	Shipping        string
	Tax             string
	Total           string
	ShippingAddress string
	BillingAddress  string
}

type templateView struct {
	Data EmailData
	L    templateLabels
}

// HTMLRenderer is the default TemplateRenderer built on the standard
// template engines with localized copy from a l10n.Translator.
type HTMLRenderer struct {
	htmlTpl    *htmltemplate.Template
	textTpl    *texttemplate.Template
	translator *l10n.Translator
	lang       language.Tag
}

// NewHTMLRenderer creates the default renderer.
func NewHTMLRenderer(translator *l10n.Translator, lang language.Tag) (*HTMLRenderer, error) {
	if translator == nil {
		translator = l10n.MustNew()
	}

	htmlTpl, err := htmltemplate.New("confirmation").Parse(htmlBody)
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}
	textTpl, err := texttemplate.New("confirmation").Parse(textBody)
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}

	return &HTMLRenderer{
		htmlTpl:    htmlTpl,
		textTpl:    textTpl,
		translator: translator,
		lang:       lang,
	}, nil
}

// Render produces both message bodies for the data.
func (r *HTMLRenderer) Render(ctx context.Context, data EmailData) (string, string, error) {
	view := templateView{Data: data, L: r.labels(data)}

	var html strings.Builder
	if err := r.htmlTpl.Execute(&html, view); err != nil {
		return "", "", fmt.Errorf("render html body: %w", err)
	}
	var text strings.Builder
	if err := r.textTpl.Execute(&text, view); err != nil {
		return "", "", fmt.Errorf("render text body: %w", err)
	}
	return html.String(), text.String(), nil
}

func (r *HTMLRenderer) labels(data EmailData) templateLabels {
	t := func(key string, args ...any) string { return r.translator.T(r.lang, key, args...) }

	greetName := data.RecipientName
	if greetName == "" {
		greetName = t("email.order_number") + " #" + fmt.Sprint(data.OrderNumber)
	}

	var intro string
	switch {
	case data.Minimal:
		intro = t("email.minimal_notice")
	case data.IsPaid:
		intro = t("email.thank_you") + " " + t("email.payment_received")
	default:
		intro = t("email.thank_you") + " " + t("email.payment_pending")
	}

	return templateLabels{
		Greeting:        t("email.greeting", greetName),
		Intro:           intro,
		OrderNumber:     t("email.order_number"),
		OrderDate:       t("email.order_date"),
		OrderStatus:     t("email.order_status"),
		PaymentMethod:   t("email.payment_method"),
		Qty:             t("email.quantity"),
		Subtotal:        t("email.subtotal"),
		Shipping:        t("email.shipping"),
		Tax:             t("email.tax"),
		Total:           t("email.total"),
		ShippingAddress: t("email.shipping_address"),
		BillingAddress:  t("email.billing_address"),
	}
}

const htmlBody = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #333;">
<p>{{.L.Greeting}}</p>
<p>{{.L.Intro}}</p>
<p>{{.L.OrderNumber}}: <strong>#{{.Data.OrderNumber}}</strong><br>
{{- if .Data.OrderDateFormatted}}
{{.L.OrderDate}}: {{.Data.OrderDateFormatted}}<br>
{{- end}}
{{- if .Data.StatusText}}
{{.L.OrderStatus}}: {{.Data.StatusText}}
{{- end}}</p>
{{- if not .Data.Minimal}}
<table width="100%" cellpadding="6" cellspacing="0" border="1" style="border-collapse: collapse;">
<tr><th align="left"></th><th align="right">{{.L.Qty}}</th><th align="right"></th></tr>
{{- range .Data.Items}}
<tr>
<td>{{.DisplayName}}
{{- if .IsCustomProduct}}
<ul>
{{- range .CustomAttributes}}
<li>{{.Label}}: {{.Value}}</li>
{{- end}}
</ul>
{{- end}}
</td>
<td align="right">{{.Quantity}} &times; {{.UnitPriceFormatted}}</td>
<td align="right">{{.TotalFormatted}}</td>
</tr>
{{- end}}
<tr><td colspan="2" align="right">{{.L.Subtotal}}</td><td align="right">{{.Data.SubtotalFormatted}}</td></tr>
<tr><td colspan="2" align="right">{{.L.Shipping}}</td><td align="right">{{.Data.ShippingFormatted}}</td></tr>
<tr><td colspan="2" align="right">{{.L.Tax}}</td><td align="right">{{.Data.TaxFormatted}}</td></tr>
<tr><td colspan="2" align="right"><strong>{{.L.Total}}</strong></td><td align="right"><strong>{{.Data.TotalFormatted}}</strong></td></tr>
</table>
<p>{{.L.PaymentMethod}}: {{.Data.PaymentMethod}}</p>
<table width="100%" cellpadding="6" cellspacing="0">
<tr>
<td valign="top">
<strong>{{.L.ShippingAddress}}</strong><br>
{{template "address" .Data.Shipping}}
</td>
<td valign="top">
<strong>{{.L.BillingAddress}}</strong><br>
{{template "address" .Data.Billing}}
</td>
</tr>
</table>
{{- else}}
<p><strong>{{.L.Total}}: {{.Data.TotalFormatted}}</strong></p>
{{- end}}
</body>
</html>
{{- define "address"}}
{{- if .FullName}}{{.FullName}}<br>{{end}}
{{- if .Company}}{{.Company}}<br>{{end}}
{{.Address1}}<br>
{{- if .Address2}}{{.Address2}}<br>{{end}}
{{.Postcode}} {{.City}}<br>
{{.Country}}
{{- end}}`

const textBody = `{{.L.Greeting}}

{{.L.Intro}}

{{.L.OrderNumber}}: #{{.Data.OrderNumber}}
{{- if .Data.OrderDateFormatted}}
{{.L.OrderDate}}: {{.Data.OrderDateFormatted}}
{{- end}}
{{- if .Data.StatusText}}
{{.L.OrderStatus}}: {{.Data.StatusText}}
{{- end}}
{{if not .Data.Minimal}}
{{- range .Data.Items}}
* {{.DisplayName}} - {{.Quantity}} x {{.UnitPriceFormatted}} = {{.TotalFormatted}}
{{- if .IsCustomProduct}}
{{- range .CustomAttributes}}
    {{.Label}}: {{.Value}}
{{- end}}
{{- end}}
{{- end}}

{{.L.Subtotal}}: {{.Data.SubtotalFormatted}}
{{.L.Shipping}}: {{.Data.ShippingFormatted}}
{{.L.Tax}}: {{.Data.TaxFormatted}}
{{.L.Total}}: {{.Data.TotalFormatted}}

{{.L.PaymentMethod}}: {{.Data.PaymentMethod}}

{{.L.ShippingAddress}}:
{{template "address" .Data.Shipping}}
{{.L.BillingAddress}}:
{{template "address" .Data.Billing}}
{{- else}}
{{.L.Total}}: {{.Data.TotalFormatted}}
{{- end}}
{{- define "address"}}
{{- if .FullName}}{{.FullName}}
{{end}}
{{- if .Company}}{{.Company}}
{{end}}
{{- .Address1}}
{{if .Address2}}{{.Address2}}
{{end}}
{{- .Postcode}} {{.City}}
{{.Country}}
{{- end}}`
