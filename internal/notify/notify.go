// Package notify renders reminder messages and composes the links that
// hand them off to the phone's SMS or mail app.
//
// Rendering is a total function: any template string in, a string out,
// no errors.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultTemplate is used when the owner settings do not provide a
// reminder template.
const DefaultTemplate = "Hi {tenant}, this is a friendly reminder that your rent for Block {block} (₱{amount}) is due on {date}. Thank you!"

// The tokens replaced by Render. Anything else in the template is left
// verbatim.
const (
	TokenTenant = "{tenant}"
	TokenBlock  = "{block}"
	TokenAmount = "{amount}"
	TokenDate   = "{date}"
)

// Placeholders are the values substituted into a template.
type Placeholders struct {
	Tenant string
	Block  string
	Amount decimal.Decimal
	Date   string
}

var printer = message.NewPrinter(language.MustParse("en-PH"))

// Render replaces every occurrence of the four tokens in the template
// with the placeholder values. An empty template falls back to
// DefaultTemplate. Unknown tokens are not an error, they stay as they
// are.
func Render(template string, p Placeholders) string {
	if template == "" {
		template = DefaultTemplate
	}

	return strings.NewReplacer(
		TokenTenant, p.Tenant,
		TokenBlock, p.Block,
		TokenAmount, FormatAmount(p.Amount),
		TokenDate, p.Date,
	).Replace(template)
}

// FormatAmount renders an amount with locale grouping ("5,000").
// No currency symbol, templates place their own.
func FormatAmount(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return printer.Sprint(number.Decimal(amount.IntPart()))
	}

	f, _ := amount.Float64()
	return printer.Sprint(number.Decimal(f))
}

// Ordinal formats a day of month as "1st", "2nd", "3rd", "4th" and so
// on. Days past 20 keep the "th" suffix, matching how due days have
// always been shown.
func Ordinal(day int) string {
	suffix := "th"
	switch day {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}

	return fmt.Sprintf("%d%s", day, suffix)
}

// SMSLink composes an sms: URI that opens the OS compose action with
// the message prefilled. Delivery is the messaging app's business,
// there is no confirmation.
func SMSLink(phone, body string) string {
	return "sms:" + phone + "?body=" + escape(body)
}

// MailtoLink composes a mailto: URI with subject and body prefilled.
func MailtoLink(email, subject, body string) string {
	return "mailto:" + email + "?subject=" + escape(subject) + "&body=" + escape(body)
}

// escape encodes a query component the way browsers' encodeURIComponent
// does: spaces become %20, not +.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
