package payroll

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount in Brazilian real: "R$ 1.234,56".
func FormatBRL(v float64) string {
	return brl.Sprintf("R$ %.2f", v)
}

// ParseMoneyBR parses Brazilian-formatted money ("1.234,56", with or without
// the R$ prefix) into a float. Unparseable input degrades to 0, never an
// error.
func ParseMoneyBR(s string) float64 {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "R$")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return 0
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}
