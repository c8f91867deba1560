// Package formatters centralizes the pt-BR presentation rules used by the
// spreadsheet and PDF exports.
package formatters

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// dayLabels maps English weekday names to the pt-BR labels shown on the
// agenda grid.
var dayLabels = map[string]string{
	"Monday":    "Segunda-feira",
	"Tuesday":   "Terça-feira",
	"Wednesday": "Quarta-feira",
	"Thursday":  "Quinta-feira",
	"Friday":    "Sexta-feira",
	"Saturday":  "Sábado",
	"Sunday":    "Domingo",
}

// FormatCurrency renders a BRL amount, e.g. 1234.5 -> "R$ 1.234,50".
func FormatCurrency(value float64) string {
	return ptBR.Sprintf("R$ %.2f", value)
}

// FormatInteger renders an integer with pt-BR thousand separators.
func FormatInteger(value int) string {
	return ptBR.Sprintf("%d", value)
}

// FormatDecimal renders a number with two decimal places and a comma
// separator, without thousand grouping.
func FormatDecimal(value float64) string {
	return strings.Replace(strconv.FormatFloat(value, 'f', 2, 64), ".", ",", 1)
}

// FormatDayOfWeek translates an English weekday name ("monday", " Monday ")
// to its pt-BR label. Unknown input is returned unchanged.
func FormatDayOfWeek(day string) string {
	key := strings.TrimSpace(day)
	if key == "" {
		return day
	}
	key = strings.ToUpper(key[:1]) + strings.ToLower(key[1:])
	if label, ok := dayLabels[key]; ok {
		return label
	}
	return day
}

// ParseDateLocal interprets the leading YYYY-MM-DD of a date string as a
// local calendar date. Agenda bucketing depends on local, not UTC, dates.
func ParseDateLocal(dateString string) (time.Time, error) {
	s := dateString
	if len(s) > 10 {
		s = s[:10]
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// FormatDateBR renders a date as dd/mm/yyyy.
func FormatDateBR(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDateStringBR converts a YYYY-MM-DD string to dd/mm/yyyy, returning
// "-" when the input is empty or unparseable.
func FormatDateStringBR(dateString string) string {
	if dateString == "" {
		return "-"
	}
	t, err := ParseDateLocal(dateString)
	if err != nil {
		return "-"
	}
	return FormatDateBR(t)
}
