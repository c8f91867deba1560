package formatters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 1.234,50", FormatCurrency(1234.5))
	assert.Equal(t, "R$ 0,00", FormatCurrency(0))
}

func TestFormatInteger(t *testing.T) {
	assert.Equal(t, "1.500", FormatInteger(1500))
	assert.Equal(t, "42", FormatInteger(42))
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "10,00", FormatDecimal(10))
	assert.Equal(t, "3,14", FormatDecimal(3.141))
}

func TestFormatDayOfWeek(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Monday", "Segunda-feira"},
		{" monday ", "Segunda-feira"},
		{"SATURDAY", "Sábado"},
		{"Sunday", "Domingo"},
		{"Feriado", "Feriado"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDayOfWeek(tt.in), "input %q", tt.in)
	}
}

func TestParseDateLocal(t *testing.T) {
	d, err := ParseDateLocal("2024-03-15T10:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())

	_, err = ParseDateLocal("not-a-date")
	assert.Error(t, err)
}

func TestFormatDateStringBR(t *testing.T) {
	assert.Equal(t, "15/03/2024", FormatDateStringBR("2024-03-15"))
	assert.Equal(t, "-", FormatDateStringBR(""))
	assert.Equal(t, "-", FormatDateStringBR("garbage"))
}
