package importacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRow() ImportAbate {
	return ImportAbate{
		DataAbate:            "2024-03-15",
		NomeLote:             "Lote 1",
		Quantidade:           40,
		ValorArrobaNegociada: 310.5,
		ValorTotalAcerto:     186300,
		IDProdutor:           1,
		IDFrigorifico:        1,
		IDCategoria:          1,
	}
}

func TestValidateRowsAcceptsValidRow(t *testing.T) {
	assert.Empty(t, ValidateRows([]ImportAbate{validRow()}))
}

func TestValidateRowsRequiredFields(t *testing.T) {
	errs := ValidateRows([]ImportAbate{{}})

	require.Len(t, errs, 7)
	for _, e := range errs {
		assert.Equal(t, 2, e.Row)
	}
}

func TestValidateRowsDateFormat(t *testing.T) {
	row := validRow()
	row.DataAbate = "15/03/2024"

	errs := ValidateRows([]ImportAbate{row})

	require.Len(t, errs, 1)
	assert.Equal(t, string(FieldDataAbate), errs[0].Field)
	assert.Equal(t, "Formato de data inválido. Use YYYY-MM-DD", errs[0].Message)
}

func TestValidateRowsQuantityMustBePositive(t *testing.T) {
	row := validRow()
	row.Quantidade = 0

	errs := ValidateRows([]ImportAbate{row})

	require.Len(t, errs, 1)
	assert.Equal(t, string(FieldQuantidade), errs[0].Field)
}

func TestValidateRowsNumbersRowsFromTwo(t *testing.T) {
	bad := validRow()
	bad.ValorTotalAcerto = 0

	errs := ValidateRows([]ImportAbate{validRow(), bad})

	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Row)
}
