package importacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCell(t *testing.T) {
	tests := []struct {
		raw  string
		kind CellKind
	}{
		{"", CellEmpty},
		{"   ", CellEmpty},
		{"42", CellNumber},
		{"45678.5", CellNumber},
		{"true", CellBool},
		{"FALSE", CellBool},
		{"Lote 12", CellString},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, DetectCell(tt.raw).Kind, "raw=%q", tt.raw)
	}
}

func TestCoerceBoolSpellings(t *testing.T) {
	truthy := []string{"sim", "Sim", "S", "yes", "Y", "true", "1"}
	for _, raw := range truthy {
		got, err := coerceBool(DetectCell(raw))
		require.NoError(t, err, "raw=%q", raw)
		assert.True(t, got, "raw=%q", raw)
	}

	falsy := []string{"", "0", "não", "nao", "no", "false", "2"}
	for _, raw := range falsy {
		got, err := coerceBool(DetectCell(raw))
		require.NoError(t, err, "raw=%q", raw)
		assert.False(t, got, "raw=%q", raw)
	}
}

func TestCoerceNumber(t *testing.T) {
	n, err := coerceNumber(DetectCell("310.5"))
	require.NoError(t, err)
	assert.Equal(t, 310.5, n)

	n, err = coerceNumber(DetectCell("310,5"))
	require.NoError(t, err)
	assert.Equal(t, 310.5, n)

	n, err = coerceNumber(DetectCell(""))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = coerceNumber(DetectCell("abc"))
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestCoerceDateFromSerial(t *testing.T) {
	// 45292 is 2024-01-01 in the 1900 date system.
	got, err := coerceDate(Cell{Kind: CellNumber, Num: 45292})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", got)

	// Same serial, same result, every time.
	for i := 0; i < 10; i++ {
		again, err := coerceDate(Cell{Kind: CellNumber, Num: 45292})
		require.NoError(t, err)
		assert.Equal(t, got, again)
	}
}

func TestCoerceDatePassesStringsThrough(t *testing.T) {
	got, err := coerceDate(DetectCell("2024-05-10"))
	require.NoError(t, err)
	assert.Equal(t, "2024-05-10", got)

	got, err = coerceDate(DetectCell(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCoerceString(t *testing.T) {
	got, err := coerceString(DetectCell("Lote 7"))
	require.NoError(t, err)
	assert.Equal(t, "Lote 7", got)

	got, err = coerceString(DetectCell("42"))
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}
