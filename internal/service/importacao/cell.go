package importacao

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellKind tags the raw value variants a spreadsheet cell can carry.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
	CellBool
)

// Cell is the tagged-variant representation of a raw spreadsheet value.
// Exactly one payload field is meaningful, selected by Kind.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
	Bool bool
}

// DetectCell classifies a raw string value from the parser. Numeric-looking
// values become CellNumber (Excel date serials included), true/false become
// CellBool, everything else stays a string.
func DetectCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: CellEmpty}
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: CellNumber, Num: n, Str: trimmed}
	}
	switch strings.ToLower(trimmed) {
	case "true":
		return Cell{Kind: CellBool, Bool: true, Str: trimmed}
	case "false":
		return Cell{Kind: CellBool, Bool: false, Str: trimmed}
	}
	return Cell{Kind: CellString, Str: trimmed}
}

// truthy spellings accepted for certification flags.
var truthyStrings = map[string]bool{
	"sim": true, "s": true, "yes": true, "y": true, "true": true, "1": true,
}

// coerceDate converts a cell to a YYYY-MM-DD string. Excel stores dates as
// day serials, so numeric cells go through the serial conversion.
func coerceDate(c Cell) (string, error) {
	switch c.Kind {
	case CellEmpty:
		return "", nil
	case CellNumber:
		t, err := excelize.ExcelDateToTime(c.Num, false)
		if err != nil {
			return "", fmt.Errorf("serial de data inválido %v: %w", c.Num, err)
		}
		return t.Format("2006-01-02"), nil
	default:
		return c.Str, nil
	}
}

// coerceNumber converts a cell to a float64. Unconvertible values are an
// explicit error; the pipeline records it and substitutes zero so the
// positivity validation still fires on the row.
func coerceNumber(c Cell) (float64, error) {
	switch c.Kind {
	case CellEmpty:
		return 0, nil
	case CellNumber:
		return c.Num, nil
	case CellString:
		n, err := strconv.ParseFloat(strings.ReplaceAll(c.Str, ",", "."), 64)
		if err != nil {
			return 0, fmt.Errorf("valor numérico inválido %q", c.Str)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("valor numérico inválido %q", c.Str)
	}
}

// coerceBool accepts the heterogeneous boolean spellings found in field
// spreadsheets: sim/s/yes/y/true/1 and the number 1.
func coerceBool(c Cell) (bool, error) {
	switch c.Kind {
	case CellEmpty:
		return false, nil
	case CellBool:
		return c.Bool, nil
	case CellNumber:
		return c.Num == 1, nil
	default:
		return truthyStrings[strings.ToLower(strings.TrimSpace(c.Str))], nil
	}
}

// coerceString flattens any cell back to text.
func coerceString(c Cell) (string, error) {
	if c.Kind == CellNumber {
		return strconv.FormatFloat(c.Num, 'f', -1, 64), nil
	}
	return c.Str, nil
}
