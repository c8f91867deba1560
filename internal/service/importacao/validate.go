package importacao

import "regexp"

// ValidationError locates one problem in the imported sheet. Row numbers
// are the spreadsheet ones: the first data row is 2, right below the header.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateRows checks presence and positivity of the required fields of each
// coerced row. Validation is purely local per row; referential integrity
// stays with the database.
func ValidateRows(rows []ImportAbate) []ValidationError {
	var errs []ValidationError

	for i, item := range rows {
		rowNum := i + 2

		if item.DataAbate == "" {
			errs = append(errs, ValidationError{rowNum, string(FieldDataAbate), "Data de abate é obrigatória"})
		} else if !isoDateRe.MatchString(item.DataAbate) {
			errs = append(errs, ValidationError{rowNum, string(FieldDataAbate), "Formato de data inválido. Use YYYY-MM-DD"})
		}

		if item.Quantidade <= 0 {
			errs = append(errs, ValidationError{rowNum, string(FieldQuantidade), "Quantidade deve ser maior que zero"})
		}

		if item.ValorArrobaNegociada <= 0 {
			errs = append(errs, ValidationError{rowNum, string(FieldValorArroba), "Valor da arroba deve ser maior que zero"})
		}

		if item.ValorTotalAcerto <= 0 {
			errs = append(errs, ValidationError{rowNum, string(FieldValorTotal), "Valor total deve ser maior que zero"})
		}

		if item.IDProdutor == 0 {
			errs = append(errs, ValidationError{rowNum, string(FieldIDProdutor), "Produtor é obrigatório"})
		}

		if item.IDFrigorifico == 0 {
			errs = append(errs, ValidationError{rowNum, string(FieldIDFrigorifico), "Frigorífico é obrigatório"})
		}

		if item.IDCategoria == 0 {
			errs = append(errs, ValidationError{rowNum, string(FieldIDCategoria), "Categoria do animal é obrigatória"})
		}
	}

	return errs
}
