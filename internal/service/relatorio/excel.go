package relatorio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/pkg/formatters"
)

const sheetName = "Dados"

// writeSheet renders one header row plus data rows into a single-sheet
// workbook and returns the serialized file.
func writeSheet(headers []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renomear planilha: %w", err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("cabeçalho da planilha: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("célula da linha %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("linha %d da planilha: %w", i+2, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, fmt.Errorf("última coluna: %w", err)
	}
	if err := f.SetColWidth(sheetName, "A", lastCol, 20); err != nil {
		return nil, fmt.Errorf("largura das colunas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

func simNao(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

// ExcelAbates renders the flat slaughter event report as a workbook.
func ExcelAbates(abates []models.Abate) ([]byte, error) {
	headers := []string{
		"Data", "Lote", "Produtor", "Propriedade", "Frigorífico", "Categoria",
		"Quantidade", "Valor Arroba", "Valor Total", "Trace", "Hilton", "Novilho Precoce",
	}
	rows := make([][]interface{}, 0, len(abates))
	for _, a := range abates {
		var produtor, propriedade, frigorifico, categoria string
		if a.Produtor != nil {
			produtor = a.Produtor.Nome
		}
		if a.Propriedade != nil {
			propriedade = a.Propriedade.Nome
		}
		if a.Frigorifico != nil {
			frigorifico = a.Frigorifico.Nome
		}
		if a.CategoriaAnimal != nil {
			categoria = a.CategoriaAnimal.Nome
		}
		rows = append(rows, []interface{}{
			formatters.FormatDateStringBR(a.DataAbate),
			a.NomeLote,
			produtor,
			propriedade,
			frigorifico,
			categoria,
			a.Quantidade,
			formatters.FormatCurrency(a.ValorArrobaNegociada),
			formatters.FormatCurrency(a.ValorTotalAcerto),
			simNao(a.Trace),
			simNao(a.Hilton),
			simNao(a.NovilhoPrecoce),
		})
	}
	return writeSheet(headers, rows)
}

// ExcelProdutores renders the per-producer report as a workbook.
func ExcelProdutores(resumos []ResumoProdutor) ([]byte, error) {
	headers := []string{
		"Produtor", "Propriedade", "Total de Abates", "Total de Animais",
		"Valor Total", "Média Arroba", "Trace", "Hilton", "Novilho Precoce",
	}
	rows := make([][]interface{}, 0, len(resumos))
	for _, r := range resumos {
		rows = append(rows, []interface{}{
			r.Nome,
			r.Propriedade,
			r.TotalAbates,
			r.TotalAnimais,
			formatters.FormatCurrency(r.ValorTotal),
			formatters.FormatCurrency(r.MediaArroba),
			r.Trace,
			r.Hilton,
			r.NovilhoPrecoce,
		})
	}
	return writeSheet(headers, rows)
}

// ExcelFrigorificos renders the per-slaughterhouse report as a workbook.
func ExcelFrigorificos(resumos []ResumoFrigorifico) ([]byte, error) {
	headers := []string{"Frigorífico", "Total de Abates", "Total de Animais", "Valor Total"}
	rows := make([][]interface{}, 0, len(resumos))
	for _, r := range resumos {
		rows = append(rows, []interface{}{
			r.Nome,
			r.TotalAbates,
			r.TotalAnimais,
			formatters.FormatCurrency(r.ValorTotal),
		})
	}
	return writeSheet(headers, rows)
}
