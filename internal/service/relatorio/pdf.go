package relatorio

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/pkg/formatters"
)

// Brand green used on the table header band.
var headerFill = [3]int{166, 206, 57}

// renderPDF lays out a landscape A4 report: title, generation stamp and one
// bordered table. Core fonts are cp1252, so all text goes through the
// unicode translator.
func renderPDF(title string, headers []string, widths []float64, rows [][]string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, tr("Gerado em: "+formatters.FormatDateBR(time.Now())), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	pdf.SetTextColor(0, 0, 0)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serializar pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// PDFAbates renders the flat slaughter event report as a PDF.
func PDFAbates(abates []models.Abate) ([]byte, error) {
	headers := []string{
		"Data", "Lote", "Produtor", "Frigorífico", "Categoria",
		"Qtd", "Valor Arroba", "Valor Total", "Trace", "Hilton", "N. Precoce",
	}
	widths := []float64{20, 28, 40, 40, 28, 14, 25, 30, 16, 16, 20}
	rows := make([][]string, 0, len(abates))
	for _, a := range abates {
		var produtor, frigorifico, categoria string
		if a.Produtor != nil {
			produtor = a.Produtor.Nome
		}
		if a.Frigorifico != nil {
			frigorifico = a.Frigorifico.Nome
		}
		if a.CategoriaAnimal != nil {
			categoria = a.CategoriaAnimal.Nome
		}
		rows = append(rows, []string{
			formatters.FormatDateStringBR(a.DataAbate),
			a.NomeLote,
			produtor,
			frigorifico,
			categoria,
			formatters.FormatInteger(a.Quantidade),
			formatters.FormatCurrency(a.ValorArrobaNegociada),
			formatters.FormatCurrency(a.ValorTotalAcerto),
			simNao(a.Trace),
			simNao(a.Hilton),
			simNao(a.NovilhoPrecoce),
		})
	}
	return renderPDF("Relatório de Abates", headers, widths, rows)
}

// PDFProdutores renders the per-producer report as a PDF.
func PDFProdutores(resumos []ResumoProdutor) ([]byte, error) {
	headers := []string{
		"Produtor", "Propriedade", "Abates", "Animais",
		"Valor Total", "Média Arroba", "Trace", "Hilton", "N. Precoce",
	}
	widths := []float64{50, 50, 18, 18, 35, 30, 16, 16, 20}
	rows := make([][]string, 0, len(resumos))
	for _, r := range resumos {
		rows = append(rows, []string{
			r.Nome,
			r.Propriedade,
			formatters.FormatInteger(r.TotalAbates),
			formatters.FormatInteger(r.TotalAnimais),
			formatters.FormatCurrency(r.ValorTotal),
			formatters.FormatCurrency(r.MediaArroba),
			formatters.FormatInteger(r.Trace),
			formatters.FormatInteger(r.Hilton),
			formatters.FormatInteger(r.NovilhoPrecoce),
		})
	}
	return renderPDF("Relatório de Produtores", headers, widths, rows)
}

// PDFFrigorificos renders the per-slaughterhouse report as a PDF.
func PDFFrigorificos(resumos []ResumoFrigorifico) ([]byte, error) {
	headers := []string{"Frigorífico", "Abates", "Animais", "Valor Total"}
	widths := []float64{90, 25, 25, 40}
	rows := make([][]string, 0, len(resumos))
	for _, r := range resumos {
		rows = append(rows, []string{
			r.Nome,
			formatters.FormatInteger(r.TotalAbates),
			formatters.FormatInteger(r.TotalAnimais),
			formatters.FormatCurrency(r.ValorTotal),
		})
	}
	return renderPDF("Relatório de Frigoríficos", headers, widths, rows)
}
