package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/service/relatorio"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

// RelatorioHandler exposes the three report views as JSON plus their xlsx
// and PDF downloads.
type RelatorioHandler struct {
	svc    *relatorio.Service
	logger *zap.Logger
}

// NewRelatorioHandler constructs the HTTP handler adapter.
func NewRelatorioHandler(svc *relatorio.Service, logger *zap.Logger) *RelatorioHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RelatorioHandler{svc: svc, logger: logger}
}

// Abates returns the flat event report.
func (h *RelatorioHandler) Abates(c *gin.Context) {
	abates, err := h.svc.Abates(c.Request.Context(), abateFilterFrom(c))
	if err != nil {
		h.logger.Error("relatorio de abates", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, abates)
}

// Produtores returns the per-producer report.
func (h *RelatorioHandler) Produtores(c *gin.Context) {
	resumos, err := h.svc.PorProdutor(c.Request.Context(), abateFilterFrom(c))
	if err != nil {
		h.logger.Error("relatorio por produtor", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumos)
}

// Frigorificos returns the per-slaughterhouse report.
func (h *RelatorioHandler) Frigorificos(c *gin.Context) {
	resumos, err := h.svc.PorFrigorifico(c.Request.Context(), abateFilterFrom(c))
	if err != nil {
		h.logger.Error("relatorio por frigorifico", zap.Error(err))
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumos)
}

func attachment(c *gin.Context, contentType, prefix, ext string, data []byte) {
	filename := fmt.Sprintf("%s-%s.%s", prefix, time.Now().Format("2006-01-02"), ext)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// Export streams one report view as a download. Path params: :tipo is
// abates|produtores|frigorificos, :formato is xlsx|pdf.
func (h *RelatorioHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	filter := abateFilterFrom(c)
	tipo := c.Param("tipo")
	formato := c.Param("formato")

	var data []byte
	var err error
	switch {
	case tipo == "abates" && formato == "xlsx":
		abates, listErr := h.svc.Abates(ctx, filter)
		if listErr == nil {
			data, err = relatorio.ExcelAbates(abates)
		} else {
			err = listErr
		}
	case tipo == "abates" && formato == "pdf":
		abates, listErr := h.svc.Abates(ctx, filter)
		if listErr == nil {
			data, err = relatorio.PDFAbates(abates)
		} else {
			err = listErr
		}
	case tipo == "produtores" && formato == "xlsx":
		resumos, listErr := h.svc.PorProdutor(ctx, filter)
		if listErr == nil {
			data, err = relatorio.ExcelProdutores(resumos)
		} else {
			err = listErr
		}
	case tipo == "produtores" && formato == "pdf":
		resumos, listErr := h.svc.PorProdutor(ctx, filter)
		if listErr == nil {
			data, err = relatorio.PDFProdutores(resumos)
		} else {
			err = listErr
		}
	case tipo == "frigorificos" && formato == "xlsx":
		resumos, listErr := h.svc.PorFrigorifico(ctx, filter)
		if listErr == nil {
			data, err = relatorio.ExcelFrigorificos(resumos)
		} else {
			err = listErr
		}
	case tipo == "frigorificos" && formato == "pdf":
		resumos, listErr := h.svc.PorFrigorifico(ctx, filter)
		if listErr == nil {
			data, err = relatorio.PDFFrigorificos(resumos)
		} else {
			err = listErr
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "relatório ou formato desconhecido"})
		return
	}

	if err != nil {
		h.logger.Error("export de relatorio",
			zap.String("tipo", tipo), zap.String("formato", formato), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao gerar o relatório"})
		return
	}

	contentType := xlsxContentType
	if formato == "pdf" {
		contentType = pdfContentType
	}
	attachment(c, contentType, "relatorio-"+tipo, formato, data)
}
