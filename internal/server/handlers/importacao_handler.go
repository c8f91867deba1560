package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/service/importacao"
)

// maxImportSize caps uploaded spreadsheets at 10 MiB.
const maxImportSize = 10 << 20

// ImportacaoHandler exposes the two-step spreadsheet import: preview with a
// proposed mapping, then the atomic commit.
type ImportacaoHandler struct {
	svc    *importacao.Service
	logger *zap.Logger
}

// NewImportacaoHandler constructs the HTTP handler adapter.
func NewImportacaoHandler(svc *importacao.Service, logger *zap.Logger) *ImportacaoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportacaoHandler{svc: svc, logger: logger}
}

func readUpload(c *gin.Context) (string, []byte, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "envie o arquivo no campo 'file'"})
		return "", nil, false
	}
	if file.Size > maxImportSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "arquivo maior que 10MB"})
		return "", nil, false
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "não foi possível ler o arquivo"})
		return "", nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "não foi possível ler o arquivo"})
		return "", nil, false
	}
	return file.Filename, data, true
}

// Preview parses the uploaded file and answers headers, row count, a sample
// and the automatic column mapping.
func (h *ImportacaoHandler) Preview(c *gin.Context) {
	filename, data, ok := readUpload(c)
	if !ok {
		return
	}

	preview, err := h.svc.Preview(filename, data)
	if err != nil {
		h.logger.Warn("preview de importação falhou", zap.String("file", filename), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, preview)
}

// Import runs the pipeline with the agreed mapping, sent as a JSON array in
// the 'mapping' form field. Validation errors answer 422 and nothing is
// persisted.
func (h *ImportacaoHandler) Import(c *gin.Context) {
	filename, data, ok := readUpload(c)
	if !ok {
		return
	}

	var pairs []importacao.ColumnMapping
	if raw := c.PostForm("mapping"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mapeamento de colunas inválido"})
			return
		}
	}

	result, validationErrs, err := h.svc.Run(c.Request.Context(), filename, data, importacao.NewMapping(pairs))
	if err != nil {
		h.logger.Error("importação falhou", zap.String("file", filename), zap.Error(err))
		status := http.StatusUnprocessableEntity
		if result != nil {
			// Parsing and mapping were fine, the batch insert itself failed.
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if len(validationErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationErrs})
		return
	}
	c.JSON(http.StatusOK, result)
}
