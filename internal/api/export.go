package api

import (
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zaky-dc/shifaa-inventory/internal/exporter"
)

const downloadTTL = 10 * time.Minute

// ExportSession builds the export workbook for the current session,
// stashes it under the exports directory and returns a one-time
// download token.
// POST /api/session/export
func (h *Handler) ExportSession(c *gin.Context) {
	rows := h.session.Rows()
	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sem dados"})
		return
	}

	f, err := exporter.BuildWorkbook(rows)
	if err != nil {
		h.log.Error("failed to build workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao exportar"})
		return
	}
	defer f.Close()

	date := time.Now().UTC().Format("2006-01-02")
	fileName := exporter.Filename(h.session.Warehouse(), date)
	filePath := filepath.Join(h.exportDir, fileName)
	if err := f.SaveAs(filePath); err != nil {
		h.log.Error("failed to write export file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao exportar"})
		return
	}

	token := h.downloads.put(filePath, fileName, downloadTTL)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"filename": fileName,
	})
}

// DownloadExport streams a previously built export; tokens are single
// use and expire after a few minutes.
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	dl, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download expirado ou inexistente"})
		return
	}
	h.downloads.delete(token)

	c.Header("Content-Disposition", buildContentDisposition(dl.fileName))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(dl.filePath)
}

func buildContentDisposition(fileName string) string {
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s",
		fileName, url.PathEscape(fileName))
}
