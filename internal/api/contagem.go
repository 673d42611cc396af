package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zaky-dc/shifaa-inventory/internal/model"
)

// SaveContagem persists one full snapshot. The body is an array of
// resolved rows, each carrying the (data, armazem) identity; a save
// replaces whatever was stored under that identity.
// POST /api/contagem
func (h *Handler) SaveContagem(c *gin.Context) {
	var rows []model.SnapshotRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo do pedido inválido"})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sem produtos"})
		return
	}

	date, warehouse := rows[0].Date, rows[0].Warehouse
	if date == "" || warehouse == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data e armazém são obrigatórios"})
		return
	}
	for _, r := range rows {
		if r.Date != date || r.Warehouse != warehouse {
			c.JSON(http.StatusBadRequest, gin.H{"error": "todas as linhas devem pertencer à mesma contagem"})
			return
		}
	}

	snap := model.Snapshot{Date: date, Warehouse: warehouse, Rows: rows}
	if err := h.store.ReplaceSnapshot(snap); err != nil {
		h.log.Error("failed to store snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao salvar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Contagem de %s (%s) guardada com sucesso.", warehouse, date),
	})
}

// GetContagem returns the full row set for one identity, or [].
// GET /api/contagem?data=&armazem=
func (h *Handler) GetContagem(c *gin.Context) {
	date := c.Query("data")
	warehouse := c.Query("armazem")
	if date == "" || warehouse == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data e armazém são obrigatórios"})
		return
	}

	rows, err := h.store.GetSnapshot(date, warehouse)
	if err != nil {
		h.log.Error("failed to read snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao carregar"})
		return
	}
	if rows == nil {
		rows = []model.SnapshotRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// ListDatas lists saved snapshot identities, newest first.
// GET /api/datas
func (h *Handler) ListDatas(c *gin.Context) {
	summaries, err := h.store.ListSnapshotDates()
	if err != nil {
		h.log.Error("failed to list snapshots", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao carregar datas"})
		return
	}
	if summaries == nil {
		summaries = []model.SnapshotSummary{}
	}
	c.JSON(http.StatusOK, summaries)
}

// DeleteContagem removes one snapshot. The identity key is date plus
// warehouse; a date alone never deletes anything.
// DELETE /api/contagem/:data?armazem=
func (h *Handler) DeleteContagem(c *gin.Context) {
	date := c.Param("data")
	warehouse := c.Query("armazem")
	if warehouse == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "armazém é obrigatório"})
		return
	}

	n, err := h.store.DeleteSnapshot(date, warehouse)
	if err != nil {
		h.log.Error("failed to delete snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao apagar"})
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "contagem não encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Contagem de %s (%s) apagada.", warehouse, date),
	})
}
