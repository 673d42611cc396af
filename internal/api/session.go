package api

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zaky-dc/shifaa-inventory/internal/model"
	"github.com/Zaky-dc/shifaa-inventory/internal/parser"
	"github.com/Zaky-dc/shifaa-inventory/internal/reconcile"
	"github.com/Zaky-dc/shifaa-inventory/internal/session"
)

type sessionStatusResponse struct {
	Armazem string `json:"armazem"`
	Itens   int    `json:"itens"`
	Busy    bool   `json:"busy"`
}

// GetSession reports the working session status.
// GET /api/session
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, sessionStatusResponse{
		Armazem: h.session.Warehouse(),
		Itens:   h.session.Len(),
		Busy:    h.session.Busy(),
	})
}

// ImportSession replaces the session with a freshly parsed workbook.
// The warehouse label defaults to the file name without its extension.
// POST /api/session/import  (multipart, field "file")
func (h *Handler) ImportSession(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ficheiro não encontrado no pedido"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "não foi possível ler o ficheiro"})
		return
	}
	defer f.Close()

	items, err := parser.ParseWorkbook(f)
	if err != nil {
		// Malformed import: the session keeps its previous state.
		if errors.Is(err, parser.ErrNoRows) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "o ficheiro não contém produtos válidos"})
			return
		}
		h.log.Warn("workbook parse failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "formato inválido"})
		return
	}

	name := fileHeader.Filename
	warehouse := strings.TrimSuffix(name, filepath.Ext(name))
	h.session.ReplaceCatalog(items, warehouse)

	c.JSON(http.StatusOK, gin.H{
		"message": "Ficheiro importado.",
		"armazem": warehouse,
		"itens":   len(items),
	})
}

// ListSessionItems returns the reconciled view filtered by the text
// query and exactly one status bucket.
// GET /api/session/items?q=&status=
func (h *Handler) ListSessionItems(c *gin.Context) {
	bucket, err := reconcile.ParseBucket(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filtro de estado desconhecido"})
		return
	}

	rows := h.session.FilteredRows(c.Query("q"), bucket)
	if rows == nil {
		rows = []reconcile.Row{}
	}
	c.JSON(http.StatusOK, rows)
}

type setCountRequest struct {
	Valor string `json:"valor"`
}

// SetSessionCount records the raw counted value for one item. An empty
// string clears the entry; "0" is an explicit zero, not a clear.
// PUT /api/session/counts/:codigo
func (h *Handler) SetSessionCount(c *gin.Context) {
	var req setCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo do pedido inválido"})
		return
	}

	code := c.Param("codigo")
	if err := h.session.SetCount(code, req.Valor); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "código desconhecido"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"codigo": code, "valor": h.session.DisplayValue(code)})
}

// SaveSession persists the session through the configured repository
// and clears it on success.
// POST /api/session/save
func (h *Handler) SaveSession(c *gin.Context) {
	msg, err := h.session.Save(c.Request.Context())
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

type loadSessionRequest struct {
	Data    string `json:"data"`
	Armazem string `json:"armazem"`
}

// LoadSession replaces the session with a stored snapshot. An empty
// result leaves the session untouched and is reported as informational.
// POST /api/session/load
func (h *Handler) LoadSession(c *gin.Context) {
	var req loadSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo do pedido inválido"})
		return
	}
	if req.Data == "" || req.Armazem == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data e armazém são obrigatórios"})
		return
	}

	n, err := h.session.Load(c.Request.Context(), req.Data, req.Armazem)
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Contagem carregada.",
		"armazem": h.session.Warehouse(),
		"itens":   n,
	})
}

// ClearSession empties the working session.
// DELETE /api/session
func (h *Handler) ClearSession(c *gin.Context) {
	h.session.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Sessão limpa."})
}

// SessionHistory lists the snapshot identities known to the session,
// served from cache after the first fetch.
// GET /api/session/history?refresh=
func (h *Handler) SessionHistory(c *gin.Context) {
	refresh := c.Query("refresh") == "true"
	summaries, err := h.session.History(c.Request.Context(), refresh)
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	if summaries == nil {
		summaries = []model.SnapshotSummary{}
	}
	c.JSON(http.StatusOK, summaries)
}

// DeleteSessionHistory deletes one snapshot and prunes the cached
// summary list without a re-fetch.
// DELETE /api/session/history/:data?armazem=
func (h *Handler) DeleteSessionHistory(c *gin.Context) {
	warehouse := c.Query("armazem")
	if warehouse == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "armazém é obrigatório"})
		return
	}

	msg, err := h.session.DeleteSnapshot(c.Request.Context(), c.Param("data"), warehouse)
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// writeSessionError maps the session error taxonomy onto HTTP statuses.
// Every failure is user-visible and synchronous; nothing retries.
func (h *Handler) writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrNoWarehouse), errors.Is(err, session.ErrEmptyCatalog):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrEmptySnapshot):
		c.JSON(http.StatusOK, gin.H{"message": "Vazio.", "itens": 0})
	case errors.Is(err, session.ErrStaleResponse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error("repository operation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "erro de comunicação com o serviço de contagens"})
	}
}
