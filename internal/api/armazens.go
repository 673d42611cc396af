package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zaky-dc/shifaa-inventory/internal/store"
)

// ListArmazens returns the registered warehouse names.
// GET /api/armazens
func (h *Handler) ListArmazens(c *gin.Context) {
	names, err := h.store.ListWarehouses()
	if err != nil {
		h.log.Error("failed to list warehouses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao carregar armazéns"})
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}

type createArmazemRequest struct {
	Nome string `json:"nome"`
}

// CreateArmazem registers a new warehouse name.
// POST /api/armazens
func (h *Handler) CreateArmazem(c *gin.Context) {
	var req createArmazemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo do pedido inválido"})
		return
	}

	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "digite um nome válido para o armazém"})
		return
	}

	if err := h.store.CreateWarehouse(nome); err != nil {
		if errors.Is(err, store.ErrWarehouseExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "armazém já existe"})
			return
		}
		h.log.Error("failed to create warehouse", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao criar armazém"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Armazém criado com sucesso!"})
}
