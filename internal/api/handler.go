package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zaky-dc/shifaa-inventory/internal/session"
	"github.com/Zaky-dc/shifaa-inventory/internal/store"
)

// Handler wires the persistence API (the backend the original SPA
// talked to) and the session API (the counting core) onto one router.
type Handler struct {
	store     *store.Store
	session   *session.Session
	downloads *exportDownloadStore
	exportDir string
	log       *zap.Logger
}

// NewHandler creates the API handler.
func NewHandler(st *store.Store, sess *session.Session, exportDir string, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		store:     st,
		session:   sess,
		downloads: newExportDownloadStore(),
		exportDir: exportDir,
		log:       log,
	}
}

// RegisterRoutes registers every route under the given group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// Persistence service
	router.POST("/contagem", h.SaveContagem)
	router.GET("/contagem", h.GetContagem)
	router.DELETE("/contagem/:data", h.DeleteContagem)
	router.GET("/datas", h.ListDatas)
	router.GET("/armazens", h.ListArmazens)
	router.POST("/armazens", h.CreateArmazem)

	// Working session
	router.GET("/session", h.GetSession)
	router.POST("/session/import", h.ImportSession)
	router.GET("/session/items", h.ListSessionItems)
	router.PUT("/session/counts/:codigo", h.SetSessionCount)
	router.POST("/session/save", h.SaveSession)
	router.POST("/session/load", h.LoadSession)
	router.DELETE("/session", h.ClearSession)
	router.GET("/session/history", h.SessionHistory)
	router.DELETE("/session/history/:data", h.DeleteSessionHistory)

	// Export
	router.POST("/session/export", h.ExportSession)
	router.GET("/export/download/:token", h.DownloadExport)
}
