package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Health)
	r.GET("/db/ping", h.DBPing)
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBPing proves the request transaction is live by asking the server for
// its identity.
func (h *HealthHandler) DBPing(c *gin.Context) {
	db := h.GetDB(c)

	var result struct {
		Database string `gorm:"column:db"`
		Version  string `gorm:"column:version"`
	}
	if err := db.Raw("SELECT DATABASE() AS db, VERSION() AS version").Scan(&result).Error; err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": result.Database,
		"version":  result.Version,
	})
}
