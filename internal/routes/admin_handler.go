package routes

import (
	"net/http"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/logs"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/pkg"

	"github.com/gin-gonic/gin"
)

// GetAbout lists the developer team behind the service.
func (h *Handler) GetAbout(c *gin.Context) {
	c.JSON(http.StatusOK, h.Admin.GetTeam())
}

func (h *Handler) GetLogs(c *gin.Context) {
	filters := logs.Filters{
		Level:    c.Query("level"),
		Endpoint: c.Query("endpoint"),
		Limit:    pkg.ParseIntDefault(c.Query("limit"), 100),
	}

	entries, err := h.Admin.GetLogs(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
