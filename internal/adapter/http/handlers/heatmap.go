package handlers

import (
	"net/http"
	"strconv"
	"time"

	"dayheat/internal/adapter/http/mapper"
	"dayheat/internal/adapter/http/middleware"
	"dayheat/internal/core/ports"
	"dayheat/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HeatmapHandler struct {
	heatmapService ports.HeatmapService
}

func NewHeatmapHandler(heatmapService ports.HeatmapService) *HeatmapHandler {
	return &HeatmapHandler{heatmapService: heatmapService}
}

func (h *HeatmapHandler) GetHeatmap(c *gin.Context) {
	lang := middleware.GetLang(c)
	year := parseYear(c.Query("year"))

	points, err := h.heatmapService.Heatmap(c.Request.Context(), year)
	if err != nil {
		zap.L().Error("failed to build heatmap", zap.Int("year", year), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailHeatmap, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToHeatmapItems(points))
}

func (h *HeatmapHandler) GetStats(c *gin.Context) {
	lang := middleware.GetLang(c)
	year := parseYear(c.Query("year"))

	stats, err := h.heatmapService.Stats(c.Request.Context(), year)
	if err != nil {
		zap.L().Error("failed to build stats", zap.Int("year", year), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailStats, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToYearStatsResponse(stats))
}

// parseYear falls back to the current UTC year when the parameter is absent
// or not numeric.
func parseYear(raw string) int {
	year, err := strconv.Atoi(raw)
	if err != nil {
		return time.Now().UTC().Year()
	}
	return year
}
