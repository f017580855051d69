package handlers

import (
	"net/http"
	"strconv"

	"Tracker/internal/auth"
	"Tracker/internal/report"
	"Tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Get godoc
// @Summary      Productivity report
// @Description  Windowed completion stats, priority/category distributions,
// @Description  productive days and the current streak.
// @Tags         reports
// @Produce      json
// @Security     CookieAuth
// @Param        period       query  string  false  "today|week|month|all (default all)"
// @Param        category_id  query  int     false  "restrict to one category"
// @Success      200  {object}  report.Report
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /reports [get]
func (h *ReportHandler) Get(c *gin.Context) {
	period := report.Period(c.DefaultQuery("period", string(report.PeriodAll)))
	if !report.ValidPeriod(period) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be today, week, month or all"})
		return
	}
	var categoryID *int64
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
			return
		}
		categoryID = &id
	}
	r, err := h.svc.Build(c.Request.Context(), auth.UserIDFromContext(c), period, categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}
