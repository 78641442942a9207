package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/export"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/report"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/logging"
)

type mapQuery struct {
	Metric string `form:"metric" binding:"required"`
	State  string `form:"state"`
}

type compareQuery struct {
	Measure   string `form:"measure" binding:"required"`
	Dimension string `form:"dimension" binding:"required"`
	Group1    string `form:"group1"`
	Group2    string `form:"group2"`
}

type compareGroupsQuery struct {
	Dimension string `form:"dimension" binding:"required"`
}

type exportQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=csv xlsx"`
}

type rankingQuery struct {
	State     string `form:"state"`
	Measure   string `form:"measure" binding:"required"`
	StartYear int    `form:"startYear" binding:"required"`
	EndYear   int    `form:"endYear" binding:"required"`
	Statistic string `form:"statistic" binding:"omitempty,oneof=mean median"`
	Order     string `form:"order" binding:"omitempty,oneof=top bottom"`
}

type breakdownQuery struct {
	State           string `form:"state"`
	Measure         string `form:"measure" binding:"required"`
	ValueCategory   string `form:"valueCategory"`
	PaymentCategory string `form:"paymentCategory"`
}

type headlinesQuery struct {
	Outlet string `form:"outlet" binding:"required"`
}

type searchQuery struct {
	Topic string `form:"topic"`
}

// bindQuery binds query parameters and answers 400 on failure.
func bindQuery(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "fields": fieldErrors(err)})
		return false
	}
	return true
}

func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			name := lowerFirst(fe.Field())
			switch fe.Tag() {
			case "required":
				out[name] = "is required"
			case "oneof":
				out[name] = "must be one of: " + fe.Param()
			default:
				out[name] = "failed " + fe.Tag() + " validation"
			}
		}
		return out
	}
	out["query"] = err.Error()
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func stateOrAll(s string) string {
	if strings.TrimSpace(s) == "" {
		return report.AllStates
	}
	return s
}

func (r *Router) getOptions(c *gin.Context) {
	c.JSON(http.StatusOK, r.dash.Options())
}

func (r *Router) listMapMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": report.MapMetrics()})
}

func (r *Router) getSummary(c *gin.Context) {
	c.JSON(http.StatusOK, r.dash.Summary())
}

func (r *Router) exportSummary(c *gin.Context) {
	var q exportQuery
	if !bindQuery(c, &q) {
		return
	}
	format := q.Format
	if format == "" {
		format = export.FormatCSV
	}
	c.Header("Content-Type", export.ContentType(format))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=state_summary.%s", format))

	if err := export.WriteSummary(c.Writer, format, r.dash.Summary()); err != nil {
		r.logger.Error("export summary", zap.String("format", format), zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
}

func (r *Router) publishSummary(c *gin.Context) {
	if r.publisher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "summary publishing is not configured"})
		return
	}
	doc, err := r.publisher.SavePublishedSummary(c.Request.Context(), r.dash.Summary(), r.dash.Snapshot().Fingerprint())
	if err != nil {
		r.logger.Error("publish summary", zap.String("requestId", logging.RequestID(c)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to publish summary: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"lastUpdated": doc.LastUpdated,
		"fingerprint": doc.Fingerprint,
		"states":      len(doc.Summary.Rows),
	})
}

func (r *Router) getMap(c *gin.Context) {
	var q mapQuery
	if !bindQuery(c, &q) {
		return
	}
	view, err := r.dash.MapView(q.Metric, stateOrAll(q.State))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "fields": gin.H{"metric": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (r *Router) getHighlights(c *gin.Context) {
	var q mapQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, r.dash.Highlights(q.Metric, stateOrAll(q.State)))
}

func (r *Router) getComparison(c *gin.Context) {
	var q compareQuery
	if !bindQuery(c, &q) {
		return
	}
	cmp, err := r.dash.Compare(q.Measure, q.Dimension, q.Group1, q.Group2)
	switch {
	case errors.Is(err, report.ErrUnknownMeasure):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "fields": gin.H{"measure": err.Error()}})
		return
	case errors.Is(err, report.ErrUnknownDimension):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "fields": gin.H{"dimension": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, cmp)
}

func (r *Router) getCompareGroups(c *gin.Context) {
	var q compareGroupsQuery
	if !bindQuery(c, &q) {
		return
	}
	groups, err := r.dash.CompareGroups(q.Dimension)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "fields": gin.H{"dimension": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": groups})
}

func (r *Router) getHospiceRankings(c *gin.Context) {
	var q rankingQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, r.dash.HospiceRanking(report.RankingParams{
		State:     stateOrAll(q.State),
		Measure:   q.Measure,
		StartYear: q.StartYear,
		EndYear:   q.EndYear,
		Statistic: q.Statistic,
		Order:     q.Order,
	}))
}

func (r *Router) getHospitalBreakdown(c *gin.Context) {
	var q breakdownQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, r.dash.HospitalBreakdown(report.BreakdownParams{
		State:           stateOrAll(q.State),
		Measure:         q.Measure,
		ValueCategory:   q.ValueCategory,
		PaymentCategory: q.PaymentCategory,
	}))
}

func (r *Router) getHeadlines(c *gin.Context) {
	var q headlinesQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": r.news.Headlines(c.Request.Context(), q.Outlet)})
}

func (r *Router) searchNews(c *gin.Context) {
	var q searchQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": r.news.Search(c.Request.Context(), q.Topic)})
}

func (r *Router) listOutlets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": r.news.Outlets(c.Request.Context())})
}
