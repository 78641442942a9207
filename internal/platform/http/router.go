package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/news"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/report"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/logging"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/metrics"
	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
)

// SummaryPublisher stores the state summary document.
type SummaryPublisher interface {
	SavePublishedSummary(ctx context.Context, summary model.StateSummary, fingerprint string) (model.PublishedSummary, error)
}

// Deps are the services the router exposes. Publisher may be nil when
// Firestore is not configured.
type Deps struct {
	Dashboard      *report.Dashboard
	News           *news.Adapter
	Publisher      SummaryPublisher
	Metrics        *metrics.Metrics
	Logger         *zap.Logger
	AllowedOrigins string
}

// Router wires HTTP handlers.
type Router struct {
	dash      *report.Dashboard
	news      *news.Adapter
	publisher SummaryPublisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
	origins   string
}

func NewRouter(deps Deps) *gin.Engine {
	r := &Router{
		dash:      deps.Dashboard,
		news:      deps.News,
		publisher: deps.Publisher,
		metrics:   deps.Metrics,
		logger:    deps.Logger,
		origins:   deps.AllowedOrigins,
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.metrics == nil {
		r.metrics = metrics.New()
	}

	router := gin.New()
	router.Use(logging.Middleware(r.logger), gin.Recovery(), r.metricsMiddleware(), r.corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "loadedAt": r.dash.Snapshot().LoadedAt})
	})
	router.GET("/metrics", gin.WrapH(r.metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/options", r.getOptions)

		hh := api.Group("/home-health")
		hh.GET("/metrics", r.listMapMetrics)
		hh.GET("/summary", r.getSummary)
		hh.GET("/summary/export", r.exportSummary)
		hh.POST("/summary/publish", r.publishSummary)
		hh.GET("/map", r.getMap)
		hh.GET("/highlights", r.getHighlights)
		hh.GET("/compare", r.getComparison)
		hh.GET("/compare/groups", r.getCompareGroups)

		api.GET("/hospice/rankings", r.getHospiceRankings)
		api.GET("/hospital/breakdown", r.getHospitalBreakdown)

		api.GET("/news/headlines", r.getHeadlines)
		api.GET("/news/search", r.searchNews)
		api.GET("/news/outlets", r.listOutlets)
	}

	return router
}

func (r *Router) corsMiddleware() gin.HandlerFunc {
	origins := strings.Split(r.origins, ",")
	trimmed := make([]string, 0, len(origins))
	for _, o := range origins {
		if t := strings.TrimSpace(o); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := "*"
		for _, o := range trimmed {
			if o == "*" || o == origin {
				allowed = origin
				break
			}
		}
		c.Header("Access-Control-Allow-Origin", allowed)
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, "+logging.RequestIDHeader)
		c.Header("Access-Control-Expose-Headers", logging.RequestIDHeader)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.metrics.ObserveHTTP(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
