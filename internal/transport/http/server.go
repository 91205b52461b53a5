package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sameer-dev-stack/Royal-Class-Events/internal/metrics"
)

// Options configures the router.
type Options struct {
	CORSOrigins []string
	// Metrics is optional; nil disables /metrics and all observations.
	Metrics *metrics.Recorder
	Logger  zerolog.Logger
	Version string
}

// NewRouter builds the gin engine serving the intelligence endpoints.
func NewRouter(opts Options) *gin.Engine {
	useJSONFieldNames()

	h := &handler{
		version: opts.Version,
		metrics: opts.Metrics,
		logger:  opts.Logger,
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		RequestID(),
		RequestLogger(opts.Logger, opts.Metrics),
		Recovery(opts.Logger),
		CORS(opts.CORSOrigins),
	)

	r.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, codeNotFound, "not found")
	})
	r.NoMethod(func(c *gin.Context) {
		writeError(c, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	})

	r.GET("/", h.root)
	r.GET(PathHealth, h.health)
	if opts.Metrics != nil {
		r.GET(PathMetrics, gin.WrapH(opts.Metrics.Handler()))
	}

	r.POST(PathPredictDemand, h.predictDemand)
	r.POST(PathForecastRevenue, h.forecastRevenue)
	r.POST(PathSuggestPrice, h.suggestPrice)
	r.POST(PathDynamicPrice, h.calculateDynamicPrice)

	return r
}
