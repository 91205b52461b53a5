package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sameer-dev-stack/Royal-Class-Events/internal/analysis/demand"
	"github.com/sameer-dev-stack/Royal-Class-Events/internal/analysis/pricing"
	"github.com/sameer-dev-stack/Royal-Class-Events/internal/metrics"
	"github.com/sameer-dev-stack/Royal-Class-Events/models"
)

const serviceName = "Royal Class Events Intelligence API"

// Endpoint paths served by the intelligence API.
const (
	PathPredictDemand    = "/predict-demand"
	PathForecastRevenue  = "/forecast-revenue"
	PathSuggestPrice     = "/suggest-price"
	PathDynamicPrice     = "/calculate-dynamic-price"
	PathHealth           = "/health"
	PathMetrics          = "/metrics"
	defaultServiceStatus = "running"
)

type handler struct {
	version string
	metrics *metrics.Recorder
	logger  zerolog.Logger
}

// bind decodes and validates the JSON body. On failure it writes the error
// response and returns false.
func (h *handler) bind(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	fields, malformed := classifyBindError(err)
	if errors.Is(malformed, errMalformedBody) {
		h.logger.Debug().Err(err).Str("path", c.FullPath()).Msg("malformed request body")
		writeError(c, http.StatusBadRequest, codeInvalidRequestBody, malformed.Error())
		return false
	}

	for _, f := range fields {
		h.metrics.ObserveValidationError(c.FullPath(), f.Field)
	}
	writeError(c, http.StatusUnprocessableEntity, codeValidation, "request validation failed", fields...)
	return false
}

func (h *handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, models.ServiceInfo{
		Service: serviceName,
		Status:  defaultServiceStatus,
		Version: h.version,
		Endpoints: []string{
			PathPredictDemand,
			PathForecastRevenue,
			PathSuggestPrice,
			PathDynamicPrice,
		},
	})
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) predictDemand(c *gin.Context) {
	var req demandRequest
	if !h.bind(c, &req) {
		return
	}

	result := demand.PredictDemand(req.toEvent())
	h.metrics.ObserveDemand(result)
	writeData(c, result)
}

func (h *handler) forecastRevenue(c *gin.Context) {
	var req revenueRequest
	if !h.bind(c, &req) {
		return
	}

	result := demand.ForecastRevenue(
		*req.DemandScore,
		req.Capacity,
		*req.TicketPrice,
		ticketTypeOr(req.TicketType, models.TicketPaid),
	)
	writeData(c, result)
}

func (h *handler) suggestPrice(c *gin.Context) {
	var req priceSuggestionRequest
	if !h.bind(c, &req) {
		return
	}

	result := pricing.SuggestBasePrice(*req.Category, *req.Location, *req.DemandScore, req.Capacity)
	writeData(c, result)
}

func (h *handler) calculateDynamicPrice(c *gin.Context) {
	var req dynamicPriceRequest
	if !h.bind(c, &req) {
		return
	}

	result := pricing.CalculateDynamicPrice(req.toInput())
	h.metrics.ObserveStrategy(result.Strategy)
	writeData(c, result)
}
