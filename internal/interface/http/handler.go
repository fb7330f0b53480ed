package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sadiya-27/Customer-support-bot/internal/domain/fulfillment"
	"github.com/Sadiya-27/Customer-support-bot/internal/domain/querylog"
	"github.com/Sadiya-27/Customer-support-bot/internal/infra/config"
	apperrors "github.com/Sadiya-27/Customer-support-bot/pkg/errors"
	"github.com/Sadiya-27/Customer-support-bot/pkg/metrics"
)

// Handler wires the HTTP transport to the fulfillment domain.
type Handler struct {
	fulfillmentSvc fulfillment.Service
	botCfg         fulfillment.Config
	recorder       *querylog.Recorder
	counters       *metrics.TurnCounters
	cfg            *config.Config
	logger         *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc fulfillment.Service, botCfg fulfillment.Config, recorder *querylog.Recorder, counters *metrics.TurnCounters, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		fulfillmentSvc: svc,
		botCfg:         botCfg,
		recorder:       recorder,
		counters:       counters,
		cfg:            cfg,
		logger:         logger.With("component", "http.handler"),
	}
}

// Fulfill handles one dialog turn from the engine webhook. The engine always
// gets a well-formed Fulfilled reply: when the turn fails internally the user
// receives the fixed apology and the failure is only visible in the logs.
func (h *Handler) Fulfill(c *gin.Context) {
	var ev fulfillment.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.fulfillmentSvc.HandleTurn(c.Request.Context(), ev)
	if err != nil {
		h.logger.Error("turn failed, degrading to apology", "code", apperrors.CodeOf(err), "error", err)
		resp = fulfillment.FallbackResponse(ev, h.botCfg)
	}
	c.JSON(http.StatusOK, resp)
}

// Trending returns the most frequent unanswered queries for the content team.
func (h *Handler) Trending(c *gin.Context) {
	items, err := h.recorder.Trending(c.Request.Context(), h.cfg.Trending.TopN)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "querylog_error", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"unanswered": items})
}

// Stats serves the process-local turn counters.
func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.counters.Snapshot())
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
