package handlers

import (
	"context"
	"net/http"

	"tag-ledger/internal/dto"
	"tag-ledger/internal/errors"
	"tag-ledger/internal/models"
	"tag-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// RecomputeHandler exposes the aggregation pass, synchronously and through the queue
type RecomputeHandler struct {
	engine  services.TagAggregationServiceInterface
	queue   services.RecomputeQueueServiceInterface
	metrics services.MetricsRecorderInterface
}

func NewRecomputeHandler(
	engine services.TagAggregationServiceInterface,
	queue services.RecomputeQueueServiceInterface,
	metrics services.MetricsRecorderInterface,
) *RecomputeHandler {
	return &RecomputeHandler{
		engine:  engine,
		queue:   queue,
		metrics: metrics,
	}
}

// RecomputeNow runs the aggregation pass inside the request and returns its result
// @Router /tags/summary/recompute [post]
func (h *RecomputeHandler) RecomputeNow(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	// A client that hangs up must not leave banks half scanned.
	result, err := h.engine.Recompute(context.WithoutCancel(c.Request().Context()), userID)
	if err != nil {
		h.metrics.IncrementCounter("recompute.request", map[string]string{"mode": "sync", "status": "failed"})
		return SendServiceError(c, err)
	}

	h.metrics.IncrementCounter("recompute.request", map[string]string{"mode": "sync", "status": "success"})
	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}

// EnqueueRecompute queues a recompute and returns immediately
// @Router /recompute-jobs [post]
func (h *RecomputeHandler) EnqueueRecompute(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	job, coalesced, err := h.queue.Enqueue(c.Request().Context(), userID, models.RecomputeTriggerManual)
	if err != nil {
		h.metrics.IncrementCounter("recompute.request", map[string]string{"mode": "async", "status": "failed"})
		return SendServiceError(c, err)
	}

	h.metrics.IncrementCounter("recompute.request", map[string]string{"mode": "async", "status": "success"})
	return c.JSON(http.StatusAccepted, dto.EnqueueRecomputeResponse{
		JobID:     job.ID,
		Status:    job.Status,
		Coalesced: coalesced,
	})
}

// GetJob reports the status of one of the caller's recompute jobs
// @Router /recompute-jobs/{id} [get]
func (h *RecomputeHandler) GetJob(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	jobID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	job, err := h.queue.GetJob(c.Request().Context(), userID, jobID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: job})
}

// GetQueueMetrics reports queue depth and breaker state
// @Router /recompute-jobs/metrics [get]
func (h *RecomputeHandler) GetQueueMetrics(c echo.Context) error {
	metrics, err := h.queue.GetQueueMetrics(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: metrics})
}
