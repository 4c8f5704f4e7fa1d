package dto

import "github.com/google/uuid"

// QueueMetrics represents metrics for the recompute queue
type QueueMetrics struct {
	PendingCount   int64   `json:"pendingCount"`
	RunningCount   int64   `json:"runningCount"`
	CompletedCount int64   `json:"completedCount"`
	FailedCount    int64   `json:"failedCount"`
	OldestPending  *string `json:"oldestPending,omitempty"`
	CircuitBreaker string  `json:"circuitBreaker"`
}

// EnqueueRecomputeResponse is returned when a recompute is queued
type EnqueueRecomputeResponse struct {
	JobID     uuid.UUID `json:"jobId"`
	Status    string    `json:"status"`
	Coalesced bool      `json:"coalesced"`
}
