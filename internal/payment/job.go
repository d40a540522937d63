package payment

import (
	"context"
	"sync"
	"time"

	"gym-application/internal/logger"
	"gym-application/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Job keeps member payment statuses in sync with the calendar: the first
// data access in a new month flips everyone back to unpaid. The job caches
// the month it last settled so steady-state requests skip the database.
type Job struct {
	repo Repository

	mu           sync.Mutex
	settledMonth string
}

func NewJob(repo Repository) *Job {
	return &Job{repo: repo}
}

// EnsureCurrentMonth runs the reset if the current month has not been
// settled yet. Safe to call on every request.
func (j *Job) EnsureCurrentMonth(ctx context.Context) error {
	month := time.Now().Format("2006-01")

	j.mu.Lock()
	settled := j.settledMonth == month
	j.mu.Unlock()
	if settled {
		return nil
	}

	didReset, err := j.repo.EnsureMonth(ctx, month)
	if err != nil {
		return err
	}

	if didReset {
		metrics.RecordPaymentReset()
		logger.Info("monthly payment reset applied", "month", month)
	}

	j.mu.Lock()
	j.settledMonth = month
	j.mu.Unlock()

	return nil
}

// Middleware triggers the reset check before dashboard reads. A failed check
// is logged and the request continues; billing against stale statuses beats
// taking the dashboard down.
func (j *Job) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := j.EnsureCurrentMonth(c.Request.Context()); err != nil {
			logger.Error("payment reset check failed", "error", err)
		}
		c.Next()
	}
}
